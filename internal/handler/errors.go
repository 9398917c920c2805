package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"aigallery/internal/service"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteValidationError - 400 с деталями по полям
func WriteValidationError(w http.ResponseWriter, validationErr *service.ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   "Ошибка валидации",
		Details: validationErr.Fields,
	})
}

// writeValidationFailure - переводит ошибку валидатора в 400 с деталями по полям
func writeValidationFailure(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError
	if errors.As(service.NewValidationError(err), &validationErr) {
		WriteValidationError(w, validationErr)
		return
	}
	WriteError(w, "Неверные данные", http.StatusBadRequest)
}

// WriteJSON - функция для успешных ответов
func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
