package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"aigallery/internal/models"
	"aigallery/internal/repository"
	"aigallery/internal/service"
)

type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

type MeResponse struct {
	User *UserResponse `json:"user"`
}

func userResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Nickname: user.Nickname,
	}
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	// check method
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req service.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationFailure(w, err)
		return
	}

	// registering a user
	user, err := h.AuthService.Signup(r.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			WriteError(w, "Email уже зарегистрирован", http.StatusConflict)
		} else {
			WriteError(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	// issuing a session cookie
	if err := h.AuthService.IssueSession(w, user); err != nil {
		WriteError(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, AuthResponse{Success: true, User: userResponse(user)}, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	// check method
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationFailure(w, err)
		return
	}

	user, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			// одинаковое сообщение для любого провала аутентификации
			WriteError(w, "Неверный email или пароль", http.StatusUnauthorized)
		} else {
			WriteError(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	if err := h.AuthService.IssueSession(w, user); err != nil {
		WriteError(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, AuthResponse{Success: true, User: userResponse(user)}, http.StatusOK)
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session := h.AuthService.SessionFromRequest(r)
	if session == nil {
		WriteJSON(w, MeResponse{User: nil}, http.StatusOK)
		return
	}

	// перечитываем пользователя, чтобы не отдавать устаревший никнейм из токена
	user, err := h.AuthService.GetUserByID(r.Context(), session.UserID)
	if err != nil {
		WriteJSON(w, MeResponse{User: nil}, http.StatusOK)
		return
	}

	resp := userResponse(user)
	WriteJSON(w, MeResponse{User: &resp}, http.StatusOK)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.AuthService.RevokeSession(w)

	WriteJSON(w, MessageResponse{Success: true}, http.StatusOK)
}
