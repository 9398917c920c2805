package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"aigallery/internal/repository"
	"aigallery/internal/service"
)

type LikeResponse struct {
	Success bool `json:"success"`
	Likes   int  `json:"likes"`
}

// Items обслуживает /items: GET - список, POST - создание.
func (h *Handlers) Items(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.ListItems(w, r)
	case http.MethodPost:
		h.CreateItem(w, r)
	default:
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ItemByID обслуживает /items/{id} и /items/{id}/like.
func (h *Handlers) ItemByID(w http.ResponseWriter, r *http.Request) {
	pathParts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	// /items/{id}/like
	if len(pathParts) == 3 && pathParts[2] == "like" {
		if r.Method != http.MethodPost {
			WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.LikeItem(w, r, pathParts[1])
		return
	}

	if len(pathParts) != 2 {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.GetItem(w, r, pathParts[1])
	case http.MethodPut:
		h.UpdateItem(w, r, pathParts[1])
	case http.MethodDelete:
		h.DeleteItem(w, r, pathParts[1])
	default:
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func parseItemID(rawID string) (int64, error) {
	return strconv.ParseInt(rawID, 10, 64)
}

func (h *Handlers) ListItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, _ := strconv.Atoi(query.Get("limit"))
	offset, _ := strconv.Atoi(query.Get("offset"))

	filter := repository.ItemFilter{
		Category: query.Get("category"),
		Query:    query.Get("q"),
		Nickname: query.Get("nickname"),
		Sort:     query.Get("sort"),
		Limit:    limit,
		Offset:   offset,
	}

	items, err := h.ItemService.List(r.Context(), filter)
	if err != nil {
		WriteError(w, "Не удалось получить список работ", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, items, http.StatusOK)
}

func (h *Handlers) CreateItem(w http.ResponseWriter, r *http.Request) {
	var payload service.ItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// сессия резолвится один раз и передаётся в сервис явно
	session := h.AuthService.SessionFromRequest(r)

	item, err := h.ItemService.Create(r.Context(), payload, session)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			WriteValidationError(w, validationErr)
		} else {
			WriteError(w, "Не удалось создать работу", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, item, http.StatusCreated)
}

func (h *Handlers) GetItem(w http.ResponseWriter, r *http.Request, rawID string) {
	itemID, err := parseItemID(rawID)
	if err != nil {
		WriteError(w, "Неверный ID работы", http.StatusBadRequest)
		return
	}

	item, err := h.ItemService.Get(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Работа не найдена", http.StatusNotFound)
		} else {
			WriteError(w, "Не удалось получить работу", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, item, http.StatusOK)
}

func (h *Handlers) UpdateItem(w http.ResponseWriter, r *http.Request, rawID string) {
	itemID, err := parseItemID(rawID)
	if err != nil {
		WriteError(w, "Неверный ID работы", http.StatusBadRequest)
		return
	}

	var payload service.ItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	session := h.AuthService.SessionFromRequest(r)

	item, err := h.ItemService.Update(r.Context(), itemID, payload, session)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			WriteValidationError(w, validationErr)
		case errors.Is(err, repository.ErrNotFound):
			WriteError(w, "Работа не найдена", http.StatusNotFound)
		case errors.Is(err, service.ErrForbidden):
			WriteError(w, "Доступ запрещен", http.StatusForbidden)
		default:
			WriteError(w, "Не удалось обновить работу", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, item, http.StatusOK)
}

func (h *Handlers) DeleteItem(w http.ResponseWriter, r *http.Request, rawID string) {
	itemID, err := parseItemID(rawID)
	if err != nil {
		WriteError(w, "Неверный ID работы", http.StatusBadRequest)
		return
	}

	// пароль анонимной работы приходит в теле; тело может отсутствовать
	var req struct {
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	session := h.AuthService.SessionFromRequest(r)

	err = h.ItemService.Delete(r.Context(), itemID, req.Password, session)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			WriteError(w, "Работа не найдена", http.StatusNotFound)
		case errors.Is(err, service.ErrForbidden):
			WriteError(w, "Доступ запрещен", http.StatusForbidden)
		default:
			WriteError(w, "Не удалось удалить работу", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, MessageResponse{Success: true, Message: "Работа успешно удалена"}, http.StatusOK)
}

func (h *Handlers) LikeItem(w http.ResponseWriter, r *http.Request, rawID string) {
	itemID, err := parseItemID(rawID)
	if err != nil {
		WriteError(w, "Неверный ID работы", http.StatusBadRequest)
		return
	}

	likes, err := h.ItemService.Like(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Работа не найдена", http.StatusNotFound)
		} else {
			WriteError(w, "Не удалось поставить лайк", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, LikeResponse{Success: true, Likes: likes}, http.StatusOK)
}
