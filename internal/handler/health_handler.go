package handlers

import (
	"net/http"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, "Не найдено", http.StatusNotFound)
		return
	}

	WriteJSON(w, map[string]string{
		"service": "aigallery",
		"status":  "ok",
	}, http.StatusOK)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.DB.HealthCheck(); err != nil {
		WriteJSON(w, HealthResponse{Status: "error", Database: "unavailable"}, http.StatusInternalServerError)
		return
	}

	WriteJSON(w, HealthResponse{Status: "ok", Database: "ok"}, http.StatusOK)
}
