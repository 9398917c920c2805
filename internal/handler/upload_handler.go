package handlers

import (
	"net/http"
	"path/filepath"
	"strings"
)

type UploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

var allowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// UploadThumbnail принимает multipart-файл и возвращает URL для thumbnail_url.
func (h *Handlers) UploadThumbnail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Файл слишком большой или неверный формат запроса", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "Отсутствует файл в поле 'file'", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	allowed := false
	for _, allowedExt := range allowedImageExtensions {
		if ext == allowedExt {
			allowed = true
			break
		}
	}

	if !allowed {
		WriteError(w, "Допустимы только изображения (jpg, jpeg, png, gif, webp)", http.StatusBadRequest)
		return
	}

	_, thumbnailURL, err := h.Storage.UploadThumbnail(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		WriteError(w, "Не удалось загрузить файл", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, UploadResponse{Success: true, URL: thumbnailURL}, http.StatusCreated)
}
