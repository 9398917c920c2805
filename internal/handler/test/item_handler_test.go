package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"aigallery/internal/models"
	"aigallery/internal/repository"
	"aigallery/internal/service"
)

func testItem() *models.GalleryItem {
	return &models.GalleryItem{
		ID:        7,
		Title:     "T",
		Link:      "https://x.com",
		Category:  "image",
		LikeCount: 0,
		CreatedAt: time.Now(),
	}
}

func TestCreateItemHandler_Anonymous(t *testing.T) {
	// Arrange
	mockAuthService := new(MockAuthService)
	mockItemService := new(MockItemService)
	handler := createTestHandler(mockAuthService, mockItemService)

	mockAuthService.On("SessionFromRequest", mock.Anything).Return(nil)
	mockItemService.On("Create", mock.Anything, service.ItemPayload{
		Title:    "T",
		Link:     "https://x.com",
		Category: "image",
	}, (*service.Session)(nil)).Return(testItem(), nil)

	body, _ := json.Marshal(map[string]string{
		"title":    "T",
		"link":     "https://x.com",
		"category": "image",
	})
	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	// Act
	handler.Items(rr, req)

	// Assert
	assert.Equal(t, http.StatusCreated, rr.Code)

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)

	assert.Equal(t, float64(7), response["id"])
	assert.Equal(t, float64(0), response["like_count"])
	assert.Nil(t, response["user_id"])
	assert.NotEmpty(t, response["created_at"])

	mockItemService.AssertExpectations(t)
}

func TestCreateItemHandler_ValidationDetails(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockItemService := new(MockItemService)
	handler := createTestHandler(mockAuthService, mockItemService)

	mockAuthService.On("SessionFromRequest", mock.Anything).Return(nil)
	mockItemService.On("Create", mock.Anything, mock.Anything, (*service.Session)(nil)).
		Return(nil, &service.ValidationError{
			Fields: map[string]string{"title": "обязательное поле"},
		})

	// title отсутствует
	body, _ := json.Marshal(map[string]string{
		"link":     "https://x.com",
		"category": "image",
	})
	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	handler.Items(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var response struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response.Details, "title")
}

func TestCreateItemHandler_PassesSession(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockItemService := new(MockItemService)
	handler := createTestHandler(mockAuthService, mockItemService)

	session := &service.Session{UserID: "user-123", Email: "test@example.com"}
	userID := "user-123"
	item := testItem()
	item.UserID = &userID

	mockAuthService.On("SessionFromRequest", mock.Anything).Return(session)
	mockItemService.On("Create", mock.Anything, mock.Anything, session).Return(item, nil)

	body, _ := json.Marshal(map[string]string{
		"title":    "T",
		"link":     "https://x.com",
		"category": "image",
	})
	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	handler.Items(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", response["user_id"])

	mockItemService.AssertExpectations(t)
}

func TestListItemsHandler(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockItemService := new(MockItemService)
	handler := createTestHandler(mockAuthService, mockItemService)

	mockItemService.On("List", mock.Anything, repository.ItemFilter{
		Category: "image",
		Query:    "пейзаж",
		Sort:     "popular",
		Limit:    10,
		Offset:   20,
	}).Return([]models.GalleryItem{*testItem()}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/items?category=image&q=%D0%BF%D0%B5%D0%B9%D0%B7%D0%B0%D0%B6&sort=popular&limit=10&offset=20", nil)
	rr := httptest.NewRecorder()

	handler.Items(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response []map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)

	mockItemService.AssertExpectations(t)
}

func TestGetItemHandler(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockItemService := new(MockItemService)
	handler := createTestHandler(mockAuthService, mockItemService)

	t.Run("Работа найдена", func(t *testing.T) {
		mockItemService.On("Get", mock.Anything, int64(7)).Return(testItem(), nil)

		req := httptest.NewRequest(http.MethodGet, "/items/7", nil)
		rr := httptest.NewRecorder()

		handler.ItemByID(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Работа не найдена", func(t *testing.T) {
		mockItemService.On("Get", mock.Anything, int64(99)).Return(nil, repository.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/items/99", nil)
		rr := httptest.NewRecorder()

		handler.ItemByID(rr, req)

		assertJSONError(t, rr, http.StatusNotFound, "Работа не найдена")
	})

	t.Run("Нечисловой ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/items/abc", nil)
		rr := httptest.NewRecorder()

		handler.ItemByID(rr, req)

		assertJSONError(t, rr, http.StatusBadRequest, "Неверный ID")
	})
}

func TestUpdateItemHandler(t *testing.T) {
	t.Run("Несуществующая работа", func(t *testing.T) {
		mockAuthService := new(MockAuthService)
		mockItemService := new(MockItemService)
		handler := createTestHandler(mockAuthService, mockItemService)

		mockAuthService.On("SessionFromRequest", mock.Anything).Return(nil)
		mockItemService.On("Update", mock.Anything, int64(99), mock.Anything, (*service.Session)(nil)).
			Return(nil, repository.ErrNotFound)

		body, _ := json.Marshal(map[string]string{
			"title":    "T",
			"link":     "https://x.com",
			"category": "image",
		})
		req := httptest.NewRequest(http.MethodPut, "/items/99", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		handler.ItemByID(rr, req)

		assertJSONError(t, rr, http.StatusNotFound, "Работа не найдена")
	})

	t.Run("Чужая работа", func(t *testing.T) {
		mockAuthService := new(MockAuthService)
		mockItemService := new(MockItemService)
		handler := createTestHandler(mockAuthService, mockItemService)

		session := &service.Session{UserID: "user-456"}

		mockAuthService.On("SessionFromRequest", mock.Anything).Return(session)
		mockItemService.On("Update", mock.Anything, int64(7), mock.Anything, session).
			Return(nil, service.ErrForbidden)

		body, _ := json.Marshal(map[string]string{
			"title":    "T",
			"link":     "https://x.com",
			"category": "image",
		})
		req := httptest.NewRequest(http.MethodPut, "/items/7", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		handler.ItemByID(rr, req)

		assertJSONError(t, rr, http.StatusForbidden, "Доступ запрещен")
	})

	t.Run("Успешное обновление", func(t *testing.T) {
		mockAuthService := new(MockAuthService)
		mockItemService := new(MockItemService)
		handler := createTestHandler(mockAuthService, mockItemService)

		mockAuthService.On("SessionFromRequest", mock.Anything).Return(nil)
		mockItemService.On("Update", mock.Anything, int64(7), mock.Anything, (*service.Session)(nil)).
			Return(testItem(), nil)

		body, _ := json.Marshal(map[string]string{
			"title":    "T",
			"link":     "https://x.com",
			"category": "image",
			"password": "secret123",
		})
		req := httptest.NewRequest(http.MethodPut, "/items/7", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		handler.ItemByID(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestDeleteItemHandler(t *testing.T) {
	t.Run("Успешное удаление с паролем", func(t *testing.T) {
		mockAuthService := new(MockAuthService)
		mockItemService := new(MockItemService)
		handler := createTestHandler(mockAuthService, mockItemService)

		mockAuthService.On("SessionFromRequest", mock.Anything).Return(nil)
		mockItemService.On("Delete", mock.Anything, int64(7), "secret123", (*service.Session)(nil)).
			Return(nil)

		body, _ := json.Marshal(map[string]string{"password": "secret123"})
		req := httptest.NewRequest(http.MethodDelete, "/items/7", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		handler.ItemByID(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockItemService.AssertExpectations(t)
	})

	t.Run("Без тела запроса", func(t *testing.T) {
		mockAuthService := new(MockAuthService)
		mockItemService := new(MockItemService)
		handler := createTestHandler(mockAuthService, mockItemService)

		mockAuthService.On("SessionFromRequest", mock.Anything).Return(nil)
		mockItemService.On("Delete", mock.Anything, int64(7), "", (*service.Session)(nil)).
			Return(service.ErrForbidden)

		req := httptest.NewRequest(http.MethodDelete, "/items/7", nil)
		rr := httptest.NewRecorder()

		handler.ItemByID(rr, req)

		assertJSONError(t, rr, http.StatusForbidden, "Доступ запрещен")
	})
}

func TestLikeItemHandler(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockItemService := new(MockItemService)
	handler := createTestHandler(mockAuthService, mockItemService)

	t.Run("Лайк поставлен", func(t *testing.T) {
		mockItemService.On("Like", mock.Anything, int64(7)).Return(6, nil)

		req := httptest.NewRequest(http.MethodPost, "/items/7/like", nil)
		rr := httptest.NewRecorder()

		handler.ItemByID(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response map[string]interface{}
		err := json.Unmarshal(rr.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, float64(6), response["likes"])
	})

	t.Run("Работа не найдена", func(t *testing.T) {
		mockItemService.On("Like", mock.Anything, int64(99)).Return(0, repository.ErrNotFound)

		req := httptest.NewRequest(http.MethodPost, "/items/99/like", nil)
		rr := httptest.NewRecorder()

		handler.ItemByID(rr, req)

		assertJSONError(t, rr, http.StatusNotFound, "Работа не найдена")
	})

	t.Run("GET не разрешён", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/items/7/like", nil)
		rr := httptest.NewRecorder()

		handler.ItemByID(rr, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}
