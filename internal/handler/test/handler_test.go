package test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"aigallery/internal/config"
	handlers "aigallery/internal/handler"
)

func createTestHandler(authService *MockAuthService, itemService *MockItemService) *handlers.Handlers {
	cfg := &config.Config{
		JWTSecretKey:  "test-secret-key",
		ServerPort:    8080,
		MaxUploadSize: 10 * 1024 * 1024,
	}

	return &handlers.Handlers{
		AuthService: authService,
		ItemService: itemService,
		Storage:     &MockStorage{},
		Cfg:         cfg,
		Validate:    validator.New(),
	}
}

// assertJSONError проверяет JSON-ответ с ошибкой
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response handlers.ErrorResponse
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response.Error, expectedError)
}
