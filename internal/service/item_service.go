package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"

	"aigallery/internal/auth"
	"aigallery/internal/models"
	"aigallery/internal/repository"
	"aigallery/internal/storage"
)

// ErrForbidden - запрос не прошёл проверку владения (сессия не владельца
// и пароль не совпал).
var ErrForbidden = errors.New("доступ запрещен")

// ValidationError несёт детали по полям для ответа 400.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "неверные данные: " + strings.Join(parts, "; ")
}

type ItemPayload struct {
	Title        string   `json:"title" validate:"required,max=120"`
	Link         string   `json:"link" validate:"required,url"`
	Category     string   `json:"category" validate:"required,max=60"`
	Purpose      *string  `json:"purpose" validate:"omitnil,min=1,max=60"`
	Description  *string  `json:"description" validate:"omitempty,max=500"`
	Tags         []string `json:"tags"`
	ThumbnailURL *string  `json:"thumbnail_url" validate:"omitempty,url"`
	Nickname     *string  `json:"nickname" validate:"omitempty,max=30"`
	Password     *string  `json:"password" validate:"omitempty,max=100"`
}

type ItemService interface {
	Create(ctx context.Context, payload ItemPayload, session *Session) (*models.GalleryItem, error)
	Get(ctx context.Context, itemID int64) (*models.GalleryItem, error)
	List(ctx context.Context, filter repository.ItemFilter) ([]models.GalleryItem, error)
	Update(ctx context.Context, itemID int64, payload ItemPayload, session *Session) (*models.GalleryItem, error)
	Delete(ctx context.Context, itemID int64, password string, session *Session) error
	Like(ctx context.Context, itemID int64) (int, error)
}

type itemService struct {
	itemRepo repository.ItemRepository
	userRepo repository.UserRepository
	storage  storage.Storage
	validate *validator.Validate
}

func NewItemService(itemRepo repository.ItemRepository, userRepo repository.UserRepository, storage storage.Storage) ItemService {
	return &itemService{
		itemRepo: itemRepo,
		userRepo: userRepo,
		storage:  storage,
		validate: validator.New(),
	}
}

// NewValidationError переводит ошибки validator в детали по полям.
// Прочие ошибки возвращает как есть.
func NewValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		name := jsonFieldName(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			fields[name] = "обязательное поле"
		case "email":
			fields[name] = "должно быть корректным email"
		case "url":
			fields[name] = "должно быть корректным URL"
		case "min":
			fields[name] = fmt.Sprintf("не короче %s символов", fieldErr.Param())
		case "max":
			fields[name] = fmt.Sprintf("не длиннее %s символов", fieldErr.Param())
		default:
			fields[name] = "недопустимое значение"
		}
	}

	return &ValidationError{Fields: fields}
}

func (s *itemService) validatePayload(payload ItemPayload) error {
	err := s.validate.Struct(payload)
	if err == nil {
		return nil
	}
	return NewValidationError(err)
}

func jsonFieldName(structField string) string {
	switch structField {
	case "ThumbnailURL":
		return "thumbnail_url"
	default:
		return strings.ToLower(structField)
	}
}

func (s *itemService) Create(ctx context.Context, payload ItemPayload, session *Session) (*models.GalleryItem, error) {
	if err := s.validatePayload(payload); err != nil {
		return nil, err
	}

	item := &models.GalleryItem{
		Title:        payload.Title,
		Link:         payload.Link,
		Category:     payload.Category,
		Purpose:      payload.Purpose,
		Description:  payload.Description,
		Tags:         payload.Tags,
		ThumbnailURL: payload.ThumbnailURL,
		Nickname:     payload.Nickname,
	}

	if session != nil {
		// авторизованная работа: владелец из сессии, никнейм из аккаунта,
		// пароль восстановления не хранится
		user, err := s.userRepo.GetUserByID(ctx, session.UserID)
		if err != nil {
			return nil, fmt.Errorf("ошибка при получении пользователя сессии: %w", err)
		}

		item.UserID = &user.ID
		item.Nickname = &user.Nickname
		item.PasswordHash = nil
	} else if payload.Password != nil && *payload.Password != "" {
		// анонимная работа с паролем для последующего редактирования
		hashed, err := auth.HashPassword(*payload.Password)
		if err != nil {
			return nil, err
		}
		item.PasswordHash = &hashed
	}

	err := s.itemRepo.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (s *itemService) Get(ctx context.Context, itemID int64) (*models.GalleryItem, error) {
	return s.itemRepo.GetByID(ctx, itemID)
}

func (s *itemService) List(ctx context.Context, filter repository.ItemFilter) ([]models.GalleryItem, error) {
	if filter.Limit < 1 {
		filter.Limit = 24
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.Sort != "popular" {
		filter.Sort = "latest"
	}

	return s.itemRepo.List(ctx, filter)
}

// authorizeMutation решает, можно ли менять работу: владелец по сессии,
// либо совпавший анонимный пароль. Запись без владельца и без пароля
// не защищена и открыта для всех.
func authorizeMutation(item *models.GalleryItem, password string, session *Session) error {
	if item.Claimed() {
		if session != nil && session.UserID == *item.UserID {
			return nil
		}
		return ErrForbidden
	}

	if item.PasswordHash != nil && *item.PasswordHash != "" {
		if auth.CheckPasswordHash(password, *item.PasswordHash) {
			return nil
		}
		return ErrForbidden
	}

	return nil
}

func (s *itemService) Update(ctx context.Context, itemID int64, payload ItemPayload, session *Session) (*models.GalleryItem, error) {
	if err := s.validatePayload(payload); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	password := ""
	if payload.Password != nil {
		password = *payload.Password
	}

	if err := authorizeMutation(item, password, session); err != nil {
		return nil, err
	}

	item.Title = payload.Title
	item.Link = payload.Link
	item.Category = payload.Category
	item.Purpose = payload.Purpose
	item.Description = payload.Description
	item.Tags = payload.Tags
	item.ThumbnailURL = payload.ThumbnailURL

	// никнейм авторизованной работы закреплён за аккаунтом
	if !item.Claimed() && payload.Nickname != nil {
		item.Nickname = payload.Nickname
	}

	err = s.itemRepo.Update(ctx, item)
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (s *itemService) Delete(ctx context.Context, itemID int64, password string, session *Session) error {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}

	if err := authorizeMutation(item, password, session); err != nil {
		return err
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return err
	}

	// подчищаем превью в своём бакете; чужие URL хранилище пропускает
	if item.ThumbnailURL != nil && *item.ThumbnailURL != "" {
		if err := s.storage.DeleteThumbnailByURL(ctx, *item.ThumbnailURL); err != nil {
			log.Printf("Предупреждение: не удалось удалить превью из MinIO: %v", err)
		}
	}

	return nil
}

func (s *itemService) Like(ctx context.Context, itemID int64) (int, error) {
	return s.itemRepo.IncrementLikes(ctx, itemID)
}
