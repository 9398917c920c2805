package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"aigallery/internal/models"
)

var (
	ErrNotFound           = errors.New("запись не найдена")
	ErrEmailExists        = errors.New("email уже зарегистрирован")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
}

// ItemFilter - параметры выборки для списка работ.
type ItemFilter struct {
	Category string
	Query    string
	Nickname string
	Sort     string // "latest" или "popular"
	Limit    int
	Offset   int
}

type ItemRepository interface {
	Create(ctx context.Context, item *models.GalleryItem) error
	GetByID(ctx context.Context, itemID int64) (*models.GalleryItem, error)
	List(ctx context.Context, filter ItemFilter) ([]models.GalleryItem, error)
	Update(ctx context.Context, item *models.GalleryItem) error
	Delete(ctx context.Context, itemID int64) error
	IncrementLikes(ctx context.Context, itemID int64) (int, error)
}

type Repository struct {
	User UserRepository
	Item ItemRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User: NewUserRepository(db),
		Item: NewItemRepository(db),
	}
}
