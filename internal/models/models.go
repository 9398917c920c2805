package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Nickname     string    `json:"nickname" db:"nickname"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// GalleryItem - запись галереи. Либо "claimed" (user_id задан, password_hash
// пуст), либо анонимная (user_id пуст, password_hash опционален).
type GalleryItem struct {
	ID           int64          `json:"id" db:"id"`
	Title        string         `json:"title" db:"title"`
	Link         string         `json:"link" db:"link"`
	Category     string         `json:"category" db:"category"`
	Purpose      *string        `json:"purpose" db:"purpose"`
	Description  *string        `json:"description" db:"description"`
	Tags         pq.StringArray `json:"tags" db:"tags"`
	ThumbnailURL *string        `json:"thumbnail_url" db:"thumbnail_url"`
	Nickname     *string        `json:"nickname" db:"nickname"`
	PasswordHash *string        `json:"-" db:"password_hash"`
	LikeCount    int            `json:"like_count" db:"like_count"`
	UserID       *string        `json:"user_id" db:"user_id"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
}

// Claimed reports whether the item belongs to an authenticated user.
func (i *GalleryItem) Claimed() bool {
	return i.UserID != nil && *i.UserID != ""
}
