package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"aigallery/internal/models"
)

type ItemRepositoryImpl struct {
	db *sqlx.DB
}

func NewItemRepository(db *sqlx.DB) *ItemRepositoryImpl {
	return &ItemRepositoryImpl{db: db}
}

func (r *ItemRepositoryImpl) Create(ctx context.Context, item *models.GalleryItem) error {
	// id и created_at генерирует БД
	query := `
        INSERT INTO gallery_items
        (title, link, category, purpose, description, tags, thumbnail_url, nickname, password_hash, like_count, user_id)
        VALUES
        ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, $10)
        RETURNING id, like_count, created_at
    `

	row := r.db.QueryRowxContext(ctx, query,
		item.Title,
		item.Link,
		item.Category,
		item.Purpose,
		item.Description,
		item.Tags,
		item.ThumbnailURL,
		item.Nickname,
		item.PasswordHash,
		item.UserID,
	)

	err := row.Scan(&item.ID, &item.LikeCount, &item.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при создании работы: %w", err)
	}

	return nil
}

func (r *ItemRepositoryImpl) GetByID(ctx context.Context, itemID int64) (*models.GalleryItem, error) {
	query := `
        SELECT * FROM gallery_items
        WHERE id = $1
    `

	var item models.GalleryItem
	err := r.db.GetContext(ctx, &item, query, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении работы: %w", err)
	}

	return &item, nil
}

func (r *ItemRepositoryImpl) List(ctx context.Context, filter ItemFilter) ([]models.GalleryItem, error) {
	conditions := []string{}
	args := []interface{}{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", len(args)))
	}

	if filter.Nickname != "" {
		args = append(args, filter.Nickname)
		conditions = append(conditions, fmt.Sprintf("nickname = $%d", len(args)))
	}

	query := `SELECT * FROM gallery_items`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	// popular - сначала по лайкам, при равенстве по дате
	if filter.Sort == "popular" {
		query += " ORDER BY like_count DESC, created_at DESC"
	} else {
		query += " ORDER BY created_at DESC"
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	items := []models.GalleryItem{}
	err := r.db.SelectContext(ctx, &items, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка работ: %w", err)
	}

	return items, nil
}

func (r *ItemRepositoryImpl) Update(ctx context.Context, item *models.GalleryItem) error {
	query := `
		UPDATE gallery_items SET
			title = :title,
			link = :link,
			category = :category,
			purpose = :purpose,
			description = :description,
			tags = :tags,
			thumbnail_url = :thumbnail_url,
			nickname = :nickname
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении работы: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *ItemRepositoryImpl) Delete(ctx context.Context, itemID int64) error {
	query := `DELETE FROM gallery_items WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, itemID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении работы: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// IncrementLikes атомарно увеличивает счётчик на стороне БД, поэтому
// параллельные лайки не теряются.
func (r *ItemRepositoryImpl) IncrementLikes(ctx context.Context, itemID int64) (int, error) {
	query := `
		UPDATE gallery_items SET
			like_count = like_count + 1
		WHERE id = $1
		RETURNING like_count
	`

	var likeCount int
	err := r.db.GetContext(ctx, &likeCount, query, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("ошибка при обновлении счётчика лайков: %w", err)
	}

	return likeCount, nil
}
