package posts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/microposts/internal/dbx"
	"github.com/dmitrijs2005/microposts/internal/server/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	query :=
		`INSERT INTO posts (text, user_id, created_at)
		 VALUES (?, ?, ?)
		 RETURNING id`

	err := r.db.QueryRowContext(ctx, query, post.Text, post.UserID, post.CreatedAt.UTC()).Scan(&post.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Post, error) {
	return queryPosts(ctx, r.db,
		`SELECT id, text, user_id, created_at FROM posts
		 ORDER BY id`)
}

func (r *SQLiteRepository) ListByRecency(ctx context.Context) ([]models.Post, error) {
	return queryPosts(ctx, r.db,
		`SELECT id, text, user_id, created_at FROM posts
		 ORDER BY created_at DESC, id ASC`)
}
