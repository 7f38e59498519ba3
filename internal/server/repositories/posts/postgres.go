package posts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/microposts/internal/dbx"
	"github.com/dmitrijs2005/microposts/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	query :=
		`INSERT INTO posts (text, user_id, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING id`

	err := r.db.QueryRowContext(ctx, query, post.Text, post.UserID, post.CreatedAt.UTC()).Scan(&post.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Post, error) {
	return queryPosts(ctx, r.db,
		`SELECT id, text, user_id, created_at FROM posts
		 ORDER BY id`)
}

func (r *PostgresRepository) ListByRecency(ctx context.Context) ([]models.Post, error) {
	return queryPosts(ctx, r.db,
		`SELECT id, text, user_id, created_at FROM posts
		 ORDER BY created_at DESC, id ASC`)
}
