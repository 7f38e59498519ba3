package posts

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/microposts/internal/dbx"
	"github.com/dmitrijs2005/microposts/internal/server/models"
)

func queryPosts(ctx context.Context, db dbx.DBTX, query string) ([]models.Post, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return scanPosts(rows)
}

func scanPosts(rows *sql.Rows) ([]models.Post, error) {
	defer rows.Close()

	result := make([]models.Post, 0)
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Text, &p.UserID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		p.CreatedAt = p.CreatedAt.UTC()
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
