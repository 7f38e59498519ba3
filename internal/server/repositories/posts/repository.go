package posts

import (
	"context"

	"github.com/dmitrijs2005/microposts/internal/server/models"
)

// Repository persists posts. Both list methods return an empty, non-nil
// slice when there are no posts.
type Repository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	// List returns posts in insertion order.
	List(ctx context.Context) ([]models.Post, error)
	// ListByRecency returns posts newest first; equal timestamps keep
	// insertion order.
	ListByRecency(ctx context.Context) ([]models.Post, error)
}
