package client

import (
	"context"

	"github.com/dmitrijs2005/microposts/internal/client/models"
)

type Client interface {
	SignUp(ctx context.Context, username, password string) (int64, error)
	Login(ctx context.Context, username, password string) (string, error)
	CreatePost(ctx context.Context, accessToken, text string) (*models.Post, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	ListRecentPosts(ctx context.Context) ([]models.Post, error)
	Ping(ctx context.Context) error
}
