package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/microposts/internal/client/client"
	"github.com/dmitrijs2005/microposts/internal/client/models"
)

// PostService publishes posts as the logged-in user and reads the public
// listings.
type PostService interface {
	Create(ctx context.Context, text string) (*models.Post, error)
	Users(ctx context.Context) ([]models.User, error)
	List(ctx context.Context) ([]models.Post, error)
	Recent(ctx context.Context) ([]models.Post, error)
}

type postService struct {
	client client.Client
	auth   AuthService
}

func NewPostService(c client.Client, auth AuthService) PostService {
	return &postService{client: c, auth: auth}
}

// Create posts text with the stored token. A token the server rejects is
// dropped from the session so the user is prompted to log in again.
func (s *postService) Create(ctx context.Context, text string) (*models.Post, error) {
	_, token, err := s.auth.Session(ctx)
	if err != nil {
		return nil, err
	}

	post, err := s.client.CreatePost(ctx, token, text)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			_ = s.auth.Logout(ctx)
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) Users(ctx context.Context) ([]models.User, error) {
	return s.client.ListUsers(ctx)
}

func (s *postService) List(ctx context.Context) ([]models.Post, error) {
	return s.client.ListPosts(ctx)
}

func (s *postService) Recent(ctx context.Context) ([]models.Post, error) {
	return s.client.ListRecentPosts(ctx)
}
