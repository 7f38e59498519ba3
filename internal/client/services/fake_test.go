package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/microposts/internal/client/client"
	"github.com/dmitrijs2005/microposts/internal/client/models"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	signUpID  int64
	signUpErr error
	token     string
	loginErr  error
	post      *models.Post
	postErr   error
	users     []models.User
	posts     []models.Post
	recent    []models.Post
	pingErr   error

	gotPassword string
	gotToken    string
	gotText     string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) SignUp(_ context.Context, _, password string) (int64, error) {
	f.gotPassword = password
	return f.signUpID, f.signUpErr
}

func (f *fakeClient) Login(_ context.Context, _, password string) (string, error) {
	f.gotPassword = password
	return f.token, f.loginErr
}

func (f *fakeClient) CreatePost(_ context.Context, token, text string) (*models.Post, error) {
	f.gotToken, f.gotText = token, text
	return f.post, f.postErr
}

func (f *fakeClient) ListUsers(context.Context) ([]models.User, error)       { return f.users, nil }
func (f *fakeClient) ListPosts(context.Context) ([]models.Post, error)       { return f.posts, nil }
func (f *fakeClient) ListRecentPosts(context.Context) ([]models.Post, error) { return f.recent, nil }
func (f *fakeClient) Ping(context.Context) error                             { return f.pingErr }

func newStateDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}
