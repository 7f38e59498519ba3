package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/microposts/internal/common"
	"github.com/dmitrijs2005/microposts/internal/dbx"
	"github.com/dmitrijs2005/microposts/internal/server/models"
	"github.com/dmitrijs2005/microposts/internal/server/repositories/posts"
	"github.com/dmitrijs2005/microposts/internal/server/repositories/users"
)

var errBoom = errors.New("boom")

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	byLogin    map[string]*models.User
	byID       map[int64]*models.User
	getErr     error
	createErr  error
	listErr    error
	created    []*models.User
	nextID     int64
	listResult []models.User
}

func newFakeUsersRepo(existing ...*models.User) *fakeUsersRepo {
	f := &fakeUsersRepo{byLogin: map[string]*models.User{}, byID: map[int64]*models.User{}}
	for _, u := range existing {
		f.byLogin[u.UserName] = u
		f.byID[u.ID] = u
		if u.ID > f.nextID {
			f.nextID = u.ID
		}
	}
	return f
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	u.ID = f.nextID
	f.created = append(f.created, u)
	f.byLogin[u.UserName] = u
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byLogin[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) List(ctx context.Context) ([]models.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

type fakePostsRepo struct {
	createErr error
	listErr   error
	created   []*models.Post
	all       []models.Post
	recent    []models.Post
}

func (f *fakePostsRepo) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	p.ID = int64(len(f.created) + 1)
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakePostsRepo) List(ctx context.Context) ([]models.Post, error) {
	return f.all, f.listErr
}

func (f *fakePostsRepo) ListByRecency(ctx context.Context) ([]models.Post, error) {
	return f.recent, f.listErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	p *fakePostsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository          { return m.u }
func (m *fakeRepoManager) Posts(db dbx.DBTX) posts.Repository          { return m.p }

// fakeHasher prefixes the plaintext so tests can see what got stored.
type fakeHasher struct {
	err error
}

func (h fakeHasher) Hash(plaintext string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + plaintext, nil
}

func (h fakeHasher) Verify(plaintext, digest string) bool {
	return digest == "hashed:"+plaintext
}

type fakeIssuer struct {
	subjects []string
	err      error
}

func (f *fakeIssuer) Issue(subject string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.subjects = append(f.subjects, subject)
	return "token-for-" + subject, nil
}
