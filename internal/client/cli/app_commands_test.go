package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/microposts/internal/client/client"
	"github.com/dmitrijs2005/microposts/internal/client/models"
	"github.com/dmitrijs2005/microposts/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	signUpErr error
	loginErr  error
	logoutErr error
	session   string
	pingErr   error

	gotUser     string
	gotPassword string
	loggedOut   bool
}

func (f *fakeAuth) SignUp(_ context.Context, u string, p []byte) (int64, error) {
	f.gotUser, f.gotPassword = u, string(p)
	return 9, f.signUpErr
}

func (f *fakeAuth) Login(_ context.Context, u string, p []byte) error {
	f.gotUser, f.gotPassword = u, string(p)
	return f.loginErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.loggedOut = true
	return f.logoutErr
}

func (f *fakeAuth) Session(context.Context) (string, string, error) {
	if f.session == "" {
		return "", "", services.ErrNotLoggedIn
	}
	return f.session, "tok", nil
}

func (f *fakeAuth) Ping(context.Context) error { return f.pingErr }

type fakePosts struct {
	created   *models.Post
	createErr error
	users     []models.User
	posts     []models.Post
	listErr   error

	gotText string
}

func (f *fakePosts) Create(_ context.Context, text string) (*models.Post, error) {
	f.gotText = text
	return f.created, f.createErr
}
func (f *fakePosts) Users(context.Context) ([]models.User, error)  { return f.users, f.listErr }
func (f *fakePosts) List(context.Context) ([]models.Post, error)   { return f.posts, f.listErr }
func (f *fakePosts) Recent(context.Context) ([]models.Post, error) { return f.posts, f.listErr }

func newTestApp(as *fakeAuth, ps *fakePosts, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		authService: as,
		postService: ps,
		reader:      bufio.NewReader(strings.NewReader(input)),
		out:         &out,
	}, &out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func TestSignUpCommand(t *testing.T) {
	stubPassword(t, "hunter2")
	as := &fakeAuth{}
	a, out := newTestApp(as, &fakePosts{}, "bob\n")

	require.NoError(t, a.SignUp(context.Background()))
	assert.Equal(t, "bob", as.gotUser)
	assert.Equal(t, "hunter2", as.gotPassword)
	assert.Contains(t, out.String(), "User bob created (id 9)")
	assert.False(t, a.isLoggedIn())
}

func TestSignUpCommand_EmptyName(t *testing.T) {
	stubPassword(t, "hunter2")
	as := &fakeAuth{}
	a, _ := newTestApp(as, &fakePosts{}, "\n")

	require.ErrorIs(t, a.SignUp(context.Background()), errEmptyInput)
	assert.Empty(t, as.gotUser)
}

func TestLoginCommand(t *testing.T) {
	stubPassword(t, "hunter2")

	t.Run("success", func(t *testing.T) {
		as := &fakeAuth{}
		a, out := newTestApp(as, &fakePosts{}, "bob\n")

		require.NoError(t, a.Login(context.Background()))
		assert.True(t, a.isLoggedIn())
		assert.Equal(t, "(bob)", a.getStatus())
		assert.Contains(t, out.String(), "Login successful")
	})

	t.Run("rejected", func(t *testing.T) {
		as := &fakeAuth{loginErr: client.ErrUnauthorized}
		a, _ := newTestApp(as, &fakePosts{}, "bob\n")

		require.ErrorIs(t, a.Login(context.Background()), client.ErrUnauthorized)
		assert.False(t, a.isLoggedIn())
		assert.Equal(t, "", a.getStatus())
	})
}

func TestLogoutCommand(t *testing.T) {
	as := &fakeAuth{}
	a, _ := newTestApp(as, &fakePosts{}, "")
	a.userName = "bob"

	require.NoError(t, a.Logout(context.Background()))
	assert.True(t, as.loggedOut)
	assert.False(t, a.isLoggedIn())
}

func TestPostCommand(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("requires login", func(t *testing.T) {
		ps := &fakePosts{}
		a, _ := newTestApp(&fakeAuth{}, ps, "")

		require.Error(t, a.Post(context.Background(), "hi"))
		assert.Empty(t, ps.gotText)
	})

	t.Run("inline text", func(t *testing.T) {
		ps := &fakePosts{created: &models.Post{ID: 4, Text: "hi", CreatedAt: created}}
		a, out := newTestApp(&fakeAuth{}, ps, "")
		a.userName = "bob"

		require.NoError(t, a.Post(context.Background(), "hi"))
		assert.Equal(t, "hi", ps.gotText)
		assert.Contains(t, out.String(), "Post #4 published")
	})

	t.Run("prompted text", func(t *testing.T) {
		ps := &fakePosts{created: &models.Post{ID: 5}}
		a, _ := newTestApp(&fakeAuth{}, ps, "from prompt\n")
		a.userName = "bob"

		require.NoError(t, a.Post(context.Background(), ""))
		assert.Equal(t, "from prompt", ps.gotText)
	})

	t.Run("rejected token logs out", func(t *testing.T) {
		ps := &fakePosts{createErr: client.ErrUnauthorized}
		a, _ := newTestApp(&fakeAuth{}, ps, "")
		a.userName = "bob"

		require.ErrorIs(t, a.Post(context.Background(), "hi"), client.ErrUnauthorized)
		assert.False(t, a.isLoggedIn())
	})

	t.Run("other error keeps session", func(t *testing.T) {
		ps := &fakePosts{createErr: errors.New("boom")}
		a, _ := newTestApp(&fakeAuth{}, ps, "")
		a.userName = "bob"

		require.Error(t, a.Post(context.Background(), "hi"))
		assert.True(t, a.isLoggedIn())
	})
}

func TestListingCommands(t *testing.T) {
	ps := &fakePosts{
		users: []models.User{{ID: 1, UserName: "bob"}},
		posts: []models.Post{{ID: 7, UserID: 1, Text: "hello"}},
	}
	a, out := newTestApp(&fakeAuth{}, ps, "")
	ctx := context.Background()

	require.NoError(t, a.Users(ctx))
	assert.Contains(t, out.String(), "USERNAME")
	assert.Contains(t, out.String(), "bob")

	out.Reset()
	require.NoError(t, a.Posts(ctx))
	assert.Contains(t, out.String(), "hello")

	out.Reset()
	require.NoError(t, a.Recent(ctx))
	assert.Contains(t, out.String(), "hello")

	ps.listErr = errors.New("boom")
	assert.Error(t, a.Users(ctx))
	assert.Error(t, a.Posts(ctx))
	assert.Error(t, a.Recent(ctx))
}

func TestRestoreSession(t *testing.T) {
	a, _ := newTestApp(&fakeAuth{session: "bob"}, &fakePosts{}, "")
	require.NoError(t, a.restoreSession(context.Background()))
	assert.Equal(t, "bob", a.userName)

	a, _ = newTestApp(&fakeAuth{}, &fakePosts{}, "")
	require.NoError(t, a.restoreSession(context.Background()))
	assert.False(t, a.isLoggedIn())
}
