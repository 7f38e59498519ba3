// Package services contains application services for the CLI: account
// sign-up and login with a persisted session, and post operations that use
// that session.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/microposts/internal/client/client"
	"github.com/dmitrijs2005/microposts/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/microposts/internal/dbx"
)

const (
	keyUserName    = "username"
	keyAccessToken = "access_token"
)

var ErrNotLoggedIn = errors.New("not logged in")

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - SignUp: create an account on the server.
//   - Login: authenticate and persist the session (username and token).
//   - Logout: forget the persisted session.
//   - Session: return the persisted session or ErrNotLoggedIn.
//   - Ping: check server liveness.
type AuthService interface {
	SignUp(ctx context.Context, username string, password []byte) (int64, error)
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	Session(ctx context.Context) (userName string, accessToken string, err error)
	Ping(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
}

func NewAuthService(c client.Client, db *sql.DB) AuthService {
	return &authService{client: c, db: db}
}

func (a *authService) SignUp(ctx context.Context, username string, password []byte) (int64, error) {
	return a.client.SignUp(ctx, username, string(password))
}

// Login authenticates against the server and stores username and token in
// one transaction.
func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	token, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyUserName, []byte(username)); err != nil {
			return err
		}
		return repo.Set(ctx, keyAccessToken, []byte(token))
	})
	if err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

// Logout drops the stored username and token together.
func (a *authService) Logout(ctx context.Context) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for _, key := range []string{keyAccessToken, keyUserName} {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}

func (a *authService) Session(ctx context.Context) (string, string, error) {
	repo := metadata.NewSQLiteRepository(a.db)

	token, err := repo.Get(ctx, keyAccessToken)
	if err != nil {
		return "", "", err
	}
	if len(token) == 0 {
		return "", "", ErrNotLoggedIn
	}

	userName, err := repo.Get(ctx, keyUserName)
	if err != nil {
		return "", "", err
	}

	return string(userName), string(token), nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
