// Package services contains the server-side business logic: account
// registration and login, and post creation and listing.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/microposts/internal/common"
	"github.com/dmitrijs2005/microposts/internal/dbx"
	"github.com/dmitrijs2005/microposts/internal/server/auth"
	"github.com/dmitrijs2005/microposts/internal/server/models"
	"github.com/dmitrijs2005/microposts/internal/server/repositories/repomanager"
)

// TokenIssuer mints access tokens for an authenticated subject.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// UserService handles registration, credential checks and user listing.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.Hasher
	tokens      TokenIssuer
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, h auth.Hasher, t TokenIssuer) *UserService {
	return &UserService{db: db, repomanager: m, hasher: h, tokens: t}
}

// Register creates a user with a hashed password. A taken username yields
// common.ErrorConflict; the unique index backs up the lookup when two
// sign-ups race.
func (s *UserService) Register(ctx context.Context, userName, password string) (*models.User, error) {
	var user *models.User

	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		repo := s.repomanager.Users(conn)

		_, err := repo.GetUserByLogin(ctx, userName)
		if err == nil {
			return common.ErrorConflict
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		digest, err := s.hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		user, err = repo.Create(ctx, &models.User{UserName: userName, PasswordHash: digest})
		return err
	})
	if err != nil {
		return nil, classify(err)
	}

	return user, nil
}

// Login checks the credentials and returns an access token whose subject is
// the user id. Unknown users and wrong passwords are indistinguishable.
func (s *UserService) Login(ctx context.Context, userName, password string) (string, error) {
	var user *models.User

	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		user, err = s.repomanager.Users(conn).GetUserByLogin(ctx, userName)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", classify(err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := s.tokens.Issue(strconv.FormatInt(user.ID, 10))
	if err != nil {
		return "", classify(fmt.Errorf("issue token: %w", err))
	}

	return token, nil
}

// List returns every user without password digests.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var list []models.User

	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		list, err = s.repomanager.Users(conn).List(ctx)
		return err
	})
	if err != nil {
		return nil, classify(err)
	}

	return list, nil
}

// classify passes domain sentinels through and folds anything else into
// common.ErrorInternal, keeping the cause in the message.
func classify(err error) error {
	switch {
	case errors.Is(err, common.ErrorConflict),
		errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrorInternal):
		return err
	default:
		return fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
}
