package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/microposts/internal/dbx"
	"github.com/dmitrijs2005/microposts/internal/server/models"
	"github.com/dmitrijs2005/microposts/internal/server/repositories/repomanager"
)

// PostService creates and lists posts.
type PostService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewPostService(db *sql.DB, m repomanager.RepositoryManager) *PostService {
	return &PostService{db: db, repomanager: m, now: time.Now}
}

// Create stores a post owned by userID, stamped with the current UTC time.
// The owner lookup and the insert share one transaction; a missing owner
// yields common.ErrorNotFound and nothing is written.
func (s *PostService) Create(ctx context.Context, userID int64, text string) (*models.Post, error) {
	var post *models.Post

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		owner, err := s.repomanager.Users(tx).GetUserByID(ctx, userID)
		if err != nil {
			return err
		}

		post, err = s.repomanager.Posts(tx).Create(ctx, &models.Post{
			Text:      text,
			UserID:    owner.ID,
			CreatedAt: s.now().UTC(),
		})
		return err
	})
	if err != nil {
		return nil, classify(err)
	}

	return post, nil
}

// List returns all posts in insertion order.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.list(ctx, func(ctx context.Context, conn dbx.DBTX) ([]models.Post, error) {
		return s.repomanager.Posts(conn).List(ctx)
	})
}

// ListRecent returns all posts newest first.
func (s *PostService) ListRecent(ctx context.Context) ([]models.Post, error) {
	return s.list(ctx, func(ctx context.Context, conn dbx.DBTX) ([]models.Post, error) {
		return s.repomanager.Posts(conn).ListByRecency(ctx)
	})
}

func (s *PostService) list(ctx context.Context, query func(ctx context.Context, conn dbx.DBTX) ([]models.Post, error)) ([]models.Post, error) {
	var list []models.Post

	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		list, err = query(ctx, conn)
		return err
	})
	if err != nil {
		return nil, classify(err)
	}

	return list, nil
}
