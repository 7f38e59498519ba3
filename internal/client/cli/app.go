// Package cli implements the interactive command-line client.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/microposts/internal/client/client"
	"github.com/dmitrijs2005/microposts/internal/client/config"
	"github.com/dmitrijs2005/microposts/internal/client/services"
)

type App struct {
	config      *config.Config
	db          *sql.DB
	authService services.AuthService
	postService services.PostService
	userName    string
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	db, err := client.InitDatabase(ctx, c.StatePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing state database: %w", err)
	}

	apiClient := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)

	as := services.NewAuthService(apiClient, db)
	ps := services.NewPostService(apiClient, as)

	return &App{
		config:      c,
		db:          db,
		authService: as,
		postService: ps,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// restoreSession picks up a session saved by an earlier run.
func (a *App) restoreSession(ctx context.Context) error {
	userName, _, err := a.authService.Session(ctx)
	if err != nil {
		if errors.Is(err, services.ErrNotLoggedIn) {
			return nil
		}
		return err
	}
	a.userName = userName
	return nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if err := a.restoreSession(ctx); err != nil {
		printlnFn("Error:", err)
	}

	if err := a.authService.Ping(ctx); err != nil {
		printlnFn("Warning: server at", a.config.ServerURL, "is not reachable:", err)
	}

	printlnFn("Welcome to microposts CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}
