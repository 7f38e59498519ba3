// Package server wires the configuration, storage, services and HTTP
// transport together and runs them until the process is told to stop.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/microposts/internal/logging"
	"github.com/dmitrijs2005/microposts/internal/server/auth"
	"github.com/dmitrijs2005/microposts/internal/server/config"
	"github.com/dmitrijs2005/microposts/internal/server/httpserver"
	"github.com/dmitrijs2005/microposts/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/microposts/internal/server/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
	postService *services.PostService
	tokens      *auth.TokenService
}

// NewApp validates c, opens the database and applies migrations. An invalid
// configuration is returned as an error before anything is opened.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.New(os.Stdout, c.LogLevel)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	hasher, err := auth.NewBcryptHasher(c.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	db, rm, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	tokens := auth.NewTokenService(c.SecretKey, c.AccessTokenValidityDuration)

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		userService: services.NewUserService(db, rm, hasher, tokens),
		postService: services.NewPostService(db, rm),
		tokens:      tokens,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) newHTTPServer() *httpserver.HTTPServer {
	return httpserver.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger,
		app.userService, app.postService, app.tokens, app.db, app.config.CORSAllowedOrigins)
}

// Run blocks until a termination signal arrives, ctx is cancelled or the
// HTTP server fails, then closes the database.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	gin.SetMode(gin.ReleaseMode)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.newHTTPServer().Run(gctx)
	})

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, "server error", "error", err)
	}

	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(ctx, "db close error", "error", cerr)
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
