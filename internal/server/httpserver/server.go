// Package httpserver exposes the user and post services over HTTP using gin.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/microposts/internal/logging"
	"github.com/dmitrijs2005/microposts/internal/server/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

type UserService interface {
	Register(ctx context.Context, userName, password string) (*models.User, error)
	Login(ctx context.Context, userName, password string) (string, error)
	List(ctx context.Context) ([]models.User, error)
}

type PostService interface {
	Create(ctx context.Context, userID int64, text string) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	ListRecent(ctx context.Context) ([]models.Post, error)
}

// TokenVerifier resolves an access token to its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HTTPServer struct {
	address string
	logger  logging.Logger
	users   UserService
	posts   PostService
	tokens  TokenVerifier
	db      Pinger
	engine  *gin.Engine
}

func NewHTTPServer(a string, l logging.Logger, us UserService, ps PostService, tv TokenVerifier, db Pinger, corsOrigins []string) *HTTPServer {
	s := &HTTPServer{
		address: a,
		logger:  l.With("module", "http_server"),
		users:   us,
		posts:   ps,
		tokens:  tv,
		db:      db,
	}
	s.engine = s.newRouter(corsOrigins)
	return s
}

// Handler returns the routed gin engine.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

func (s *HTTPServer) newRouter(corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), s.accessLog(), cors.New(corsConfig(corsOrigins)))

	r.GET("/health", s.health)

	r.POST("/signup/", s.signup)
	r.POST("/login", s.login)
	r.POST("/login/", s.login)

	r.GET("/users/", s.listUsers)
	r.GET("/posts/", s.listPosts)
	r.GET("/recent_posts/", s.listRecentPosts)
	r.POST("/posts/", s.requireBearer(), s.createPost)

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	return c
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
