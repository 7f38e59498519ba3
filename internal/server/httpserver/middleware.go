package httpserver

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/microposts/internal/common"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userIDKey    = "user_id"
	requestIDKey = "request_id"
)

// requestID reuses the caller's X-Request-ID or assigns a fresh one and
// echoes it back.
func (s *HTTPServer) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(common.RequestIDHeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(common.RequestIDHeaderName, id)
		c.Next()
	}
}

func (s *HTTPServer) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"request_id", c.GetString(requestIDKey),
		)
	}
}

// requireBearer accepts "Authorization: Bearer <token>" and stores the
// numeric user id from the token subject in the gin context.
func (s *HTTPServer) requireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader(common.AuthorizationHeaderName))
		if !ok {
			c.Header("WWW-Authenticate", "Bearer")
			abort(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		subject, err := s.tokens.Verify(token)
		if err != nil {
			s.logger.Debug(c.Request.Context(), "token rejected", "error", err)
			c.Header("WWW-Authenticate", "Bearer")
			abort(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		userID, err := strconv.ParseInt(subject, 10, 64)
		if err != nil || userID <= 0 {
			c.Header("WWW-Authenticate", "Bearer")
			abort(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, common.TokenType) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// userIDFromContext returns the id set by requireBearer, or 0.
func userIDFromContext(c *gin.Context) int64 {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}
