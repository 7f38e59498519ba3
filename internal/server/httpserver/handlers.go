package httpserver

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/microposts/internal/common"
	"github.com/dmitrijs2005/microposts/internal/server/models"
	"github.com/gin-gonic/gin"
)

// Request fields are pointers so that "required" rejects only absent
// fields; empty strings are accepted.
type credentialsRequest struct {
	Username *string `json:"username" form:"username" binding:"required"`
	Password *string `json:"password" form:"password" binding:"required"`
}

type createPostRequest struct {
	Text *string `json:"text" binding:"required"`
}

type signupResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

type loginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func abort(c *gin.Context, code int, detail string) {
	c.AbortWithStatusJSON(code, errorResponse{Detail: detail})
}

func (s *HTTPServer) internalError(c *gin.Context, err error) {
	s.logger.Error(c.Request.Context(), err.Error(), "request_id", c.GetString(requestIDKey))
	abort(c, http.StatusInternalServerError, "Internal server error")
}

func (s *HTTPServer) health(c *gin.Context) {
	if err := s.db.PingContext(c.Request.Context()); err != nil {
		s.logger.Error(c.Request.Context(), "db ping failed", "error", err)
		abort(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *HTTPServer) signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	user, err := s.users.Register(c.Request.Context(), *req.Username, *req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			abort(c, http.StatusConflict, "Username already registered")
			return
		}
		s.internalError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "Registered", "username", user.UserName, "user_id", user.ID)
	c.JSON(http.StatusOK, signupResponse{Message: "User created successfully", UserID: user.ID})
}

// login binds form or JSON bodies depending on Content-Type.
func (s *HTTPServer) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		abort(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	token, err := s.users.Login(c.Request.Context(), *req.Username, *req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.Header("WWW-Authenticate", "Bearer")
			abort(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Message:     "Login successful",
		AccessToken: token,
		TokenType:   common.TokenType,
	})
}

func (s *HTTPServer) createPost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	post, err := s.posts.Create(c.Request.Context(), userIDFromContext(c), *req.Text)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			abort(c, http.StatusUnauthorized, "User not found")
			return
		}
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (s *HTTPServer) listUsers(c *gin.Context) {
	list, err := s.users.List(c.Request.Context())
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(list))
}

func (s *HTTPServer) listPosts(c *gin.Context) {
	list, err := s.posts.List(c.Request.Context())
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(list))
}

func (s *HTTPServer) listRecentPosts(c *gin.Context) {
	list, err := s.posts.ListRecent(c.Request.Context())
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(list))
}

// nonNil makes empty listings encode as [] rather than null.
func nonNil[T models.User | models.Post](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
