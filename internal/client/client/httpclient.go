package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/microposts/internal/client/models"
	"github.com/dmitrijs2005/microposts/internal/common"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signupResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (c *HTTPClient) SignUp(ctx context.Context, username, password string) (int64, error) {
	body, err := json.Marshal(credentials{Username: username, Password: password})
	if err != nil {
		return 0, err
	}

	var resp signupResponse
	if err := c.do(ctx, http.MethodPost, "/signup/", "application/json", bytes.NewReader(body), "", &resp); err != nil {
		return 0, err
	}
	return resp.UserID, nil
}

// Login posts form-encoded credentials and returns the bearer token.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{"username": {username}, "password": {password}}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()), "", &resp); err != nil {
		return "", err
	}
	if !strings.EqualFold(resp.TokenType, common.TokenType) || resp.AccessToken == "" {
		return "", fmt.Errorf("unexpected token type %q", resp.TokenType)
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, accessToken, text string) (*models.Post, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, err
	}

	var post models.Post
	if err := c.do(ctx, http.MethodPost, "/posts/", "application/json", bytes.NewReader(body), accessToken, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var list []models.User
	if err := c.do(ctx, http.MethodGet, "/users/", "", nil, "", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	return c.listPosts(ctx, "/posts/")
}

func (c *HTTPClient) ListRecentPosts(ctx context.Context) ([]models.Post, error) {
	return c.listPosts(ctx, "/recent_posts/")
}

func (c *HTTPClient) listPosts(ctx context.Context, path string) ([]models.Post, error) {
	var list []models.Post
	if err := c.do(ctx, http.MethodGet, path, "", nil, "", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", "", nil, "", nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path, contentType string, body io.Reader, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func mapError(resp *http.Response) error {
	var e errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&e)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, e.Detail)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, e.Detail)
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrUnavailable, e.Detail)
	default:
		return &APIError{StatusCode: resp.StatusCode, Detail: e.Detail}
	}
}
