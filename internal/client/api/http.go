package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pulsefeed/pulsefeed/internal/client/models"
)

// HTTPClient is the concrete Client over the resource store's REST surface.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient constructs a client for the store reachable at baseURL.
// The timeout applies per request.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) LookupUser(ctx context.Context, username, password string) ([]models.User, error) {
	q := url.Values{}
	q.Set("username", username)
	q.Set("password", password)

	var users []models.User
	if err := c.getJSON(ctx, "/users", q, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) FindByUsername(ctx context.Context, username string) ([]models.User, error) {
	q := url.Values{}
	q.Set("username", username)

	var users []models.User
	if err := c.getJSON(ctx, "/users", q, &users); err != nil {
		return nil, err
	}
	return users, nil
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *HTTPClient) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	body, err := json.Marshal(createUserRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("encoding create request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("%w: status %d", ErrNotCreated, resp.StatusCode)
	}

	var created models.User
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decoding created user: %w", err)
	}
	return &created, nil
}

func (c *HTTPClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.getJSON(ctx, "/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
