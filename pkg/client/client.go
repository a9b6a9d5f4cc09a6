// Package client is a small Go client for the expense tracker API.
//
// Transport failures wrap ErrUnreachable; replies outside 2xx come back as
// *APIError so callers can tell an offline server from a rejected request.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
)

const defaultTimeout = 10 * time.Second

// ErrUnreachable is wrapped by every error caused by the network rather than the server.
var ErrUnreachable = errors.New("server unreachable")

// APIError is a non-2xx reply.
type APIError struct {
	StatusCode int
	Message    string
	Errors     map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// Config holds the client settings. BaseURL is required.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client talks to one API server.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("client: BaseURL is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("client: invalid BaseURL: %w", err)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{baseURL: base, http: httpClient}, nil
}

// Login signs in and returns the identity payload including the access token.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	err := c.do(ctx, http.MethodPost, "/user/login", "", nil, dto.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup registers a user with the default role.
func (c *Client) Signup(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodPost, "/user", "", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListExpenses lists the expenses visible to the token's owner.
func (c *Client) ListExpenses(ctx context.Context, token string) ([]domain.Expense, error) {
	var out []domain.Expense
	if err := c.do(ctx, http.MethodGet, "/expense/expence", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// IncomeTotal sums userID's completed incomes; an empty userID means the caller.
func (c *Client) IncomeTotal(ctx context.Context, token, userID string) (decimal.Decimal, error) {
	var query url.Values
	if userID != "" {
		query = url.Values{"userId": {userID}}
	}
	var out dto.IncomeTotalResponse
	if err := c.do(ctx, http.MethodGet, "/income/total", token, query, nil, &out); err != nil {
		return decimal.Zero, err
	}
	return out.TotalIncome, nil
}

// do sends one request and decodes the data member of the reply into out.
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out any) error {
	u := *c.baseURL
	u.Path = u.Path + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrUnreachable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read reply: %w", ErrUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var env dto.ErrorResponse
		if json.Unmarshal(raw, &env) == nil {
			apiErr.Message = env.Message
			apiErr.Errors = env.Errors
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("client: decode reply: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("client: decode data: %w", err)
	}
	return nil
}
