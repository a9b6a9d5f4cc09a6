package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/pkg/client"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *client.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := client.New(client.Config{BaseURL: srv.URL + "/", Timeout: time.Second})
	require.NoError(t, err)
	return c
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := client.New(client.Config{})
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user/login", r.URL.Path)
		var req dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ann@example.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Login successful","data":{"id":"u1","email":"ann@example.com","role":"user","isActive":true,"token":"jwt"}}`))
	})

	resp, err := c.Login(context.Background(), "ann@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "jwt", resp.Token)
	assert.Equal(t, "u1", resp.ID)
}

func TestLogin_Rejected(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Incorrect password"}`))
	})

	_, err := c.Login(context.Background(), "ann@example.com", "nope")

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Incorrect password", apiErr.Message)
	assert.False(t, errors.Is(err, client.ErrUnreachable))
}

func TestSignup_ValidationErrors(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Validation failed","errors":{"email":"must be a valid email address"}}`))
	})

	_, err := c.Signup(context.Background(), dto.CreateUserRequest{Email: "bad"})

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "must be a valid email address", apiErr.Errors["email"])
}

func TestListExpenses_SendsToken(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/expense/expence", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"message":"ok","data":[{"_id":"e1","title":"Lunch","amount":12.5,"status":"pending","comments":[]}]}`))
	})

	expenses, err := c.ListExpenses(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "e1", expenses[0].ExpenseID)
	assert.True(t, expenses[0].Amount.Equal(decimal.RequireFromString("12.5")))
}

func TestIncomeTotal(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/income/total", r.URL.Path)
		assert.Equal(t, "u2", r.URL.Query().Get("userId"))
		_, _ = w.Write([]byte(`{"message":"ok","data":{"totalIncome":1500.25},"totalIncome":1500.25}`))
	})

	total, err := c.IncomeTotal(context.Background(), "tok", "u2")
	require.NoError(t, err)
	assert.Equal(t, "1500.25", total.String())
}

func TestUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	c, err := client.New(client.Config{BaseURL: baseURL, Timeout: time.Second})
	require.NoError(t, err)

	_, err = c.ListExpenses(context.Background(), "tok")
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrUnreachable)

	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr))
}
