package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/zenkeeper/internal/client/models"
	"github.com/dmitrijs2005/zenkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

func TestNewHTTPClient_Token(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"empty", "", common.ErrTokenMissing},
		{"blank", "   ", common.ErrTokenMissing},
		{"opaque", "plain-oauth-token", nil},
		{"jwt without exp", signed(t, jwt.MapClaims{"sub": "1"}), nil},
		{"jwt valid", signed(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()}), nil},
		{"jwt expired", signed(t, jwt.MapClaims{"exp": now.Add(-time.Hour).Unix()}), common.ErrTokenExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewHTTPClient(tt.token)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, DefaultBaseURL, c.BaseURL())
		})
	}
}

func TestHTTPClient_Options(t *testing.T) {
	hc := &http.Client{}
	c, err := NewHTTPClient("tok", WithBaseURL("http://localhost:8080/"), WithHTTPClient(hc), WithTimeout(5*time.Second))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", c.BaseURL())
	assert.Same(t, hc, c.http)
	assert.Equal(t, 5*time.Second, c.http.Timeout)

	c, err = NewHTTPClient("tok", WithBaseURL(""), WithTimeout(0))
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
	assert.Equal(t, DefaultTimeout, c.http.Timeout)
}

func TestHTTPClient_Diff(t *testing.T) {
	var got models.DiffRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v8/diff/", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{
			"serverTimestamp": 1700000000,
			"account": [{"id": "a-1", "title": "Cash", "type": "cash"}],
			"deletion": [{"id": "a-2", "object": "account", "stamp": 1, "user": 7}]
		}`))
	}))
	defer ts.Close()

	c, err := NewHTTPClient("tok", WithBaseURL(ts.URL))
	require.NoError(t, err)

	resp, err := c.Diff(context.Background(), &models.DiffRequest{CurrentClientTimestamp: 10, ServerTimestamp: 5})
	require.NoError(t, err)

	assert.Equal(t, int64(10), got.CurrentClientTimestamp)
	assert.Equal(t, int64(5), got.ServerTimestamp)
	assert.Equal(t, int64(1700000000), resp.ServerTimestamp)
	require.Len(t, resp.Account, 1)
	assert.Equal(t, models.AccountID("a-1"), resp.Account[0].ID)
	require.Len(t, resp.Deletion, 1)
	assert.Equal(t, models.ObjectAccount, resp.Deletion[0].Object)
}

func TestHTTPClient_Suggest(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v8/suggest/", r.URL.Path)
		var req models.SuggestRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if assert.NotNil(t, req.Payee) {
			assert.Equal(t, "Starbucks", *req.Payee)
		}
		_, _ = w.Write([]byte(`{"payee": "Starbucks", "merchant": "m-1", "tag": ["coffee"]}`))
	}))
	defer ts.Close()

	c, err := NewHTTPClient("tok", WithBaseURL(ts.URL))
	require.NoError(t, err)

	payee := "Starbucks"
	resp, err := c.Suggest(context.Background(), &models.SuggestRequest{Payee: &payee})
	require.NoError(t, err)
	require.NotNil(t, resp.Merchant)
	assert.Equal(t, models.MerchantID("m-1"), *resp.Merchant)
	assert.Equal(t, []models.TagID{"coffee"}, resp.Tag)
}

func TestHTTPClient_Errors(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		for _, code := range []int{http.StatusUnauthorized, http.StatusForbidden} {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "bad token", code)
			}))
			c, err := NewHTTPClient("tok", WithBaseURL(ts.URL))
			require.NoError(t, err)

			_, err = c.Diff(context.Background(), &models.DiffRequest{})
			ts.Close()

			require.ErrorIs(t, err, ErrUnauthorized)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, code, apiErr.Status)
			assert.Contains(t, apiErr.Message, "bad token")
		}
	})

	t.Run("server error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		c, err := NewHTTPClient("tok", WithBaseURL(ts.URL))
		require.NoError(t, err)

		_, err = c.Suggest(context.Background(), &models.SuggestRequest{})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
		assert.Equal(t, "Internal Server Error", apiErr.Message)
		assert.False(t, errors.Is(err, ErrUnauthorized))
	})

	t.Run("malformed body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"serverTimestamp": "soon"}`))
		}))
		defer ts.Close()

		c, err := NewHTTPClient("tok", WithBaseURL(ts.URL))
		require.NoError(t, err)

		_, err = c.Diff(context.Background(), &models.DiffRequest{})
		require.ErrorIs(t, err, common.ErrSerialization)
	})

	t.Run("unreachable", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close()

		c, err := NewHTTPClient("tok", WithBaseURL(ts.URL))
		require.NoError(t, err)

		_, err = c.Diff(context.Background(), &models.DiffRequest{})
		require.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("canceled context", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		defer ts.Close()

		c, err := NewHTTPClient("tok", WithBaseURL(ts.URL))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = c.Diff(ctx, &models.DiffRequest{})
		require.ErrorIs(t, err, ErrUnavailable)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestCheckToken_ExpiryBoundary(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	tok := signed(t, jwt.MapClaims{"exp": now.Unix()})

	require.ErrorIs(t, checkToken(tok, now), common.ErrTokenExpired)
	require.NoError(t, checkToken(tok, now.Add(-time.Second)))
}

func TestAPIError_Message(t *testing.T) {
	err := &APIError{Status: 404, Message: "missing"}
	assert.Equal(t, "api error 404: missing", err.Error())
	assert.False(t, errors.Is(err, ErrUnauthorized))
}
