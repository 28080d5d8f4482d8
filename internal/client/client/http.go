package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/zenkeeper/internal/client/models"
	"github.com/dmitrijs2005/zenkeeper/internal/common"
	"github.com/dmitrijs2005/zenkeeper/internal/netx"
	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultBaseURL = "https://api.zenmoney.ru"
	DefaultTimeout = 30 * time.Second

	diffPath    = "/v8/diff/"
	suggestPath = "/v8/suggest/"
)

type HTTPClient struct {
	baseURL string
	token   string
	http    *http.Client
}

type Option func(*HTTPClient)

func WithBaseURL(u string) Option {
	return func(c *HTTPClient) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithTimeout bounds every request. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying client; its Timeout is kept as is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewHTTPClient validates token and builds a client. An empty token fails
// with common.ErrTokenMissing; a JWT whose exp claim is in the past fails
// with common.ErrTokenExpired. Tokens that are not JWTs are accepted as is.
func NewHTTPClient(token string, opts ...Option) (*HTTPClient, error) {
	if err := checkToken(token, time.Now()); err != nil {
		return nil, err
	}
	c := &HTTPClient{
		baseURL: DefaultBaseURL,
		token:   token,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func checkToken(token string, now time.Time) error {
	if strings.TrimSpace(token) == "" {
		return common.ErrTokenMissing
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if !exp.After(now) {
		return common.ErrTokenExpired
	}
	return nil
}

func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

func (c *HTTPClient) Diff(ctx context.Context, req *models.DiffRequest) (*models.DiffResponse, error) {
	var resp models.DiffResponse
	if err := c.post(ctx, diffPath, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Suggest(ctx context.Context, req *models.SuggestRequest) (*models.SuggestResponse, error) {
	var resp models.SuggestResponse
	if err := c.post(ctx, suggestPath, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, in, out any) error {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+c.token)
	return mapError(netx.PostJSON(ctx, c.http, c.baseURL+path, h, in, out))
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	var se *netx.StatusError
	switch {
	case errors.As(err, &se):
		msg := se.Body
		if msg == "" {
			msg = http.StatusText(se.Code)
		}
		return &APIError{Status: se.Code, Message: msg}
	case errors.Is(err, common.ErrSerialization):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
}
