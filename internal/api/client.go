// internal/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"eventflow-client/internal/pkg/session"

	"go.uber.org/zap"
)

// Client wraps outbound calls to the event backend: base URL, JSON
// content negotiation, bearer token attachment when a session exists,
// and a fixed request timeout. It never retries and never mutates the
// session store.
type Client struct {
	httpClient *http.Client
	baseURL    string
	sessions   session.Store
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, sessions session.Store, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		sessions:   sessions,
		logger:     logger,
	}
}

// Do issues one request and classifies the result. body, when non-nil,
// is marshalled as JSON.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}) Outcome {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			c.logger.Error("request body marshal failed",
				zap.String("path", path),
				zap.Error(err),
			)
			return Outcome{Kind: KindMalformed}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return Outcome{Kind: KindNetworkError}
	}

	req.Header.Set("Content-Type", "application/json")
	if s := c.sessions.Load(); s.LoggedIn() {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return Classify(nil, nil, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Classify(nil, nil, err)
	}

	out := Classify(resp, respBody, nil)
	c.logger.Debug("request classified",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", out.Status),
		zap.String("outcome", out.Kind.String()),
	)
	return out
}

func (c *Client) Get(ctx context.Context, path string) Outcome {
	return c.Do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body interface{}) Outcome {
	return c.Do(ctx, http.MethodPost, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) Outcome {
	return c.Do(ctx, http.MethodDelete, path, nil)
}
