package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"shipfront/internal/apperr"
	"shipfront/internal/domain"
	"shipfront/internal/logx"
	"shipfront/internal/session"
)

// Config stores backend client settings.
type Config struct {
	BaseURL string
	// Timeout bounds every request; a hung backend must not hang a view forever.
	Timeout time.Duration
}

// Client issues authenticated requests against one portal's API base path.
type Client struct {
	http         *http.Client
	base         string
	sessions     session.Store
	logger       logx.Logger
	authFailures counter
	// onUnauthorized fires at most once per session; re-armed by BindSession.
	onUnauthorized func()
	invalidated    atomic.Bool
}

// New creates a backend client bound to a session store.
// onUnauthorized (optional) is invoked exactly once when a 401 invalidates
// the session, no matter how many in-flight requests receive one.
func New(cfg Config, sessions session.Store, logger logx.Logger, authFailures counter, onUnauthorized func()) *Client {
	if sessions == nil {
		return nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		http:           &http.Client{Timeout: timeout},
		base:           strings.TrimRight(cfg.BaseURL, "/"),
		sessions:       sessions,
		logger:         logger,
		authFailures:   authFailures,
		onUnauthorized: onUnauthorized,
	}
}

// Result is the parsed outcome of a successful backend call.
type Result struct {
	// NoContent marks a 204 response; Body is empty and must not be decoded.
	NoContent bool
	Body      json.RawMessage
}

// Request performs one API call: attaches the bearer token when a session
// exists, serializes body as JSON on non-GET verbs, and normalizes every
// failure into the apperr taxonomy. All domain operations go through here.
func (c *Client) Request(ctx context.Context, method, endpoint string, body any) (Result, error) {
	var payload io.Reader
	if body != nil && method != http.MethodGet {
		raw, err := json.Marshal(body)
		if err != nil {
			return Result{}, fmt.Errorf("backend: marshal body: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+endpoint, payload)
	if err != nil {
		return Result{}, fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token, ok := c.sessions.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			logx.String("method", method),
			logx.String("endpoint", endpoint),
			logx.Err(err),
		)
		return Result{}, fmt.Errorf("backend: %s %s: %w", method, endpoint, apperr.Network)
	}
	defer resp.Body.Close()

	return c.handleResponse(method, endpoint, resp)
}

func (c *Client) handleResponse(method, endpoint string, resp *http.Response) (Result, error) {
	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidate()
		return Result{}, fmt.Errorf("backend: %s %s: %w", method, endpoint, apperr.Unauthorized)
	}
	if resp.StatusCode == http.StatusNoContent {
		return Result{NoContent: true}, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("backend: read response: %w", apperr.Network)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Result{Body: raw}, nil
	}

	detail := detailFrom(raw)
	class := apperr.Server
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		class = apperr.Validation
	}
	c.logger.Warn("backend request rejected",
		logx.String("method", method),
		logx.String("endpoint", endpoint),
		logx.Int("status", resp.StatusCode),
		logx.String("detail", detail),
	)
	return Result{}, apperr.WithDetail(class, detail)
}

// invalidate clears the session exactly once per session lifetime.
func (c *Client) invalidate() {
	if !c.invalidated.CompareAndSwap(false, true) {
		return
	}
	if err := c.sessions.Clear(); err != nil {
		c.logger.Error("session clear failed", logx.Err(err))
	}
	if c.authFailures != nil {
		c.authFailures.Inc()
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

// BindSession stores a freshly issued token (plus optional profile) and
// re-arms 401 invalidation for the new session.
func (c *Client) BindSession(token string, profile *domain.Profile) error {
	if err := c.sessions.SetSession(token, profile); err != nil {
		return fmt.Errorf("backend: store session: %w", err)
	}
	c.invalidated.Store(false)
	return nil
}

// detailFrom extracts the server-provided detail message, if any.
func detailFrom(raw []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Detail
}

// decode unmarshals a successful result into T. A 204 maps to apperr.NoData
// so callers never attempt a JSON parse on an empty body.
func decode[T any](res Result, err error) (T, error) {
	var v T
	if err != nil {
		return v, err
	}
	if res.NoContent {
		return v, apperr.NoData
	}
	if err := json.Unmarshal(res.Body, &v); err != nil {
		return v, fmt.Errorf("backend: decode response: %w", err)
	}
	return v, nil
}
