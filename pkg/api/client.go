// Package api is a typed client for the pricing backend. Every call carries a bearer
// token obtained through the backend login exchange; a call rejected with 401 triggers
// exactly one re-login and replay before the fault is returned.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// ErrNoToken is returned when the login exchange succeeds without an access token
var ErrNoToken = errors.New("login response has no access token")

// Opts configures a Client
type Opts struct {
	BaseURL    string        // backend root, /auth and /pricing paths are appended
	Email      string        // login email
	Password   string        // login password
	Timeout    time.Duration // per request timeout of the default http client
	HTTPClient *http.Client  // optional, overrides Timeout
}

// Client talks to the pricing backend
type Client struct {
	baseURL    string
	email      string
	password   string
	httpClient *http.Client
	session    *Session
	logins     singleflight.Group
}

// New makes a client sharing the given session. A nil session keeps the token in memory.
func New(opts Opts, session *Session) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	if session == nil {
		session = NewSession(nil)
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		email:      opts.Email,
		password:   opts.Password,
		httpClient: httpClient,
		session:    session,
	}
}

// Login exchanges the configured credentials for a bearer token and stores it in the session
func (c *Client) Login(ctx context.Context) (string, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: c.email, Password: c.password}

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	if err := c.send(ctx, http.MethodPost, "/auth/login", nil, req, &resp, ""); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if resp.AccessToken == "" {
		return "", ErrNoToken
	}

	c.session.Set(ctx, resp.AccessToken)
	log.Printf("[INFO] logged in to pricing backend as %s", c.email)
	return resp.AccessToken, nil
}

// refresh logs in unless another caller already replaced the stale token. Concurrent
// refreshes share one login call.
func (c *Client) refresh(ctx context.Context, stale string) (string, error) {
	token, err, _ := c.logins.Do("login", func() (any, error) {
		if current := c.session.Token(ctx); current != "" && current != stale {
			return current, nil
		}
		return c.Login(ctx)
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

// do runs an authenticated request and decodes the JSON answer into result
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	token := c.session.Token(ctx)
	if token == "" {
		var err error
		if token, err = c.refresh(ctx, ""); err != nil {
			return fmt.Errorf("authenticate: %w", err)
		}
	}

	err := c.send(ctx, method, path, query, body, result, token)
	if !IsUnauthorized(err) {
		return err
	}

	log.Printf("[INFO] %s %s rejected as unauthorized, logging in again", method, path)
	c.session.Invalidate(ctx, token)
	fresh, loginErr := c.refresh(ctx, token)
	if loginErr != nil {
		log.Printf("[WARN] re-login failed: %v", loginErr)
		return err
	}
	return c.send(ctx, method, path, query, body, result, fresh)
}

// send issues one request. An empty token sends no Authorization header.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body, result any, token string) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("make %s %s request: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newError(method, path, resp.StatusCode, data)
		log.Printf("[DEBUG] %s %s failed, request id %s: %v", method, path, req.Header.Get("X-Request-ID"), apiErr)
		return apiErr
	}

	if result == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
