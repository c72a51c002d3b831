// Package identityclient wraps the hosted identity service (a GoTrue
// compatible auth API) behind the four operations the application needs:
// register, authenticate, deauthenticate and current-identity lookup.
//
// When the service credentials are absent the client degrades to a mock mode
// that reports a fixed configuration error for every auth operation instead
// of crashing, matching the behavior the product shipped with.
package identityclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sync"

	"hooklabe/cmd/api/httpclient"
)

// ErrNotConfigured is the fixed error every auth operation returns in mock
// mode.
var ErrNotConfigured = errors.New("identity service credentials are not configured in environment variables")

// Identity is the handle for an authenticated user as reported by the hosted
// service.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session couples an identity with the hosted service's access token.
type Session struct {
	Identity    Identity `json:"identity"`
	AccessToken string   `json:"access_token"`
}

// SessionListener observes session changes. A nil session means signed out.
type SessionListener func(*Session)

// Client talks to the hosted identity service. The zero credentials case is
// represented by mock=true.
type Client struct {
	base    *httpclient.BaseClient
	anonKey string
	mock    bool

	mu        sync.Mutex
	listeners map[int]SessionListener
	nextID    int
}

// NewFromEnv reads IDENTITY_SERVICE_URL and IDENTITY_SERVICE_KEY. Missing or
// blank values produce a mock-mode client rather than an error.
func NewFromEnv() *Client {
	baseURL := os.Getenv("IDENTITY_SERVICE_URL")
	anonKey := os.Getenv("IDENTITY_SERVICE_KEY")
	return New(baseURL, anonKey)
}

func New(baseURL, anonKey string) *Client {
	c := &Client{
		anonKey:   anonKey,
		listeners: map[int]SessionListener{},
	}
	if baseURL == "" || anonKey == "" {
		c.mock = true
		return c
	}
	c.base = httpclient.NewBaseClient(baseURL)
	return c
}

// Mock reports whether the client is running without credentials.
func (c *Client) Mock() bool { return c.mock }

// Subscribe registers a listener invoked on every session change (sign-in,
// sign-out). The returned function cancels the subscription and is safe to
// call more than once.
func (c *Client) Subscribe(fn SessionListener) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

func (c *Client) notify(s *Session) {
	c.mu.Lock()
	fns := make([]SessionListener, 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

type tokenResponse struct {
	AccessToken string   `json:"access_token"`
	User        Identity `json:"user"`
}

type errorResponse struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

func (e errorResponse) text() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.ErrorDescription != "":
		return e.ErrorDescription
	case e.Message != "":
		return e.Message
	}
	return ""
}

func (c *Client) post(ctx context.Context, relPath string, query url.Values, payload any, bearer string) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}
	req, err := c.base.NewRequest(ctx, http.MethodPost, relPath, query, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	return c.base.Do(req)
}

func decodeError(resp *http.Response) error {
	defer resp.Body.Close()
	var e errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&e); err == nil {
		if text := e.text(); text != "" {
			return errors.New(text)
		}
	}
	return fmt.Errorf("identity service returned status %d", resp.StatusCode)
}

// Register creates a new account. It returns either a session or a textual
// error, never both. Hosted setups with email confirmation enabled return a
// session without an access token; the caller treats that as "check your
// email".
func (c *Client) Register(ctx context.Context, email, password string) (*Session, error) {
	if c.mock {
		return nil, ErrNotConfigured
	}

	resp, err := c.post(ctx, "/auth/v1/signup", nil, map[string]string{
		"email":    email,
		"password": password,
	}, "")
	if err != nil {
		return nil, fmt.Errorf("an error occurred during sign up: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}
	defer resp.Body.Close()

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("an error occurred during sign up: %w", err)
	}
	// Signup responses either embed the user under "user" (autoconfirm) or
	// are the bare user object (confirmation pending).
	if tr.User.ID == "" {
		return nil, errors.New("please check your email to confirm your account")
	}

	session := &Session{Identity: tr.User, AccessToken: tr.AccessToken}
	if session.AccessToken != "" {
		c.notify(session)
	}
	return session, nil
}

// Authenticate performs a password grant sign-in.
func (c *Client) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	if c.mock {
		return nil, ErrNotConfigured
	}

	query := url.Values{"grant_type": []string{"password"}}
	resp, err := c.post(ctx, "/auth/v1/token", query, map[string]string{
		"email":    email,
		"password": password,
	}, "")
	if err != nil {
		return nil, fmt.Errorf("an error occurred during login: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}
	defer resp.Body.Close()

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("an error occurred during login: %w", err)
	}
	if tr.User.ID == "" || tr.AccessToken == "" {
		return nil, errors.New("an error occurred during login")
	}

	session := &Session{Identity: tr.User, AccessToken: tr.AccessToken}
	c.notify(session)
	return session, nil
}

// Deauthenticate revokes the hosted session. Mock mode succeeds silently,
// matching the original's mock client.
func (c *Client) Deauthenticate(ctx context.Context, accessToken string) error {
	if c.mock {
		c.notify(nil)
		return nil
	}

	resp, err := c.post(ctx, "/auth/v1/logout", nil, nil, accessToken)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}
	c.notify(nil)
	return nil
}

// CurrentIdentity resolves the identity behind an access token. Every fault
// is swallowed as "no identity": the application fails open to the logged-out
// state instead of surfacing identity-service hiccups.
func (c *Client) CurrentIdentity(ctx context.Context, accessToken string) *Identity {
	if c.mock || accessToken == "" {
		return nil
	}

	req, err := c.base.NewRequest(ctx, http.MethodGet, "/auth/v1/user", nil, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.base.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil || identity.ID == "" {
		return nil
	}
	return &identity
}
