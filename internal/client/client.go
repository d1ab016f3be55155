package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"tableside/internal/domain"
	"tableside/internal/session"
)

// CredentialHeader is the canonical header the stored credential travels
// under. An older client generation used Authorization; the backend's login
// interceptor reads this one, so this one wins.
const CredentialHeader = "token"

// LoginPath is where the client forces navigation after an expired session.
const LoginPath = "/login"

const defaultTimeout = 5 * time.Second

// HTTPClient is the transport under the wrapper. *http.Client satisfies it;
// tests and the dev mock substitute their own.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Notifier surfaces user-visible messages. The client is the only place that
// raises them, so callers handle returned errors silently.
type Notifier interface {
	Error(message string)
}

// Navigator lets the client force a route change on session expiry.
type Navigator interface {
	CurrentPath() string
	Navigate(path string) string
}

// Request is a logical request descriptor; resource modules build these and
// nothing else.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    any       // JSON-encoded when RawBody is nil
	RawBody io.Reader // pre-encoded body, e.g. multipart
	Headers http.Header
}

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	HTTP      HTTPClient
	Sessions  session.Store
	Notifier  Notifier
	Navigator Navigator
	Logger    *zap.SugaredLogger
}

// Client sends logical requests, attaches the session credential, and
// normalizes responses: envelope data on success, one of TransportError,
// AuthExpiredError or ApplicationError otherwise.
type Client struct {
	baseURL   string
	timeout   time.Duration
	http      HTTPClient
	sessions  session.Store
	notifier  Notifier
	navigator Navigator
	log       *zap.SugaredLogger
}

func New(cfg Config) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		timeout:   cfg.Timeout,
		http:      cfg.HTTP,
		sessions:  cfg.Sessions,
		notifier:  cfg.Notifier,
		navigator: cfg.Navigator,
		log:       cfg.Logger,
	}
	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.log == nil {
		c.log = zap.S()
	}
	if c.notifier == nil {
		c.notifier = logNotifier{log: c.log}
	}
	return c
}

// Do performs one request: fire, await, resolve or fail. No retries, no
// caching, no batching.
func (c *Client) Do(ctx context.Context, r Request) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.build(ctx, r)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	c.attachCredential(req)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warnw("request failed", "method", r.Method, "path", r.Path, "err", err)
		c.notifier.Error("Request failed")
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.expireSession()
		return nil, &AuthExpiredError{}
	}

	var env domain.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.notifier.Error("Request failed")
		return nil, &TransportError{Err: err}
	}

	// Some backend versions report expiry inside the envelope instead of the
	// HTTP status line.
	if env.Code != nil && *env.Code == http.StatusUnauthorized {
		c.expireSession()
		return nil, &AuthExpiredError{}
	}

	if env.OK() {
		return env.Data, nil
	}

	msg := env.ErrMessage()
	c.notifier.Error(msg)
	return nil, &ApplicationError{Message: msg}
}

func (c *Client) build(ctx context.Context, r Request) (*http.Request, error) {
	u := c.baseURL + r.Path
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case r.RawBody != nil:
		body = r.RawBody
	case r.Body != nil:
		payload, err := json.Marshal(r.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, u, body)
	if err != nil {
		return nil, err
	}
	for key, values := range r.Headers {
		req.Header[key] = values
	}
	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

// attachCredential adds the stored credential, discarding it first if it is
// not clean ASCII. The request still goes out unauthenticated in that case,
// so a fresh login can succeed and overwrite the corrupted value.
func (c *Client) attachCredential(req *http.Request) {
	cred := c.sessions.Credential()
	if cred == "" {
		return
	}
	if !isASCII(cred) {
		c.sessions.Clear()
		c.log.Warnw("stored credential is not valid ASCII, cleared; sending request unauthenticated",
			"path", req.URL.Path)
		return
	}
	req.Header.Set(CredentialHeader, cred)
}

func (c *Client) expireSession() {
	c.sessions.Clear()
	c.notifier.Error("Login expired, please sign in again")
	if c.navigator != nil && c.navigator.CurrentPath() != LoginPath {
		c.navigator.Navigate(LoginPath)
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// logNotifier is the fallback when no UI notifier is wired in.
type logNotifier struct {
	log *zap.SugaredLogger
}

func (n logNotifier) Error(message string) {
	n.log.Warnw("notification", "message", message)
}
