package guard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

const (
	// RefreshPath is the server endpoint that rotates the session.
	// Requests to it never carry a bearer header and never trigger a
	// second refresh, otherwise a dead session would loop forever.
	RefreshPath = "/api/auth/refresh"
	// SignInPath is where unauthenticated visitors are sent.
	SignInPath = "/sign-in"

	profilePath = "/api/auth/me"
)

// Client wraps an http.Client with session handling: it attaches the
// bearer token from the store, and on a 401 hands off to the runtime
// context instead of surfacing the raw response.
type Client struct {
	http    *http.Client
	base    *url.URL
	store   SessionStore
	runtime RuntimeContext
	logger  *slog.Logger
}

func NewClient(httpClient *http.Client, base *url.URL, store SessionStore, runtime RuntimeContext, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		http:    httpClient,
		base:    base,
		store:   store,
		runtime: runtime,
		logger:  logger,
	}
}

// Do executes the request with the session attached. A 401 from the
// refresh endpoint is terminal (ErrRefreshFailed); a 401 from any
// other endpoint is delegated to the runtime context and comes back
// as ErrSessionExpired.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	refreshing := c.isRefreshCall(req.URL)
	if !refreshing {
		if pair, ok := c.store.Read(); ok && pair.AccessToken != "" {
			req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if refreshing {
		c.log("refresh endpoint rejected the session")
		return nil, ErrRefreshFailed
	}
	return nil, c.runtime.OnSessionExpired(c.refreshURL(req.URL))
}

// Get is a convenience wrapper over Do for the common case.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolve(path), nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

func (c *Client) isRefreshCall(u *url.URL) bool {
	return strings.TrimSuffix(u.Path, "/") == RefreshPath
}

// refreshURL builds the refresh call with the interrupted request as
// the return target, so the server can send the page back where the
// user actually was.
func (c *Client) refreshURL(current *url.URL) string {
	target := current.Path
	if current.RawQuery != "" {
		target += "?" + current.RawQuery
	}
	return c.resolve(RefreshPath) + "?redirect_to=" + url.QueryEscape(target)
}

func (c *Client) resolve(path string) string {
	ref := &url.URL{Path: path}
	return c.base.ResolveReference(ref).String()
}

func (c *Client) log(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

// Profile is the signed-in user as reported by the profile endpoint.
type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"user_role"`
}

// CheckAuthentication decides what a page load should do before
// rendering anything. It returns the profile when the session is
// usable, a RedirectError pointing at the refresh endpoint or the
// sign-in page when it is not, and passes through anything else
// (network failures, server errors) untouched.
func (c *Client) CheckAuthentication(ctx context.Context, currentPath string) (*Profile, error) {
	pair, _ := c.store.Read()

	if pair.AccessToken == "" {
		return nil, c.recoverOrSignIn(pair, currentPath)
	}

	profile, err := c.fetchProfile(ctx)
	if err == nil {
		return profile, nil
	}
	if isUnauthorized(err) {
		// The token was present but the server no longer accepts it.
		// Same decision as having no access token at all.
		pair, _ = c.store.Read()
		return nil, c.recoverOrSignIn(pair, currentPath)
	}
	return nil, err
}

func (c *Client) recoverOrSignIn(pair TokenPair, currentPath string) error {
	if pair.RefreshToken != "" {
		return &RedirectError{Location: RefreshPath + "?redirect_to=" + url.QueryEscape(currentPath)}
	}
	return &RedirectError{Location: SignInPath}
}

func (c *Client) fetchProfile(ctx context.Context) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolve(profilePath), nil)
	if err != nil {
		return nil, err
	}
	pair, _ := c.store.Read()
	if pair.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		io.Copy(io.Discard, resp.Body)
		return nil, ErrSessionExpired
	case resp.StatusCode != http.StatusOK:
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetching profile: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		User Profile `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	return &body.User, nil
}

func isUnauthorized(err error) bool {
	return errors.Is(err, ErrSessionExpired)
}
