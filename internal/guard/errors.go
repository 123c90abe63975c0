package guard

import "errors"

var (
	// ErrSessionExpired indicates the access token was rejected and the
	// caller must wait out the refresh cycle (browser) or redirect
	// (server rendering).
	ErrSessionExpired = errors.New("session expired")
	// ErrRefreshFailed indicates the refresh call itself was rejected.
	// Not recoverable; the session is gone.
	ErrRefreshFailed = errors.New("refresh failed")
)

// RedirectError is a navigation signal, not a failure. Callers that
// receive one must perform the redirect rather than render an error.
type RedirectError struct {
	Location string
}

func (e *RedirectError) Error() string {
	return "redirect to " + e.Location
}

// AsRedirect unwraps a RedirectError if err carries one.
func AsRedirect(err error) (*RedirectError, bool) {
	var redir *RedirectError
	if errors.As(err, &redir) {
		return redir, true
	}
	return nil, false
}
