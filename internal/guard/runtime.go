package guard

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// RuntimeContext tells the guard what kind of host it is running in.
// The two variants differ only in how an expired session surfaces:
// a browser page navigates to the refresh endpoint, a server-rendering
// pass raises the error so the caller can issue a redirect response.
type RuntimeContext interface {
	// OnSessionExpired reacts to a rejected access token. refreshURL
	// points at the server refresh endpoint with the return target
	// already encoded. Always returns ErrSessionExpired on the happy
	// path so callers uniformly abandon the in-flight request.
	OnSessionExpired(refreshURL string) error
}

// BrowserContext navigates the page to the refresh endpoint. The
// navigation is coalesced: no matter how many requests hit a 401 at
// the same time, the page moves at most once, and every later 401 is
// abandoned because the page is already on its way out.
type BrowserContext struct {
	navigate func(url string) error

	flight    singleflight.Group
	navigated atomic.Bool
}

func NewBrowserContext(navigate func(url string) error) *BrowserContext {
	return &BrowserContext{navigate: navigate}
}

func (b *BrowserContext) OnSessionExpired(refreshURL string) error {
	_, err, _ := b.flight.Do("navigate", func() (any, error) {
		if !b.navigated.CompareAndSwap(false, true) {
			return nil, nil
		}
		if b.navigate == nil {
			return nil, nil
		}
		return nil, b.navigate(refreshURL)
	})
	if err != nil {
		return fmt.Errorf("navigating to refresh endpoint: %w", err)
	}
	return ErrSessionExpired
}

// ServerContext never navigates. Each request independently reports
// the expired session to its caller.
type ServerContext struct{}

func (ServerContext) OnSessionExpired(string) error {
	return ErrSessionExpired
}
