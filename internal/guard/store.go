package guard

import (
	"net/http"
	"net/url"
	"sync"
	"time"
)

// TokenPair is the client-side view of a session. Either field may be
// empty; an empty AccessToken with a present RefreshToken means the
// access token expired out from under us.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// SessionStore abstracts where tokens live. Browser-shaped runtimes
// back this with the cookie jar; tests use MemoryStore.
type SessionStore interface {
	Read() (TokenPair, bool)
	Write(pair TokenPair) error
	Clear() error
}

// MemoryStore is a mutex-guarded in-process SessionStore.
type MemoryStore struct {
	mu   sync.Mutex
	pair TokenPair
	set  bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Read() (TokenPair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pair, s.set
}

func (s *MemoryStore) Write(pair TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = pair
	s.set = true
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = TokenPair{}
	s.set = false
	return nil
}

const (
	accessCookieName  = "access_token"
	refreshCookieName = "refresh_token"
)

// CookieStore reads and writes the session cookies through an
// http.CookieJar scoped to the service base URL. The jar is normally
// the one wired into the http.Client, so cookies set by the server
// during sign-in and refresh show up here without extra plumbing.
type CookieStore struct {
	jar  http.CookieJar
	base *url.URL
}

func NewCookieStore(jar http.CookieJar, base *url.URL) *CookieStore {
	return &CookieStore{jar: jar, base: base}
}

func (s *CookieStore) Read() (TokenPair, bool) {
	var pair TokenPair
	for _, c := range s.jar.Cookies(s.base) {
		switch c.Name {
		case accessCookieName:
			pair.AccessToken = c.Value
		case refreshCookieName:
			pair.RefreshToken = c.Value
		}
	}
	return pair, pair.AccessToken != "" || pair.RefreshToken != ""
}

func (s *CookieStore) Write(pair TokenPair) error {
	s.jar.SetCookies(s.base, []*http.Cookie{
		{Name: accessCookieName, Value: pair.AccessToken, Path: "/"},
		{Name: refreshCookieName, Value: pair.RefreshToken, Path: "/"},
	})
	return nil
}

func (s *CookieStore) Clear() error {
	expired := time.Unix(0, 0)
	s.jar.SetCookies(s.base, []*http.Cookie{
		{Name: accessCookieName, Value: "", Path: "/", Expires: expired, MaxAge: -1},
		{Name: refreshCookieName, Value: "", Path: "/", Expires: expired, MaxAge: -1},
	})
	return nil
}
