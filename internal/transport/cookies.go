package transport

import (
	"net/http"

	"github.com/atelierdoces/backoffice/internal/domain/auth"
)

// Cookie names shared with the front end.
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// SignInPath is the front-end page unauthenticated users land on.
const SignInPath = "/sign-in"

// setSessionCookies installs a token pair. The access token is readable
// by client script and short-lived; the refresh token is HTTP-only and
// longer-lived.
func setSessionCookies(w http.ResponseWriter, pair *auth.TokenPair, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    pair.AccessToken,
		Path:     "/",
		MaxAge:   int(pair.AccessExpiresIn.Seconds()),
		Secure:   secure,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookie,
		Value:    pair.RefreshToken,
		Path:     "/",
		Expires:  pair.RefreshExpiresAt,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookies destroys both token cookies.
func clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:   name,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
	}
}

// safeRedirectTarget keeps redirects on-site. Anything that is not a
// plain absolute path falls back to "/".
func safeRedirectTarget(raw string) string {
	if raw == "" || raw[0] != '/' {
		return "/"
	}
	if len(raw) > 1 && (raw[1] == '/' || raw[1] == '\\') {
		return "/"
	}
	return raw
}
