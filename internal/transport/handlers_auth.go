package transport

import (
	"errors"
	"net/http"

	"github.com/atelierdoces/backoffice/internal/domain/activity"
	"github.com/atelierdoces/backoffice/internal/domain/auth"
)

// handleSignIn verifies credentials, installs session cookies and
// returns the token pair.
func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	u, pair, err := s.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeActionError(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
			return
		}
		s.logError(r, "sign-in failed", err)
		writeActionError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	s.activity.Record(r.Context(), "user", u.ID, activity.ActionSignedIn, u.ID, "signed in")

	setSessionCookies(w, pair, s.secureCookies)
	writeJSON(w, http.StatusOK, map[string]any{
		"user": u,
		"access_token": pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"access_token_expires_in": int(pair.AccessExpiresIn.Seconds()),
		"refresh_token_expires_at": pair.RefreshExpiresAt,
	})
}

// handleRefresh performs one refresh cycle driven by the refresh_token
// cookie, then redirects. Failure never loops back here; it lands on the
// sign-in page with the cookies cleared.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	target := safeRedirectTarget(r.URL.Query().Get("redirect_to"))

	cookie, err := r.Cookie(RefreshTokenCookie)
	if err != nil || cookie.Value == "" {
		clearSessionCookies(w)
		http.Redirect(w, r, SignInPath, http.StatusSeeOther)
		return
	}

	pair, err := s.auth.Refresh(r.Context(), cookie.Value)
	if err != nil {
		if !errors.Is(err, auth.ErrRefreshFailed) {
			s.logError(r, "refresh failed", err)
		}
		clearSessionCookies(w)
		http.Redirect(w, r, SignInPath, http.StatusSeeOther)
		return
	}

	setSessionCookies(w, pair, s.secureCookies)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// handleSignOut revokes the session best-effort, clears both cookies and
// redirects to sign-in. Revocation errors are ignored; the cookies go
// regardless.
func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(RefreshTokenCookie); err == nil && cookie.Value != "" {
		if err := s.auth.SignOut(r.Context(), cookie.Value); err != nil {
			s.logError(r, "sign-out revoke failed", err)
		}
	}

	clearSessionCookies(w)
	http.Redirect(w, r, SignInPath, http.StatusSeeOther)
}

// handleCreateUser lets an admin provision back-office accounts.
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string    `json:"email"`
		Name     string    `json:"name"`
		Password string    `json:"password"`
		Role     auth.Role `json:"role,omitempty"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := s.auth.Register(r.Context(), auth.RegisterRequest{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.activity.Record(r.Context(), "user", u.ID, activity.ActionCreated, s.actorID(r), "user "+u.Email+" created")
	writeJSON(w, http.StatusCreated, map[string]any{"user": u})
}

// handleMe returns the authenticated user's profile for page-level role
// gates.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFromContext(r.Context())
	if !ok {
		writeActionError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"user": map[string]any{
			"id":        u.ID,
			"email":     u.Email,
			"name":      u.Name,
			"user_role": u.Role,
		},
	})
}
