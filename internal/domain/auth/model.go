package auth

import "time"

// Role gates page-level access in the front end
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// User represents a back-office account
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// TokenPair is what a sign-in or refresh cycle hands back to the client.
// AccessExpiresIn is a duration so the client can set a short-lived
// cookie; RefreshExpiresAt is absolute.
type TokenPair struct {
	AccessToken      string        `json:"access_token"`
	RefreshToken     string        `json:"refresh_token"`
	AccessExpiresIn  time.Duration `json:"access_token_expires_in"`
	RefreshExpiresAt time.Time     `json:"refresh_token_expires_at"`
}

// Session is the server-side record of an issued token pair. Tokens are
// stored hashed; the plaintext exists only in the TokenPair returned to
// the client.
type Session struct {
	ID               string
	UserID           string
	AccessTokenHash  string
	AccessExpiresAt  time.Time
	RefreshTokenHash string
	RefreshExpiresAt time.Time
	CreatedAt        time.Time
}
