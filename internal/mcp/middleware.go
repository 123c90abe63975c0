package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/atelierdoces/backoffice/internal/domain/auth"
)

type contextKey int

const userKey contextKey = iota

// userFromContext extracts the authenticated user from context.
func userFromContext(ctx context.Context) *auth.User {
	u, _ := ctx.Value(userKey).(*auth.User)
	return u
}

// loggingMiddleware records tool calls with the authenticated caller, if any.
func loggingMiddleware(logger *slog.Logger) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if method == "tools/call" {
				caller := "anonymous"
				if u := userFromContext(ctx); u != nil {
					caller = u.Email
				}
				logger.Info("mcp tool call", "caller", caller)
			}
			return next(ctx, method, req)
		}
	}
}

// AccessResolver resolves an access token into a user.
type AccessResolver interface {
	Authenticate(ctx context.Context, accessToken string) (*auth.User, error)
}

// authMiddleware implements bearer token authentication as MCP middleware.
func authMiddleware(resolver AccessResolver) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			// Skip auth for protocol methods
			if method == "initialize" || method == "ping" {
				return next(ctx, method, req)
			}

			extra := req.GetExtra()
			if extra == nil || extra.Header == nil {
				return nil, fmt.Errorf("unauthorized: missing headers")
			}

			header := extra.Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if token == "" {
				return nil, fmt.Errorf("unauthorized: missing bearer token")
			}

			user, err := resolver.Authenticate(ctx, token)
			if err != nil {
				return nil, fmt.Errorf("unauthorized: %w", err)
			}

			ctx = context.WithValue(ctx, userKey, user)
			return next(ctx, method, req)
		}
	}
}
