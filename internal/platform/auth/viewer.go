package auth

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const viewerKey contextKey = "viewer"

// Viewer is the identity a request is evaluated against. Every read that is
// role-scoped resolves through a Viewer; it is a demo convenience, not a
// security boundary.
type Viewer struct {
	UserID string
	Role   string
}

// ResolveViewer returns middleware that attaches a Viewer to the request
// context. Resolution order: explicit userId/role query parameters, then
// claims from a bearer demo token, then the configured default identity.
func ResolveViewer(tokens *TokenIssuer, defaultUserID, defaultRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v := Viewer{
				UserID: c.QueryParam("userId"),
				Role:   c.QueryParam("role"),
			}

			if v.UserID == "" || v.Role == "" {
				if claims, err := bearerClaims(c, tokens); err == nil {
					if v.UserID == "" {
						v.UserID = claims.Subject
					}
					if v.Role == "" {
						v.Role = claims.Role
					}
				}
			}
			if v.UserID == "" {
				v.UserID = defaultUserID
			}
			if v.Role == "" {
				v.Role = defaultRole
			}

			ctx := context.WithValue(c.Request().Context(), viewerKey, v)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func bearerClaims(c echo.Context, tokens *TokenIssuer) (*Claims, error) {
	header := c.Request().Header.Get("Authorization")
	raw := strings.TrimPrefix(header, "Bearer ")
	if tokens == nil || raw == "" || raw == header {
		return nil, ErrInvalidToken
	}
	return tokens.Parse(raw)
}

// ViewerFromContext returns the Viewer resolved for this request. The zero
// Viewer is returned when the middleware did not run (tests hitting handlers
// directly).
func ViewerFromContext(ctx context.Context) Viewer {
	v, _ := ctx.Value(viewerKey).(Viewer)
	return v
}

// WithViewer returns a context carrying the given Viewer. Intended for tests.
func WithViewer(ctx context.Context, v Viewer) context.Context {
	return context.WithValue(ctx, viewerKey, v)
}
