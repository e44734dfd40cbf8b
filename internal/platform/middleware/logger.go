package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/neudebri/hms/internal/platform/auth"
)

// Logger emits one structured line per request. Viewer fields show up only
// on routes behind the viewer-resolution middleware; the request must be
// re-read after the handler runs because that middleware swaps the context.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			rid, _ := c.Get("request_id").(string)

			err := next(c)

			evt := logger.Info()
			if err != nil {
				evt = logger.Error().Err(err)
			}
			if v := auth.ViewerFromContext(c.Request().Context()); v.UserID != "" {
				evt = evt.Str("viewer", v.UserID).Str("viewer_role", v.Role)
			}

			evt.
				Str("request_id", rid).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", c.Response().Status).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP()).
				Msg("request")

			return err
		}
	}
}
