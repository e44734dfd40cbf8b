package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/neudebri/hms/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/dashboard/stats", h.GetStats)
}

func (h *Handler) GetStats(c echo.Context) error {
	ctx := c.Request().Context()
	st, err := h.svc.Stats(ctx, auth.ViewerFromContext(ctx))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, st)
}
