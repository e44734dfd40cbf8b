package inbox

import (
	"errors"
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
	api.GET("/messages", h.List)
	api.POST("/messages", h.Send)
	api.PATCH("/messages/:id/read", h.MarkRead)
}

func (h *Handler) List(c echo.Context) error {
	ctx := c.Request().Context()
	out, err := h.svc.Messages(ctx, auth.ViewerFromContext(ctx).UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) Send(c echo.Context) error {
	var m Message
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to send message")
	}
	created, err := h.svc.SendMessage(c.Request().Context(), &m)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to send message")
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) MarkRead(c echo.Context) error {
	m, err := h.svc.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Message not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, m)
}
