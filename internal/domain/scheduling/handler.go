package scheduling

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
	api.GET("/appointments", h.List)
	api.GET("/appointments/upcoming", h.ListUpcoming)
	api.GET("/appointments/virtual", h.ListVirtual)
	api.POST("/appointments", h.Create)
	api.PATCH("/appointments/:id/cancel", h.Cancel)
}

func (h *Handler) List(c echo.Context) error {
	ctx := c.Request().Context()
	out, err := h.svc.Appointments(ctx, auth.ViewerFromContext(ctx))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) ListUpcoming(c echo.Context) error {
	ctx := c.Request().Context()
	out, err := h.svc.UpcomingAppointments(ctx, auth.ViewerFromContext(ctx))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) ListVirtual(c echo.Context) error {
	ctx := c.Request().Context()
	out, err := h.svc.VirtualAppointments(ctx, auth.ViewerFromContext(ctx))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) Create(c echo.Context) error {
	var a Appointment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create appointment")
	}
	created, err := h.svc.CreateAppointment(c.Request().Context(), &a)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create appointment")
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) Cancel(c echo.Context) error {
	a, err := h.svc.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Appointment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, a)
}
