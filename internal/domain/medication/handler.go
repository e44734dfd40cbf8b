package medication

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
	api.GET("/prescriptions", h.List)
	api.POST("/prescriptions", h.Create)
	api.POST("/prescriptions/:id/refill", h.Refill)
}

func (h *Handler) List(c echo.Context) error {
	ctx := c.Request().Context()
	out, err := h.svc.Prescriptions(ctx, auth.ViewerFromContext(ctx))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) Create(c echo.Context) error {
	var p Prescription
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create prescription")
	}
	created, err := h.svc.CreatePrescription(c.Request().Context(), &p)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create prescription")
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) Refill(c echo.Context) error {
	msg := h.svc.RequestRefill(c.Request().Context(), c.Param("id"))
	return c.JSON(http.StatusOK, map[string]string{"message": msg})
}
