package finance

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service

	defaultPatient string
}

func NewHandler(svc *Service, defaultPatient string) *Handler {
	return &Handler{svc: svc, defaultPatient: defaultPatient}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/finance/billing", h.ListBilling)
	api.POST("/finance/billing", h.CreateBilling)
	api.GET("/finance/insurances", h.ListInsurances)
	api.POST("/finance/payments", h.CreatePayment)
}

func (h *Handler) ListBilling(c echo.Context) error {
	patientID := c.QueryParam("patientId")
	if patientID == "" {
		patientID = h.defaultPatient
	}
	out, err := h.svc.BillingForPatient(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateBilling(c echo.Context) error {
	var b BillingRecord
	if err := c.Bind(&b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create billing record")
	}
	created, err := h.svc.CreateBilling(c.Request().Context(), &b)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create billing record")
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListInsurances(c echo.Context) error {
	out, err := h.svc.InsuranceProviders(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreatePayment(c echo.Context) error {
	var p Payment
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create payment")
	}
	created, err := h.svc.RecordPayment(c.Request().Context(), &p)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create payment")
	}
	return c.JSON(http.StatusCreated, created)
}
