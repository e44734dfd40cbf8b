package clinical

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service

	// defaultPatient is the patient the chart routes fall back to when no
	// patientId query param is supplied.
	defaultPatient string
}

func NewHandler(svc *Service, defaultPatient string) *Handler {
	return &Handler{svc: svc, defaultPatient: defaultPatient}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/health-records", h.ListHealthRecords)
	api.POST("/health-records", h.CreateHealthRecord)
	api.GET("/vital-signs", h.ListVitalSigns)
	api.POST("/vital-signs", h.CreateVitalSigns)
	api.GET("/lab-results", h.ListLabResults)
	api.POST("/lab-results", h.CreateLabResult)
	api.GET("/wound-care", h.ListWoundRecords)
	api.POST("/wound-care", h.CreateWoundRecord)
}

func (h *Handler) patientID(c echo.Context) string {
	if id := c.QueryParam("patientId"); id != "" {
		return id
	}
	return h.defaultPatient
}

func (h *Handler) ListHealthRecords(c echo.Context) error {
	out, err := h.svc.HealthRecords(c.Request().Context(), h.patientID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateHealthRecord(c echo.Context) error {
	var r HealthRecord
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create health record")
	}
	created, err := h.svc.CreateHealthRecord(c.Request().Context(), &r)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create health record")
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListVitalSigns(c echo.Context) error {
	out, err := h.svc.VitalSigns(c.Request().Context(), h.patientID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateVitalSigns(c echo.Context) error {
	var v VitalSigns
	if err := c.Bind(&v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create vital signs")
	}
	created, err := h.svc.CreateVitalSigns(c.Request().Context(), &v)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create vital signs")
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListLabResults(c echo.Context) error {
	out, err := h.svc.LabResults(c.Request().Context(), h.patientID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateLabResult(c echo.Context) error {
	var r LabResult
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create lab result")
	}
	created, err := h.svc.CreateLabResult(c.Request().Context(), &r)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create lab result")
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListWoundRecords(c echo.Context) error {
	out, err := h.svc.WoundRecords(c.Request().Context(), h.patientID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateWoundRecord(c echo.Context) error {
	var w WoundRecord
	if err := c.Bind(&w); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create wound record")
	}
	created, err := h.svc.CreateWoundRecord(c.Request().Context(), &w)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create wound record")
	}
	return c.JSON(http.StatusCreated, created)
}
