package hr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/hr/employees", h.ListEmployees)
	api.GET("/hr/employees/:id", h.GetEmployee)
	api.POST("/hr/employees", h.CreateEmployee)
	api.PATCH("/hr/employees/:id", h.UpdateEmployee)

	api.GET("/hr/attendance", h.ListAttendance)
	api.POST("/hr/attendance", h.CreateAttendance)

	api.GET("/hr/leaves", h.ListLeaves)
	api.POST("/hr/leaves", h.CreateLeave)
	api.PATCH("/hr/leaves/:id/approve", h.ApproveLeave)

	api.GET("/hr/payroll", h.ListPayroll)
	api.POST("/hr/payroll", h.CreatePayroll)

	api.GET("/hr/performance-reviews", h.ListReviews)
	api.POST("/hr/performance-reviews", h.CreateReview)

	api.GET("/hr/shifts", h.ListShifts)
	api.POST("/hr/shifts", h.CreateShift)

	api.GET("/hr/certifications", h.ListCertifications)
	api.POST("/hr/certifications", h.CreateCertification)

	api.GET("/hr/assets", h.ListAssets)
	api.POST("/hr/assets", h.CreateAsset)

	api.GET("/hr/stats", h.GetStats)
}

func (h *Handler) ListEmployees(c echo.Context) error {
	out, err := h.svc.Employees(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) GetEmployee(c echo.Context) error {
	e, err := h.svc.Employee(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Employee not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, e)
}

func (h *Handler) CreateEmployee(c echo.Context) error {
	var e EmployeeRecord
	if err := c.Bind(&e); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create employee record")
	}
	created, err := h.svc.CreateEmployee(c.Request().Context(), &e)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create employee record")
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateEmployee(c echo.Context) error {
	var u EmployeeUpdate
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to update employee")
	}
	e, err := h.svc.UpdateEmployee(c.Request().Context(), c.Param("id"), u)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to update employee")
	}
	return c.JSON(http.StatusOK, e)
}

func (h *Handler) ListAttendance(c echo.Context) error {
	out, err := h.svc.Attendance(c.Request().Context(), c.QueryParam("employeeId"), c.QueryParam("month"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateAttendance(c echo.Context) error {
	var a AttendanceRecord
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create attendance record")
	}
	created, err := h.svc.CreateAttendance(c.Request().Context(), &a)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create attendance record")
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListLeaves(c echo.Context) error {
	out, err := h.svc.Leaves(c.Request().Context(), c.QueryParam("employeeId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateLeave(c echo.Context) error {
	var l LeaveRequest
	if err := c.Bind(&l); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create leave request")
	}
	created, err := h.svc.CreateLeave(c.Request().Context(), &l)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create leave request")
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) ApproveLeave(c echo.Context) error {
	var body struct {
		ApprovedBy string `json:"approvedBy"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to approve leave request")
	}
	l, err := h.svc.ApproveLeave(c.Request().Context(), c.Param("id"), body.ApprovedBy)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to approve leave request")
	}
	return c.JSON(http.StatusOK, l)
}

func (h *Handler) ListPayroll(c echo.Context) error {
	out, err := h.svc.Payroll(c.Request().Context(), c.QueryParam("employeeId"), c.QueryParam("month"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreatePayroll(c echo.Context) error {
	var p PayrollRecord
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create payroll record")
	}
	created, err := h.svc.CreatePayroll(c.Request().Context(), &p)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create payroll record")
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListReviews(c echo.Context) error {
	out, err := h.svc.Reviews(c.Request().Context(), c.QueryParam("employeeId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateReview(c echo.Context) error {
	var r PerformanceReview
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create performance review")
	}
	created, err := h.svc.CreateReview(c.Request().Context(), &r)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create performance review")
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListShifts(c echo.Context) error {
	out, err := h.svc.Shifts(c.Request().Context(), c.QueryParam("employeeId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateShift(c echo.Context) error {
	var s ShiftSchedule
	if err := c.Bind(&s); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create shift schedule")
	}
	created, err := h.svc.CreateShift(c.Request().Context(), &s)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create shift schedule")
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListCertifications(c echo.Context) error {
	out, err := h.svc.Certifications(c.Request().Context(), c.QueryParam("employeeId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateCertification(c echo.Context) error {
	var cert Certification
	if err := c.Bind(&cert); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to add certification")
	}
	created, err := h.svc.CreateCertification(c.Request().Context(), &cert)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to add certification")
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListAssets(c echo.Context) error {
	out, err := h.svc.Assets(c.Request().Context(), c.QueryParam("employeeId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateAsset(c echo.Context) error {
	var a AssetAllocation
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to allocate asset")
	}
	created, err := h.svc.CreateAsset(c.Request().Context(), &a)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to allocate asset")
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetStats(c echo.Context) error {
	st, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, st)
}
