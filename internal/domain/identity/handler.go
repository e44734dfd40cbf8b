package identity

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/neudebri/hms/internal/platform/auth"
)

type Handler struct {
	svc    *Service
	tokens *auth.TokenIssuer
}

func NewHandler(svc *Service, tokens *auth.TokenIssuer) *Handler {
	return &Handler{svc: svc, tokens: tokens}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/auth/demo/:role", h.Demo)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)

	api.GET("/users/patients", h.ListPatients)
	api.GET("/users/doctors", h.ListDoctors)
	api.GET("/users/contacts", h.ListContacts)
	api.GET("/nurses", h.ListNurses)
}

// authResponse pairs the user object with a demo bearer token so clients
// can carry the identity without repeating query params.
type authResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token,omitempty"`
}

func (h *Handler) Demo(c echo.Context) error {
	u, err := h.svc.DemoUser(c.Request().Context(), c.Param("role"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	token, _ := h.tokens.Issue(u.ID, string(u.Role))
	return c.JSON(http.StatusOK, authResponse{User: u, Token: token})
}

func (h *Handler) Login(c echo.Context) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	u, err := h.svc.Login(c.Request().Context(), body.Username, body.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}
	token, _ := h.tokens.Issue(u.ID, string(u.Role))
	return c.JSON(http.StatusOK, authResponse{User: u, Token: token})
}

func (h *Handler) Register(c echo.Context) error {
	var in RegisterInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	u, err := h.svc.Register(c.Request().Context(), in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *Handler) ListPatients(c echo.Context) error {
	users, err := h.svc.Patients(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) ListDoctors(c echo.Context) error {
	users, err := h.svc.Doctors(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) ListContacts(c echo.Context) error {
	ctx := c.Request().Context()
	users, err := h.svc.Contacts(ctx, auth.ViewerFromContext(ctx))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) ListNurses(c echo.Context) error {
	users, err := h.svc.Nurses(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}
