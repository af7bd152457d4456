package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vipmudancas/mirante/internal/api/metrics"
	"github.com/vipmudancas/mirante/internal/api/middleware"
	"github.com/vipmudancas/mirante/internal/core/domain"
	"github.com/vipmudancas/mirante/internal/core/ports"
)

const (
	msgInvalidPayload        = "Corpo da requisição inválido"
	msgLoginFieldsRequired   = "Email e senha são obrigatórios"
	msgRegisterFieldsMissing = "Email, senha e nome são obrigatórios"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("bad_request").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidPayload)
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("bad_request").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, msgLoginFieldsRequired)
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			metrics.LoginAttemptsTotal.WithLabelValues("bad_request").Inc()
			return echo.NewHTTPError(http.StatusBadRequest, msgLoginFieldsRequired)
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		}
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Message: "Login realizado com sucesso",
		Token:   token,
		User:    user.Summary(),
	})
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidPayload)
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgRegisterFieldsMissing)
	}

	id, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			return echo.NewHTTPError(http.StatusBadRequest, msgRegisterFieldsMissing)
		}
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{
		Message: "Usuário criado com sucesso",
		UserID:  id,
	})
}

// Me returns the user the bearer token was issued for.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	token := middleware.BearerToken(strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization)))

	user, err := h.authService.WhoAmI(c.Request().Context(), token)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, meResponse{User: user.Summary()})
}
