package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vipmudancas/mirante/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrMissingFields, http.StatusBadRequest, "Campos obrigatórios ausentes"},
		{domain.ErrPasswordTooLong, http.StatusBadRequest, "Senha deve ter no máximo 72 bytes"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Credenciais inválidas"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "Token inválido ou expirado"},
		{domain.ErrTokenExpired, http.StatusUnauthorized, "Token inválido ou expirado"},
		{domain.ErrForbidden, http.StatusForbidden, "Acesso negado"},
		{domain.ErrUserNotFound, http.StatusNotFound, "Usuário não encontrado"},
		{fmt.Errorf("create user: %w", domain.ErrUserExists), http.StatusConflict, "Usuário já existe"},
		{echo.NewHTTPError(http.StatusBadRequest, "Corpo da requisição inválido"), http.StatusBadRequest, "Corpo da requisição inválido"},
	}

	for _, tc := range cases {
		t.Run(tc.msg, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Error != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, resp.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsLoggedNotLeaked(t *testing.T) {
	var logs bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/chat", nil), rec)

	NewHTTPErrorHandler(zerolog.New(&logs))(errors.New("mongo: connection reset"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "mongo") {
		t.Fatalf("internal detail leaked: %s", rec.Body.String())
	}
	if !strings.Contains(logs.String(), "connection reset") {
		t.Fatalf("expected cause to be logged, got %q", logs.String())
	}
}
