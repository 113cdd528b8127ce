package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wildquiz/wildquiz-api/internal/core/domain"
	"github.com/wildquiz/wildquiz-api/internal/token"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
		{token.ErrTokenExpired, http.StatusUnauthorized, "invalid token"},
		{token.ErrTokenSignature, http.StatusUnauthorized, "invalid token"},
		{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{domain.ErrAccountNotFound, http.StatusNotFound, "account not found"},
		{domain.ErrQuizNotFound, http.StatusNotFound, "quiz not found"},
		{domain.ErrEmailTaken, http.StatusConflict, "email already registered"},
	}

	for _, tc := range cases {
		code, msg := renderError(t, tc.err)
		if code != tc.code || msg != tc.message {
			t.Errorf("%v: got %d %q, want %d %q", tc.err, code, msg, tc.code, tc.message)
		}
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	code, msg := renderError(t, fmt.Errorf("login: %w", domain.ErrInvalidCredentials))
	if code != http.StatusUnauthorized || msg != "invalid credentials" {
		t.Fatalf("wrapped error not resolved: %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest || msg != "invalid payload" {
		t.Fatalf("echo error not preserved: %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	code, msg := renderError(t, fmt.Errorf("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked to client: %q", msg)
	}
}
