package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/admindesk/user-service/internal/core/domain"
)

func TestHTTPErrorHandler_DomainMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
		body string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, `{"error":"invalid credentials"}`},
		{domain.ErrInvalidToken, http.StatusUnauthorized, `{"error":"invalid token"}`},
		{domain.ErrForbidden, http.StatusForbidden, `{"error":"forbidden"}`},
		{domain.ErrUserNotFound, http.StatusNotFound, `{"error":"user not found"}`},
		{domain.ErrEmailTaken, http.StatusConflict, `{"error":"email already in use"}`},
		{echo.NewHTTPError(http.StatusBadRequest, "name is required"), http.StatusBadRequest, `{"error":"name is required"}`},
	}

	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if got := rec.Body.String(); got != tc.body+"\n" {
			t.Fatalf("%v: expected body %s, got %s", tc.err, tc.body, got)
		}
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(fmt.Errorf("read store: %w", errors.New("disk on fire")), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if rec.Body.String() != `{"error":"internal server error"}`+"\n" {
		t.Fatalf("internal detail leaked: %s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(fmt.Errorf("update user: %w", domain.ErrEmailTaken), c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected wrapped sentinel to map to 409, got %d", rec.Code)
	}
}
