//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cineMatch/business/recommend"
	"cineMatch/pkg/utils"

	"github.com/labstack/echo/v4"
)

func newAdminServer() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler
	e.POST("/reload", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("user_id").(string))
	}, AuthMiddleware(), AdminOnly())
	return e
}

func TestAuthMiddleware(t *testing.T) {
	utils.SetJWTSecret("test-secret")

	admin, err := utils.GenerateJWT("42", "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT() error: %v", err)
	}
	viewer, err := utils.GenerateJWT("7", "viewer", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT() error: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "admin token", header: "Bearer " + admin, wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Token " + admin, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "non admin role", header: "Bearer " + viewer, wantStatus: http.StatusForbidden},
	}

	e := newAdminServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/reload", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestErrorHandler_UnknownRoute(t *testing.T) {
	e := newAdminServer()
	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, `"success":false`) || !strings.Contains(body, "NOT_FOUND") {
		t.Errorf("body %s is not the error envelope", body)
	}
}

func TestTraceID(t *testing.T) {
	e := echo.New()
	e.Use(TraceID())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, recommend.TraceIDFromContext(c.Request().Context()))
	})

	t.Run("reuses caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Body.String() != "abc-123" || rec.Header().Get(HeaderRequestID) != "abc-123" {
			t.Errorf("trace id = %q, header = %q", rec.Body.String(), rec.Header().Get(HeaderRequestID))
		}
	})

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Body.String() == "" || rec.Body.String() != rec.Header().Get(HeaderRequestID) {
			t.Errorf("trace id = %q, header = %q", rec.Body.String(), rec.Header().Get(HeaderRequestID))
		}
	})
}
