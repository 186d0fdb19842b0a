package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cse-motors/inventory-system/internal/api/handler"
	"github.com/cse-motors/inventory-system/internal/core/domain"
)

func newErrorEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	renderer, err := handler.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e.Renderer = renderer
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	return e
}

func serveError(t *testing.T, e *echo.Echo, cause error) *httptest.ResponseRecorder {
	t.Helper()
	e.GET("/boom", func(c echo.Context) error { return cause })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestErrorHandler_VehicleNotFound(t *testing.T) {
	rec := serveError(t, newErrorEcho(t), domain.ErrVehicleNotFound)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "404 Error") {
		t.Fatalf("expected rendered error page, got: %s", rec.Body.String())
	}
}

func TestErrorHandler_Forbidden(t *testing.T) {
	rec := serveError(t, newErrorEcho(t), domain.ErrForbidden)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestErrorHandler_HTTPErrorPassthrough(t *testing.T) {
	rec := serveError(t, newErrorEcho(t), echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid payload") {
		t.Fatalf("expected handler message in page, got: %s", rec.Body.String())
	}
}

func TestErrorHandler_InternalDetailsNotLeaked(t *testing.T) {
	cause := &leakError{}
	rec := serveError(t, newErrorEcho(t), cause)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Fatal("internal error details must not reach the client")
	}
}

type leakError struct{}

func (e *leakError) Error() string { return "dial tcp 10.0.0.3:27017: connection refused" }
