package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cse-motors/inventory-system/internal/api/handler"
	"github.com/cse-motors/inventory-system/internal/api/middleware"
	"github.com/cse-motors/inventory-system/internal/core/domain"
)

// errorPage is the payload behind the error template.
type errorPage struct {
	Status  int
	Message string
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the shared HTML error page.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		renderErr := c.Render(code, "error", handler.Page{
			Title:    http.StatusText(code),
			Identity: middleware.IdentityFrom(c),
			Data:     errorPage{Status: code, Message: msg},
		})
		if renderErr != nil {
			log.Error().Err(renderErr).Msg("error page render failed")
			_ = c.String(code, msg)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrVehicleNotFound):
		return http.StatusNotFound, "Sorry, we could not find that vehicle."
	case errors.Is(err, domain.ErrClassificationNotFound):
		return http.StatusNotFound, "Sorry, we could not find that classification."
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "Sorry, we could not find that account."
	case errors.Is(err, domain.ErrReviewNotFound):
		return http.StatusNotFound, "Sorry, we could not find that review."
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "You do not have permission to do that."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password."
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "That email address is already in use."
	case errors.Is(err, domain.ErrClassificationExists):
		return http.StatusConflict, "That classification already exists."
	case errors.Is(err, domain.ErrDuplicateReview):
		return http.StatusConflict, "You have already reviewed this vehicle."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Oh no! There was a crash. Maybe try a different route?"
}
