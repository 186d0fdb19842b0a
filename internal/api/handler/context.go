package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cse-motors/inventory-system/internal/api/middleware"
	"github.com/cse-motors/inventory-system/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Identity middleware and
// performs a fast-fail check before any service call: the identity must be
// logged in, which proves the gate in front of the handler actually ran.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity := middleware.IdentityFrom(c)
	if !identity.LoggedIn {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return identity, nil
}
