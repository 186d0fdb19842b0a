package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cse-motors/inventory-system/internal/api/metrics"
	"github.com/cse-motors/inventory-system/internal/core/domain"
	"github.com/cse-motors/inventory-system/internal/core/ports"
)

// Gate builds the authorization middleware applied in front of protected
// routes. Denials flash a notice and short-circuit before the handler runs.
type Gate struct {
	flash ports.FlashStore
	log   zerolog.Logger
}

func NewGate(flash ports.FlashStore, log zerolog.Logger) *Gate {
	return &Gate{flash: flash, log: log}
}

// RequireRole permits only logged-in identities whose role is in the allowed
// set. Logged-out requests are sent to the login view; a wrong role yields
// the 403 error page. The handler is never invoked on denial.
func (g *Gate) RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFrom(c)
			if !identity.LoggedIn {
				metrics.GateDenialsTotal.WithLabelValues("role").Inc()
				g.pushFlash(c, ports.FlashErrors, "You must be logged in to access that page.")
				return c.Redirect(http.StatusSeeOther, "/account/login")
			}
			if _, ok := allowed[identity.Role]; !ok {
				metrics.GateDenialsTotal.WithLabelValues("role").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// RequireSelf permits a request only when the identity's account id matches
// the named route parameter. Role never bypasses this gate; an Admin editing
// another account is denied like anyone else.
func (g *Gate) RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFrom(c)
			if !identity.LoggedIn {
				metrics.GateDenialsTotal.WithLabelValues("self").Inc()
				g.pushFlash(c, ports.FlashErrors, "You must be logged in to access that page.")
				return c.Redirect(http.StatusSeeOther, "/account/login")
			}
			if c.Param(param) != identity.AccountID {
				metrics.GateDenialsTotal.WithLabelValues("self").Inc()
				g.pushFlash(c, ports.FlashErrors, "You can only update your own account.")
				return c.Redirect(http.StatusSeeOther, "/account/manage")
			}
			return next(c)
		}
	}
}

// pushFlash enqueues a denial notice. A flash failure never blocks the
// denial itself.
func (g *Gate) pushFlash(c echo.Context, category, message string) {
	if err := g.flash.Push(c.Request().Context(), SessionID(c), category, message); err != nil {
		g.log.Warn().Err(err).Msg("gate flash push failed")
	}
}
