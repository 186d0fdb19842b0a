package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cse-motors/inventory-system/internal/core/domain"
	"github.com/cse-motors/inventory-system/internal/core/ports"
)

// TokenCookieName is the cookie carrying the signed session token.
const TokenCookieName = "jwt"

const (
	tokenCookieMaxAge = 24 * time.Hour
	identityCtxKey    = "identity"
)

// Identity derives the per-request identity context from the token cookie.
// Absence of a cookie yields a logged-out identity; a present but
// invalid/expired token additionally instructs the client to discard it.
// Verification failure never yields partial claims.
func Identity(tokens ports.TokenService, secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(TokenCookieName)
			if err != nil || cookie.Value == "" {
				c.Set(identityCtxKey, domain.Identity{})
				return next(c)
			}

			claims, err := tokens.Verify(cookie.Value)
			if err != nil || !domain.ValidRole(claims.Role) {
				ClearTokenCookie(c, secure)
				c.Set(identityCtxKey, domain.Identity{})
				return next(c)
			}

			c.Set(identityCtxKey, domain.Identity{
				LoggedIn:  true,
				AccountID: claims.AccountID,
				FirstName: claims.FirstName,
				Role:      claims.Role,
			})
			return next(c)
		}
	}
}

// IdentityFrom returns the identity context set by the Identity middleware.
// A request that never passed through the middleware is logged out.
func IdentityFrom(c echo.Context) domain.Identity {
	identity, _ := c.Get(identityCtxKey).(domain.Identity)
	return identity
}

// SetTokenCookie issues the session token cookie to the client.
func SetTokenCookie(c echo.Context, token string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(tokenCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearTokenCookie instructs the client to discard the session token.
func ClearTokenCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
