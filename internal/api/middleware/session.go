package middleware

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the opaque session identifier
// that scopes flash-message state. It carries no identity.
const SessionCookieName = "sid"

const (
	sessionCookieMaxAge = 24 * time.Hour
	sessionIDBytes      = 32 // 256 bits of entropy
	sessionCtxKey       = "session_id"
)

// Session ensures every request carries a session identifier, minting a new
// one when the cookie is absent, and exposes it via SessionID.
func Session(secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sid string
			if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				sid = cookie.Value
			} else {
				sid, err = newSessionID()
				if err != nil {
					return err
				}
				c.SetCookie(&http.Cookie{
					Name:     SessionCookieName,
					Value:    sid,
					Path:     "/",
					MaxAge:   int(sessionCookieMaxAge.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(sessionCtxKey, sid)
			return next(c)
		}
	}
}

// SessionID returns the session identifier set by the Session middleware,
// or an empty string when the middleware did not run.
func SessionID(c echo.Context) string {
	sid, _ := c.Get(sessionCtxKey).(string)
	return sid
}

func newSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
