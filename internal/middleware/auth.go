package middleware

import (
	"net/http"
	"net/url"
	"shop-admin/internal/auth"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// AuthMiddleware resolves the session cookie into an identity on the request
// context. A missing or invalid cookie leaves the request anonymous.
func AuthMiddleware(codec *auth.SessionCodec, cookieName string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			identity, err := codec.Parse(cookie.Value)
			if err != nil {
				log.Debug().Err(err).Str("path", c.Request().URL.Path).Msg("ignoring session cookie")
				return next(c)
			}

			c.SetRequest(c.Request().WithContext(auth.WithIdentity(c.Request().Context(), identity)))
			return next(c)
		}
	}
}

// RequireAdmin lets the request through only when the session email is on
// the allow-list. Everyone else is sent to the login page with the route
// path as callback. The original query string is not carried over.
func RequireAdmin(admins *auth.AllowList, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := auth.IdentityFromContext(c.Request().Context())
			if identity != nil && admins.Contains(identity.Email) {
				return next(c)
			}

			return c.Redirect(http.StatusFound, LoginRedirectURL(loginPath, c.Path()))
		}
	}
}

// LoginRedirectURL builds "<loginPath>?callbackUrl=<callback>", escaping the
// callback only where the path needs it.
func LoginRedirectURL(loginPath, callback string) string {
	return loginPath + "?callbackUrl=" + (&url.URL{Path: callback}).EscapedPath()
}
