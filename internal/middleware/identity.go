package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// UserIDCookie is the cookie the client echoes back as its identity.
const UserIDCookie = "userId"

// IdentityMiddleware pins every request to the current user.
type IdentityMiddleware struct {
	currentUserID string
}

func NewIdentityMiddleware(currentUserID string) *IdentityMiddleware {
	return &IdentityMiddleware{currentUserID: currentUserID}
}

// EnsureUserCookie stores the effective user id under UserIDKey.
//
// When the userId cookie is missing or differs from the current user, the
// response first clears it and then sets it to the current user id, both
// on Path=/. A matching cookie leaves the response headers untouched.
func (im *IdentityMiddleware) EnsureUserCookie() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(UserIDCookie)
			if err != nil || cookie.Value != im.currentUserID {
				c.SetCookie(&http.Cookie{
					Name:    UserIDCookie,
					Value:   "",
					Path:    "/",
					Expires: time.Unix(0, 0),
					MaxAge:  -1,
				})
				c.SetCookie(&http.Cookie{
					Name:  UserIDCookie,
					Value: im.currentUserID,
					Path:  "/",
				})
			}

			c.Set(UserIDKey, im.currentUserID)

			return next(c)
		}
	}
}
