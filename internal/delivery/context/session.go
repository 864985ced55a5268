package context

import (
	"medreminder/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeySession is the echo.Context key holding the authenticated session.
const KeySession ContextKey = "session"

// SetSession stores the authenticated session in echo.Context.
func SetSession(c echo.Context, session entity.Session) {
	c.Set(string(KeySession), session)
}

// GetSession extracts the authenticated session from echo.Context.
func GetSession(c echo.Context) (entity.Session, bool) {
	session, ok := c.Get(string(KeySession)).(entity.Session)

	return session, ok
}
