package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yaxhxv/todo-list-heyHomies/internal/api/middleware"
)

// ctxUserID extracts the user ID injected by the Auth middleware and
// performs a fast-fail check before any service call: a missing ID means the
// middleware did not run or the token carried no identity.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
