package context

import "github.com/labstack/echo/v4"

// KeyUserID is the echo.Context key holding the authenticated user id.
const KeyUserID ContextKey = "user_id"

// SetUserID stores the token subject on the request.
func SetUserID(c echo.Context, userID string) {
	c.Set(string(KeyUserID), userID)
}

// GetUserID returns the token subject set by the auth middleware.
func GetUserID(c echo.Context) (string, bool) {
	id, ok := c.Get(string(KeyUserID)).(string)

	return id, ok && id != ""
}
