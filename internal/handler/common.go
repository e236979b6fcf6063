package handler

// common.go holds helpers shared by the handlers in this package.

import (
    "errors"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"
)

var errNoUser = errors.New("no authenticated user in context")

// getUserID extracts the authenticated user's id from the context values
// set by the JWT middleware.  The sub claim arrives as a JSON number
// (float64) but string-encoded subjects are accepted too.
func getUserID(c echo.Context) (uint64, error) {
    switch v := c.Get("user_id").(type) {
    case float64:
        if v > 0 {
            return uint64(v), nil
        }
    case string:
        if n, err := strconv.ParseUint(v, 10, 64); err == nil && n > 0 {
            return n, nil
        }
    case uint64:
        if v > 0 {
            return v, nil
        }
    }
    return 0, errNoUser
}

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (uint64, bool) {
    id, err := strconv.ParseUint(c.Param(name), 10, 64)
    return id, err == nil && id > 0
}

// sessionID resolves the caller's browsing session: the X-Session-ID
// header wins, with a session_id field in the body as the fallback for
// clients that cannot set headers.
func sessionID(c echo.Context, bodySession string) string {
    if v := strings.TrimSpace(c.Request().Header.Get("X-Session-ID")); v != "" {
        return v
    }
    return strings.TrimSpace(bodySession)
}
