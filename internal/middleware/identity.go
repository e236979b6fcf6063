package middleware

// identity.go holds small helpers shared across middleware files.  The
// rate limiter uses userID to key buckets per authenticated user where
// possible, falling back to "guest" for anonymous traffic.

import (
    "fmt"

    "github.com/labstack/echo/v4"
)

// userID returns the authenticated user id stored in context by JWTAuth,
// or "guest" when the request is unauthenticated.  The sub claim decodes
// as a JSON number, so the value is formatted rather than asserted.
func userID(c echo.Context) string {
    v := c.Get("user_id")
    if v == nil {
        return "guest"
    }
    switch t := v.(type) {
    case string:
        if t != "" {
            return t
        }
        return "guest"
    case float64:
        return fmt.Sprintf("%.0f", t)
    default:
        return fmt.Sprint(v)
    }
}
