package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for splitting the Authorization header

    "github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
    "github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// signed with HS256 and the given secret.  On success it stores the token's
// subject under "user_id" and its role claim under "role" in the request
// context, so protected handlers can read the authenticated identity with
// c.Get without re-parsing the token.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // Expect an "Authorization: Bearer <token>" header.  Anything
            // else is treated as an unauthenticated request.
            scheme, raw, found := strings.Cut(c.Request().Header.Get("Authorization"), " ")
            if !found || scheme != "Bearer" || raw == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }

            // Parse and verify the token.  The key callback also pins the
            // signing algorithm so a token signed with a different method
            // is rejected even if its signature would otherwise check out.
            claims := jwt.MapClaims{}
            tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
                if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
                    return nil, echo.ErrUnauthorized
                }
                return []byte(secret), nil
            })
            if err != nil || !tok.Valid {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }

            // Expose the identity claims to handlers and later middleware.
            // Type assertions are left to the consumers.
            c.Set("user_id", claims["sub"])
            c.Set("role", claims["role"])
            return next(c)
        }
    }
}
