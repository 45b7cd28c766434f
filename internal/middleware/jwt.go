package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/task-manager/internal/auth" // token codec for verification
)

// JWTAuth returns an Echo middleware that validates a Bearer token and
// injects the token's subject (the user's email) into the request
// context.  The codec must be the same one used when issuing tokens.
// This middleware should wrap protected routes so that handlers can
// access the authenticated identity via `c.Get("email")`.
func JWTAuth(codec *auth.Codec) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // Read the Authorization header.  A valid header should start
            // with "Bearer " followed by the JWT.  If it doesn't, respond
            // with 401 Unauthorized indicating that authentication is
            // required.
            header := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(header, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimPrefix(header, "Bearer ")

            // The codec returns an empty subject on any verification
            // failure: malformed input, bad signature, wrong algorithm.
            // Expiry is checked separately so an expired-but-genuine
            // token is also rejected here.
            sub := codec.Subject(raw)
            if sub == "" || codec.IsExpired(raw) {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }

            // Store the identity in the context for handlers and
            // downstream middleware (e.g. the rate limiter key builder).
            c.Set("email", sub)
            return next(c)
        }
    }
}
