package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/task-manager/internal/auth"       // token codec used by protected routes
	"github.com/iliyamo/task-manager/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/task-manager/internal/middleware" // middleware for JWT authentication and rate limiting
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes.  The credential
// endpoints live under /auth and are additionally wrapped by the Redis
// token-bucket rate limiter (a no-op when Redis is unavailable).  The /me
// endpoint requires a valid bearer token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, codec *auth.Codec, rateLimit echo.MiddlewareFunc) {
	g := e.Group("/auth")
	if rateLimit != nil {
		g.Use(rateLimit)
	}
	// Registration and the full credential lifecycle.  Login applies its
	// own per-email failure throttle inside the handler; forgot-password
	// and reset-password never reveal whether an account exists.
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/forgot-password", a.ForgotPassword)
	g.POST("/reset-password", a.ResetPassword)

	// Protected identity echo endpoint.
	e.GET("/me", a.Me, middleware.JWTAuth(codec))
}

// RegisterTasks registers the task CRUD endpoints.  All task routes sit
// behind the JWT middleware; beyond authentication there is no ownership
// or role enforcement on tasks.
func RegisterTasks(e *echo.Echo, t *handler.TaskHandler, codec *auth.Codec) {
	g := e.Group("/tasks")
	g.Use(middleware.JWTAuth(codec))
	g.GET("", t.List)
	g.GET("/:id", t.Get)
	g.POST("", t.Create)
	g.PUT("/:id", t.Update)
	g.DELETE("/:id", t.Delete)
}
