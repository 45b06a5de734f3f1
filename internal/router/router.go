package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/achrafgam07/realnest/internal/handler"
	"github.com/achrafgam07/realnest/internal/metrics"
	"github.com/achrafgam07/realnest/internal/middleware"
)

// Roles allowed to manage listings and view revenue. Tenants only
// browse and book.
var manageRoles = []string{"ADMIN", "AGENT", "OWNER"}
var allRoles = []string{"ADMIN", "AGENT", "OWNER", "TENANT"}

// RegisterRoutes registers routes that carry no business logic: the
// health check used by load balancers and the Prometheus scrape
// endpoint.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", metrics.Handler())
}

// RegisterAuth registers the authentication routes. Login and logout
// live under /v1/auth and need no token; /v1/me requires a valid access
// token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	g.POST("/logout", a.Logout)

	me := e.Group("/v1")
	me.Use(middleware.JWTAuth(jwtSecret))
	me.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated browse endpoints. The
// cache and limiter middlewares are built by the caller so they can be
// pass-throughs when Redis is unavailable.
func RegisterPublic(e *echo.Echo, p *handler.PropertyHandler, cache, limiter echo.MiddlewareFunc) {
	g := e.Group("/v1")
	g.Use(limiter, cache)
	// Browse and search listings; ?query= and ?type= narrow the result.
	g.GET("/properties", p.List)
	// Listing detail for the booking view.
	g.GET("/properties/:id", p.Get)
}

// RegisterDashboard registers the authenticated dashboard endpoints.
// Listing management and revenue are restricted to managing roles;
// bookings are open to every authenticated role.
func RegisterDashboard(e *echo.Echo, p *handler.PropertyHandler, b *handler.BookingHandler, r *handler.RevenueHandler, jwtSecret string) {
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))

	manage := auth.Group("")
	manage.Use(middleware.RequireRole(manageRoles...))
	manage.POST("/properties", p.Create)
	manage.DELETE("/properties/:id", p.Delete)
	manage.GET("/revenue", r.Get)

	booking := auth.Group("")
	booking.Use(middleware.RequireRole(allRoles...))
	booking.GET("/bookings", b.List)
	booking.POST("/bookings", b.Create)
}
