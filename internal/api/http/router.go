package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/civic-complaint-service/internal/api/http/handlers"
	"github.com/spec-kit/civic-complaint-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Complaints     *handlers.ComplaintsHandler
	Departments    *handlers.DepartmentsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)
	authGroup.Post("/password/reset/request", cfg.Users.ForgotPassword)
	authGroup.Post("/password/reset/confirm", cfg.Users.ResetPassword)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle, auth.RequireUser())
	authProtected.Get("/profile", cfg.Users.Profile)
	authProtected.Post("/password/change", cfg.Users.ChangePassword)

	// static segments are registered before the parameterized admin routes so
	// /departments/cities never binds as an :id
	departments := app.Group("/departments")
	departments.Get("/cities", cfg.Departments.Cities)
	departments.Get("/issue-types", cfg.Departments.IssueTypes)
	departments.Get("/city/:city", cfg.Departments.CityDirectory)

	requireAdmin := []fiber.Handler{cfg.AuthMiddleware.Handle, auth.RequireAdmin()}
	departments.Get("", append(requireAdmin, cfg.Departments.List)...)
	departments.Post("", append(requireAdmin, cfg.Departments.Create)...)
	departments.Get("/:id", append(requireAdmin, cfg.Departments.Get)...)
	departments.Put("/:id", append(requireAdmin, cfg.Departments.Update)...)
	departments.Patch("/:id/toggle", append(requireAdmin, cfg.Departments.Toggle)...)
	departments.Delete("/:id", append(requireAdmin, cfg.Departments.Delete)...)

	departments.Get("/:city/:issueType", cfg.Departments.ResolveContact)

	complaints := app.Group("/complaints", cfg.AuthMiddleware.Handle, auth.RequireUser())
	complaints.Post("", cfg.Complaints.File)
	complaints.Get("", cfg.Complaints.List)
	complaints.Get("/track/:trackingId", cfg.Complaints.Track)
	complaints.Get("/:id", cfg.Complaints.Get)
	complaints.Put("/:id/status", cfg.Complaints.UpdateStatus)
	complaints.Post("/:id/sent", cfg.Complaints.RecordDispatch)
	complaints.Get("/:id/links", cfg.Complaints.Links)
	complaints.Delete("/:id", cfg.Complaints.Delete)
}
