package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autismo-mochis/clinic-service/internal/api/http/handlers"
	"github.com/autismo-mochis/clinic-service/internal/auth"
	"github.com/autismo-mochis/clinic-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Directory      *handlers.DirectoryHandler
	Staff          *handlers.StaffHandler
	Family         *handlers.FamilyHandler
	Catalog        *handlers.CatalogHandler
	Appointments   *handlers.AppointmentsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Role allow-sets are matched exactly;
// an empty RequireRole means any authenticated identity with a role.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Authenticate, cfg.Auth.Me)
	authGroup.Post("/password/change", cfg.AuthMiddleware.Authenticate, cfg.Auth.ChangePassword)

	adminOnly := auth.RequireRole(domain.RoleAdministrator)
	adminOrCoordinator := auth.RequireRole(domain.RoleAdministrator, domain.RoleCoordinator)
	anyRole := auth.RequireRole()

	users := app.Group("/users", cfg.AuthMiddleware.Authenticate)
	users.Get("/", anyRole, cfg.Users.ListUsers)

	roles := app.Group("/roles", cfg.AuthMiddleware.Authenticate, adminOnly)
	roles.Get("/", cfg.Directory.ListRoles)
	roles.Post("/", cfg.Directory.CreateRole)
	roles.Get("/:id", cfg.Directory.GetRole)
	roles.Patch("/:id", cfg.Directory.UpdateRole)
	roles.Delete("/:id", cfg.Directory.DeleteRole)

	permissions := app.Group("/permissions", cfg.AuthMiddleware.Authenticate, adminOnly)
	permissions.Get("/", cfg.Directory.ListPermissions)
	permissions.Post("/", cfg.Directory.CreatePermission)

	coordinators := app.Group("/coordinators", cfg.AuthMiddleware.Authenticate)
	coordinators.Get("/", adminOnly, cfg.Users.ListCoordinators)
	coordinators.Get("/:id", adminOrCoordinator, cfg.Users.GetCoordinator)
	coordinators.Patch("/:id", adminOnly, cfg.Users.UpdateCoordinator)
	coordinators.Delete("/:id", adminOnly, cfg.Users.DeleteCoordinator)

	staff := app.Group("/staff", cfg.AuthMiddleware.Authenticate, adminOrCoordinator)
	staff.Get("/", cfg.Staff.ListStaff)
	staff.Post("/", cfg.Staff.CreateStaff)
	staff.Get("/:id", cfg.Staff.GetStaff)
	staff.Patch("/:id", cfg.Staff.UpdateStaff)
	staff.Patch("/:id/active", cfg.Staff.SetStaffActive)
	staff.Delete("/:id", cfg.Staff.DeleteStaff)

	degrees := app.Group("/degrees", cfg.AuthMiddleware.Authenticate)
	degrees.Get("/", adminOrCoordinator, cfg.Directory.ListDegrees)
	degrees.Post("/", adminOnly, cfg.Directory.CreateDegree)

	guardians := app.Group("/guardians", cfg.AuthMiddleware.Authenticate, anyRole)
	guardians.Get("/", cfg.Family.ListGuardians)
	guardians.Post("/", cfg.Family.CreateGuardian)
	guardians.Get("/:id", cfg.Family.GetGuardian)
	guardians.Put("/:id", cfg.Family.UpdateGuardian)
	guardians.Delete("/:id", cfg.Family.DeleteGuardian)

	children := app.Group("/children", cfg.AuthMiddleware.Authenticate, anyRole)
	children.Get("/", cfg.Family.ListChildren)
	children.Post("/", cfg.Family.CreateChild)
	children.Get("/:id", cfg.Family.GetChild)
	children.Put("/:id", cfg.Family.UpdateChild)
	children.Delete("/:id", cfg.Family.DeleteChild)

	prospects := app.Group("/prospects", cfg.AuthMiddleware.Authenticate, anyRole)
	prospects.Get("/", cfg.Family.ListProspects)
	prospects.Post("/", cfg.Family.CreateProspect)
	prospects.Get("/:id", cfg.Family.GetProspect)
	prospects.Put("/:id", cfg.Family.UpdateProspect)
	prospects.Delete("/:id", cfg.Family.DeleteProspect)
	prospects.Post("/:id/register", cfg.Family.RegisterProspect)

	therapies := app.Group("/therapies", cfg.AuthMiddleware.Authenticate, anyRole)
	therapies.Get("/", cfg.Catalog.ListTherapies)
	therapies.Post("/", cfg.Catalog.CreateTherapy)
	therapies.Get("/:id", cfg.Catalog.GetTherapy)
	therapies.Put("/:id", cfg.Catalog.UpdateTherapy)
	therapies.Delete("/:id", cfg.Catalog.DeleteTherapy)

	kinds := app.Group("/appointment-kinds", cfg.AuthMiddleware.Authenticate, anyRole)
	kinds.Get("/", cfg.Catalog.ListKinds)
	kinds.Post("/", cfg.Catalog.CreateKind)
	kinds.Get("/:id", cfg.Catalog.GetKind)
	kinds.Put("/:id", cfg.Catalog.UpdateKind)
	kinds.Delete("/:id", cfg.Catalog.DeleteKind)

	appointments := app.Group("/appointments", cfg.AuthMiddleware.Authenticate, anyRole)
	appointments.Get("/", cfg.Appointments.ListAppointments)
	appointments.Post("/", cfg.Appointments.CreateAppointment)
	appointments.Get("/today", cfg.Appointments.ListTodayAppointments)
	appointments.Get("/unregistered", cfg.Appointments.ListUnregisteredAppointments)
	appointments.Get("/staff/:staffId", cfg.Appointments.ListStaffAppointments)
	appointments.Get("/child/:childId", cfg.Appointments.ListChildAppointments)
	appointments.Get("/:id", cfg.Appointments.GetAppointment)
	appointments.Patch("/:id", cfg.Appointments.UpdateAppointment)
	appointments.Post("/:id/cancel", cfg.Appointments.CancelAppointment)
	appointments.Post("/:id/promote", cfg.Appointments.PromoteAppointment)
	appointments.Delete("/:id", cfg.Appointments.DeleteAppointment)
}
