package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talentoplus/talento-api/internal/application/assistant"
	"github.com/talentoplus/talento-api/internal/application/auth"
	appemployee "github.com/talentoplus/talento-api/internal/application/employee"
	"github.com/talentoplus/talento-api/internal/application/usecase"
	"github.com/talentoplus/talento-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	EmployeeUC   *usecase.EmployeeUseCase
	DepartmentUC *usecase.DepartmentUseCase
	DashboardUC  *usecase.DashboardUseCase
	ImportUC     *appemployee.ImportUseCase
	AssistantUC  *assistant.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API (Bearer Token) y del front web (cookie).
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.ImportUC)
	departmentHandler := NewDepartmentHandler(deps.DepartmentUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.AssistantUC)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Departments: listado público (lo consume el formulario de registro);
	// escritura solo admin.
	departments := api.Group("/departments")
	departments.Get("/", departmentHandler.List)
	departments.Post("/", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), departmentHandler.Create)
	departments.Delete("/:id", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), departmentHandler.Delete)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil propio: cualquier rol autenticado
	protected.Get("/employees/me", employeeHandler.Me)
	protected.Get("/employees/me/cv", employeeHandler.MyCV)

	// Employees CRUD (solo admin)
	employees := protected.Group("/employees", RequireRole(entity.RoleAdmin))
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Front web: sesión por cookie HttpOnly, solo administradores.
	web := app.Group("/web")
	web.Post("/login", authHandler.WebLogin)
	web.Post("/logout", authHandler.WebLogout)

	webAdmin := web.Group("/", CookieAuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))
	webAdmin.Get("/employees", employeeHandler.List)
	webAdmin.Post("/employees", employeeHandler.Create)
	webAdmin.Get("/employees/:id", employeeHandler.GetByID)
	webAdmin.Put("/employees/:id", employeeHandler.Update)
	webAdmin.Delete("/employees/:id", employeeHandler.Delete)
	webAdmin.Post("/employees/import", employeeHandler.Import)
	webAdmin.Get("/employees/:id/cv", employeeHandler.DownloadCV)
	webAdmin.Get("/dashboard", dashboardHandler.Summary)
	webAdmin.Post("/dashboard/ask", dashboardHandler.Ask)
}
