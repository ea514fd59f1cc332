package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/authz"
	"github.com/jhoicas/tienda-api/internal/application/sales"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ShopUC      *usecase.ShopUseCase
	RoleUC      *usecase.RoleUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	SaleUC      *sales.UseCase
	DashboardUC *usecase.DashboardUseCase
	Engine      *authz.Engine
	Gate        *authz.Gate
	Resolver    *authz.Resolver
	Users       repository.UserRepository
	Permissions repository.PermissionRepository
	JWTSecret   string
}

// Router registra las rutas de la API. Tres niveles de protección:
// sesión (AuthMiddleware), tienda activa (RequireShop) y permission key
// (RequirePermission). Las rutas de roles y permisos no exigen tienda porque
// funcionan durante el onboarding.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas con sesión
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Users))
	protected.Get("/auth/me", authHandler.Me)

	// Shops: crear no exige tienda (es el onboarding); info/update sí.
	shopHandler := NewShopHandler(deps.ShopUC)
	protected.Post("/shops", shopHandler.Create)
	shopScoped := protected.Group("/shops", RequireShop(deps.Resolver))
	shopScoped.Get("/info", RequirePermission("manage_shop", deps.Gate), shopHandler.Info)
	shopScoped.Put("/info", RequirePermission("edit_shop", deps.Gate), shopHandler.Update)

	// Roles (sin RequireShop: los roles de onboarding son scope global)
	roles := protected.Group("/roles")
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Get("/", RequirePermission("manage_roles", deps.Gate), roleHandler.List)
	roles.Post("/", RequirePermission("create_role", deps.Gate), roleHandler.Create)
	roles.Get("/:id", RequirePermission("manage_roles", deps.Gate), roleHandler.GetByID)
	roles.Put("/:id", RequirePermission("edit_role", deps.Gate), roleHandler.Update)
	roles.Delete("/:id", RequirePermission("delete_role", deps.Gate), roleHandler.Delete)

	// Permisos (catálogo y menú; el menú ya filtra por set efectivo)
	permHandler := NewPermissionHandler(deps.Permissions, deps.Engine)
	protected.Get("/permissions", RequirePermission("manage_permissions", deps.Gate), permHandler.List)
	protected.Get("/permissions/menu-items", permHandler.MenuItems)
	protected.Get("/permissions/by-tabs", RequirePermission("manage_permissions", deps.Gate), permHandler.ByTabs)

	// Empleados
	employees := protected.Group("/employees", RequireShop(deps.Resolver))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", RequirePermission("manage_employees", deps.Gate), employeeHandler.List)
	employees.Post("/", RequirePermission("create_employee", deps.Gate), employeeHandler.Create)
	employees.Get("/:id", RequirePermission("manage_employees", deps.Gate), employeeHandler.GetByID)
	employees.Put("/:id", RequirePermission("edit_employee", deps.Gate), employeeHandler.Update)
	employees.Delete("/:id", RequirePermission("delete_employee", deps.Gate), employeeHandler.Delete)

	// Productos
	products := protected.Group("/products", RequireShop(deps.Resolver))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", RequirePermission("view_products", deps.Gate), productHandler.List)
	products.Post("/", RequirePermission("create_product", deps.Gate), productHandler.Create)
	products.Get("/:id", RequirePermission("view_products", deps.Gate), productHandler.GetByID)
	products.Put("/:id", RequirePermission("edit_product", deps.Gate), productHandler.Update)
	products.Delete("/:id", RequirePermission("delete_product", deps.Gate), productHandler.Delete)

	// Clientes
	customers := protected.Group("/customers", RequireShop(deps.Resolver))
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", RequirePermission("view_customers", deps.Gate), customerHandler.List)
	customers.Post("/", RequirePermission("create_customer", deps.Gate), customerHandler.Create)
	customers.Get("/:id", RequirePermission("view_customers", deps.Gate), customerHandler.GetByID)

	// Ventas
	salesGroup := protected.Group("/sales", RequireShop(deps.Resolver))
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Get("/", RequirePermission("view_sales", deps.Gate), saleHandler.List)
	salesGroup.Post("/", RequirePermission("create_sale", deps.Gate), saleHandler.Create)
	salesGroup.Get("/:id", RequirePermission("view_sales", deps.Gate), saleHandler.GetByID)

	// Dashboard
	dashboard := protected.Group("/dashboard", RequireShop(deps.Resolver))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", RequirePermission("view_dashboard", deps.Gate), dashboardHandler.Stats)
}
