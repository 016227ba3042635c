package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/boutique-api/internal/application/analytics"
	"github.com/jhoicas/boutique-api/internal/application/auth"
	"github.com/jhoicas/boutique-api/internal/application/catalog"
	"github.com/jhoicas/boutique-api/internal/application/content"
	"github.com/jhoicas/boutique-api/internal/application/engagement"
	"github.com/jhoicas/boutique-api/internal/application/inventory"
	"github.com/jhoicas/boutique-api/internal/application/purchasing"
	"github.com/jhoicas/boutique-api/internal/application/storefront"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *auth.UserUseCase
	RoleUC       *auth.RoleUseCase
	CategoryUC   *catalog.CategoryUseCase
	ProductUC    *catalog.ProductUseCase
	MovementUC   *inventory.MovementUseCase
	SupplierUC   *purchasing.SupplierUseCase
	PurchaseUC   *purchasing.PurchaseUseCase
	ContentUC    *content.ContentUseCase
	EngagementUC *engagement.EngagementUseCase
	StorefrontUC *storefront.StorefrontUseCase
	DashboardUC  *appanalytics.DashboardUseCase
	Auth         AuthConfig
	Session      SessionConfig
}

// Router registra las rutas de la API. Cada grupo protegido lleva su propio
// AuthMiddleware + RequirePermission para no interceptar las rutas públicas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.Auth)
	perm := func(key string) fiber.Handler { return RequirePermission(key, deps.AuthUC) }

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Usuarios, roles y matriz de permisos
	userHandler := NewUserHandler(deps.UserUC, deps.RoleUC)
	users := api.Group("/users", requireAuth, perm(entity.PermUsuarios))
	users.Get("/", userHandler.ListUsers)
	users.Post("/", userHandler.CreateUser)
	users.Get("/:id", userHandler.GetUser)
	users.Put("/:id", userHandler.UpdateUser)
	users.Delete("/:id", userHandler.DeleteUser)

	roles := api.Group("/roles", requireAuth, perm(entity.PermUsuarios))
	roles.Get("/", userHandler.ListRoles)
	roles.Post("/", userHandler.CreateRole)
	roles.Get("/:id", userHandler.GetRole)
	roles.Put("/:id", userHandler.UpdateRole)
	roles.Delete("/:id", userHandler.DeleteRole)
	roles.Get("/:id/permissions", userHandler.RolePermissions)
	roles.Put("/:id/permissions", userHandler.ReplaceRolePermissions)
	api.Get("/permissions", requireAuth, perm(entity.PermUsuarios), userHandler.ListPermissions)

	// Catálogo
	catalogHandler := NewCatalogHandler(deps.CategoryUC)
	categories := api.Group("/categories", requireAuth, perm(entity.PermCatalogo))
	categories.Get("/", catalogHandler.ListCategories)
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Get("/:id", catalogHandler.GetCategory)
	categories.Put("/:id", catalogHandler.UpdateCategory)
	categories.Delete("/:id", catalogHandler.DeleteCategory)

	colors := api.Group("/colors", requireAuth, perm(entity.PermCatalogo))
	colors.Get("/", catalogHandler.ListColors)
	colors.Post("/", catalogHandler.CreateColor)
	colors.Put("/:id", catalogHandler.UpdateColor)
	colors.Delete("/:id", catalogHandler.DeleteColor)

	sizes := api.Group("/sizes", requireAuth, perm(entity.PermCatalogo))
	sizes.Get("/", catalogHandler.ListSizes)
	sizes.Post("/", catalogHandler.CreateSize)
	sizes.Put("/:id", catalogHandler.UpdateSize)
	sizes.Delete("/:id", catalogHandler.DeleteSize)

	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products", requireAuth, perm(entity.PermCatalogo))
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/variants", productHandler.ListVariants)
	products.Post("/:id/variants", productHandler.CreateVariant)

	variants := api.Group("/variants", requireAuth, perm(entity.PermCatalogo))
	variants.Get("/:id", productHandler.GetVariant)
	variants.Put("/:id", productHandler.UpdateVariant)
	variants.Delete("/:id", productHandler.DeleteVariant)

	// Kardex: autenticación opcional, el usuario solo se usa para atribuir el movimiento
	inventoryHandler := NewInventoryHandler(deps.MovementUC)
	movements := api.Group("/movements", OptionalAuth(deps.Auth))
	movements.Get("/", inventoryHandler.ListMovements)
	movements.Post("/", inventoryHandler.RecordMovement)
	movements.Get("/report.pdf", inventoryHandler.MovementReport)
	movements.Get("/:id", inventoryHandler.GetMovement)
	movements.Delete("/:id", inventoryHandler.DeleteMovement)

	// Compras
	purchasingHandler := NewPurchasingHandler(deps.SupplierUC, deps.PurchaseUC)
	suppliers := api.Group("/suppliers", requireAuth, perm(entity.PermCompras))
	suppliers.Get("/", purchasingHandler.ListSuppliers)
	suppliers.Post("/", purchasingHandler.CreateSupplier)
	suppliers.Get("/:id", purchasingHandler.GetSupplier)
	suppliers.Put("/:id", purchasingHandler.UpdateSupplier)
	suppliers.Delete("/:id", purchasingHandler.DeleteSupplier)

	purchases := api.Group("/purchases", requireAuth, perm(entity.PermCompras))
	purchases.Get("/", purchasingHandler.ListPurchases)
	purchases.Post("/", purchasingHandler.CreatePurchase)
	purchases.Get("/:id", purchasingHandler.GetPurchase)
	purchases.Post("/:id/cancel", purchasingHandler.CancelPurchase)
	purchases.Post("/:id/payments", purchasingHandler.RegisterPayment)

	returns := api.Group("/returns", requireAuth, perm(entity.PermCompras))
	returns.Get("/", purchasingHandler.ListReturns)
	returns.Post("/", purchasingHandler.CreateReturn)
	returns.Get("/:id", purchasingHandler.GetReturn)

	// Contenido (CMS, newsletter y mensajes)
	contentHandler := NewContentHandler(deps.ContentUC)
	engagementHandler := NewEngagementHandler(deps.EngagementUC)
	cms := api.Group("/content", requireAuth, perm(entity.PermContenido))
	cms.Get("/banners", contentHandler.ListBanners)
	cms.Post("/banners", contentHandler.CreateBanner)
	cms.Put("/banners/:id", contentHandler.UpdateBanner)
	cms.Delete("/banners/:id", contentHandler.DeleteBanner)
	cms.Get("/pages", contentHandler.ListPages)
	cms.Post("/pages", contentHandler.CreatePage)
	cms.Put("/pages/:id", contentHandler.UpdatePage)
	cms.Delete("/pages/:id", contentHandler.DeletePage)
	cms.Get("/faqs", contentHandler.ListFAQs)
	cms.Post("/faqs", contentHandler.CreateFAQ)
	cms.Put("/faqs/:id", contentHandler.UpdateFAQ)
	cms.Delete("/faqs/:id", contentHandler.DeleteFAQ)
	cms.Get("/about", contentHandler.GetAbout)
	cms.Put("/about", contentHandler.SaveAbout)
	cms.Get("/subscribers", engagementHandler.ListSubscribers)
	cms.Get("/messages", engagementHandler.ListContacts)
	cms.Put("/messages/:id/read", engagementHandler.MarkRead)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", requireAuth, perm(entity.PermReportes), dashboardHandler.GetSummary)

	// Tienda pública
	storeHandler := NewStorefrontHandler(deps.StorefrontUC, deps.ContentUC)
	public := api.Group("/public")
	public.Get("/products", storeHandler.ListProducts)
	public.Get("/products/:slug", storeHandler.GetProduct)
	public.Get("/categories", storeHandler.Categories)
	public.Get("/banners", storeHandler.Banners)
	public.Get("/faqs", storeHandler.FAQs)
	public.Get("/pages/:slug", storeHandler.Page)
	public.Get("/about", storeHandler.About)
	public.Post("/cart/validate", storeHandler.ValidateCart)
	public.Get("/feed.xml", storeHandler.Feed)
	public.Post("/newsletter", engagementHandler.Subscribe)
	public.Get("/newsletter/unsubscribe/:token", engagementHandler.Unsubscribe)
	public.Post("/contact", engagementHandler.SendContact)
}
