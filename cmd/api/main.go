package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	appanalytics "github.com/jhoicas/boutique-api/internal/application/analytics"
	"github.com/jhoicas/boutique-api/internal/application/auth"
	"github.com/jhoicas/boutique-api/internal/application/catalog"
	"github.com/jhoicas/boutique-api/internal/application/content"
	"github.com/jhoicas/boutique-api/internal/application/engagement"
	"github.com/jhoicas/boutique-api/internal/application/inventory"
	"github.com/jhoicas/boutique-api/internal/application/ports"
	"github.com/jhoicas/boutique-api/internal/application/purchasing"
	"github.com/jhoicas/boutique-api/internal/application/storefront"
	infracache "github.com/jhoicas/boutique-api/internal/infrastructure/cache"
	infrafeed "github.com/jhoicas/boutique-api/internal/infrastructure/feed"
	infrapdf "github.com/jhoicas/boutique-api/internal/infrastructure/pdf"
	"github.com/jhoicas/boutique-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/boutique-api/internal/interfaces/http"
	"github.com/jhoicas/boutique-api/pkg/config"
	"github.com/jhoicas/boutique-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.Migrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Caché del catálogo público: Redis si REDIS_URL está definido, si no no-op.
	var cache ports.CatalogCache = infracache.NoopCache{}
	if cfg.Redis.URL != "" {
		redisCache, err := infracache.NewRedisCatalogCache(ctx, cfg.Redis.URL, cfg.Redis.TTL, log.Zerolog())
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, catálogo sin caché")
		} else {
			defer redisCache.Close()
			cache = redisCache
			log.Info().Dur("ttl", cfg.Redis.TTL).Msg("caché de catálogo en redis")
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	colorRepo := postgres.NewColorRepository(pool)
	sizeRepo := postgres.NewSizeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	variantRepo := postgres.NewVariantRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	returnRepo := postgres.NewReturnRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	movementUC := inventory.NewMovementUseCase(
		txRunner, movementRepo, cache, infrapdf.NewMarotoMovementsReport(),
		cfg.App.Name, cfg.Store.MovementsLimit,
	)
	categoryUC := catalog.NewCategoryUseCase(categoryRepo, colorRepo, sizeRepo, cache)
	productUC := catalog.NewProductUseCase(txRunner, movementUC, productRepo, variantRepo, cache)
	supplierUC := purchasing.NewSupplierUseCase(supplierRepo)
	purchaseUC := purchasing.NewPurchaseUseCase(txRunner, movementUC, supplierRepo, purchaseRepo, returnRepo, cache)
	authUC := auth.NewAuthUseCase(userRepo, roleRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := auth.NewUserUseCase(userRepo, roleRepo)
	roleUC := auth.NewRoleUseCase(roleRepo)
	contentUC := content.NewContentUseCase(
		postgres.NewBannerRepository(pool),
		postgres.NewPageRepository(pool),
		postgres.NewFAQRepository(pool),
		postgres.NewAboutRepository(pool),
	)
	engagementUC := engagement.NewEngagementUseCase(
		postgres.NewSubscriberRepository(pool),
		postgres.NewContactRepository(pool),
	)
	storefrontUC := storefront.NewStorefrontUseCase(
		productRepo, variantRepo, categoryRepo, colorRepo, sizeRepo,
		cache, infrafeed.NewEtreeFeedBuilder(),
		storefront.Config{
			StoreName: cfg.App.Name,
			BaseURL:   cfg.App.BaseURL,
			Currency:  cfg.Store.Currency,
		},
	)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, cfg.Store.LowStockThreshold)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(httpRouter.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.AllowOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs (requiere `swag init`)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Boutique API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado: no existe la especificación")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		RoleUC:       roleUC,
		CategoryUC:   categoryUC,
		ProductUC:    productUC,
		MovementUC:   movementUC,
		SupplierUC:   supplierUC,
		PurchaseUC:   purchaseUC,
		ContentUC:    contentUC,
		EngagementUC: engagementUC,
		StorefrontUC: storefrontUC,
		DashboardUC:  dashboardUC,
		Auth: httpRouter.AuthConfig{
			Secret:     cfg.JWT.Secret,
			CookieName: cfg.JWT.CookieName,
		},
		Session: httpRouter.SessionConfig{
			CookieName: cfg.JWT.CookieName,
			Secure:     cfg.JWT.CookieSecure,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
