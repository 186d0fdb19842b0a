package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cse-motors/inventory-system/internal/api/handler"
	"github.com/cse-motors/inventory-system/internal/api/middleware"
	"github.com/cse-motors/inventory-system/internal/core/domain"
	"github.com/cse-motors/inventory-system/internal/core/service"
	"github.com/cse-motors/inventory-system/internal/infrastructure/config"
	mongodb "github.com/cse-motors/inventory-system/internal/infrastructure/db/mongo"
	redisdb "github.com/cse-motors/inventory-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dealership"))

	renderer, err := handler.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Static("/static", "web/static")

	// --- Dependencies ---
	secure := cfg.Production()

	accountRepo := mongodb.NewAccountRepository(db)
	inventoryRepo := mongodb.NewInventoryRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	flashStore := redisdb.NewFlashStore(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret, 24*time.Hour)
	accountService := service.NewAccountService(accountRepo, tokenService)
	inventoryService := service.NewInventoryService(inventoryRepo, log)
	reviewService := service.NewReviewService(reviewRepo, inventoryRepo, log)

	view := handler.NewView(inventoryService, flashStore, log)

	accountHandler := handler.NewAccountHandler(view, accountService, secure)
	inventoryHandler := handler.NewInventoryHandler(view, inventoryService, reviewService)
	reviewHandler := handler.NewReviewHandler(view, reviewService)

	e.Use(middleware.Session(secure))
	e.Use(middleware.Identity(tokenService, secure))

	gate := middleware.NewGate(flashStore, log)
	loggedIn := gate.RequireRole(domain.RoleClient, domain.RoleEmployee, domain.RoleAdmin)
	staffOnly := gate.RequireRole(domain.RoleEmployee, domain.RoleAdmin)
	adminOnly := gate.RequireRole(domain.RoleAdmin)

	// --- Public browsing ---
	e.GET("/", inventoryHandler.Home)
	e.GET("/inv/type/:classificationID", inventoryHandler.Classification)
	e.GET("/inv/detail/:invID", inventoryHandler.Detail)

	// --- Account flows ---
	e.GET("/account/login", accountHandler.LoginView)
	e.POST("/account/login", accountHandler.Login)
	e.GET("/account/register", accountHandler.RegisterView)
	e.POST("/account/register", accountHandler.Register)
	e.GET("/account/logout", accountHandler.Logout)
	e.GET("/account/manage", accountHandler.ManageView, loggedIn)
	e.GET("/account/update/:accountID", accountHandler.UpdateView, gate.RequireSelf("accountID"))
	e.POST("/account/update", accountHandler.Update, loggedIn)

	// --- Inventory management (staff only) ---
	e.GET("/inv/manage", inventoryHandler.ManageView, staffOnly)
	e.GET("/inv/add-classification", inventoryHandler.AddClassificationView, staffOnly)
	e.POST("/inv/add-classification", inventoryHandler.AddClassification, staffOnly)
	e.GET("/inv/add-vehicle", inventoryHandler.AddVehicleView, staffOnly)
	e.POST("/inv/add-vehicle", inventoryHandler.AddVehicle, staffOnly)

	// --- Reviews ---
	e.POST("/inv/detail/:invID/reviews", reviewHandler.Create, loggedIn)
	e.POST("/reviews/:reviewID/delete", reviewHandler.Delete, adminOnly)

	// --- Error handler smoke test ---
	e.GET("/error/trigger", inventoryHandler.TriggerError)

	// --- Operational endpoints (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e, nil
}
