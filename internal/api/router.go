package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mitienda/tienda-api/internal/api/handler"
	"github.com/mitienda/tienda-api/internal/api/middleware"
	"github.com/mitienda/tienda-api/internal/core/auth"
	"github.com/mitienda/tienda-api/internal/core/service"
	mongodb "github.com/mitienda/tienda-api/internal/infrastructure/db/mongo"
	redisdb "github.com/mitienda/tienda-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with every dependency constructed and
// injected explicitly. Only GET /perfil carries the token middleware; the
// remaining user routes are deliberately open, mirroring the storefront's
// contract (the admin UI gates on rol client-side).
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("tienda"))

	// --- Dependencies ---
	hasher := auth.NewBcryptHasher()
	tokens := auth.NewTokenService(jwtSecret, auth.DefaultTokenTTL)
	idValidator := mongodb.NewObjectIDValidator()

	userRepo := mongodb.NewUserRepository(db)
	userService := service.NewUserService(userRepo, hasher, tokens, idValidator, log)
	userHandler := handler.NewUserHandler(userService)

	productRepo := mongodb.NewProductRepository(db)
	catalogCache := redisdb.NewCatalogCache(rdb, log)
	productService := service.NewProductService(productRepo, catalogCache, idValidator, log)
	productHandler := handler.NewProductHandler(productService)

	authMiddleware := middleware.Auth(tokens)

	// --- User routes ---
	users := e.Group("/api/usuarios")
	users.POST("/register", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.GET("/perfil", userHandler.Profile, authMiddleware)
	users.PUT("/perfil/:id", userHandler.UpdateProfile)
	users.GET("", userHandler.List)
	users.PUT("/:id", userHandler.AdminUpdate)
	users.DELETE("/:id", userHandler.Delete)

	// --- Product routes ---
	products := e.Group("/api/productos")
	products.POST("", productHandler.Create)
	products.GET("", productHandler.List)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
