package routes

import (
	"time"

	_ "citizens-voice-http-service/docs"
	"citizens-voice-http-service/internal/app/controllers"
	"citizens-voice-http-service/internal/app/middleware"
	"citizens-voice-http-service/internal/domain/services"
	"citizens-voice-http-service/internal/domain/services/container"
	"citizens-voice-http-service/internal/infrastructure/config"
	"citizens-voice-http-service/internal/infrastructure/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config, store storage.ObjectStore) *gin.Engine {
	r := gin.Default()

	serviceContainer := container.NewServiceContainer(db, cfg, store)
	middleware.InitAuthMiddleware(cfg, db)

	// The response cache uses Redis when it is reachable and its in-process
	// store otherwise.
	if redisService, ok := serviceContainer.GetService("redis").(services.InterfaceRedisService); ok && redisService != nil {
		middleware.SetCacheBackend(redisService)
	}

	// A known path hit with the wrong verb must yield a 405 body, not Gin's
	// default 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(controllers.MethodNotAllowed(middleware.AllowOrigin, middleware.AllowHeaders))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Local storage driver serves its uploads directly
	if cfg.StorageDriver == "local" {
		r.Static("/uploads", cfg.UploadDir)
	}

	registerFunctionRoutes(r, serviceContainer)
	registerAPIRoutes(r, serviceContainer)
	return r
}

// registerFunctionRoutes mounts the public collection endpoints. These keep
// the flat browser-client contract: GET only, wildcard CORS, an empty 200
// for preflight and a literal "Method not allowed" body for anything else.
func registerFunctionRoutes(r *gin.Engine, container *container.ServiceContainer) {
	functions := r.Group("/functions")
	functions.Use(middleware.FunctionCORS())
	functions.Use(controllers.FunctionRecovery())
	functions.Use(middleware.FunctionIPRateLimiter(20, 40))

	// OPTIONS routes exist so the preflight reaches FunctionCORS, which
	// answers it with an empty 200 before any store access. The handler
	// below them is never invoked for OPTIONS.
	preflight := func(*gin.Context) {}

	functions.GET("/struggles", controllers.HandleFunctionFunc(container, "getStruggles"))
	functions.OPTIONS("/struggles", preflight)

	functions.GET("/resources", controllers.HandleFunctionFunc(container, "getResources"))
	functions.OPTIONS("/resources", preflight)

	functions.GET("/communities", controllers.HandleFunctionFunc(container, "getCommunities"))
	functions.OPTIONS("/communities", preflight)

	// The live snapshot is regenerated per request, never cached
	functions.GET("/resources/live", controllers.HandleFunctionFunc(container, "getLiveResourceData"))
	functions.OPTIONS("/resources/live", preflight)
}

// registerAPIRoutes mounts the application API under /api
func registerAPIRoutes(r *gin.Engine, container *container.ServiceContainer) {
	api := r.Group("/api")
	api.Use(middleware.APICORS())
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
	registerAdminRoutes(api, container)
}

// registerPublicRoutes registers unauthenticated routes
func registerPublicRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	// 10 requests per second per IP, bursting to 20
	api.Use(middleware.IPRateLimiter(10, 20))

	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health/status", controllers.HandleHealthFunc(container, "status"))

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.PathRateLimiter(5, 10))
	authGroup.POST("/login", controllers.HandleJWTFunc(container, "login"))
	authGroup.POST("/register", controllers.HandleJWTFunc(container, "register"))

	api.GET("/ministries", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}),
		controllers.HandleMinistryFunc(container, "getMinistries"))
	api.GET("/struggles", middleware.Cache(middleware.CacheConfig{Expiration: 15 * time.Second}),
		controllers.HandleStruggleFunc(container, "getStruggles"))
	api.GET("/communities", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}),
		controllers.HandleCommunityFunc(container, "getCommunities"))
}

// registerAuthenticatedRoutes registers routes for any signed-in citizen
func registerAuthenticatedRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateUser())
	auth.Use(middleware.IPRateLimiter(30, 50))

	auth.POST("/reports", controllers.HandleReportFunc(container, "submitReport"))
	auth.GET("/reports/mine", controllers.HandleReportFunc(container, "getMyReports"))

	auth.GET("/profile", controllers.HandleProfileFunc(container, "getProfile"))
	auth.PUT("/profile", controllers.HandleProfileFunc(container, "updateProfile"))

	auth.POST("/uploads/:bucket", middleware.PathRateLimiter(5, 10),
		controllers.HandleUploadFunc(container, "upload"))
}

// registerAdminRoutes registers administrator routes. Every request in the
// group re-checks the admin register, so revocation takes effect on live
// tokens.
func registerAdminRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AuthenticateAdmin())
	adminGroup.Use(middleware.IPRateLimiter(30, 50))

	adminGroup.GET("/reports", controllers.HandleReportFunc(container, "getReports"))
	adminGroup.PUT("/reports/:id", controllers.HandleReportFunc(container, "moderateReport"))

	adminGroup.POST("/struggles", controllers.HandleStruggleFunc(container, "createStruggle"))
	adminGroup.PUT("/struggles/:id/verify", controllers.HandleStruggleFunc(container, "setVerified"))

	adminGroup.PUT("/ministries/:id", controllers.HandleMinistryFunc(container, "updateMinistry"))

	adminGroup.POST("/communities", controllers.HandleCommunityFunc(container, "createCommunity"))

	adminGroup.GET("/users", controllers.HandleAdminUserFunc(container, "getAdminUsers"))
	adminGroup.POST("/users", controllers.HandleAdminUserFunc(container, "addAdmin"))
	adminGroup.DELETE("/users/:id", controllers.HandleAdminUserFunc(container, "removeAdmin"))
}
