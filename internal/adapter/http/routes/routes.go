package routes

import (
	"net/http"

	"todolist/internal/adapter/http/handler"
	"todolist/internal/telemetry"
	. "todolist/pkg/auth"
	"todolist/pkg/config"

	"github.com/gin-gonic/gin"
)

type HandlersConfig struct {
	AuthHandler *handler.AuthHandler
	UserHandler *handler.UserHandler
	ListHandler *handler.ListHandler
	TaskHandler *handler.TaskHandler
}

func SetupRouter(handlers HandlersConfig, metrics *telemetry.AppMetrics, logger *telemetry.RequestLogger, limiter *telemetry.RateLimiter) *gin.Engine {
	return SetupRouterWithConfig(handlers, metrics, logger, limiter, config.GetDefaultConfig())
}

func SetupRouterWithConfig(handlers HandlersConfig, metrics *telemetry.AppMetrics, logger *telemetry.RequestLogger, limiter *telemetry.RateLimiter, cfg *config.AppConfig) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	telemetry.SetupGinMiddleware(router, "todolist", metrics, logger)

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	if cfg.RateLimitEnabled && limiter != nil {
		router.Use(limiter.RateLimitMiddleware())
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.Static(cfg.AvatarAccessPath, cfg.UploadDir)

	setupPublicRoutes(router, handlers)
	setupProtectedRoutes(router, handlers)

	return router
}

func setupPublicRoutes(router *gin.Engine, handlers HandlersConfig) {
	if handlers.AuthHandler == nil {
		return
	}

	public := router.Group("/")
	{
		public.POST("/user/register", handlers.AuthHandler.Register)
		public.POST("/user/login", handlers.AuthHandler.Login)
	}
}

func setupProtectedRoutes(router *gin.Engine, handlers HandlersConfig) {
	protected := router.Group("/")
	protected.Use(GinJwtMiddleware())
	{
		if handlers.UserHandler != nil {
			protected.PATCH("/user", handlers.UserHandler.UpdateProfile)
			protected.POST("/user/avatar", handlers.UserHandler.UploadAvatar)
			protected.DELETE("/user", handlers.UserHandler.Delete)
		}

		if handlers.ListHandler != nil {
			protected.POST("/list", handlers.ListHandler.Create)
			protected.GET("/list/:id", handlers.ListHandler.Get)
			protected.GET("/lists", handlers.ListHandler.GetAll)
			protected.PATCH("/list/:id/category", handlers.ListHandler.ChangeCategory)
			protected.DELETE("/list/:id", handlers.ListHandler.Delete)
		}

		if handlers.TaskHandler != nil {
			protected.POST("/task", handlers.TaskHandler.Create)
			protected.GET("/task/:id", handlers.TaskHandler.Get)
			protected.PATCH("/task/:id", handlers.TaskHandler.Update)
			protected.DELETE("/task/:id", handlers.TaskHandler.Delete)
		}
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SetupRouterForTests wires only the routes, without telemetry or rate
// limiting, so handler tests stay fast and quiet.
func SetupRouterForTests(handlers HandlersConfig) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	setupPublicRoutes(router, handlers)
	setupProtectedRoutes(router, handlers)

	return router
}
