package app

import (
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/auth"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/cache"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/config"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/handlers"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/notify"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/repo"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/service"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine. db and rdb are nil in
// memory-only mode.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	var (
		sessions  auth.SessionStore
		userRepo  repo.UserRepo
		taskRepo  repo.TaskRepo
		projRepo  repo.ProjectRepo
		taskCache *cache.TaskCache
	)
	if db != nil {
		sessions = auth.NewRedisStore(rdb, cfg.Redis.SessionTTL.Duration())
		userRepo = repo.NewPGUserRepo(db)
		taskRepo = repo.NewPGTaskRepo(db)
		projRepo = repo.NewPGProjectRepo(db)
		taskCache = cache.NewTaskCache(rdb, cfg.Redis.DefaultTTL.Duration())
	} else {
		sessions = auth.NewMemoryStore()
		userRepo = repo.NewMemUserRepo()
		taskRepo = repo.NewMemTaskRepo()
		projRepo = repo.NewMemProjectRepo()
	}

	toasts := notify.NewMemory()
	stores := store.NewManager(taskRepo, projRepo, taskCache, toasts)
	userSvc := service.NewUserService(userRepo)

	authHandler := handlers.NewAuthHandler(sessions, userSvc, stores, toasts)
	registerAuthRoutes(api, authHandler)

	protected := api.Group("", auth.RequireSession(sessions))
	registerTaskRoutes(protected, handlers.NewTaskHandler(stores))
	registerProjectRoutes(protected, handlers.NewProjectHandler(stores))
	registerDashboardRoutes(protected, handlers.NewDashboardHandler(stores, toasts))
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Focus Flow API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env, "memory_mode": cfg.MemoryMode()})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerTaskRoutes(api *gin.RouterGroup, h *handlers.TaskHandler) {
	api.POST("/tasks", h.Create)
	api.GET("/tasks", h.List)
	api.PATCH("/tasks/:id", h.Update)
	api.DELETE("/tasks/:id", h.Delete)
	api.POST("/tasks/:id/toggle", h.Toggle)
}

func registerProjectRoutes(api *gin.RouterGroup, h *handlers.ProjectHandler) {
	api.POST("/projects", h.Create)
	api.GET("/projects", h.List)
	api.GET("/projects/:id", h.Get)
	api.DELETE("/projects/:id", h.Delete)
}

func registerDashboardRoutes(api *gin.RouterGroup, h *handlers.DashboardHandler) {
	api.GET("/dashboard", h.Dashboard)
	api.GET("/notifications", h.Notifications)
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/logout", h.Logout)
}
