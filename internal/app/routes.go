package app

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"

	"github.com/shardulsaptarshi/deadlines-website/internal/auth"
	"github.com/shardulsaptarshi/deadlines-website/internal/cache"
	"github.com/shardulsaptarshi/deadlines-website/internal/config"
	"github.com/shardulsaptarshi/deadlines-website/internal/handlers"
	"github.com/shardulsaptarshi/deadlines-website/internal/metrics"
	"github.com/shardulsaptarshi/deadlines-website/internal/repo"
	"github.com/shardulsaptarshi/deadlines-website/internal/service"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, log *zap.Logger, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/metrics", metrics.Handler())
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	api := r.Group("/api")

	// The session gate is only armed when an access password hash is
	// configured; otherwise the API is open and sessions is nil.
	var sessions *auth.Store
	if cfg.Auth.PasswordHash != "" {
		sessions = auth.NewStore(rdb, cfg.Auth.SessionTTL.Duration())
		authHandler := handlers.NewAuthHandler(sessions, cfg.Auth.PasswordHash, cfg.Auth.SessionTTL.Duration())
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		log.Info("access password gate enabled")
	}

	protected := api.Group("", auth.RequireSession(sessions))

	store := cache.New(rdb, cfg.Redis.DefaultTTL.Duration())
	deadlineRepo := repo.NewPGDeadlineRepo(db, log)
	planRepo := repo.NewPGPlanRepo(db, log)

	deadlineSvc := service.NewDeadlineService(deadlineRepo, store)
	deadlineHandler := handlers.NewDeadlineHandler(deadlineSvc)
	protected.GET("/deadlines", deadlineHandler.List)
	protected.POST("/deadlines", deadlineHandler.Create)
	protected.GET("/deadlines/:id", deadlineHandler.GetByID)
	protected.PUT("/deadlines/:id", deadlineHandler.Update)
	protected.DELETE("/deadlines/:id", deadlineHandler.Delete)

	planSvc := service.NewPlanService(planRepo, deadlineRepo, store)
	planHandler := handlers.NewPlanHandler(planSvc)
	protected.GET("/planner/tomorrow", planHandler.Get)
	protected.POST("/planner/tomorrow", planHandler.Save)

	r.NoRoute(spaHandler(cfg.Web.StaticDir))
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
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

// spaHandler serves asset files from the static dir when they exist and
// falls back to index.html for everything else, so client-side routes load
// the application shell.
func spaHandler(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		reqPath := filepath.Clean(strings.TrimPrefix(c.Request.URL.Path, "/"))
		if reqPath != "." && !strings.HasPrefix(reqPath, "..") {
			full := filepath.Join(staticDir, reqPath)
			if info, err := os.Stat(full); err == nil && !info.IsDir() {
				c.File(full)
				return
			}
		}
		c.File(filepath.Join(staticDir, "index.html"))
	}
}
