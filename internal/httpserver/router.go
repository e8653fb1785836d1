package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"todoapp/internal/api"
	"todoapp/internal/ratelimit"
	"todoapp/internal/util"
)

// Pinger is the readiness probe's view of the database pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	authHandler *api.AuthHandler,
	taskHandler *api.TaskHandler,
	tokens *util.TokenService,
	limiter *ratelimit.Limiter,
	db Pinger,
) *Router {
	r := gin.Default()
	r.Use(MetricsMiddleware())

	// Health endpoints
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(200)
	})
	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(500, gin.H{"status": "db_not_ready", "error": err.Error()})
			return
		}

		c.JSON(200, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public credential endpoints, rate limited per client IP
	creds := r.Group("/auth")
	creds.Use(RateLimitMiddleware(limiter))
	{
		creds.POST("/signup", authHandler.Signup)
		creds.POST("/login", authHandler.Login)
	}

	// Protected
	auth := r.Group("/")
	auth.Use(AuthMiddleware(tokens))
	{
		auth.GET("/auth/me", authHandler.Me)
		auth.PUT("/auth/theme", authHandler.UpdateTheme)

		auth.GET("/tasks", taskHandler.List)
		auth.POST("/tasks", taskHandler.Create)
		auth.GET("/tasks/:id", taskHandler.Get)
		auth.PUT("/tasks/:id", taskHandler.Update)
		auth.DELETE("/tasks/:id", taskHandler.Delete)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
