package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"biliticket/tickethub/internal/config"
	"biliticket/tickethub/internal/handler/middleware"
)

func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	registry *prometheus.Registry,
	ticketHandler *TicketHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.RateLimit(cfg.RateLimit))
	r.Use(middleware.Metrics(registry))

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Single ticket resource: create, retrieve, patch. Retrieval takes
	// the id in the request body, mirroring the create/patch shapes.
	r.POST("/ticket", ticketHandler.Create)
	r.GET("/ticket", ticketHandler.Get)
	r.PATCH("/ticket", ticketHandler.Patch)

	return r
}
