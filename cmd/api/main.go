package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SalaVentasCO/reception-intake/internal/config"
	dbpkg "github.com/SalaVentasCO/reception-intake/internal/db"
	"github.com/SalaVentasCO/reception-intake/internal/dedup"
	"github.com/SalaVentasCO/reception-intake/internal/metrics"
	"github.com/SalaVentasCO/reception-intake/internal/middleware"
	"github.com/SalaVentasCO/reception-intake/internal/routes"
	"github.com/SalaVentasCO/reception-intake/pkg/logger"
)

func main() {

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel})

	db := dbpkg.NewDB(cfg)

	// Redis es opcional: sin él, el guard de envíos duplicados se omite.
	var guard *dedup.Guard
	if cfg.RedisAddr != "" {
		client, err := dedup.Connect(context.Background(), cfg.RedisAddr)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, duplicate guard disabled")
		} else {
			guard = dedup.NewGuard(client)
		}
	}

	metrics.Init()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.PrometheusMetrics())

	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "./web/static")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	routes.RegisterRoutes(r, db, guard, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
