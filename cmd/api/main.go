package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corebeautylab/salon-scheduler/internal/cache"
	"github.com/corebeautylab/salon-scheduler/internal/config"
	dbpkg "github.com/corebeautylab/salon-scheduler/internal/db"
	"github.com/corebeautylab/salon-scheduler/internal/jobs"
	"github.com/corebeautylab/salon-scheduler/internal/logger"
	"github.com/corebeautylab/salon-scheduler/internal/middleware"
	"github.com/corebeautylab/salon-scheduler/internal/routes"
	ucStats "github.com/corebeautylab/salon-scheduler/internal/usecase/stats"
)

func main() {

	log := logger.New()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, log)

	redisCache, err := cache.New(cfg)
	if err != nil {
		// The API runs without Redis: stats go uncached and
		// logout falls back to token expiry.
		log.Warn().Err(err).Msg("redis unavailable, running without cache")
		redisCache = nil
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, redisCache, log)

	if redisCache != nil {
		var statsCache ucStats.Cache = redisCache
		jobs.Start(cfg, ucStats.NewAggregator(db, statsCache), log)
	}

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
