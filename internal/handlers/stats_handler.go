package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/corebeautylab/salon-scheduler/internal/config"
	"github.com/corebeautylab/salon-scheduler/internal/domain/schedule"
	"github.com/corebeautylab/salon-scheduler/internal/httperr"
	"github.com/corebeautylab/salon-scheduler/internal/httpresp"
	ucStats "github.com/corebeautylab/salon-scheduler/internal/usecase/stats"
)

type StatsHandler struct {
	db         *gorm.DB
	config     *config.Config
	log        zerolog.Logger
	aggregator *ucStats.Aggregator
}

func NewStatsHandler(
	db *gorm.DB,
	cfg *config.Config,
	log zerolog.Logger,
	aggregator *ucStats.Aggregator,
) *StatsHandler {
	return &StatsHandler{db: db, config: cfg, log: log, aggregator: aggregator}
}

func (h *StatsHandler) Get(c *gin.Context) {
	period := schedule.ParsePeriod(c.DefaultQuery("period", "today"))

	stats, err := h.aggregator.Execute(
		c.Request.Context(),
		period,
		salonNow(h.config),
		weekStartSetting(h.db),
	)
	if err != nil {
		h.log.Error().Err(err).Msg("stats aggregation failed")
		httperr.Internal(c, "failed_to_compute_stats", "Could not compute statistics.")
		return
	}

	httpresp.OK(c, stats)
}
