package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/corebeautylab/salon-scheduler/internal/config"
	"github.com/corebeautylab/salon-scheduler/internal/domain/schedule"
	"github.com/corebeautylab/salon-scheduler/internal/httperr"
	"github.com/corebeautylab/salon-scheduler/internal/httpresp"
	ucAppointment "github.com/corebeautylab/salon-scheduler/internal/usecase/appointment"
)

type ScheduleHandler struct {
	db     *gorm.DB
	config *config.Config
	log    zerolog.Logger
	listUC *ucAppointment.ListAppointments
}

func NewScheduleHandler(
	db *gorm.DB,
	cfg *config.Config,
	log zerolog.Logger,
	listUC *ucAppointment.ListAppointments,
) *ScheduleHandler {
	return &ScheduleHandler{db: db, config: cfg, log: log, listUC: listUC}
}

// Day projects one day onto the fixed hourly grid.
func (h *ScheduleHandler) Day(c *gin.Context) {
	day := schedule.Today(salonNow(h.config), salonLocation(h.config))

	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := parseDate(h.config, dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		day = parsed
	}

	items, err := h.listUC.ByDay(c.Request.Context(), day)
	if err != nil {
		h.log.Error().Err(err).Msg("day view failed")
		httperr.Internal(c, "failed_to_build_schedule", "Could not build the day view.")
		return
	}

	httpresp.OK(c, schedule.BuildDayGrid(day, items))
}

// Week projects the 7 days from the anchor's week start.
func (h *ScheduleHandler) Week(c *gin.Context) {
	anchor := schedule.Today(salonNow(h.config), salonLocation(h.config))

	if anchorStr := c.Query("anchor"); anchorStr != "" {
		parsed, err := parseDate(h.config, anchorStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Anchor must be YYYY-MM-DD.")
			return
		}
		anchor = parsed
	}

	weekStart := weekStartSetting(h.db)
	start := schedule.StartOfWeek(anchor, weekStart)
	end := start.AddDate(0, 0, 6)

	items, err := h.listUC.ByRange(c.Request.Context(), start, end)
	if err != nil {
		h.log.Error().Err(err).Msg("week view failed")
		httperr.Internal(c, "failed_to_build_schedule", "Could not build the week view.")
		return
	}

	httpresp.OK(c, schedule.BuildWeekGrid(anchor, weekStart, items))
}

// Slot returns the candidate interval for an empty-cell click.
// The caller still picks client and service before persisting.
func (h *ScheduleHandler) Slot(c *gin.Context) {
	dateStr := c.Query("date")
	hourStr := c.Query("hour")
	if dateStr == "" || hourStr == "" {
		httperr.BadRequest(c, "invalid_request", "Date and hour are required.")
		return
	}

	day, err := parseDate(h.config, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < schedule.FirstHour || hour > schedule.LastHour {
		httperr.BadRequest(c, "invalid_hour", "Hour is outside business hours.")
		return
	}

	httpresp.OK(c, schedule.CandidateForCell(day, hour))
}
