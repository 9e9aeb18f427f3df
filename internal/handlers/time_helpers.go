package handlers

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/corebeautylab/salon-scheduler/internal/config"
	"github.com/corebeautylab/salon-scheduler/internal/models"
	"github.com/corebeautylab/salon-scheduler/internal/timezone"
)

const weekStartKey = "week_start"

// All request dates are interpreted in the salon's configured
// timezone; the salon is single-tenant so there is exactly one.

func salonLocation(cfg *config.Config) *time.Location {
	return timezone.Location(cfg.Timezone)
}

func salonNow(cfg *config.Config) time.Time {
	return timezone.NowIn(cfg.Timezone)
}

func parseDate(cfg *config.Config, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, salonLocation(cfg))
}

// parseStart accepts a full RFC3339 timestamp or a local
// "2006-01-02T15:04" value from the calendar UI.
func parseStart(cfg *config.Config, s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(salonLocation(cfg)), nil
	}
	return time.ParseInLocation("2006-01-02T15:04", s, salonLocation(cfg))
}

// weekStartSetting reads the configured first day of the week;
// Monday when unset or unrecognized.
func weekStartSetting(db *gorm.DB) time.Weekday {
	var setting models.Setting
	if err := db.Where("key = ?", weekStartKey).First(&setting).Error; err != nil {
		return time.Monday
	}

	switch strings.ToLower(strings.TrimSpace(setting.Value)) {
	case "sunday":
		return time.Sunday
	case "saturday":
		return time.Saturday
	default:
		return time.Monday
	}
}
