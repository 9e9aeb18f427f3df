package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/corebeautylab/salon-scheduler/internal/domain/schedule"
	"github.com/corebeautylab/salon-scheduler/internal/dto"
	"github.com/corebeautylab/salon-scheduler/internal/models"
)

const cacheTTL = 60 * time.Second

// Cache is the optional read-through cache; nil disables caching.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type Aggregator struct {
	db    *gorm.DB
	cache Cache
}

func NewAggregator(db *gorm.DB, cache Cache) *Aggregator {
	return &Aggregator{db: db, cache: cache}
}

// Execute aggregates the period starting at its window start, open
// ended. Revenue intentionally uses the service's *current* catalog
// price (not a snapshot), summed over completed appointments only.
func (a *Aggregator) Execute(
	ctx context.Context,
	period schedule.Period,
	now time.Time,
	weekStart time.Weekday,
) (*dto.Stats, error) {

	key := cacheKey(period, now)
	if a.cache != nil {
		if raw, ok := a.cache.Get(ctx, key); ok {
			var cached dto.Stats
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	start := schedule.WindowStart(period, now, weekStart)

	var total int64
	if err := a.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("start_time >= ?", start).
		Count(&total).Error; err != nil {
		return nil, err
	}

	var completed int64
	if err := a.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("start_time >= ? AND completed = ?", start, true).
		Count(&completed).Error; err != nil {
		return nil, err
	}

	var clients int64
	if err := a.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("start_time >= ?", start).
		Distinct("client_id").
		Count(&clients).Error; err != nil {
		return nil, err
	}

	var revenue float64
	if err := a.db.WithContext(ctx).
		Table("appointments").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.completed = ? AND appointments.start_time >= ?", true, start).
		Select("COALESCE(SUM(services.price), 0)").
		Scan(&revenue).Error; err != nil {
		return nil, err
	}

	out := &dto.Stats{
		Period:            string(period),
		AppointmentsCount: total,
		CompletedCount:    completed,
		PendingCount:      total - completed,
		ClientsCount:      clients,
		Revenue:           fmt.Sprintf("%.2f", revenue),
	}

	if a.cache != nil {
		if raw, err := json.Marshal(out); err == nil {
			_ = a.cache.Set(ctx, key, string(raw), cacheTTL)
		}
	}

	return out, nil
}

func cacheKey(period schedule.Period, now time.Time) string {
	return fmt.Sprintf("stats:%s:%s", period, now.Format("2006-01-02"))
}
