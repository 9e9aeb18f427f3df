package dto

import "time"

// AppointmentItem is the list/calendar projection: the appointment
// joined with the display fields of its client and service.
type AppointmentItem struct {
	ID          uint      `json:"id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	DurationMin int       `json:"duration_min"`
	Completed   bool      `json:"completed"`
	Notes       string    `json:"notes"`

	ClientID   uint   `json:"client_id"`
	ClientName string `json:"client_name"`

	ServiceID       *uint   `json:"service_id"`
	ServiceName     string  `json:"service_name"`
	ServiceCategory string  `json:"service_category"`
	ServicePrice    float64 `json:"service_price"`
}
