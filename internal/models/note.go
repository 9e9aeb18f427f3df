package models

import "time"

// Note is a free-form journal entry keyed by calendar date,
// independent of any appointment.
type Note struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date time.Time `gorm:"type:date;not null" json:"date"`
	Body string    `gorm:"type:text;not null" json:"body"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
