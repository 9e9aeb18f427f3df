package models

import "time"

// Catalog categories (fixed set).
const (
	CategoryFace   = "FACE"
	CategoryHands  = "HANDS"
	CategoryFeet   = "FEET"
	CategoryBody   = "BODY"
	CategoryWaxing = "WAXING"
	CategoryOther  = "OTHER"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Category    string  `gorm:"size:20;default:'OTHER'" json:"category"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
