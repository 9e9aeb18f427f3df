package models

import "time"

type Setting struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Key   string `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:text" json:"value"`

	// string | number | boolean | color | json
	Type        string `gorm:"size:20;default:'string'" json:"type"`
	Category    string `gorm:"size:50" json:"category"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
