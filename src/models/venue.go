package models

import "time"

type Venue struct {
	ID       uint    `gorm:"primarykey" json:"id"`
	Name     string  `gorm:"size:100;not null" json:"name"`
	Address  string  `gorm:"size:255;not null" json:"address"`
	City     string  `gorm:"size:100;not null" json:"city"`
	Capacity int     `gorm:"not null" json:"capacity"`
	ImageURL *string `gorm:"size:500" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`

	Events []Event `gorm:"constraint:OnDelete:CASCADE" json:"events,omitempty"`
}
