package models

import "time"

type Event struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	VenueID     uint      `gorm:"not null" json:"venue_id"`
	Title       string    `gorm:"size:150;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	Category    *string   `gorm:"size:50" json:"category"`
	EventDate   DateOnly  `gorm:"type:date;not null" json:"event_date"`
	EventTime   TimeOfDay `gorm:"type:time;not null" json:"event_time"`
	ImageURL    *string   `gorm:"size:500" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`

	Venue   Venue    `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"venue,omitempty"`
	Tickets []Ticket `gorm:"constraint:OnDelete:CASCADE" json:"tickets,omitempty"`
}
