package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TICKET_STANDARD = "Standard"
	TICKET_VIP      = "VIP"
	TICKET_PREMIUM  = "Premium"
)

const (
	TICKET_CONFIRMED = "confirmed"
	TICKET_CANCELLED = "cancelled"
	TICKET_USED      = "used"
)

type Ticket struct {
	ID               uint            `gorm:"primarykey" json:"id"`
	EventID          uint            `gorm:"not null" json:"event_id"`
	BuyerName        string          `gorm:"size:100;not null" json:"buyer_name"`
	BuyerEmail       string          `gorm:"size:150;not null" json:"buyer_email"`
	TicketType       string          `gorm:"size:50;default:'Standard'" json:"ticket_type"`
	Price            decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	ConfirmationCode string          `gorm:"size:20;uniqueIndex;not null" json:"confirmation_code"`
	PurchaseDate     time.Time       `gorm:"autoCreateTime" json:"purchase_date"`
	Status           string          `gorm:"size:20;default:'confirmed'" json:"status"`

	Event Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"event,omitempty"`
}
