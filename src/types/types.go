package types

import (
	"time"

	"github.com/shopspring/decimal"
	"ttu/src/models"
)

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

// ListQueryParams carries the offset/limit pair shared by every list
// endpoint. Limit is uncapped on purpose, matching the public contract.
type ListQueryParams struct {
	Skip  int `form:"skip" binding:"omitempty,gte=0"`
	Limit int `form:"limit" binding:"omitempty,gte=1"`
}

func (p *ListQueryParams) Defaults() {
	if p.Limit == 0 {
		p.Limit = 100
	}
}

type CreateVenueRequestBody struct {
	Name     string  `json:"name" binding:"required,min=1,max=100"`
	Address  string  `json:"address" binding:"required,min=1,max=255"`
	City     string  `json:"city" binding:"required,min=1,max=100"`
	Capacity int     `json:"capacity" binding:"required,gt=0"`
	ImageURL *string `json:"image_url" binding:"omitempty,max=500"`
}

// UpdateVenueRequestBody merges by presence: a nil field is left
// untouched. Explicit JSON null binds to nil too, so an update cannot
// clear image_url back to null.
type UpdateVenueRequestBody struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Address  *string `json:"address" binding:"omitempty,min=1,max=255"`
	City     *string `json:"city" binding:"omitempty,min=1,max=100"`
	Capacity *int    `json:"capacity" binding:"omitempty,gt=0"`
	ImageURL *string `json:"image_url" binding:"omitempty,max=500"`
}

type CreateEventRequestBody struct {
	Title       string  `json:"title" binding:"required,min=1,max=150"`
	Description *string `json:"description"`
	Category    *string `json:"category" binding:"omitempty,max=50"`
	EventDate   string  `json:"event_date" binding:"required,eventdate"`
	EventTime   string  `json:"event_time" binding:"required,eventtime"`
	ImageURL    *string `json:"image_url" binding:"omitempty,max=500"`
	VenueID     uint    `json:"venue_id" binding:"required"`
}

// UpdateEventRequestBody merges by presence, like
// UpdateVenueRequestBody: nullable fields cannot be cleared back to
// null through an update.
type UpdateEventRequestBody struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=150"`
	Description *string `json:"description"`
	Category    *string `json:"category" binding:"omitempty,max=50"`
	EventDate   *string `json:"event_date" binding:"omitempty,eventdate"`
	EventTime   *string `json:"event_time" binding:"omitempty,eventtime"`
	ImageURL    *string `json:"image_url" binding:"omitempty,max=500"`
	VenueID     *uint   `json:"venue_id"`
}

type CreateTicketRequestBody struct {
	BuyerName  string          `json:"buyer_name" binding:"required,min=1,max=100"`
	BuyerEmail string          `json:"buyer_email" binding:"required,min=1,max=150"`
	TicketType string          `json:"ticket_type" binding:"omitempty,oneof=Standard VIP Premium"`
	Price      decimal.Decimal `json:"price"`
	EventID    uint            `json:"event_id" binding:"required"`
}

type VenueResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Capacity  int       `json:"capacity"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

type EventSummary struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	EventDate string  `json:"event_date"`
	Category  *string `json:"category"`
}

type VenueWithEventsResponse struct {
	VenueResponse
	Events []EventSummary `json:"events"`
}

type VenueSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Capacity int    `json:"capacity"`
}

type EventResponse struct {
	ID          uint      `json:"id"`
	VenueID     uint      `json:"venue_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	EventDate   string    `json:"event_date"`
	EventTime   string    `json:"event_time"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type EventWithVenueResponse struct {
	EventResponse
	Venue VenueSummary `json:"venue"`
}

type TicketResponse struct {
	ID               uint            `json:"id"`
	EventID          uint            `json:"event_id"`
	BuyerName        string          `json:"buyer_name"`
	BuyerEmail       string          `json:"buyer_email"`
	TicketType       string          `json:"ticket_type"`
	Price            decimal.Decimal `json:"price"`
	ConfirmationCode string          `json:"confirmation_code"`
	PurchaseDate     time.Time       `json:"purchase_date"`
	Status           string          `json:"status"`
}

func NewVenueResponse(v *models.Venue) VenueResponse {
	return VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		Address:   v.Address,
		City:      v.City,
		Capacity:  v.Capacity,
		ImageURL:  v.ImageURL,
		CreatedAt: v.CreatedAt,
	}
}

func NewVenueWithEventsResponse(v *models.Venue) VenueWithEventsResponse {
	events := make([]EventSummary, 0, len(v.Events))
	for _, e := range v.Events {
		events = append(events, EventSummary{
			ID:        e.ID,
			Title:     e.Title,
			EventDate: e.EventDate.String(),
			Category:  e.Category,
		})
	}
	return VenueWithEventsResponse{
		VenueResponse: NewVenueResponse(v),
		Events:        events,
	}
}

func NewEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		VenueID:     e.VenueID,
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category,
		EventDate:   e.EventDate.String(),
		EventTime:   e.EventTime.String(),
		ImageURL:    e.ImageURL,
		CreatedAt:   e.CreatedAt,
	}
}

func NewEventWithVenueResponse(e *models.Event) EventWithVenueResponse {
	return EventWithVenueResponse{
		EventResponse: NewEventResponse(e),
		Venue: VenueSummary{
			ID:       e.Venue.ID,
			Name:     e.Venue.Name,
			City:     e.Venue.City,
			Capacity: e.Venue.Capacity,
		},
	}
}

func NewTicketResponse(t *models.Ticket) TicketResponse {
	return TicketResponse{
		ID:               t.ID,
		EventID:          t.EventID,
		BuyerName:        t.BuyerName,
		BuyerEmail:       t.BuyerEmail,
		TicketType:       t.TicketType,
		Price:            t.Price,
		ConfirmationCode: t.ConfirmationCode,
		PurchaseDate:     t.PurchaseDate,
		Status:           t.Status,
	}
}
