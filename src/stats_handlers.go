package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ttu/src/config"
	"ttu/src/models"
)

func statsHandlers(g *gin.RouterGroup, db *gorm.DB) *gin.RouterGroup {
	g.
		GET("/stats/dashboard", func(ctx *gin.Context) {
			var (
				totalVenues      int64
				totalEvents      int64
				totalTickets     int64
				confirmedTickets int64
				cancelledTickets int64
				totalRevenue     float64
				recentTickets    []models.Ticket
				upcomingEvents   []models.Event
			)
			if err := db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Model(&models.Venue{}).Count(&totalVenues).Error; err != nil {
					return err
				}
				if err := tx.Model(&models.Event{}).Count(&totalEvents).Error; err != nil {
					return err
				}
				if err := tx.Model(&models.Ticket{}).Count(&totalTickets).Error; err != nil {
					return err
				}
				if err := tx.Model(&models.Ticket{}).
					Select("COALESCE(SUM(price), 0)").
					Where("status <> ?", models.TICKET_CANCELLED).
					Scan(&totalRevenue).Error; err != nil {
					return err
				}
				if err := tx.
					Order("purchase_date desc").
					Limit(10).
					Find(&recentTickets).Error; err != nil {
					return err
				}
				today := time.Now().Format(config.DATE_PARSE_FORMAT)
				if err := tx.
					Where("event_date >= ?", today).
					Order("event_date asc").
					Limit(5).
					Find(&upcomingEvents).Error; err != nil {
					return err
				}
				if err := tx.Model(&models.Ticket{}).
					Where("status = ?", models.TICKET_CONFIRMED).
					Count(&confirmedTickets).Error; err != nil {
					return err
				}
				return tx.Model(&models.Ticket{}).
					Where("status = ?", models.TICKET_CANCELLED).
					Count(&cancelledTickets).Error
			}); err != nil {
				log.Printf("Error computing dashboard stats: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}

			recent := make([]gin.H, 0, len(recentTickets))
			for _, t := range recentTickets {
				price, _ := t.Price.Float64()
				recent = append(recent, gin.H{
					"id":                t.ID,
					"confirmation_code": t.ConfirmationCode,
					"buyer_name":        t.BuyerName,
					"buyer_email":       t.BuyerEmail,
					"event_id":          t.EventID,
					"ticket_type":       t.TicketType,
					"price":             price,
					"status":            t.Status,
					"purchase_date":     t.PurchaseDate,
				})
			}
			upcoming := make([]gin.H, 0, len(upcomingEvents))
			for _, e := range upcomingEvents {
				upcoming = append(upcoming, gin.H{
					"id":         e.ID,
					"title":      e.Title,
					"event_date": e.EventDate.String(),
					"event_time": e.EventTime.String(),
					"category":   e.Category,
					"venue_id":   e.VenueID,
				})
			}

			ctx.JSON(http.StatusOK, gin.H{
				"total_venues":      totalVenues,
				"total_events":      totalEvents,
				"total_tickets":     totalTickets,
				"total_revenue":     totalRevenue,
				"confirmed_tickets": confirmedTickets,
				"cancelled_tickets": cancelledTickets,
				"recent_tickets":    recent,
				"upcoming_events":   upcoming,
			})
		})
	return g
}
