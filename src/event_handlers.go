package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ttu/src/models"
	"ttu/src/types"
)

func applyEventUpdate(event *models.Event, body *types.UpdateEventRequestBody) error {
	if body.Title != nil {
		event.Title = *body.Title
	}
	if body.Description != nil {
		event.Description = body.Description
	}
	if body.Category != nil {
		event.Category = body.Category
	}
	if body.EventDate != nil {
		eventDate, err := models.ParseDateOnly(*body.EventDate)
		if err != nil {
			return err
		}
		event.EventDate = eventDate
	}
	if body.EventTime != nil {
		eventTime, err := models.ParseTimeOfDay(*body.EventTime)
		if err != nil {
			return err
		}
		event.EventTime = eventTime
	}
	if body.ImageURL != nil {
		event.ImageURL = body.ImageURL
	}
	if body.VenueID != nil {
		event.VenueID = *body.VenueID
	}
	return nil
}

func eventHandlers(g *gin.RouterGroup, db *gorm.DB) *gin.RouterGroup {
	g.
		GET("/events", func(ctx *gin.Context) {
			var query struct {
				types.ListQueryParams
				Category *string `form:"category"`
				VenueID  *uint   `form:"venue_id"`
				Search   *string `form:"search"`
			}
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query.Defaults()

			q := db.Model(&models.Event{}).Preload("Venue")
			if query.Category != nil {
				q = q.Where("category = ?", *query.Category)
			}
			if query.VenueID != nil {
				q = q.Where("venue_id = ?", *query.VenueID)
			}
			if query.Search != nil {
				term := "%" + *query.Search + "%"
				q = q.Where("title ILIKE ? OR description ILIKE ?", term, term)
			}
			var events []models.Event
			if err := q.Offset(query.Skip).Limit(query.Limit).Find(&events).Error; err != nil {
				log.Printf("Error listing events: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			responses := make([]types.EventWithVenueResponse, 0, len(events))
			for i := range events {
				responses = append(responses, types.NewEventWithVenueResponse(&events[i]))
			}
			ctx.JSON(http.StatusOK, responses)
		}).
		GET("/events/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var event models.Event
			if err := db.Preload("Venue").Where("id = ?", params.ID).First(&event).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, types.NewEventWithVenueResponse(&event))
		}).
		POST("/events", func(ctx *gin.Context) {
			var body types.CreateEventRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			eventDate, err := models.ParseDateOnly(body.EventDate)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			eventTime, err := models.ParseTimeOfDay(body.EventTime)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var event models.Event
			venueMissing := false
			if err := db.Transaction(func(tx *gorm.DB) error {
				var count int64
				if err := tx.Model(&models.Venue{}).Where("id = ?", body.VenueID).Count(&count).Error; err != nil {
					return err
				}
				if count == 0 {
					venueMissing = true
					return gorm.ErrRecordNotFound
				}
				event = models.Event{
					VenueID:     body.VenueID,
					Title:       body.Title,
					Description: body.Description,
					Category:    body.Category,
					EventDate:   eventDate,
					EventTime:   eventTime,
					ImageURL:    body.ImageURL,
				}
				return tx.Create(&event).Error
			}); err != nil {
				if venueMissing {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
					return
				}
				log.Printf("Error creating event: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, types.NewEventResponse(&event))
		}).
		PUT("/events/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateEventRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var event models.Event
			venueMissing := false
			if err := db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Where("id = ?", params.ID).First(&event).Error; err != nil {
					return err
				}
				if body.VenueID != nil {
					var count int64
					if err := tx.Model(&models.Venue{}).Where("id = ?", *body.VenueID).Count(&count).Error; err != nil {
						return err
					}
					if count == 0 {
						venueMissing = true
						return gorm.ErrRecordNotFound
					}
				}
				if err := applyEventUpdate(&event, &body); err != nil {
					return err
				}
				return tx.Save(&event).Error
			}); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					if venueMissing {
						ctx.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
						return
					}
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
					return
				}
				log.Printf("Error updating event: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, types.NewEventResponse(&event))
		}).
		DELETE("/events/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := db.Transaction(func(tx *gorm.DB) error {
				var event models.Event
				if err := tx.Where("id = ?", params.ID).First(&event).Error; err != nil {
					return err
				}
				return tx.Delete(&event).Error
			}); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
					return
				}
				log.Printf("Error deleting event: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
