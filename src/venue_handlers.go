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

func applyVenueUpdate(venue *models.Venue, body *types.UpdateVenueRequestBody) {
	if body.Name != nil {
		venue.Name = *body.Name
	}
	if body.Address != nil {
		venue.Address = *body.Address
	}
	if body.City != nil {
		venue.City = *body.City
	}
	if body.Capacity != nil {
		venue.Capacity = *body.Capacity
	}
	if body.ImageURL != nil {
		venue.ImageURL = body.ImageURL
	}
}

func venueHandlers(g *gin.RouterGroup, db *gorm.DB) *gin.RouterGroup {
	g.
		GET("/venues", func(ctx *gin.Context) {
			var query struct {
				types.ListQueryParams
				Search *string `form:"search"`
				City   *string `form:"city"`
			}
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query.Defaults()

			q := db.Model(&models.Venue{})
			if query.Search != nil {
				q = q.Where("name ILIKE ?", "%"+*query.Search+"%")
			}
			if query.City != nil {
				q = q.Where("city = ?", *query.City)
			}
			var venues []models.Venue
			if err := q.Offset(query.Skip).Limit(query.Limit).Find(&venues).Error; err != nil {
				log.Printf("Error listing venues: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			responses := make([]types.VenueResponse, 0, len(venues))
			for i := range venues {
				responses = append(responses, types.NewVenueResponse(&venues[i]))
			}
			ctx.JSON(http.StatusOK, responses)
		}).
		GET("/venues/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var venue models.Venue
			if err := db.Preload("Events").Where("id = ?", params.ID).First(&venue).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, types.NewVenueWithEventsResponse(&venue))
		}).
		POST("/venues", func(ctx *gin.Context) {
			var body types.CreateVenueRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			venue := models.Venue{
				Name:     body.Name,
				Address:  body.Address,
				City:     body.City,
				Capacity: body.Capacity,
				ImageURL: body.ImageURL,
			}
			if err := db.Create(&venue).Error; err != nil {
				log.Printf("Error creating venue: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, types.NewVenueResponse(&venue))
		}).
		PUT("/venues/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateVenueRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var venue models.Venue
			if err := db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Where("id = ?", params.ID).First(&venue).Error; err != nil {
					return err
				}
				applyVenueUpdate(&venue, &body)
				return tx.Save(&venue).Error
			}); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
					return
				}
				log.Printf("Error updating venue: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, types.NewVenueResponse(&venue))
		}).
		DELETE("/venues/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := db.Transaction(func(tx *gorm.DB) error {
				var venue models.Venue
				if err := tx.Where("id = ?", params.ID).First(&venue).Error; err != nil {
					return err
				}
				// Events and their tickets go with the venue via FK cascade.
				return tx.Delete(&venue).Error
			}); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
					return
				}
				log.Printf("Error deleting venue: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		GET("/venues/:id/events", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var venue models.Venue
			if err := db.Where("id = ?", params.ID).First(&venue).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			var events []models.Event
			if err := db.Where("venue_id = ?", params.ID).Find(&events).Error; err != nil {
				log.Printf("Error listing venue events: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			payload := make([]gin.H, 0, len(events))
			for _, e := range events {
				payload = append(payload, gin.H{
					"id":          e.ID,
					"title":       e.Title,
					"description": e.Description,
					"category":    e.Category,
					"event_date":  e.EventDate.String(),
					"event_time":  e.EventTime.String(),
					"image_url":   e.ImageURL,
					"created_at":  e.CreatedAt,
				})
			}
			ctx.JSON(http.StatusOK, payload)
		})
	return g
}
