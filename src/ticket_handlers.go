package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ttu/src/models"
	"ttu/src/types"
	"ttu/src/utils"
)

func ticketHandlers(g *gin.RouterGroup, db *gorm.DB) *gin.RouterGroup {
	g.
		GET("/tickets", func(ctx *gin.Context) {
			var query types.ListQueryParams
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query.Defaults()

			var tickets []models.Ticket
			if err := db.Offset(query.Skip).Limit(query.Limit).Find(&tickets).Error; err != nil {
				log.Printf("Error listing tickets: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			responses := make([]types.TicketResponse, 0, len(tickets))
			for i := range tickets {
				responses = append(responses, types.NewTicketResponse(&tickets[i]))
			}
			ctx.JSON(http.StatusOK, responses)
		}).
		GET("/tickets/code/:code", func(ctx *gin.Context) {
			var params struct {
				Code string `uri:"code" binding:"required"`
			}
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var ticket models.Ticket
			if err := db.Where("confirmation_code = ?", params.Code).First(&ticket).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, types.NewTicketResponse(&ticket))
		}).
		GET("/tickets/event/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var count int64
			if err := db.Model(&models.Event{}).Where("id = ?", params.ID).Count(&count).Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if count == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
				return
			}
			var tickets []models.Ticket
			if err := db.Where("event_id = ?", params.ID).Find(&tickets).Error; err != nil {
				log.Printf("Error listing event tickets: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			responses := make([]types.TicketResponse, 0, len(tickets))
			for i := range tickets {
				responses = append(responses, types.NewTicketResponse(&tickets[i]))
			}
			ctx.JSON(http.StatusOK, responses)
		}).
		GET("/tickets/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var ticket models.Ticket
			if err := db.Where("id = ?", params.ID).First(&ticket).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, types.NewTicketResponse(&ticket))
		}).
		POST("/tickets", func(ctx *gin.Context) {
			var body types.CreateTicketRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if !body.Price.IsPositive() {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "price must be greater than 0"})
				return
			}
			if body.Price.Exponent() < -2 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "price must have at most 2 decimal places"})
				return
			}
			if body.TicketType == "" {
				body.TicketType = models.TICKET_STANDARD
			}
			var ticket models.Ticket
			eventMissing := false
			if err := db.Transaction(func(tx *gorm.DB) error {
				var count int64
				if err := tx.Model(&models.Event{}).Where("id = ?", body.EventID).Count(&count).Error; err != nil {
					return err
				}
				if count == 0 {
					eventMissing = true
					return gorm.ErrRecordNotFound
				}
				ticket = models.Ticket{
					EventID:          body.EventID,
					BuyerName:        body.BuyerName,
					BuyerEmail:       body.BuyerEmail,
					TicketType:       body.TicketType,
					Price:            body.Price,
					ConfirmationCode: utils.GenerateConfirmationCode(),
					Status:           models.TICKET_CONFIRMED,
				}
				return tx.Create(&ticket).Error
			}); err != nil {
				if eventMissing {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
					return
				}
				log.Printf("Error purchasing ticket: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, types.NewTicketResponse(&ticket))
		}).
		DELETE("/tickets/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			alreadyCancelled := false
			if err := db.Transaction(func(tx *gorm.DB) error {
				var ticket models.Ticket
				if err := tx.Where("id = ?", params.ID).First(&ticket).Error; err != nil {
					return err
				}
				// Conditional update so concurrent cancels cannot both win.
				res := tx.Model(&models.Ticket{}).
					Where("id = ? AND status <> ?", ticket.ID, models.TICKET_CANCELLED).
					Update("status", models.TICKET_CANCELLED)
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					alreadyCancelled = true
					return errors.New("Ticket is already cancelled")
				}
				return nil
			}); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
					return
				}
				if alreadyCancelled {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "Ticket is already cancelled"})
					return
				}
				log.Printf("Error cancelling ticket: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
