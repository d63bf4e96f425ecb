package main

import (
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"path"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ttu/src/boot"
	"ttu/src/db"
	"ttu/src/models"
)

const apiVersion = "1.0.0"

func init() {
	// Prices serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

var eventDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := models.ParseDateOnly(date)
	return err == nil
}

var eventTimeValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := models.ParseTimeOfDay(value)
	return err == nil
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("eventdate", eventDateValidatorFunc)
		v.RegisterValidation("eventtime", eventTimeValidatorFunc)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	// Middleware goes on before any route so / and /health get CORS headers too.
	router.Use(corsMiddleware())
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"message": "Welcome to TicketToU API",
			"version": apiVersion,
		})
	})
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	return router
}

func corsMiddleware() gin.HandlerFunc {
	cc := cors.DefaultConfig()
	cc.AllowOrigins = []string{
		"http://localhost:5173",
		"http://127.0.0.1:5173",
		"http://localhost:5174",
		"http://127.0.0.1:5174",
	}
	cc.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	cc.AllowHeaders = []string{"*"}
	cc.AllowCredentials = true
	return cors.New(cc)
}

func apiRoutes(router *gin.Engine, dbHandle *gorm.DB) {
	api := router.Group("")
	venueHandlers(api, dbHandle)
	eventHandlers(api, dbHandle)
	ticketHandlers(api, dbHandle)
	statsHandlers(api, dbHandle)
}

func initLogger() {
	cwd, _ := os.Getwd()
	serverLogs := path.Join(cwd, "logs", "server.log")
	apiLogs := path.Join(cwd, "logs", "api.log")
	gin.ForceConsoleColor()

	f, _ := os.Create(apiLogs)
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func main() {
	seed := flag.Bool("seed", false, "seed the database with fixture data and exit")
	flag.Parse()

	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	initLogger()
	registerValidators()

	dbHandle := db.Connect()
	boot.InitDb(dbHandle)

	if *seed {
		if err := boot.SeedDb(dbHandle); err != nil {
			log.Fatalf("Error seeding database: %s\n", err.Error())
		}
		log.Println("Database seeded")
		return
	}

	router := setupRouter()
	apiRoutes(router, dbHandle)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8000"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server error: %s\n", err.Error())
	}
}
