package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"bengkelpro-backend/config"
	"bengkelpro-backend/models"
	"bengkelpro-backend/routes"
	"bengkelpro-backend/services"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.InitLogger()
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Workshop{},
		&models.User{},
		&models.Customer{},
		&models.ServiceSession{},
		&models.ServiceItem{},
		&models.Payment{},
		&models.ReminderLog{},
	)
}

func main() {
	defer config.Logger.Sync()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	reminders := services.NewReminderService(config.DB, config.Logger)
	reminders.StartScheduler()

	r := routes.SetupRouter()
	r.Run(":" + port)
}
