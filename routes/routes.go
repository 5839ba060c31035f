package routes

import (
	"bengkelpro-backend/config"
	"bengkelpro-backend/controllers"
	"bengkelpro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id/summary", controllers.GetCustomerSummary)
			customers.GET("/:id/service-sessions", controllers.GetCustomerServiceSessions)
			customers.GET("/:id/whatsapp-message", controllers.GetWhatsAppMessage)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		// Service session routes
		api.POST("/service-sessions", controllers.CreateServiceSession)

		// Service item routes
		items := api.Group("/services")
		{
			items.POST("", controllers.CreateServiceItem)
			items.PUT("/:id", controllers.UpdateServiceItem)
			items.DELETE("/:id", controllers.DeleteServiceItem)
		}

		// Payment routes
		api.POST("/payments", controllers.CreatePayment)

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboard)

		// Workshop routes
		workshop := api.Group("/workshop")
		{
			workshop.GET("", controllers.GetWorkshop)
			workshop.PUT("", controllers.UpdateWorkshop)
		}
	}

	return r
}
