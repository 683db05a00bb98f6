package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/NithishMee/blood/internal/handlers"
	"github.com/NithishMee/blood/internal/middleware"
	"github.com/NithishMee/blood/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(os.Getenv("MONGO_URI")))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)
	db := client.Database(os.Getenv("MONGO_DATABASE"))
	log.Println("Successfully connected to MongoDB!")

	// Phone is the user identity, enforce uniqueness at the database level
	// so concurrent registrations cannot race past the handler's check.
	_, err = db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "phone", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("Failed to create unique phone index: %v", err)
	}

	// --- Initialize Services ---
	notificationSvc := services.NewNotificationService()

	// --- Initialize Handlers with DB and Services ---
	h := handlers.NewHandler(db, notificationSvc)

	// --- Gin Router ---
	r := gin.Default()

	// --- Middleware ---
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	// --- Routes ---
	apiRoutes := r.Group("/api")
	{
		// Users
		apiRoutes.POST("/register", h.RegisterUser)
		apiRoutes.POST("/login", h.Login)
		apiRoutes.GET("/user/:id", h.GetUser)
		apiRoutes.PUT("/user/:id", h.UpdateUser)
		apiRoutes.GET("/users", h.ListUsers)

		// Donor submissions and listings
		apiRoutes.POST("/blood-donor", h.CreateBloodDonor)
		apiRoutes.POST("/organ-donor", h.CreateOrganDonor)
		apiRoutes.POST("/money-donor", h.CreateMoneyDonor)
		apiRoutes.GET("/blood-donors", h.ListBloodDonors)
		apiRoutes.GET("/organ-donors", h.ListOrganDonors)
		apiRoutes.GET("/has-donated", h.HasDonatedBefore)

		// Receiver submissions and matching
		apiRoutes.POST("/blood-receiver", h.CreateBloodReceiver)
		apiRoutes.POST("/organ-receiver", h.CreateOrganReceiver)
		apiRoutes.POST("/money-receiver", h.CreateMoneyReceiver)
		apiRoutes.GET("/blood-receiver/matching-donors", h.MatchingBloodDonors)
		apiRoutes.GET("/organ-receiver/matching-donors", h.MatchingOrganDonors)
	}

	adminRoutes := r.Group("/api/admin")
	adminRoutes.Use(middleware.AdminOnly())
	{
		adminRoutes.GET("/pending-verifications", h.PendingVerifications)
		adminRoutes.GET("/verification/:kind/:id", h.VerificationDetail)
		adminRoutes.POST("/verify", h.Verify)
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080" // Default port
	}
	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}
