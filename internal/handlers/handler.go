package handlers

import (
	"github.com/NithishMee/blood/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Handler carries the shared dependencies every endpoint needs: the Mongo
// database and the SMS notification service.
type Handler struct {
	DB              *mongo.Database
	NotificationSvc *services.NotificationService
}

func NewHandler(db *mongo.Database, notificationSvc *services.NotificationService) *Handler {
	return &Handler{
		DB:              db,
		NotificationSvc: notificationSvc,
	}
}
