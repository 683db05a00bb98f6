package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/NithishMee/blood/internal/models"
	"github.com/NithishMee/blood/internal/validation"
)

// --- BLOOD RECEIVER SUBMISSION ---
func (h *Handler) CreateBloodReceiver(c *gin.Context) {
	var req struct {
		FullName         string  `json:"fullName" binding:"required"`
		Phone            string  `json:"phone" binding:"required"`
		BloodGroup       string  `json:"bloodGroup" binding:"required"`
		Latitude         float64 `json:"latitude"`
		Longitude        float64 `json:"longitude"`
		VerificationFile string  `json:"verificationFile"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receiver := models.BloodReceiver{
		ID:           primitive.NewObjectID(),
		FullName:     req.FullName,
		Phone:        req.Phone,
		BloodGroup:   req.BloodGroup,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Verification: models.NewVerification(time.Now()),
	}
	receiver.VerificationFile = req.VerificationFile

	collection := h.DB.Collection(models.KindBloodReceiver.Collection())
	if _, err := collection.InsertOne(context.TODO(), receiver); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": receiver.ID, "status": "pending_verification"})
}

// --- ORGAN RECEIVER SUBMISSION ---
func (h *Handler) CreateOrganReceiver(c *gin.Context) {
	var req struct {
		FullName         string  `json:"fullName" binding:"required"`
		Phone            string  `json:"phone" binding:"required"`
		Organ            string  `json:"organ" binding:"required"`
		Latitude         float64 `json:"latitude"`
		Longitude        float64 `json:"longitude"`
		VerificationFile string  `json:"verificationFile"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receiver := models.OrganReceiver{
		ID:           primitive.NewObjectID(),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Organ:        req.Organ,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Verification: models.NewVerification(time.Now()),
	}
	receiver.VerificationFile = req.VerificationFile

	collection := h.DB.Collection(models.KindOrganReceiver.Collection())
	if _, err := collection.InsertOne(context.TODO(), receiver); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": receiver.ID, "status": "pending_verification"})
}

// --- MONEY RECEIVER SUBMISSION ---
func (h *Handler) CreateMoneyReceiver(c *gin.Context) {
	var req struct {
		FullName         string  `json:"fullName"`
		Phone            string  `json:"phone"`
		AmountNeeded     float64 `json:"amountNeeded"`
		Purpose          string  `json:"purpose"`
		VerificationFile string  `json:"verificationFile"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receiver := models.MoneyReceiver{
		ID:           primitive.NewObjectID(),
		FullName:     req.FullName,
		Phone:        req.Phone,
		AmountNeeded: req.AmountNeeded,
		Purpose:      req.Purpose,
		Verification: models.NewVerification(time.Now()),
	}
	receiver.VerificationFile = req.VerificationFile

	collection := h.DB.Collection(models.KindMoneyReceiver.Collection())
	if _, err := collection.InsertOne(context.TODO(), receiver); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": receiver.ID, "status": "pending_verification"})
}

// findApprovedReceiver looks up the most recent approved record for a phone
// in the given collection, decoding into out. The latest decision wins:
// sort by verifiedAt, then submittedAt, both descending.
func (h *Handler) findApprovedReceiver(collection string, phone string, out interface{}) error {
	opts := options.FindOne().SetSort(bson.D{
		{Key: "verifiedAt", Value: -1},
		{Key: "submittedAt", Value: -1},
	})
	filter := bson.M{"phone": phone, "verificationStatus": models.StatusApproved}
	return h.DB.Collection(collection).FindOne(context.TODO(), filter, opts).Decode(out)
}

// respondReceiverStatus handles the fallback when no approved record exists:
// 404 if the phone never registered, otherwise 403 with the current status.
func (h *Handler) respondReceiverStatus(c *gin.Context, collection string, phone string) {
	opts := options.FindOne().SetSort(bson.D{{Key: "submittedAt", Value: -1}})

	var latest struct {
		VerificationStatus string `bson:"verificationStatus"`
	}
	err := h.DB.Collection(collection).FindOne(context.TODO(), bson.M{"phone": phone}, opts).Decode(&latest)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "No receiver record found for this phone, register first"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusForbidden, gin.H{
		"error":              "Your request is not yet approved",
		"verificationStatus": latest.VerificationStatus,
	})
}

// --- MATCHING DONORS FOR A BLOOD RECEIVER ---
// GET /api/blood-receiver/matching-donors?phone=...
func (h *Handler) MatchingBloodDonors(c *gin.Context) {
	phone := c.Query("phone")
	if !validation.ValidPhone(phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone must be exactly 10 digits"})
		return
	}

	var receiver models.BloodReceiver
	err := h.findApprovedReceiver(models.KindBloodReceiver.Collection(), phone, &receiver)
	if err == mongo.ErrNoDocuments {
		h.respondReceiverStatus(c, models.KindBloodReceiver.Collection(), phone)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filter := bson.M{
		"bloodGroup":         receiver.BloodGroup,
		"verificationStatus": models.StatusApproved,
	}
	collection := h.DB.Collection(models.KindBloodDonor.Collection())
	cursor, err := collection.Find(context.TODO(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(context.TODO())

	var donors []models.BloodDonor
	if err = cursor.All(context.TODO(), &donors); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if donors == nil {
		donors = make([]models.BloodDonor, 0)
	}

	// The receiver summary leaves the verification envelope out.
	c.JSON(http.StatusOK, gin.H{
		"receiver": gin.H{
			"id":         receiver.ID,
			"fullName":   receiver.FullName,
			"phone":      receiver.Phone,
			"bloodGroup": receiver.BloodGroup,
			"latitude":   receiver.Latitude,
			"longitude":  receiver.Longitude,
		},
		"donors": donors,
	})
}

// --- MATCHING DONORS FOR AN ORGAN RECEIVER ---
// GET /api/organ-receiver/matching-donors?phone=...
func (h *Handler) MatchingOrganDonors(c *gin.Context) {
	phone := c.Query("phone")
	if !validation.ValidPhone(phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone must be exactly 10 digits"})
		return
	}

	var receiver models.OrganReceiver
	err := h.findApprovedReceiver(models.KindOrganReceiver.Collection(), phone, &receiver)
	if err == mongo.ErrNoDocuments {
		h.respondReceiverStatus(c, models.KindOrganReceiver.Collection(), phone)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filter := bson.M{
		"organ":              receiver.Organ,
		"verificationStatus": models.StatusApproved,
	}
	collection := h.DB.Collection(models.KindOrganDonor.Collection())
	cursor, err := collection.Find(context.TODO(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(context.TODO())

	var donors []models.OrganDonor
	if err = cursor.All(context.TODO(), &donors); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if donors == nil {
		donors = make([]models.OrganDonor, 0)
	}

	c.JSON(http.StatusOK, gin.H{
		"receiver": gin.H{
			"id":        receiver.ID,
			"fullName":  receiver.FullName,
			"phone":     receiver.Phone,
			"organ":     receiver.Organ,
			"latitude":  receiver.Latitude,
			"longitude": receiver.Longitude,
		},
		"donors": donors,
	})
}
