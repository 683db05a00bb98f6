package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/NithishMee/blood/internal/models"
	"github.com/NithishMee/blood/internal/validation"
)

// --- BLOOD DONOR SUBMISSION ---
func (h *Handler) CreateBloodDonor(c *gin.Context) {
	var req struct {
		FullName         string  `json:"fullName" binding:"required"`
		Phone            string  `json:"phone" binding:"required"`
		Age              int     `json:"age" binding:"required"`
		Weight           float64 `json:"weight" binding:"required"`
		BloodGroup       string  `json:"bloodGroup" binding:"required"`
		HasDonatedBefore bool    `json:"hasDonatedBefore"`
		LastDonationDate string  `json:"lastDonationDate"`
		Latitude         float64 `json:"latitude"`
		Longitude        float64 `json:"longitude"`
		VerificationFile string  `json:"verificationFile"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	lastDonation, err := validation.CheckBloodDonor(req.Phone, req.Age, req.Weight, req.HasDonatedBefore, req.LastDonationDate, now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	donor := models.BloodDonor{
		ID:               primitive.NewObjectID(),
		FullName:         req.FullName,
		Phone:            req.Phone,
		Age:              req.Age,
		Weight:           req.Weight,
		BloodGroup:       req.BloodGroup,
		HasDonatedBefore: req.HasDonatedBefore,
		LastDonationDate: lastDonation,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Verification:     models.NewVerification(now),
	}
	donor.VerificationFile = req.VerificationFile

	collection := h.DB.Collection(models.KindBloodDonor.Collection())
	if _, err := collection.InsertOne(context.TODO(), donor); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": donor.ID, "status": "pending_verification"})
}

// --- ORGAN DONOR SUBMISSION ---
func (h *Handler) CreateOrganDonor(c *gin.Context) {
	var req struct {
		FullName         string  `json:"fullName" binding:"required"`
		Phone            string  `json:"phone" binding:"required"`
		Age              int     `json:"age"`
		Weight           float64 `json:"weight" binding:"required"`
		Organ            string  `json:"organ" binding:"required"`
		HasDonatedBefore bool    `json:"hasDonatedBefore"`
		LastDonationDate string  `json:"lastDonationDate"`
		Latitude         float64 `json:"latitude"`
		Longitude        float64 `json:"longitude"`
		UserID           string  `json:"userId"`
		VerificationFile string  `json:"verificationFile"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	lastDonation, err := validation.CheckOrganDonor(req.Phone, req.Weight, req.HasDonatedBefore, req.LastDonationDate, now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	donor := models.OrganDonor{
		ID:               primitive.NewObjectID(),
		FullName:         req.FullName,
		Phone:            req.Phone,
		Age:              req.Age,
		Weight:           req.Weight,
		Organ:            req.Organ,
		HasDonatedBefore: req.HasDonatedBefore,
		LastDonationDate: lastDonation,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Verification:     models.NewVerification(now),
	}
	donor.VerificationFile = req.VerificationFile

	if req.UserID != "" {
		if uid, err := primitive.ObjectIDFromHex(req.UserID); err == nil {
			donor.UserID = &uid
		} else {
			log.Printf("Donation log not appended: invalid userId %q: %v", req.UserID, err)
		}
	}

	collection := h.DB.Collection(models.KindOrganDonor.Collection())
	if _, err := collection.InsertOne(context.TODO(), donor); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.appendDonationLog(donor.UserID, models.DonationLogEntry{
		DonationType: "organ",
		DonationID:   donor.ID,
		Detail:       donor.Organ,
		Status:       "pending_verification",
		CreatedAt:    now,
	})

	c.JSON(http.StatusCreated, gin.H{"id": donor.ID, "status": "pending_verification"})
}

// --- MONEY DONOR SUBMISSION ---
func (h *Handler) CreateMoneyDonor(c *gin.Context) {
	var req struct {
		FullName         string  `json:"fullName"`
		Phone            string  `json:"phone"`
		Amount           float64 `json:"amount"`
		UserID           string  `json:"userId"`
		VerificationFile string  `json:"verificationFile"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	donor := models.MoneyDonor{
		ID:           primitive.NewObjectID(),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Amount:       req.Amount,
		Verification: models.NewVerification(now),
	}
	donor.VerificationFile = req.VerificationFile

	if req.UserID != "" {
		if uid, err := primitive.ObjectIDFromHex(req.UserID); err == nil {
			donor.UserID = &uid
		} else {
			log.Printf("Donation log not appended: invalid userId %q: %v", req.UserID, err)
		}
	}

	collection := h.DB.Collection(models.KindMoneyDonor.Collection())
	if _, err := collection.InsertOne(context.TODO(), donor); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.appendDonationLog(donor.UserID, models.DonationLogEntry{
		DonationType: "money",
		DonationID:   donor.ID,
		Detail:       fmt.Sprintf("%.2f", donor.Amount),
		Status:       "pending_verification",
		CreatedAt:    now,
	})

	c.JSON(http.StatusCreated, gin.H{"id": donor.ID, "status": "pending_verification"})
}

// appendDonationLog pushes an entry onto the user's donation history.
// Best-effort: the donor record is already saved, so a missing user or a
// failed update is logged and otherwise ignored.
func (h *Handler) appendDonationLog(userID *primitive.ObjectID, entry models.DonationLogEntry) {
	if userID == nil {
		return
	}

	collection := h.DB.Collection("users")
	result, err := collection.UpdateOne(
		context.TODO(),
		bson.M{"_id": *userID},
		bson.M{"$push": bson.M{"donations": entry}},
	)
	if err != nil {
		log.Printf("Failed to append donation log for user %s: %v", userID.Hex(), err)
		return
	}
	if result.MatchedCount == 0 {
		log.Printf("Donation log not appended: user %s not found", userID.Hex())
	}
}

// --- LIST BLOOD DONORS (approved only) ---
func (h *Handler) ListBloodDonors(c *gin.Context) {
	collection := h.DB.Collection(models.KindBloodDonor.Collection())
	cursor, err := collection.Find(context.TODO(), bson.M{"verificationStatus": models.StatusApproved})
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

	c.JSON(http.StatusOK, donors)
}

// --- LIST ORGAN DONORS ---
// TODO: confirm with the verification team whether this listing should
// filter on approval the way blood donors do; current consumers expect the
// unfiltered list.
func (h *Handler) ListOrganDonors(c *gin.Context) {
	collection := h.DB.Collection(models.KindOrganDonor.Collection())
	cursor, err := collection.Find(context.TODO(), bson.M{})
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

	c.JSON(http.StatusOK, donors)
}

// --- HAS DONATED BEFORE ---
// GET /api/has-donated?phone=...&type={blood|organ}
func (h *Handler) HasDonatedBefore(c *gin.Context) {
	phone := c.Query("phone")
	if !validation.ValidPhone(phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone must be exactly 10 digits"})
		return
	}

	var kind models.Kind
	switch c.Query("type") {
	case "blood":
		kind = models.KindBloodDonor
	case "organ":
		kind = models.KindOrganDonor
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be blood or organ"})
		return
	}

	// Any record for this phone counts, regardless of verification state.
	collection := h.DB.Collection(kind.Collection())
	count, err := collection.CountDocuments(context.TODO(), bson.M{"phone": phone})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hasDonated": count > 0})
}
