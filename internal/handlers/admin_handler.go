package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/NithishMee/blood/internal/models"
)

// --- PENDING VERIFICATIONS (grouped by kind) ---
func (h *Handler) PendingVerifications(c *gin.Context) {
	pending := gin.H{}

	for _, kind := range models.Kinds {
		collection := h.DB.Collection(kind.Collection())
		cursor, err := collection.Find(context.TODO(), bson.M{"verificationStatus": models.StatusPending})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		records := kind.NewRecordSlice()
		if err := cursor.All(context.TODO(), records); err != nil {
			cursor.Close(context.TODO())
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		cursor.Close(context.TODO())

		pending[string(kind)] = records
	}

	c.JSON(http.StatusOK, pending)
}

// findRecord loads one record of the given kind by id, decoding into the
// kind's concrete type.
func (h *Handler) findRecord(kind models.Kind, id primitive.ObjectID) (interface{}, error) {
	record := kind.NewRecord()
	err := h.DB.Collection(kind.Collection()).FindOne(context.TODO(), bson.M{"_id": id}).Decode(record)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// --- VERIFICATION DETAIL ---
// GET /api/admin/verification/:kind/:id
func (h *Handler) VerificationDetail(c *gin.Context) {
	kind, err := models.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record ID"})
		return
	}

	record, err := h.findRecord(kind, id)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// --- VERIFY (admin decision) ---
// POST /api/admin/verify
func (h *Handler) Verify(c *gin.Context) {
	var req struct {
		Kind   string `json:"kind" binding:"required"`
		ID     string `json:"id" binding:"required"`
		Status string `json:"status" binding:"required"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind, err := models.ParseKind(req.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidDecision(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be approved or rejected"})
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record ID"})
		return
	}

	update := bson.M{"$set": bson.M{
		"verificationStatus": req.Status,
		"isVerified":         req.Status == models.StatusApproved,
		"adminNotes":         req.Notes,
		"verifiedAt":         time.Now(),
	}}

	// A record transitions at most once: the update only matches while the
	// record is still pending.
	collection := h.DB.Collection(kind.Collection())
	result, err := collection.UpdateOne(context.TODO(),
		bson.M{"_id": id, "verificationStatus": models.StatusPending}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result.MatchedCount == 0 {
		var current struct {
			VerificationStatus string `bson:"verificationStatus"`
		}
		err := collection.FindOne(context.TODO(), bson.M{"_id": id}).Decode(&current)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusConflict, gin.H{
			"error":              "Record has already been decided",
			"verificationStatus": current.VerificationStatus,
		})
		return
	}

	record, err := h.findRecord(kind, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if contact, ok := record.(interface{ ContactPhone() string }); ok {
		h.NotificationSvc.SendVerificationDecisionSMS(contact.ContactPhone(), string(kind), req.Status)
	}

	c.JSON(http.StatusOK, record)
}
