package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/NithishMee/blood/internal/models"
	"github.com/NithishMee/blood/internal/utils"
	"github.com/NithishMee/blood/internal/validation"
)

type RegisterUserRequest struct {
	FullName     string `json:"fullName" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Password     string `json:"password" binding:"required,min=8"`
	ProfilePhoto string `json:"profilePhoto"`
	Role         string `json:"role"`
}

func (h *Handler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !validation.ValidPhone(req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone must be exactly 10 digits"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	role := req.Role
	if role == "" {
		role = "member"
	}

	user := models.User{
		ID:           primitive.NewObjectID(),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Password:     hashedPassword,
		Role:         role,
		ProfilePhoto: req.ProfilePhoto,
		CreatedAt:    time.Now(),
		Donations:    []models.DonationLogEntry{},
	}

	collection := h.DB.Collection("users")
	_, err = collection.InsertOne(context.TODO(), user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this phone number already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// The `json:"-"` tag on user.Password keeps the hash out of the response.
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) Login(c *gin.Context) {
	var loginReq struct {
		Phone    string `json:"phone" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// Same message for unknown phone and wrong password, so callers cannot
	// probe which phone numbers are registered.
	var user models.User
	collection := h.DB.Collection("users")
	err := collection.FindOne(context.TODO(), bson.M{"phone": loginReq.Phone}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid phone or password"})
		return
	}

	if !utils.CheckPasswordHash(loginReq.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid phone or password"})
		return
	}

	resp := gin.H{"user": user}
	if utils.JWTConfigured() {
		token, err := utils.GenerateJWT(user.ID.Hex(), user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
			return
		}
		resp["token"] = token
	} else {
		log.Println("Login: JWT_SECRET not set, logging in without a token")
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var user models.User
	collection := h.DB.Collection("users")
	err = collection.FindOne(context.TODO(), bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req struct {
		FullName     string `json:"fullName"`
		Phone        string `json:"phone"`
		ProfilePhoto string `json:"profilePhoto"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updateFields := bson.M{}
	if req.FullName != "" {
		updateFields["fullName"] = req.FullName
	}
	if req.Phone != "" {
		if !validation.ValidPhone(req.Phone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "phone must be exactly 10 digits"})
			return
		}
		// Reject the new phone if it already belongs to someone else.
		collection := h.DB.Collection("users")
		var existing models.User
		err := collection.FindOne(context.TODO(), bson.M{"phone": req.Phone}).Decode(&existing)
		if err == nil && existing.ID != userID {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this phone number already exists"})
			return
		}
		updateFields["phone"] = req.Phone
	}
	if req.ProfilePhoto != "" {
		updateFields["profilePhoto"] = req.ProfilePhoto
	}

	if len(updateFields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update fields provided"})
		return
	}

	collection := h.DB.Collection("users")
	result, err := collection.UpdateOne(context.TODO(), bson.M{"_id": userID}, bson.M{"$set": updateFields})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var user models.User
	if err := collection.FindOne(context.TODO(), bson.M{"_id": userID}).Decode(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) ListUsers(c *gin.Context) {
	collection := h.DB.Collection("users")
	cursor, err := collection.Find(context.TODO(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(context.TODO())

	var users []models.User
	if err = cursor.All(context.TODO(), &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if users == nil {
		users = make([]models.User, 0)
	}

	c.JSON(http.StatusOK, users)
}
