package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string             `bson:"fullName" json:"fullName"`
	Phone        string             `bson:"phone" json:"phone"` // unique, exactly 10 digits
	Password     string             `bson:"password" json:"-"`  // bcrypt hash, hidden from JSON responses
	Role         string             `bson:"role" json:"role"`   // "member" or "admin"
	ProfilePhoto string             `bson:"profilePhoto,omitempty" json:"profilePhoto,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	Donations    []DonationLogEntry `bson:"donations" json:"donations"`
}

// DonationLogEntry is one line of a user's donation history, denormalized
// onto the user document. Entries are append-only; there is no endpoint to
// edit or remove them.
type DonationLogEntry struct {
	DonationType string             `bson:"donationType" json:"donationType"` // "organ" or "money"
	DonationID   primitive.ObjectID `bson:"donationId" json:"donationId"`
	Detail       string             `bson:"detail" json:"detail"` // organ name, or amount for money
	Status       string             `bson:"status" json:"status"` // "pending_verification" at creation
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
