package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BloodDonor struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName         string             `bson:"fullName" json:"fullName"`
	Phone            string             `bson:"phone" json:"phone"`
	Age              int                `bson:"age" json:"age"`
	Weight           float64            `bson:"weight" json:"weight"`
	BloodGroup       string             `bson:"bloodGroup" json:"bloodGroup"`
	HasDonatedBefore bool               `bson:"hasDonatedBefore" json:"hasDonatedBefore"`
	LastDonationDate *time.Time         `bson:"lastDonationDate,omitempty" json:"lastDonationDate,omitempty"`
	Latitude         float64            `bson:"latitude" json:"latitude"`
	Longitude        float64            `bson:"longitude" json:"longitude"`
	Verification     `bson:",inline"`
}

type OrganDonor struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	FullName         string              `bson:"fullName" json:"fullName"`
	Phone            string              `bson:"phone" json:"phone"`
	Age              int                 `bson:"age,omitempty" json:"age,omitempty"`
	Weight           float64             `bson:"weight" json:"weight"`
	Organ            string              `bson:"organ" json:"organ"`
	HasDonatedBefore bool                `bson:"hasDonatedBefore" json:"hasDonatedBefore"`
	LastDonationDate *time.Time          `bson:"lastDonationDate,omitempty" json:"lastDonationDate,omitempty"`
	Latitude         float64             `bson:"latitude" json:"latitude"`
	Longitude        float64             `bson:"longitude" json:"longitude"`
	UserID           *primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	Verification     `bson:",inline"`
}

type MoneyDonor struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	FullName     string              `bson:"fullName" json:"fullName"`
	Phone        string              `bson:"phone" json:"phone"`
	Amount       float64             `bson:"amount" json:"amount"`
	UserID       *primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	Verification `bson:",inline"`
}

func (d BloodDonor) ContactPhone() string { return d.Phone }
func (d OrganDonor) ContactPhone() string { return d.Phone }
func (d MoneyDonor) ContactPhone() string { return d.Phone }
