package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BloodReceiver struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string             `bson:"fullName" json:"fullName"`
	Phone        string             `bson:"phone" json:"phone"`
	BloodGroup   string             `bson:"bloodGroup" json:"bloodGroup"`
	Latitude     float64            `bson:"latitude" json:"latitude"`
	Longitude    float64            `bson:"longitude" json:"longitude"`
	Verification `bson:",inline"`
}

type OrganReceiver struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string             `bson:"fullName" json:"fullName"`
	Phone        string             `bson:"phone" json:"phone"`
	Organ        string             `bson:"organ" json:"organ"`
	Latitude     float64            `bson:"latitude" json:"latitude"`
	Longitude    float64            `bson:"longitude" json:"longitude"`
	Verification `bson:",inline"`
}

type MoneyReceiver struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string             `bson:"fullName" json:"fullName"`
	Phone        string             `bson:"phone" json:"phone"`
	AmountNeeded float64            `bson:"amountNeeded" json:"amountNeeded"`
	Purpose      string             `bson:"purpose,omitempty" json:"purpose,omitempty"`
	Verification `bson:",inline"`
}

func (r BloodReceiver) ContactPhone() string { return r.Phone }
func (r OrganReceiver) ContactPhone() string { return r.Phone }
func (r MoneyReceiver) ContactPhone() string { return r.Phone }
