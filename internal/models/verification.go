package models

import (
	"fmt"
	"time"
)

// Verification statuses. A record starts as pending and moves exactly once
// to approved or rejected through the admin verify endpoint.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Verification is the review envelope embedded in every donor and receiver
// record. IsVerified is always derived: status == approved.
type Verification struct {
	IsVerified         bool       `bson:"isVerified" json:"isVerified"`
	VerificationStatus string     `bson:"verificationStatus" json:"verificationStatus"`
	AdminNotes         string     `bson:"adminNotes" json:"adminNotes"`
	SubmittedAt        time.Time  `bson:"submittedAt" json:"submittedAt"`
	VerifiedAt         *time.Time `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
	VerificationFile   string     `bson:"verificationFile,omitempty" json:"verificationFile,omitempty"`
}

// NewVerification returns the envelope every fresh submission carries.
func NewVerification(now time.Time) Verification {
	return Verification{
		IsVerified:         false,
		VerificationStatus: StatusPending,
		AdminNotes:         "",
		SubmittedAt:        now,
	}
}

// ValidDecision reports whether status is an acceptable admin decision.
func ValidDecision(status string) bool {
	return status == StatusApproved || status == StatusRejected
}

// Kind identifies one of the six donor/receiver collections. The string
// values are what the admin endpoints accept in URLs and request bodies.
type Kind string

const (
	KindBloodDonor    Kind = "blood-donor"
	KindOrganDonor    Kind = "organ-donor"
	KindMoneyDonor    Kind = "money-donor"
	KindBloodReceiver Kind = "blood-receiver"
	KindOrganReceiver Kind = "organ-receiver"
	KindMoneyReceiver Kind = "money-receiver"
)

// Kinds lists every kind, in the order admin listings are grouped.
var Kinds = []Kind{
	KindBloodDonor,
	KindOrganDonor,
	KindMoneyDonor,
	KindBloodReceiver,
	KindOrganReceiver,
	KindMoneyReceiver,
}

var kindCollections = map[Kind]string{
	KindBloodDonor:    "blood_donors",
	KindOrganDonor:    "organ_donors",
	KindMoneyDonor:    "money_donors",
	KindBloodReceiver: "blood_receivers",
	KindOrganReceiver: "organ_receivers",
	KindMoneyReceiver: "money_receivers",
}

// ParseKind validates a kind string coming from a client.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := kindCollections[k]; !ok {
		return "", fmt.Errorf("unknown verification kind %q", s)
	}
	return k, nil
}

// Collection returns the Mongo collection name backing this kind.
func (k Kind) Collection() string {
	return kindCollections[k]
}

// NewRecord returns an empty record of the right concrete type for decoding
// documents of this kind.
func (k Kind) NewRecord() interface{} {
	switch k {
	case KindBloodDonor:
		return &BloodDonor{}
	case KindOrganDonor:
		return &OrganDonor{}
	case KindMoneyDonor:
		return &MoneyDonor{}
	case KindBloodReceiver:
		return &BloodReceiver{}
	case KindOrganReceiver:
		return &OrganReceiver{}
	case KindMoneyReceiver:
		return &MoneyReceiver{}
	}
	return nil
}

// NewRecordSlice returns a pointer to an empty slice of the concrete record
// type, for cursor.All.
func (k Kind) NewRecordSlice() interface{} {
	switch k {
	case KindBloodDonor:
		return &[]BloodDonor{}
	case KindOrganDonor:
		return &[]OrganDonor{}
	case KindMoneyDonor:
		return &[]MoneyDonor{}
	case KindBloodReceiver:
		return &[]BloodReceiver{}
	case KindOrganReceiver:
		return &[]OrganReceiver{}
	case KindMoneyReceiver:
		return &[]MoneyReceiver{}
	}
	return nil
}
