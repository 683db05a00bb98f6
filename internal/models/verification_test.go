package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NithishMee/blood/internal/models"
)

func TestNewVerification(t *testing.T) {
	now := time.Now()
	v := models.NewVerification(now)

	assert.Equal(t, models.StatusPending, v.VerificationStatus)
	assert.False(t, v.IsVerified)
	assert.Empty(t, v.AdminNotes)
	assert.Equal(t, now, v.SubmittedAt)
	assert.Nil(t, v.VerifiedAt)
}

func TestValidDecision(t *testing.T) {
	assert.True(t, models.ValidDecision(models.StatusApproved))
	assert.True(t, models.ValidDecision(models.StatusRejected))
	assert.False(t, models.ValidDecision(models.StatusPending), "a decision cannot move a record back to pending")
	assert.False(t, models.ValidDecision(""))
	assert.False(t, models.ValidDecision("Approved"))
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{
		"blood-donor", "organ-donor", "money-donor",
		"blood-receiver", "organ-receiver", "money-receiver",
	} {
		k, err := models.ParseKind(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(k))
	}

	for _, s := range []string{"", "blood", "donor", "blood_donor", "Blood-Donor"} {
		_, err := models.ParseKind(s)
		assert.Error(t, err, "kind %q must be rejected", s)
	}
}

func TestKindCollections(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range models.Kinds {
		name := k.Collection()
		require.NotEmpty(t, name)
		assert.False(t, seen[name], "collection %q mapped twice", name)
		seen[name] = true
	}
	assert.Len(t, seen, 6)
}

func TestKindRecordTypes(t *testing.T) {
	for _, k := range models.Kinds {
		require.NotNil(t, k.NewRecord(), "kind %s has no record type", k)
		require.NotNil(t, k.NewRecordSlice(), "kind %s has no slice type", k)
	}

	_, ok := models.KindBloodDonor.NewRecord().(*models.BloodDonor)
	assert.True(t, ok)
	_, ok = models.KindMoneyReceiver.NewRecord().(*models.MoneyReceiver)
	assert.True(t, ok)
}

func TestRecordsExposeContactPhone(t *testing.T) {
	type phoned interface{ ContactPhone() string }

	records := []interface{}{
		&models.BloodDonor{Phone: "1111111111"},
		&models.OrganDonor{Phone: "1111111111"},
		&models.MoneyDonor{Phone: "1111111111"},
		&models.BloodReceiver{Phone: "1111111111"},
		&models.OrganReceiver{Phone: "1111111111"},
		&models.MoneyReceiver{Phone: "1111111111"},
	}
	for _, r := range records {
		p, ok := r.(phoned)
		require.True(t, ok, "%T has no contact phone", r)
		assert.Equal(t, "1111111111", p.ContactPhone())
	}
}
