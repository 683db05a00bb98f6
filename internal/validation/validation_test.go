package validation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NithishMee/blood/internal/validation"
)

func TestValidPhone(t *testing.T) {
	assert.True(t, validation.ValidPhone("9876543210"))
	assert.False(t, validation.ValidPhone(""))
	assert.False(t, validation.ValidPhone("987654321"))   // 9 digits
	assert.False(t, validation.ValidPhone("98765432101")) // 11 digits
	assert.False(t, validation.ValidPhone("98765x3210"))
	assert.False(t, validation.ValidPhone("+919876543210"))
	assert.False(t, validation.ValidPhone("987 654 321"))
}

func TestParseDate(t *testing.T) {
	d, err := validation.ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.March, d.Month())

	d, err = validation.ParseDate("2024-03-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 15, d.Day())

	_, err = validation.ParseDate("15/03/2024")
	assert.Error(t, err)

	_, err = validation.ParseDate("not a date")
	assert.Error(t, err)
}

func TestCooldownElapsed(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, validation.CooldownElapsed(now.AddDate(0, 0, -89), now), "89 days is inside the cooldown")
	assert.True(t, validation.CooldownElapsed(now.AddDate(0, 0, -90), now), "exactly 90 days passes")
	assert.True(t, validation.CooldownElapsed(now.AddDate(0, 0, -91), now))

	// 89 days and 23 hours still floors to 89 whole days.
	almost := now.Add(-(89*24 + 23) * time.Hour)
	assert.False(t, validation.CooldownElapsed(almost, now))
}

func TestCheckBloodDonorAgeBounds(t *testing.T) {
	now := time.Now()

	_, err := validation.CheckBloodDonor("9876543210", 17, 70, false, "", now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "age")

	_, err = validation.CheckBloodDonor("9876543210", 18, 70, false, "", now)
	assert.NoError(t, err)

	_, err = validation.CheckBloodDonor("9876543210", 65, 70, false, "", now)
	assert.NoError(t, err)

	_, err = validation.CheckBloodDonor("9876543210", 66, 70, false, "", now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "age")
}

func TestCheckBloodDonorWeight(t *testing.T) {
	now := time.Now()

	_, err := validation.CheckBloodDonor("9876543210", 30, 49.9, false, "", now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weight")

	_, err = validation.CheckBloodDonor("9876543210", 30, 50, false, "", now)
	assert.NoError(t, err)
}

func TestCheckBloodDonorPhone(t *testing.T) {
	_, err := validation.CheckBloodDonor("12345", 30, 70, false, "", time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phone")
}

func TestCheckBloodDonorCooldown(t *testing.T) {
	now := time.Now()

	// Prior donation without a date.
	_, err := validation.CheckBloodDonor("9876543210", 30, 70, true, "", now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lastDonationDate")

	// Unparseable date.
	_, err = validation.CheckBloodDonor("9876543210", 30, 70, true, "garbage", now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid date")

	// 89 days ago: still cooling down.
	tooRecent := now.AddDate(0, 0, -89).Format("2006-01-02")
	_, err = validation.CheckBloodDonor("9876543210", 30, 70, true, tooRecent, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "90 days")

	// 91 days ago: eligible, and the parsed date is returned.
	longAgo := now.AddDate(0, 0, -91).Format("2006-01-02")
	last, err := validation.CheckBloodDonor("9876543210", 30, 70, true, longAgo, now)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, longAgo, last.Format("2006-01-02"))
}

func TestCheckOrganDonor(t *testing.T) {
	now := time.Now()

	// No age bound for organ donors.
	_, err := validation.CheckOrganDonor("9876543210", 70, false, "", now)
	assert.NoError(t, err)

	_, err = validation.CheckOrganDonor("9876543210", 45, false, "", now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weight")

	_, err = validation.CheckOrganDonor("12345", 70, false, "", now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phone")

	tooRecent := now.AddDate(0, 0, -30).Format("2006-01-02")
	_, err = validation.CheckOrganDonor("9876543210", 70, true, tooRecent, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "90 days")
}
