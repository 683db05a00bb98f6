// Package validation holds the eligibility rules applied to donor
// submissions. The rules are deliberately pure functions of their inputs so
// the boundaries (age 18/65, weight 50, 90-day cooldown) are testable
// without a database.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

const (
	MinDonorAge    = 18
	MaxDonorAge    = 65
	MinDonorWeight = 50.0
	CooldownDays   = 90
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// ValidPhone reports whether phone is exactly 10 digits.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ParseDate accepts a date as "2006-01-02" or full RFC3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// CooldownElapsed reports whether at least CooldownDays whole days have
// passed between the last donation and now. Exactly 90 days passes.
func CooldownElapsed(lastDonation, now time.Time) bool {
	days := int(now.Sub(lastDonation).Hours() / 24)
	return days >= CooldownDays
}

// checkCooldown enforces the prior-donation rules shared by blood and organ
// donors. It returns the parsed date so callers can persist it.
func checkCooldown(hasDonated bool, lastDonation string, now time.Time) (*time.Time, error) {
	if !hasDonated {
		return nil, nil
	}
	if lastDonation == "" {
		return nil, errors.New("lastDonationDate is required when hasDonatedBefore is true")
	}
	last, err := ParseDate(lastDonation)
	if err != nil {
		return nil, errors.New("lastDonationDate must be a valid date (YYYY-MM-DD)")
	}
	if !CooldownElapsed(last, now) {
		return nil, fmt.Errorf("last donation must be at least %d days ago", CooldownDays)
	}
	return &last, nil
}

// CheckBloodDonor validates a blood donor submission and returns the parsed
// last-donation date, or the first violated rule.
func CheckBloodDonor(phone string, age int, weight float64, hasDonated bool, lastDonation string, now time.Time) (*time.Time, error) {
	if !ValidPhone(phone) {
		return nil, errors.New("phone must be exactly 10 digits")
	}
	if age < MinDonorAge || age > MaxDonorAge {
		return nil, fmt.Errorf("age must be between %d and %d", MinDonorAge, MaxDonorAge)
	}
	if weight < MinDonorWeight {
		return nil, fmt.Errorf("weight must be at least %.0f kg", MinDonorWeight)
	}
	return checkCooldown(hasDonated, lastDonation, now)
}

// CheckOrganDonor validates an organ donor submission. Organ donors have no
// age bounds, only the weight and cooldown rules.
func CheckOrganDonor(phone string, weight float64, hasDonated bool, lastDonation string, now time.Time) (*time.Time, error) {
	if !ValidPhone(phone) {
		return nil, errors.New("phone must be exactly 10 digits")
	}
	if weight < MinDonorWeight {
		return nil, fmt.Errorf("weight must be at least %.0f kg", MinDonorWeight)
	}
	return checkCooldown(hasDonated, lastDonation, now)
}
