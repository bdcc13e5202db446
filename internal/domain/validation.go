package domain

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Today returns the current calendar date in the ISO form used for
// expiry/date-added comparisons.
func Today(now time.Time) string {
	return now.UTC().Format(dateLayout)
}

func ValidateProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}
	return nil
}

// ValidateExpiryDate rejects dates earlier than today. ISO dates order
// lexicographically, so a plain string comparison is the contract.
func ValidateExpiryDate(expiryDate, today string) error {
	if _, err := time.Parse(dateLayout, expiryDate); err != nil {
		return fmt.Errorf("%w: expiry date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if expiryDate < today {
		return fmt.Errorf("%w: expiry date %s is in the past", ErrInvalidInput, expiryDate)
	}
	return nil
}

func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}
	return nil
}

func ValidateUsername(username string) error {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if len(trimmed) > 64 {
		return fmt.Errorf("%w: username too long", ErrInvalidInput)
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 4 {
		return fmt.Errorf("%w: password too short", ErrInvalidInput)
	}
	return nil
}
