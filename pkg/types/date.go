package types

import (
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the time layout of ledger dates (DD-MM-YYYY).
const DateLayout = "02-01-2006"

// Accepted year range for ledger dates.
const (
	MinYear = 2000
	MaxYear = 2100
)

// IsValidDate reports whether s is a ledger date: exactly DD-MM-YYYY with a
// year in [MinYear, MaxYear], a month in [1, 12] and a day that fits the
// month. February always allows 29 days regardless of the year.
func IsValidDate(s string) bool {
	if len(s) != 10 || s[2] != '-' || s[5] != '-' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if i == 2 || i == 5 {
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	day, _ := strconv.Atoi(s[0:2])
	month, _ := strconv.Atoi(s[3:5])
	year, _ := strconv.Atoi(s[6:10])

	if year < MinYear || year > MaxYear {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}
	switch month {
	case 2:
		return day <= 29
	case 4, 6, 9, 11:
		return day <= 30
	}
	return true
}

// ValidateDate returns an error wrapping ErrInvalidDate when s is not a
// ledger date.
func ValidateDate(s string) error {
	if !IsValidDate(s) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return nil
}

// Today returns the current local date in DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}

// ISODate converts a ledger date to YYYY-MM-DD, which sorts chronologically.
func ISODate(s string) (string, error) {
	if err := ValidateDate(s); err != nil {
		return "", err
	}
	return s[6:10] + "-" + s[3:5] + "-" + s[0:2], nil
}
