package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"01-01-2024", true},
		{"31-12-2100", true},
		{"01-01-2000", true},
		{"29-02-2024", true},
		// February always allows 29 days, leap year or not.
		{"29-02-2023", true},
		{"30-02-2024", false},
		{"31-04-2024", false},
		{"30-04-2024", true},
		{"31-06-2024", false},
		{"31-09-2024", false},
		{"31-11-2024", false},
		{"31-07-2024", true},
		{"00-01-2024", false},
		{"32-01-2024", false},
		{"01-00-2024", false},
		{"01-13-2024", false},
		{"01-01-1999", false},
		{"01-01-2101", false},
		{"1-1-2024", false},
		{"2024-01-01", false},
		{"01/01/2024", false},
		{"01-01-20a4", false},
		{"+1-01-2024", false},
		{"01-01-2024 ", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidDate(tt.date))
		})
	}
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("15-06-2025"))
	assert.ErrorIs(t, ValidateDate("15/06/2025"), ErrInvalidDate)
}

func TestTodayIsValid(t *testing.T) {
	assert.True(t, IsValidDate(Today()))
}

func TestISODate(t *testing.T) {
	got, err := ISODate("05-11-2024")
	require.NoError(t, err)
	assert.Equal(t, "2024-11-05", got)

	_, err = ISODate("5-11-2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
