package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2024-02-29"))
	assert.False(t, IsValidDate("2023-02-29"))
	assert.False(t, IsValidDate("2024-13-01"))
	assert.False(t, IsValidDate("01-02-2024"))
	assert.False(t, IsValidDate(""))
}

func TestIsValidPeriod(t *testing.T) {
	assert.True(t, IsValidPeriod(2024, 1))
	assert.True(t, IsValidPeriod(2024, 12))
	assert.False(t, IsValidPeriod(2024, 0))
	assert.False(t, IsValidPeriod(2024, 13))
	assert.False(t, IsValidPeriod(1999, 6))
	assert.False(t, IsValidPeriod(2201, 6))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "date", Message: "must be YYYY-MM-DD"},
	}

	assert.Equal(t, "name: name is required; date: must be YYYY-MM-DD", errs.Error())
	assert.Equal(t, map[string]string{
		"name": "name is required",
		"date": "must be YYYY-MM-DD",
	}, errs.ToMap())
}
