package utilities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateLayouts(t *testing.T) {
	for _, s := range []string{
		"2024-03-01",
		"2024-03-01T10:30:00Z",
		"2024-03-01T10:30:00",
	} {
		parsed, ok := ParseDate(s)
		assert.True(t, ok, s)
		assert.Equal(t, 2024, parsed.Year())
	}

	_, ok := ParseDate("yesterday")
	assert.False(t, ok)
	_, ok = ParseDate("")
	assert.False(t, ok)
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	to := time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(from, to))
}

func TestDaysBetweenNeverNegative(t *testing.T) {
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysBetween(from, to))
	assert.Equal(t, 0, DaysBetween(from, from))
}
