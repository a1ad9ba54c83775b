package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	at := time.Date(2025, 3, 10, 9, 5, 30, 0, time.UTC)
	assert.Equal(t, "09:05:30 AM", formatClock(at))

	at = time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)
	assert.Equal(t, "05:30:00 PM", formatClock(at))
}

func TestHoursBetween(t *testing.T) {
	hours, ok := hoursBetween("09:00:00 AM", "05:30:00 PM")
	assert.True(t, ok)
	assert.Equal(t, 8.5, hours)

	hours, ok = hoursBetween("09:15:00 AM", "09:15:00 AM")
	assert.True(t, ok)
	assert.Equal(t, 0.0, hours)
}

func TestHoursBetween_Overnight(t *testing.T) {
	hours, ok := hoursBetween("10:00:00 PM", "06:00:00 AM")
	assert.True(t, ok)
	assert.Equal(t, 8.0, hours)
}

func TestHoursBetween_Unparseable(t *testing.T) {
	_, ok := hoursBetween("", "05:30:00 PM")
	assert.False(t, ok)

	_, ok = hoursBetween("09:00:00 AM", "half past five")
	assert.False(t, ok)
}
