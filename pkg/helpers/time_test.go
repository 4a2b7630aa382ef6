package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Istanbul")
	assert.NoError(t, err)

	now := time.Date(2024, 3, 15, 17, 42, 13, 500, loc)
	got := StartOfDay(now)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestDebeWindow(t *testing.T) {
	loc, _ := time.LoadLocation("Europe/Istanbul")
	now := time.Date(2024, 3, 15, 9, 30, 0, 0, loc)

	from, before := DebeWindow(now)
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, loc), before)

	// Half-open: yesterday's midnight is in, today's midnight is out.
	assert.False(t, from.After(from))
	assert.True(t, before.After(from))
	assert.Equal(t, 24*time.Hour, before.Sub(from))
}
