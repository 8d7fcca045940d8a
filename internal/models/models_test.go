package models_test

import (
	"encoding/json"
	"testing"

	"github.com/example/roomline/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomConfigWithDefaults(t *testing.T) {
	cfg := models.RoomConfig{}.WithDefaults()
	assert.Equal(t, "07:00", cfg.OpenTime)
	assert.Equal(t, "23:00", cfg.CloseTime)
	assert.False(t, cfg.RestrictedHours)
	assert.False(t, cfg.Bookable)

	// Explicit values survive
	cfg = models.RoomConfig{
		OpenTime:        "08:00",
		CloseTime:       "18:00",
		RestrictedHours: true,
		Bookable:        true,
	}.WithDefaults()
	assert.Equal(t, "08:00", cfg.OpenTime)
	assert.Equal(t, "18:00", cfg.CloseTime)
	assert.True(t, cfg.RestrictedHours)
	assert.True(t, cfg.Bookable)
}

// The dashboard keys off exact field names and string literals, so slot
// serialization is part of the external contract.
func TestSlotJSONContract(t *testing.T) {
	left := 23
	slot := models.Slot{
		StartTime:   "09:00",
		EndTime:     "09:30",
		Status:      models.StatusAvailable,
		TimePeriod:  models.PeriodNow,
		TimeRange:   "09:00 - 09:30",
		MinutesLeft: &left,
	}

	data, err := json.Marshal(slot)
	require.NoError(t, err)

	payload := string(data)
	assert.Contains(t, payload, `"start_time":"09:00"`)
	assert.Contains(t, payload, `"end_time":"09:30"`)
	assert.Contains(t, payload, `"status":"available"`)
	assert.Contains(t, payload, `"timePeriod":"now"`)
	assert.Contains(t, payload, `"timeRange":"09:00 - 09:30"`)
	assert.Contains(t, payload, `"minutes_left":23`)
	assert.NotContains(t, payload, `"name"`, "empty name should be omitted")
	assert.NotContains(t, payload, `"creator"`, "empty creator should be omitted")
}

func TestSlotJSONOmitsMinutesLeft(t *testing.T) {
	slot := models.Slot{
		Name:       "Team sync",
		Creator:    "Test User",
		StartTime:  "09:30",
		EndTime:    "10:00",
		Status:     models.StatusBooked,
		TimePeriod: models.PeriodUpcoming,
		TimeRange:  "09:30 - 10:00",
	}

	data, err := json.Marshal(slot)
	require.NoError(t, err)

	payload := string(data)
	assert.NotContains(t, payload, "minutes_left")
	assert.Contains(t, payload, `"name":"Team sync"`)
	assert.Contains(t, payload, `"creator":"Test User"`)
	assert.Contains(t, payload, `"status":"booked"`)
}
