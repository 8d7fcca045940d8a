package timeline_test

import (
	"testing"
	"time"

	"github.com/example/roomline/internal/models"
	"github.com/example/roomline/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clock builds a wall-clock instant for an arbitrary test day.
func clock(hour, minute int) time.Time {
	return time.Date(2025, 6, 12, hour, minute, 0, 0, time.UTC)
}

func booking(start, end, name string) models.BookingInterval {
	return models.BookingInterval{
		Name:      name,
		Creator:   "Test User",
		StartTime: start,
		EndTime:   end,
	}
}

// assertTiling verifies that consecutive slots share boundaries and that the
// sequence spans [windowStart, windowEnd). A trailing closed slot is excluded.
func assertTiling(t *testing.T, slots []models.Slot, windowStart, windowEnd string) {
	t.Helper()

	tiled := slots
	if len(tiled) > 0 && tiled[len(tiled)-1].Status == models.StatusClosed {
		tiled = tiled[:len(tiled)-1]
	}
	require.NotEmpty(t, tiled)

	assert.Equal(t, windowStart, tiled[0].StartTime, "first slot should start at the window start")
	assert.Equal(t, windowEnd, tiled[len(tiled)-1].EndTime, "last slot should end at the window end")
	for i := 0; i < len(tiled)-1; i++ {
		assert.Equal(t, tiled[i].EndTime, tiled[i+1].StartTime,
			"slot %d and %d should share a boundary", i, i+1)
	}
}

// assertPeriods verifies the single-now/single-upcoming property: the first
// slot is "now", the second (if any) "upcoming", the rest "later".
func assertPeriods(t *testing.T, slots []models.Slot) {
	t.Helper()

	for i, slot := range slots {
		switch i {
		case 0:
			assert.Equal(t, models.PeriodNow, slot.TimePeriod)
		case 1:
			assert.Equal(t, models.PeriodUpcoming, slot.TimePeriod)
		default:
			assert.Equal(t, models.PeriodLater, slot.TimePeriod, "slot %d", i)
		}
	}
}

func TestReconcileSingleBooking(t *testing.T) {
	// 09:07 floors to 09:00; one booking at 09:30 splits the window in three.
	slots, err := timeline.Reconcile(
		[]models.BookingInterval{booking("09:30", "10:00", "Team sync")},
		models.RoomConfig{},
		clock(9, 7),
	)
	require.NoError(t, err)
	require.Len(t, slots, 3)

	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "09:30", slots[0].EndTime)
	assert.Equal(t, models.StatusAvailable, slots[0].Status)
	assert.Equal(t, models.PeriodNow, slots[0].TimePeriod)
	assert.Equal(t, "09:00 - 09:30", slots[0].TimeRange)
	require.NotNil(t, slots[0].MinutesLeft)
	assert.Equal(t, 23, *slots[0].MinutesLeft)

	assert.Equal(t, "09:30", slots[1].StartTime)
	assert.Equal(t, "10:00", slots[1].EndTime)
	assert.Equal(t, models.StatusBooked, slots[1].Status)
	assert.Equal(t, models.PeriodUpcoming, slots[1].TimePeriod)
	assert.Equal(t, "Team sync", slots[1].Name)
	assert.Equal(t, "Test User", slots[1].Creator)
	assert.Nil(t, slots[1].MinutesLeft)

	assert.Equal(t, "10:00", slots[2].StartTime)
	assert.Equal(t, "23:00", slots[2].EndTime)
	assert.Equal(t, models.StatusAvailable, slots[2].Status)
	assert.Equal(t, models.PeriodLater, slots[2].TimePeriod)
	assert.Nil(t, slots[2].MinutesLeft)

	assertTiling(t, slots, "09:00", "23:00")
}

func TestReconcileTwoBookings(t *testing.T) {
	slots, err := timeline.Reconcile(
		[]models.BookingInterval{
			booking("09:30", "10:00", "Team sync"),
			booking("11:00", "12:00", "Workshop"),
		},
		models.RoomConfig{},
		clock(9, 7),
	)
	require.NoError(t, err)
	require.Len(t, slots, 5)

	statuses := []models.SlotStatus{
		models.StatusAvailable,
		models.StatusBooked,
		models.StatusAvailable,
		models.StatusBooked,
		models.StatusAvailable,
	}
	for i, want := range statuses {
		assert.Equal(t, want, slots[i].Status, "slot %d", i)
	}

	assertTiling(t, slots, "09:00", "23:00")
	assertPeriods(t, slots)
}

func TestReconcileUnsortedInput(t *testing.T) {
	// The pipeline sorts before merging, so input order must not matter.
	slots, err := timeline.Reconcile(
		[]models.BookingInterval{
			booking("11:00", "12:00", "Workshop"),
			booking("09:30", "10:00", "Team sync"),
		},
		models.RoomConfig{},
		clock(9, 7),
	)
	require.NoError(t, err)
	require.Len(t, slots, 5)
	assert.Equal(t, "Team sync", slots[1].Name)
	assert.Equal(t, "Workshop", slots[3].Name)
	assertTiling(t, slots, "09:00", "23:00")
}

func TestReconcileEmptyDayUnrestricted(t *testing.T) {
	// The degenerate day ignores the clock entirely.
	for _, now := range []time.Time{clock(0, 0), clock(9, 7), clock(22, 59)} {
		slots, err := timeline.Reconcile(nil, models.RoomConfig{}, now)
		require.NoError(t, err)
		require.Len(t, slots, 1)

		assert.Equal(t, "00:00", slots[0].StartTime)
		assert.Equal(t, "24:00", slots[0].EndTime)
		assert.Equal(t, models.StatusAvailable, slots[0].Status)
		assert.Equal(t, models.PeriodNow, slots[0].TimePeriod)
		assert.Equal(t, "00:00 - 24:00", slots[0].TimeRange)
		assert.Nil(t, slots[0].MinutesLeft)
	}
}

func TestReconcileEmptyDayRestricted(t *testing.T) {
	cfg := models.RoomConfig{
		OpenTime:        "08:00",
		CloseTime:       "18:00",
		RestrictedHours: true,
	}

	slots, err := timeline.Reconcile(nil, cfg, clock(14, 23))
	require.NoError(t, err)
	require.Len(t, slots, 2)

	assert.Equal(t, "08:00", slots[0].StartTime)
	assert.Equal(t, "18:00", slots[0].EndTime)
	assert.Equal(t, models.StatusAvailable, slots[0].Status)
	assert.Equal(t, models.PeriodNow, slots[0].TimePeriod)

	assert.Equal(t, "18:00", slots[1].StartTime)
	assert.Equal(t, "08:00", slots[1].EndTime)
	assert.Equal(t, models.StatusClosed, slots[1].Status)
	assert.Equal(t, models.PeriodLater, slots[1].TimePeriod)
	assert.Equal(t, "18:00 - 08:00", slots[1].TimeRange)
}

func TestReconcileAllBookingsPast(t *testing.T) {
	// Every booking ends before the rounded anchor, so the degenerate
	// full-day output applies even though the raw list was non-empty.
	slots, err := timeline.Reconcile(
		[]models.BookingInterval{
			booking("08:00", "08:30", "Standup"),
			booking("09:00", "09:30", "Review"),
		},
		models.RoomConfig{},
		clock(9, 37), // floors to 09:30
	)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "00:00", slots[0].StartTime)
	assert.Equal(t, "24:00", slots[0].EndTime)
}

func TestReconcilePastBookingExcluded(t *testing.T) {
	// Bookings ending at or before the rounded anchor never appear in any slot.
	slots, err := timeline.Reconcile(
		[]models.BookingInterval{
			booking("08:00", "09:00", "Early call"),
			booking("10:00", "11:00", "Planning"),
		},
		models.RoomConfig{},
		clock(9, 7),
	)
	require.NoError(t, err)

	for _, slot := range slots {
		assert.NotEqual(t, "Early call", slot.Name)
	}
	assertTiling(t, slots, "09:00", "23:00")
	assertPeriods(t, slots)
}

func TestReconcileBookingAtWindowStart(t *testing.T) {
	// A booking starting exactly at the anchor produces no zero-width gap.
	slots, err := timeline.Reconcile(
		[]models.BookingInterval{booking("09:00", "10:00", "Lecture")},
		models.RoomConfig{},
		clock(9, 7),
	)
	require.NoError(t, err)
	require.Len(t, slots, 2)

	assert.Equal(t, models.StatusBooked, slots[0].Status)
	assert.Equal(t, models.PeriodNow, slots[0].TimePeriod)
	require.NotNil(t, slots[0].MinutesLeft)
	assert.Equal(t, 53, *slots[0].MinutesLeft) // 10:00 minus 09:07

	assert.Equal(t, models.StatusAvailable, slots[1].Status)
	assert.Equal(t, models.PeriodUpcoming, slots[1].TimePeriod)
	assertTiling(t, slots, "09:00", "23:00")
}

func TestReconcileBookingToClose(t *testing.T) {
	// A booking extending to exactly the close time leaves no trailing slot.
	slots, err := timeline.Reconcile(
		[]models.BookingInterval{booking("22:00", "23:00", "Evening class")},
		models.RoomConfig{},
		clock(21, 50),
	)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, models.StatusAvailable, slots[0].Status)
	assert.Equal(t, models.StatusBooked, slots[1].Status)
	assert.Equal(t, "23:00", slots[1].EndTime)
}

func TestReconcileRestrictedWithBookings(t *testing.T) {
	cfg := models.RoomConfig{
		OpenTime:        "08:00",
		CloseTime:       "18:00",
		RestrictedHours: true,
	}

	slots, err := timeline.Reconcile(
		[]models.BookingInterval{booking("10:00", "11:00", "Seminar")},
		cfg,
		clock(9, 20),
	)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	assert.Equal(t, models.StatusAvailable, slots[0].Status) // 09:15 - 10:00
	assert.Equal(t, models.StatusBooked, slots[1].Status)    // 10:00 - 11:00
	assert.Equal(t, models.StatusAvailable, slots[2].Status) // 11:00 - 18:00
	assert.Equal(t, models.StatusClosed, slots[3].Status)    // 18:00 - 08:00

	assert.Equal(t, "18:00", slots[3].StartTime)
	assert.Equal(t, "08:00", slots[3].EndTime)
	assert.Equal(t, models.PeriodLater, slots[3].TimePeriod)

	assertTiling(t, slots, "09:15", "18:00")
	assertPeriods(t, slots)
}

func TestReconcileMinutesLeftOnlyOnNow(t *testing.T) {
	slots, err := timeline.Reconcile(
		[]models.BookingInterval{
			booking("10:00", "11:00", "A"),
			booking("12:00", "13:00", "B"),
		},
		models.RoomConfig{},
		clock(9, 7),
	)
	require.NoError(t, err)

	for _, slot := range slots {
		if slot.TimePeriod == models.PeriodNow {
			require.NotNil(t, slot.MinutesLeft)
			assert.GreaterOrEqual(t, *slot.MinutesLeft, 0)
			assert.Equal(t, 53, *slot.MinutesLeft) // 10:00 minus 09:07
		} else {
			assert.Nil(t, slot.MinutesLeft, "minutes_left belongs to the now slot only")
		}
	}
}

func TestReconcileParseError(t *testing.T) {
	_, err := timeline.Reconcile(
		[]models.BookingInterval{booking("9am", "10:00", "Bad")},
		models.RoomConfig{},
		clock(9, 7),
	)
	require.Error(t, err)

	var parseErr *timeline.TimeParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "9am", parseErr.Value)
}

func TestReconcileDoesNotMutateInput(t *testing.T) {
	bookings := []models.BookingInterval{
		booking("11:00", "12:00", "Second"),
		booking("09:30", "10:00", "First"),
	}

	_, err := timeline.Reconcile(bookings, models.RoomConfig{}, clock(9, 7))
	require.NoError(t, err)

	assert.Equal(t, "Second", bookings[0].Name, "caller's slice order should be preserved")
	assert.Equal(t, "First", bookings[1].Name)
}
