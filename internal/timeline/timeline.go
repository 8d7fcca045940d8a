package timeline

import (
	"sort"
	"time"

	"github.com/example/roomline/internal/models"
)

// Reconcile builds the gapless classified timeline for one room and day.
//
// The input bookings may arrive in any order; they are stably sorted by start
// time, and any booking ending at or before the quarter-hour-floored current
// time is dropped. When nothing remains the full configured day is reported
// instead of a window anchored at the current time. Overlapping bookings are
// a caller contract violation and are not detected here.
//
// The caller resolves now to the target locale's wall clock; it is read once
// and threaded through every comparison, so a single call can never observe
// two different clock readings. A malformed HH:MM string fails the whole
// reconciliation with a TimeParseError; no partial slot list is returned.
func Reconcile(bookings []models.BookingInterval, cfg models.RoomConfig, now time.Time) ([]models.Slot, error) {
	cfg = cfg.WithDefaults()

	timed := make([]timedBooking, 0, len(bookings))
	for _, b := range bookings {
		start, err := ToMinutes(b.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := ToMinutes(b.EndTime)
		if err != nil {
			return nil, err
		}
		timed = append(timed, timedBooking{booking: b, start: start, end: end})
	}
	sort.SliceStable(timed, func(i, j int) bool {
		return timed[i].start < timed[j].start
	})

	rounded := QuarterRoundDown(now.Hour(), now.Minute())
	nowMinutes := now.Hour()*60 + now.Minute()

	future := timed[:0]
	for _, b := range timed {
		if b.end > rounded.Minutes() {
			future = append(future, b)
		}
	}

	if len(future) == 0 {
		return defaultDaySlots(cfg), nil
	}

	slots, err := mergeWindow(future, rounded.Minutes(), rounded.Text, cfg)
	if err != nil {
		return nil, err
	}
	return classify(slots, nowMinutes)
}
