package timeline

import (
	"github.com/example/roomline/internal/models"
)

// timedBooking pairs a booking with its parsed minute-of-day boundaries so
// the merge loop never re-parses time strings.
type timedBooking struct {
	booking models.BookingInterval
	start   int
	end     int
}

// mergeWindow tiles [windowStart, close) with booked and available slots.
// Bookings must be sorted ascending by start and already filtered to those
// ending after windowStart. Zero-width gaps are never emitted: a booking
// starting exactly at the cursor produces no available slot, and a booking
// running to the close time leaves no trailing slot. For restricted rooms a
// closed slot [close, open) is appended; it may wrap past midnight and is a
// display label rather than part of the tiling.
func mergeWindow(bookings []timedBooking, windowStart int, windowStartText string, cfg models.RoomConfig) ([]models.Slot, error) {
	closeMinutes, err := ToMinutes(cfg.CloseTime)
	if err != nil {
		return nil, err
	}

	slots := make([]models.Slot, 0, 2*len(bookings)+2)
	cursor := windowStart
	cursorText := windowStartText

	for _, b := range bookings {
		if b.start > cursor {
			slots = append(slots, models.Slot{
				StartTime: cursorText,
				EndTime:   b.booking.StartTime,
				Status:    models.StatusAvailable,
				TimeRange: timeRange(cursorText, b.booking.StartTime),
			})
		}
		slots = append(slots, models.Slot{
			Name:      b.booking.Name,
			Creator:   b.booking.Creator,
			StartTime: b.booking.StartTime,
			EndTime:   b.booking.EndTime,
			Status:    models.StatusBooked,
			TimeRange: timeRange(b.booking.StartTime, b.booking.EndTime),
		})
		cursor = b.end
		cursorText = b.booking.EndTime
	}

	if cursor < closeMinutes {
		slots = append(slots, models.Slot{
			StartTime: cursorText,
			EndTime:   cfg.CloseTime,
			Status:    models.StatusAvailable,
			TimeRange: timeRange(cursorText, cfg.CloseTime),
		})
	}

	if cfg.RestrictedHours {
		slots = append(slots, closedSlot(cfg))
	}

	return slots, nil
}

// defaultDaySlots reports the full configured day when nothing remains on the
// schedule. The room is presented as open all day rather than open from the
// current instant, so the output is pre-classified and independent of the
// clock; no minutes_left is attached.
func defaultDaySlots(cfg models.RoomConfig) []models.Slot {
	if cfg.RestrictedHours {
		return []models.Slot{
			{
				StartTime:  cfg.OpenTime,
				EndTime:    cfg.CloseTime,
				Status:     models.StatusAvailable,
				TimePeriod: models.PeriodNow,
				TimeRange:  timeRange(cfg.OpenTime, cfg.CloseTime),
			},
			closedSlot(cfg),
		}
	}
	return []models.Slot{
		{
			StartTime:  "00:00",
			EndTime:    "24:00",
			Status:     models.StatusAvailable,
			TimePeriod: models.PeriodNow,
			TimeRange:  "00:00 - 24:00",
		},
	}
}

// closedSlot builds the [close, open) label slot for restricted rooms.
// It carries "later" up front so the degenerate path can use it directly;
// the classifier overwrites the tag on the merged path.
func closedSlot(cfg models.RoomConfig) models.Slot {
	return models.Slot{
		StartTime:  cfg.CloseTime,
		EndTime:    cfg.OpenTime,
		Status:     models.StatusClosed,
		TimePeriod: models.PeriodLater,
		TimeRange:  timeRange(cfg.CloseTime, cfg.OpenTime),
	}
}
