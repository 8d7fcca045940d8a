// Package timeline turns a sparse list of booked intervals and a room's
// operating hours into a complete, gapless sequence of classified time slots.
package timeline

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeParseError reports a time string that does not parse as 24-hour HH:MM.
type TimeParseError struct {
	Value string
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("invalid time %q: expected HH:MM", e.Value)
}

// ToMinutes converts an HH:MM string to minutes since midnight. The
// end-of-day boundary "24:00" is accepted and yields 1440.
func ToMinutes(s string) (int, error) {
	hourPart, minutePart, ok := strings.Cut(s, ":")
	if !ok {
		return 0, &TimeParseError{Value: s}
	}
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, &TimeParseError{Value: s}
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil {
		return 0, &TimeParseError{Value: s}
	}
	if minute < 0 || minute > 59 || hour < 0 || hour > 23 {
		if hour == 24 && minute == 0 {
			return 24 * 60, nil
		}
		return 0, &TimeParseError{Value: s}
	}
	return hour*60 + minute, nil
}

// FormatMinutes renders minutes since midnight as an HH:MM string
// ("24:00" for the end of the day).
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// RoundedTime is a clock reading floored to a quarter-hour boundary.
type RoundedTime struct {
	Hour   int
	Minute int
	Text   string
}

// Minutes returns the rounded reading as minutes since midnight.
func (r RoundedTime) Minutes() int {
	return r.Hour*60 + r.Minute
}

// QuarterRoundDown floors minute to the largest multiple of 15 not above it;
// the hour is unchanged. Flooring keeps the timeline anchor stable between
// requests issued seconds apart and guarantees minutes_left never goes
// negative for quarter-aligned bookings.
func QuarterRoundDown(hour, minute int) RoundedTime {
	rounded := (minute / 15) * 15
	return RoundedTime{
		Hour:   hour,
		Minute: rounded,
		Text:   fmt.Sprintf("%02d:%02d", hour, rounded),
	}
}

// timeRange renders the display range for a slot, e.g. "09:00 - 09:30".
// The spaced hyphen is part of the wire contract.
func timeRange(start, end string) string {
	return start + " - " + end
}
