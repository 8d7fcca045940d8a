package models

// SlotStatus describes the occupancy of one timeline slot. The values are
// wire literals the dashboard keys off; they must not change.
type SlotStatus string

const (
	StatusBooked    SlotStatus = "booked"
	StatusAvailable SlotStatus = "available"
	StatusClosed    SlotStatus = "closed"
)

// TimePeriod is the temporal bucket of a slot relative to the current instant.
// Like SlotStatus, the values are part of the wire contract.
type TimePeriod string

const (
	PeriodNow      TimePeriod = "now"
	PeriodUpcoming TimePeriod = "upcoming"
	PeriodLater    TimePeriod = "later"
)

// BookingInterval represents one confirmed reservation as delivered by the
// booking data source. Times are 24-hour HH:MM strings within a single day,
// end exclusive.
type BookingInterval struct {
	UID       string `json:"uid,omitempty"`
	Name      string `json:"name"`
	Creator   string `json:"creator"`
	Date      string `json:"date,omitempty"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Room      string `json:"room,omitempty"`
}

// Slot is one contiguous segment of a room's reconciled day timeline.
// Slots are created by the timeline package and never mutated after emission.
// MinutesLeft is set only on the slot tagged "now".
type Slot struct {
	Name        string     `json:"name,omitempty"`
	Creator     string     `json:"creator,omitempty"`
	StartTime   string     `json:"start_time"`
	EndTime     string     `json:"end_time"`
	Status      SlotStatus `json:"status"`
	TimePeriod  TimePeriod `json:"timePeriod"`
	TimeRange   string     `json:"timeRange"`
	MinutesLeft *int       `json:"minutes_left,omitempty"`
}
