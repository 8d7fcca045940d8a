package models

// Default operating hours applied when a room's configuration leaves them out.
const (
	DefaultOpenTime  = "07:00"
	DefaultCloseTime = "23:00"
)

// Room is the display metadata returned alongside a timeline.
type Room struct {
	Name     string `json:"name"`
	Bookable bool   `json:"bookable"`
}

// RoomConfig holds a room's operating-hours configuration. It is loaded once
// from the rooms file and treated as immutable for the duration of a request.
type RoomConfig struct {
	OpenTime        string `json:"open_time" mapstructure:"open_time"`
	CloseTime       string `json:"close_time" mapstructure:"close_time"`
	RestrictedHours bool   `json:"restricted_hours" mapstructure:"restricted_hours"`
	Bookable        bool   `json:"bookable" mapstructure:"bookable"`
}

// WithDefaults returns a copy of the config with missing open and close times
// filled in. RestrictedHours and Bookable stay false when absent.
func (c RoomConfig) WithDefaults() RoomConfig {
	if c.OpenTime == "" {
		c.OpenTime = DefaultOpenTime
	}
	if c.CloseTime == "" {
		c.CloseTime = DefaultCloseTime
	}
	return c
}
