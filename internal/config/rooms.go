package config

import (
	"fmt"
	"sort"

	"github.com/example/roomline/internal/models"
	"github.com/spf13/viper"
)

// RoomDirectory holds the per-room operating configuration loaded at startup.
// It is read-only after construction and safe for concurrent use.
type RoomDirectory struct {
	rooms map[string]models.RoomConfig
}

// LoadRoomDirectory reads the rooms file (YAML or JSON, chosen by extension).
// The file must exist: serving timelines without room configuration would
// silently misreport restricted rooms as open all day.
func LoadRoomDirectory(path string) (*RoomDirectory, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read rooms file %s: %w", path, err)
	}

	var fileContents struct {
		Rooms map[string]models.RoomConfig `mapstructure:"rooms"`
	}
	if err := v.Unmarshal(&fileContents); err != nil {
		return nil, fmt.Errorf("failed to parse rooms file %s: %w", path, err)
	}

	if fileContents.Rooms == nil {
		fileContents.Rooms = make(map[string]models.RoomConfig)
	}

	return &RoomDirectory{rooms: fileContents.Rooms}, nil
}

// NewRoomDirectory builds a directory from an in-memory map, used by tests
// and by callers that already hold the configuration.
func NewRoomDirectory(rooms map[string]models.RoomConfig) *RoomDirectory {
	if rooms == nil {
		rooms = make(map[string]models.RoomConfig)
	}
	return &RoomDirectory{rooms: rooms}
}

// Lookup returns the room's configuration with defaults applied. Unknown
// rooms get the default configuration and a false second return.
func (d *RoomDirectory) Lookup(name string) (models.RoomConfig, bool) {
	cfg, ok := d.rooms[name]
	return cfg.WithDefaults(), ok
}

// Names returns the configured room names in sorted order.
func (d *RoomDirectory) Names() []string {
	names := make([]string, 0, len(d.rooms))
	for name := range d.rooms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
