// Package logging builds the application logger and captures recent entries
// for the logs endpoint.
package logging

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// BufferCap limits how many log entries are retained in memory.
const BufferCap = 100

// Entry is one captured log line as served by the logs endpoint.
type Entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

// LogSink exposes recently captured log entries to collaborators.
type LogSink interface {
	Recent() []Entry
}

// Buffer is a fixed-capacity ring of recent log entries.
type Buffer struct {
	mu      sync.Mutex
	entries []Entry
}

// NewBuffer creates an empty log buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Add records an entry, evicting the oldest once the cap is reached.
func (b *Buffer) Add(e Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = append(b.entries, e)
	if len(b.entries) > BufferCap {
		b.entries = b.entries[1:]
	}
}

// Recent returns a copy of the retained entries, oldest first.
func (b *Buffer) Recent() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// bufferCore tees log entries into a Buffer alongside the primary core.
type bufferCore struct {
	zapcore.LevelEnabler
	buf *Buffer
}

func (c *bufferCore) With(fields []zapcore.Field) zapcore.Core {
	return c
}

func (c *bufferCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *bufferCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	c.buf.Add(Entry{
		Timestamp: ent.Time.Format("2006-01-02 15:04:05"),
		Level:     strings.ToUpper(ent.Level.String()),
		Message:   ent.Message,
	})
	return nil
}

func (c *bufferCore) Sync() error {
	return nil
}

// New builds the application logger and the buffer capturing its entries.
// Development mode uses the human-readable console encoder.
func New(development bool) (*zap.Logger, *Buffer, error) {
	var base *zap.Logger
	var err error
	if development {
		base, err = zap.NewDevelopment()
	} else {
		base, err = zap.NewProduction()
	}
	if err != nil {
		return nil, nil, err
	}

	buf := NewBuffer()
	logger := base.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, &bufferCore{LevelEnabler: zapcore.InfoLevel, buf: buf})
	}))

	return logger, buf, nil
}
