package log

import (
	"sync"
	"time"
)

// Line is a single captured log message.
type Line struct {
	Time    time.Time
	Level   string
	Message string
}

// Buffer is an Output that keeps the most recent lines in memory for the
// logs panel.
type Buffer struct {
	mu    sync.Mutex
	lines []Line
	max   int
	now   func() time.Time
}

// NewBuffer creates a Buffer holding at most max lines.
func NewBuffer(max int) *Buffer {
	if max <= 0 {
		max = 200
	}
	return &Buffer{max: max, now: time.Now}
}

// Write implements Output.
func (b *Buffer) Write(level, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lines = append(b.lines, Line{Time: b.now(), Level: level, Message: message})
	if over := len(b.lines) - b.max; over > 0 {
		b.lines = append(b.lines[:0], b.lines[over:]...)
	}
}

// Lines returns a copy of the buffered lines, oldest first.
func (b *Buffer) Lines() []Line {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Line, len(b.lines))
	copy(out, b.lines)
	return out
}

// Len returns the number of buffered lines.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}
