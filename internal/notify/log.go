// Package notify is the dashboard's user-visible event log. Every
// mutating action elsewhere in the system appends to it.
package notify

import (
	"sync"

	"github.com/google/uuid"
)

// Notification is one entry in the log. Entries are never edited after
// append except for the read flag.
type Notification struct {
	ID      string
	Title   string
	Message string
	Time    string
	Read    bool
}

// Log is an append-only, newest-first notification list. It may be cleared
// in bulk but entries are never reordered.
type Log struct {
	mu      sync.Mutex
	entries []Notification
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Append prepends a new unread notification with a synthetic "Just now"
// time label.
func (l *Log) Append(title, message string) Notification {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := Notification{
		ID:      uuid.NewString(),
		Title:   title,
		Message: message,
		Time:    "Just now",
	}
	l.entries = append([]Notification{n}, l.entries...)
	return n
}

// Seed installs a pre-existing notification, oldest last. Used at startup.
func (l *Log) Seed(n Notification) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	l.entries = append(l.entries, n)
}

// ClearAll empties the log unconditionally, whatever the read/unread mix.
func (l *Log) ClearAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

// All returns a copy of the log, newest first.
func (l *Log) All() []Notification {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Notification, len(l.entries))
	copy(out, l.entries)
	return out
}

// HasUnread reports whether any entry is unread; it drives the indicator
// dot in the view layer.
func (l *Log) HasUnread() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, n := range l.entries {
		if !n.Read {
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
