// Package memory provides the in-memory conversation history.
package memory

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/medicheck/medicheck/internal/domain/entities"
)

// DefaultMaxEntries is the history capacity of a single session.
const DefaultMaxEntries = 15

// ErrUnknownRole is returned when an entry carries a role other than user,
// bot or validation.
var ErrUnknownRole = errors.New("unknown conversation role")

// Buffer is a bounded FIFO log of conversation entries. It is safe for
// concurrent use; append and eviction happen under one lock.
type Buffer struct {
	mu       sync.Mutex
	capacity int
	entries  []entities.ConversationEntry
}

// NewBuffer creates a buffer holding at most capacity entries.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultMaxEntries
	}
	return &Buffer{
		capacity: capacity,
		entries:  make([]entities.ConversationEntry, 0, capacity),
	}
}

// Append adds an entry, evicting the oldest ones so that the buffer never
// exceeds its capacity. Entries with an unknown role are rejected.
func (b *Buffer) Append(entry entities.ConversationEntry) error {
	if !entry.Role.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownRole, entry.Role)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) >= b.capacity {
		drop := len(b.entries) - b.capacity + 1
		copy(b.entries, b.entries[drop:])
		b.entries = b.entries[:len(b.entries)-drop]
	}
	b.entries = append(b.entries, entry)
	return nil
}

// Snapshot returns a copy of the entries in insertion order.
func (b *Buffer) Snapshot() []entities.ConversationEntry {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]entities.ConversationEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

// ContextString joins the entries as "<role>: <message>" lines.
func (b *Buffer) ContextString() string {
	entries := b.Snapshot()

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.String())
	}
	return strings.Join(lines, "\n")
}
