package ports

import "github.com/medicheck/medicheck/internal/domain/entities"

// ConversationStore holds bounded, per-session conversation histories.
type ConversationStore interface {
	// Append adds an entry to the session history, evicting the oldest
	// entry when the history is full. Entries with an unknown role are
	// rejected.
	Append(session string, entry entities.ConversationEntry) error

	// Snapshot returns a copy of the session history in insertion order.
	Snapshot(session string) []entities.ConversationEntry

	// ContextString renders the session history as "<role>: <message>" lines.
	ContextString(session string) string

	// Reset drops the session history.
	Reset(session string)
}
