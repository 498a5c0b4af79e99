package entities

import "fmt"

// Role identifies who produced a conversation entry.
type Role string

// Conversation roles.
const (
	RoleUser       Role = "user"
	RoleBot        Role = "bot"
	RoleValidation Role = "validation"
)

// IsValid checks if the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleBot, RoleValidation:
		return true
	}
	return false
}

// ConversationEntry is a single role-tagged message in a session history.
type ConversationEntry struct {
	Role    Role   `json:"role"`
	Message string `json:"message"`
}

// String renders the entry as it appears in a chat context block.
func (e ConversationEntry) String() string {
	return fmt.Sprintf("%s: %s", e.Role, e.Message)
}
