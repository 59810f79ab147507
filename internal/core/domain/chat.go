package domain

import "time"

// Chat roles. Turns only ever carry one of these.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one message in a conversation. Turns are immutable once
// appended.
type ChatTurn struct {
	// Role is one of RoleSystem, RoleUser or RoleAssistant.
	Role string `json:"role"`

	// Content is the message text.
	Content string `json:"content"`
}

// Conversation is an ordered, append-only log of chat turns. Retrieved
// context is injected per call and never stored here; the visible
// history stays clean. Conversations are not summarised or windowed,
// a known scaling limit.
type Conversation struct {
	// ID identifies the conversation for archival.
	ID string

	// Turns is the visible history in append order.
	Turns []ChatTurn

	// StartedAt is when the conversation began.
	StartedAt time.Time
}

// Append adds a turn to the visible history.
func (c *Conversation) Append(role, content string) {
	c.Turns = append(c.Turns, ChatTurn{Role: role, Content: content})
}

// Len returns the number of visible turns.
func (c *Conversation) Len() int {
	return len(c.Turns)
}
