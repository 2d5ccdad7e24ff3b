package domain

import "time"

// Role tags a transcript turn with its author
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ChatTurn is one entry in the visible transcript. The transcript is
// append-only and maintained for display; the dispatcher never replays it.
type ChatTurn struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
