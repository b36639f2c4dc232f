package models

import "github.com/google/uuid"

type MessageRole string

const (
	RoleUser   MessageRole = "user"
	RoleModel  MessageRole = "model"
	RoleSystem MessageRole = "system"
)

// Message is append-only within a session; feedback is the only mutation
// applied after creation.
type Message struct {
	ID        uuid.UUID   `db:"id"`
	SessionID uuid.UUID   `db:"session_id"`
	Role      MessageRole `db:"role"`
	Content   string      `db:"content"`
	Timestamp int64       `db:"timestamp"` // epoch ms
	IsError   bool        `db:"is_error"`
	Feedback  *int        `db:"feedback"` // 1 thumbs up, -1 thumbs down, nil unset
}

// ChatSession groups the messages of one conversation. The title is derived
// from the first user message at creation time and never recomputed.
type ChatSession struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Title       string    `db:"title"`
	LastUpdated int64     `db:"last_updated"` // epoch ms
	Messages    []Message `db:"-"`
}
