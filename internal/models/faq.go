package models

import "github.com/google/uuid"

// FAQ is a suggested question surfaced on the chat landing screen.
type FAQ struct {
	ID        uuid.UUID `db:"id"`
	Question  string    `db:"question"`
	Category  string    `db:"category"`
	DateAdded int64     `db:"date_added"` // epoch ms
}
