package models

import "github.com/google/uuid"

// ManualRule maps a trigger keyword/phrase to a literal response. Only active
// rules participate in matching. Rules have no priority field: matching scans
// them in storage order and the first hit wins.
type ManualRule struct {
	ID       uuid.UUID `db:"id"`
	Trigger  string    `db:"trigger"` // lowercase-normalized keyword or phrase
	Response string    `db:"response"`
	Active   bool      `db:"active"`
}
