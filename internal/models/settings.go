package models

import "time"

// SystemSettings is a process-wide singleton row. APIKey is used only
// server-side for LLM calls and is never exposed to non-admin callers.
type SystemSettings struct {
	ID         int       `db:"id"`
	SystemName string    `db:"system_name"`
	ThemeColor string    `db:"theme_color"` // blue, emerald or violet
	APIKey     string    `db:"api_key"`
	UpdatedAt  time.Time `db:"updated_at"`
}
