package db

import "time"

// ScriptDB is the persisted row for a script: the serialized document plus
// bookkeeping the engine does not interpret.
type ScriptDB struct {
	ID        string
	Content   string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
