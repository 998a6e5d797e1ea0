package db

import (
	"strconv"
	"time"
)

// SnapshotDB is one revision-history row. Content is the serialized
// document at capture time and is never rewritten after creation except
// through an explicit auto-save content update; IsCurrent is toggled only
// as part of a save, restore or delete transaction.
type SnapshotDB struct {
	ID             string
	ScriptID       string
	SequenceNumber int
	Content        string
	Notes          string
	AutoSave       bool
	IsCurrent      bool
	CreatedAt      time.Time
}

// Label renders the user-facing revision name, e.g. "v3".
func (s SnapshotDB) Label() string {
	return "v" + strconv.Itoa(s.SequenceNumber)
}
