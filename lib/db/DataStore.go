package db

import (
	dbModel "github.com/slugline/slugline-go/lib/models/db"
)

// ScriptMethods is the persistence surface for script documents.
type ScriptMethods interface {
	DoesScriptExist(scriptID string) (*bool, error)
	CreateScript(scriptID string, content string) error
	GetScript(scriptID string) (*dbModel.ScriptDB, error)
	SaveScript(scriptID string, content string) error
	RemoveScript(scriptID string) error
	GetScriptIds() (*[]string, error)
}

// SnapshotMethods is the persistence surface for revision history. The
// ordering and single-current invariants are enforced by the history
// store on top of these primitives, not by implementations.
type SnapshotMethods interface {
	CreateSnapshot(snapshot dbModel.SnapshotDB) error
	GetSnapshot(snapshotID string) (*dbModel.SnapshotDB, error)
	// GetSnapshots returns the script's snapshots ordered by ascending
	// sequence number.
	GetSnapshots(scriptID string) (*[]dbModel.SnapshotDB, error)
	UpdateSnapshotContent(snapshotID string, content string) error
	// SetCurrentSnapshot flips the current flag to the given snapshot and
	// off everywhere else for that script, atomically per store.
	SetCurrentSnapshot(scriptID string, snapshotID string) error
	RemoveSnapshot(snapshotID string) error
}

// DataStore is the storage boundary of the engine. The engine never
// assumes anything beyond this interface, so tests run entirely against
// the in-memory implementation.
type DataStore interface {
	ScriptMethods
	SnapshotMethods
}
