// Package history keeps the ordered snapshot record of every script.
// Snapshots are immutable after capture; only the current flag moves, and
// only inside a save, restore or delete transaction.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/slugline/slugline-go/lib/db"
	"github.com/slugline/slugline-go/lib/diffengine"
	"github.com/slugline/slugline-go/lib/exception"
	dbModel "github.com/slugline/slugline-go/lib/models/db"
)

// Store serializes every history transaction behind one mutex so the
// single-current invariant survives interleaved save, restore and delete
// calls. It owns no document state; everything lives in the datastore.
type Store struct {
	mu     sync.Mutex
	store  db.DataStore
	logger *zap.SugaredLogger
}

func NewStore(store db.DataStore, logger *zap.SugaredLogger) *Store {
	return &Store{store: store, logger: logger}
}

// Snapshot captures content as the next revision of the script and makes
// it current. Sequence numbers are 1-based and strictly monotonic; the
// label "v<N>" is derived, never stored.
func (s *Store) Snapshot(scriptID string, content string, notes string, autoSave bool) (*dbModel.SnapshotDB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.store.GetSnapshots(scriptID)
	if err != nil {
		return nil, exception.NewDatabaseError("failed to load snapshot history", err)
	}

	snapshot := dbModel.SnapshotDB{
		ID:             uuid.NewString(),
		ScriptID:       scriptID,
		SequenceNumber: len(*existing) + 1,
		Content:        content,
		Notes:          notes,
		AutoSave:       autoSave,
		IsCurrent:      true,
		CreatedAt:      time.Now(),
	}
	if err := s.store.CreateSnapshot(snapshot); err != nil {
		return nil, exception.NewDatabaseError("failed to create snapshot", err)
	}
	if err := s.store.SetCurrentSnapshot(scriptID, snapshot.ID); err != nil {
		return nil, exception.NewDatabaseError("failed to mark snapshot current", err)
	}

	s.logger.Infow("snapshot created", "scriptId", scriptID, "label", snapshot.Label(), "autoSave", autoSave)
	return &snapshot, nil
}

// UpdateSnapshotContent rewrites the content of an existing snapshot in
// place. The auto-save policy lives with the caller; the store only
// provides the primitive.
func (s *Store) UpdateSnapshotContent(snapshotID string, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.UpdateSnapshotContent(snapshotID, content); err != nil {
		return exception.NewSnapshotNotFoundError(snapshotID)
	}
	return nil
}

// Get returns one snapshot by id.
func (s *Store) Get(snapshotID string) (*dbModel.SnapshotDB, error) {
	snapshot, err := s.store.GetSnapshot(snapshotID)
	if err != nil {
		return nil, exception.NewSnapshotNotFoundError(snapshotID)
	}
	return snapshot, nil
}

// List returns the script's snapshots in ascending sequence order.
func (s *Store) List(scriptID string) ([]dbModel.SnapshotDB, error) {
	snapshots, err := s.store.GetSnapshots(scriptID)
	if err != nil {
		return nil, exception.NewDatabaseError("failed to load snapshot history", err)
	}
	return *snapshots, nil
}

// Current returns the script's current snapshot.
func (s *Store) Current(scriptID string) (*dbModel.SnapshotDB, error) {
	snapshots, err := s.store.GetSnapshots(scriptID)
	if err != nil {
		return nil, exception.NewDatabaseError("failed to load snapshot history", err)
	}
	for i := range *snapshots {
		if (*snapshots)[i].IsCurrent {
			return &(*snapshots)[i], nil
		}
	}
	return nil, exception.NewEmptyHistoryError(scriptID)
}

// Restore marks the target snapshot current and hands back its content
// for the caller to load into a fresh document. No other snapshot is
// touched beyond losing the current flag.
func (s *Store) Restore(snapshotID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.store.GetSnapshot(snapshotID)
	if err != nil {
		return "", exception.NewSnapshotNotFoundError(snapshotID)
	}
	if err := s.store.SetCurrentSnapshot(snapshot.ScriptID, snapshot.ID); err != nil {
		return "", exception.NewDatabaseError("failed to mark snapshot current", err)
	}

	s.logger.Infow("snapshot restored", "scriptId", snapshot.ScriptID, "label", snapshot.Label())
	return snapshot.Content, nil
}

// DeleteSnapshot removes the snapshot. When the deleted snapshot was
// current, the highest remaining sequence number takes over; deleting the
// last snapshot of a script reports EmptyHistoryError after the removal,
// and the caller recovers by saving an initial snapshot.
func (s *Store) DeleteSnapshot(snapshotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.store.GetSnapshot(snapshotID)
	if err != nil {
		return exception.NewSnapshotNotFoundError(snapshotID)
	}
	if err := s.store.RemoveSnapshot(snapshotID); err != nil {
		return exception.NewDatabaseError("failed to remove snapshot", err)
	}
	if !snapshot.IsCurrent {
		return nil
	}

	remaining, err := s.store.GetSnapshots(snapshot.ScriptID)
	if err != nil {
		return exception.NewDatabaseError("failed to load snapshot history", err)
	}
	if len(*remaining) == 0 {
		return exception.NewEmptyHistoryError(snapshot.ScriptID)
	}
	newest := (*remaining)[len(*remaining)-1]
	if err := s.store.SetCurrentSnapshot(snapshot.ScriptID, newest.ID); err != nil {
		return exception.NewDatabaseError("failed to mark snapshot current", err)
	}

	s.logger.Infow("snapshot deleted", "scriptId", snapshot.ScriptID,
		"label", snapshot.Label(), "newCurrent", newest.Label())
	return nil
}

// DiffSnapshots compares the rendered text of two snapshots. render maps
// stored content to the line-oriented text the diff walks; passing nil
// diffs the raw content.
func (s *Store) DiffSnapshots(oldID string, newID string, render func(string) string) ([]diffengine.Entry, error) {
	oldSnapshot, err := s.store.GetSnapshot(oldID)
	if err != nil {
		return nil, exception.NewSnapshotNotFoundError(oldID)
	}
	newSnapshot, err := s.store.GetSnapshot(newID)
	if err != nil {
		return nil, exception.NewSnapshotNotFoundError(newID)
	}
	oldText, newText := oldSnapshot.Content, newSnapshot.Content
	if render != nil {
		oldText, newText = render(oldText), render(newText)
	}
	return diffengine.Diff(oldText, newText), nil
}
