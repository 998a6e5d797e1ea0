package db

import (
	"errors"
	"sort"
	"time"

	dbModel "github.com/slugline/slugline-go/lib/models/db"
)

// MemoryDataStore keeps everything in maps. It backs tests and the
// default development configuration.
type MemoryDataStore struct {
	scriptStore   map[string]dbModel.ScriptDB
	snapshotStore map[string]dbModel.SnapshotDB
}

func NewMemoryDataStore() *MemoryDataStore {
	return &MemoryDataStore{
		scriptStore:   make(map[string]dbModel.ScriptDB),
		snapshotStore: make(map[string]dbModel.SnapshotDB),
	}
}

func (m *MemoryDataStore) DoesScriptExist(scriptID string) (*bool, error) {
	_, ok := m.scriptStore[scriptID]
	return &ok, nil
}

func (m *MemoryDataStore) CreateScript(scriptID string, content string) error {
	m.scriptStore[scriptID] = dbModel.ScriptDB{
		ID:        scriptID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	return nil
}

func (m *MemoryDataStore) GetScript(scriptID string) (*dbModel.ScriptDB, error) {
	retrieved, ok := m.scriptStore[scriptID]
	if !ok {
		return nil, errors.New(ScriptDoesNotExistError)
	}
	return &retrieved, nil
}

func (m *MemoryDataStore) SaveScript(scriptID string, content string) error {
	retrieved, ok := m.scriptStore[scriptID]
	if !ok {
		return errors.New(ScriptDoesNotExistError)
	}
	now := time.Now()
	retrieved.Content = content
	retrieved.UpdatedAt = &now
	m.scriptStore[scriptID] = retrieved
	return nil
}

func (m *MemoryDataStore) RemoveScript(scriptID string) error {
	delete(m.scriptStore, scriptID)
	for id, snapshot := range m.snapshotStore {
		if snapshot.ScriptID == scriptID {
			delete(m.snapshotStore, id)
		}
	}
	return nil
}

func (m *MemoryDataStore) GetScriptIds() (*[]string, error) {
	scriptIds := make([]string, 0, len(m.scriptStore))
	for id := range m.scriptStore {
		scriptIds = append(scriptIds, id)
	}
	sort.Strings(scriptIds)
	return &scriptIds, nil
}

func (m *MemoryDataStore) CreateSnapshot(snapshot dbModel.SnapshotDB) error {
	m.snapshotStore[snapshot.ID] = snapshot
	return nil
}

func (m *MemoryDataStore) GetSnapshot(snapshotID string) (*dbModel.SnapshotDB, error) {
	retrieved, ok := m.snapshotStore[snapshotID]
	if !ok {
		return nil, errors.New(SnapshotDoesNotExistError)
	}
	return &retrieved, nil
}

func (m *MemoryDataStore) GetSnapshots(scriptID string) (*[]dbModel.SnapshotDB, error) {
	snapshots := make([]dbModel.SnapshotDB, 0)
	for _, snapshot := range m.snapshotStore {
		if snapshot.ScriptID == scriptID {
			snapshots = append(snapshots, snapshot)
		}
	}
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].SequenceNumber < snapshots[j].SequenceNumber
	})
	return &snapshots, nil
}

func (m *MemoryDataStore) UpdateSnapshotContent(snapshotID string, content string) error {
	retrieved, ok := m.snapshotStore[snapshotID]
	if !ok {
		return errors.New(SnapshotDoesNotExistError)
	}
	retrieved.Content = content
	m.snapshotStore[snapshotID] = retrieved
	return nil
}

func (m *MemoryDataStore) SetCurrentSnapshot(scriptID string, snapshotID string) error {
	if _, ok := m.snapshotStore[snapshotID]; !ok {
		return errors.New(SnapshotDoesNotExistError)
	}
	for id, snapshot := range m.snapshotStore {
		if snapshot.ScriptID != scriptID {
			continue
		}
		snapshot.IsCurrent = id == snapshotID
		m.snapshotStore[id] = snapshot
	}
	return nil
}

func (m *MemoryDataStore) RemoveSnapshot(snapshotID string) error {
	delete(m.snapshotStore, snapshotID)
	return nil
}
