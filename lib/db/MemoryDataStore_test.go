package db

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	dbModel "github.com/slugline/slugline-go/lib/models/db"
)

func TestMemoryDataStoreScriptLifecycle(t *testing.T) {
	store := NewMemoryDataStore()

	exists, err := store.DoesScriptExist("myscript")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *exists {
		t.Error("script reported before creation")
	}

	if err := store.CreateScript("myscript", "first body"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	exists, _ = store.DoesScriptExist("myscript")
	if !*exists {
		t.Error("script not reported after creation")
	}

	retrieved, err := store.GetScript("myscript")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if retrieved.Content != "first body" {
		t.Errorf("got %q", retrieved.Content)
	}
	if retrieved.UpdatedAt != nil {
		t.Error("fresh script already has an update time")
	}

	if err := store.SaveScript("myscript", "second body"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	retrieved, _ = store.GetScript("myscript")
	if retrieved.Content != "second body" {
		t.Errorf("got %q", retrieved.Content)
	}
	if retrieved.UpdatedAt == nil {
		t.Error("save did not stamp an update time")
	}
}

func TestMemoryDataStoreGetMissingScript(t *testing.T) {
	store := NewMemoryDataStore()

	if _, err := store.GetScript("missing"); err == nil || err.Error() != ScriptDoesNotExistError {
		t.Errorf("got %v, want %q", err, ScriptDoesNotExistError)
	}
	if err := store.SaveScript("missing", "body"); err == nil || err.Error() != ScriptDoesNotExistError {
		t.Errorf("got %v, want %q", err, ScriptDoesNotExistError)
	}
}

func TestMemoryDataStoreGetScriptIdsSorted(t *testing.T) {
	store := NewMemoryDataStore()
	for _, id := range []string{"zeta", "alpha", "mid"} {
		if err := store.CreateScript(id, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	scriptIds, err := store.GetScriptIds()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if diff := cmp.Diff(want, *scriptIds); diff != "" {
		t.Errorf("script ids mismatch (-want +got):\n%s", diff)
	}
}

func makeSnapshot(scriptID string, snapshotID string, seq int) dbModel.SnapshotDB {
	return dbModel.SnapshotDB{
		ID:             snapshotID,
		ScriptID:       scriptID,
		SequenceNumber: seq,
		Content:        "content " + snapshotID,
		CreatedAt:      time.Now(),
	}
}

func TestMemoryDataStoreSnapshotsOrderedBySequence(t *testing.T) {
	store := NewMemoryDataStore()
	_ = store.CreateSnapshot(makeSnapshot("myscript", "c", 3))
	_ = store.CreateSnapshot(makeSnapshot("myscript", "a", 1))
	_ = store.CreateSnapshot(makeSnapshot("myscript", "b", 2))
	_ = store.CreateSnapshot(makeSnapshot("other", "x", 1))

	snapshots, err := store.GetSnapshots("myscript")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var gotIds []string
	for _, snapshot := range *snapshots {
		gotIds = append(gotIds, snapshot.ID)
	}
	want := []string{"a", "b", "c"}
	if diff := cmp.Diff(want, gotIds); diff != "" {
		t.Errorf("snapshot order mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryDataStoreSetCurrentSnapshotIsExclusive(t *testing.T) {
	store := NewMemoryDataStore()
	_ = store.CreateSnapshot(makeSnapshot("myscript", "a", 1))
	_ = store.CreateSnapshot(makeSnapshot("myscript", "b", 2))

	if err := store.SetCurrentSnapshot("myscript", "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.SetCurrentSnapshot("myscript", "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshots, _ := store.GetSnapshots("myscript")
	for _, snapshot := range *snapshots {
		if snapshot.IsCurrent != (snapshot.ID == "b") {
			t.Errorf("snapshot %s: IsCurrent = %v", snapshot.ID, snapshot.IsCurrent)
		}
	}
}

func TestMemoryDataStoreSetCurrentUnknownSnapshot(t *testing.T) {
	store := NewMemoryDataStore()

	if err := store.SetCurrentSnapshot("myscript", "missing"); err == nil || err.Error() != SnapshotDoesNotExistError {
		t.Errorf("got %v, want %q", err, SnapshotDoesNotExistError)
	}
}

func TestMemoryDataStoreRemoveScriptDropsSnapshots(t *testing.T) {
	store := NewMemoryDataStore()
	_ = store.CreateScript("myscript", "body")
	_ = store.CreateSnapshot(makeSnapshot("myscript", "a", 1))
	_ = store.CreateSnapshot(makeSnapshot("other", "x", 1))

	if err := store.RemoveScript("myscript"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshots, _ := store.GetSnapshots("myscript")
	if len(*snapshots) != 0 {
		t.Errorf("%d snapshots survived script removal", len(*snapshots))
	}
	otherSnapshots, _ := store.GetSnapshots("other")
	if len(*otherSnapshots) != 1 {
		t.Error("unrelated snapshots were removed")
	}
}

func TestMemoryDataStoreUpdateSnapshotContent(t *testing.T) {
	store := NewMemoryDataStore()
	_ = store.CreateSnapshot(makeSnapshot("myscript", "a", 1))

	if err := store.UpdateSnapshotContent("a", "rewritten"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	retrieved, _ := store.GetSnapshot("a")
	if retrieved.Content != "rewritten" {
		t.Errorf("got %q", retrieved.Content)
	}

	if err := store.UpdateSnapshotContent("missing", "x"); err == nil || err.Error() != SnapshotDoesNotExistError {
		t.Errorf("got %v, want %q", err, SnapshotDoesNotExistError)
	}
}
