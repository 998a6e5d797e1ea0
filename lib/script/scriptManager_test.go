package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"

	"github.com/slugline/slugline-go/lib/db"
	"github.com/slugline/slugline-go/lib/element"
	"github.com/slugline/slugline-go/lib/exception"
)

func newTestManager(t *testing.T) (*Manager, db.DataStore) {
	t.Helper()
	dataStore := db.NewMemoryDataStore()
	return NewManager(dataStore, zap.NewNop().Sugar()), dataStore
}

// fakeScene fills a document with a short generated scene so manager
// tests work on non-trivial content.
func fakeScene(t *testing.T, doc *Document) {
	t.Helper()
	faker := gofakeit.New(42)
	lineId := doc.Serialize().Lines[0].Id
	doc.UpdateText(lineId, "INT. "+strings.ToUpper(faker.City())+" - NIGHT")
	lineId = doc.InsertAfter(lineId, element.Character)
	doc.UpdateText(lineId, strings.ToUpper(faker.FirstName()))
	lineId = doc.InsertAfter(lineId, element.Dialogue)
	doc.UpdateText(lineId, faker.Sentence(8))
	lineId = doc.InsertAfter(lineId, element.Action)
	doc.UpdateText(lineId, faker.Sentence(12))
}

func TestManagerCreatesUnknownScript(t *testing.T) {
	manager, dataStore := newTestManager(t)

	doc, err := manager.GetScript("myscript")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.LineCount() != 1 {
		t.Errorf("fresh document has %d lines, want 1", doc.LineCount())
	}

	exists, _ := dataStore.DoesScriptExist("myscript")
	if !*exists {
		t.Error("fresh document was not persisted")
	}
}

func TestManagerRejectsInvalidScriptId(t *testing.T) {
	manager, _ := newTestManager(t)

	for _, scriptID := range []string{"", " leading", "has space", "$money", strings.Repeat("x", 51)} {
		_, err := manager.GetScript(scriptID)
		var notFound *exception.ScriptNotFoundError
		if !errors.As(err, &notFound) {
			t.Errorf("GetScript(%q): got %v, want ScriptNotFoundError", scriptID, err)
		}
	}
}

func TestManagerCachesWorkingCopy(t *testing.T) {
	manager, _ := newTestManager(t)

	doc, err := manager.GetScript("myscript")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := manager.GetScript("myscript")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc != again {
		t.Error("second load returned a different working copy")
	}
}

func TestManagerSaveAndReloadRoundTrip(t *testing.T) {
	manager, _ := newTestManager(t)

	doc, err := manager.GetScript("myscript")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fakeScene(t, doc)
	if err := manager.SaveScript(doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	manager.UnloadScript("myscript")
	reloaded, err := manager.GetScript("myscript")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reloaded == doc {
		t.Fatal("unload did not evict the working copy")
	}

	want := doc.Serialize()
	got := reloaded.Serialize()
	if len(got.Lines) != len(want.Lines) {
		t.Fatalf("got %d lines, want %d", len(got.Lines), len(want.Lines))
	}
	for i := range want.Lines {
		if got.Lines[i].Text != want.Lines[i].Text || got.Lines[i].Type != want.Lines[i].Type {
			t.Errorf("line %d: got %s %q, want %s %q",
				i, got.Lines[i].Type, got.Lines[i].Text, want.Lines[i].Type, want.Lines[i].Text)
		}
	}
}

// The first save inserts the row; every later save must go through the
// store's update path, which stamps the update time.
func TestManagerSaveUsesUpdatePathForExistingScript(t *testing.T) {
	manager, dataStore := newTestManager(t)

	doc, err := manager.GetScript("myscript")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row, _ := dataStore.GetScript("myscript")
	if row.UpdatedAt != nil {
		t.Fatal("initial save went through the update path")
	}

	fakeScene(t, doc)
	if err := manager.SaveScript(doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row, _ = dataStore.GetScript("myscript")
	if row.UpdatedAt == nil {
		t.Error("existing script was not saved through the update path")
	}
}

func TestManagerReplaceScript(t *testing.T) {
	manager, _ := newTestManager(t)

	doc, _ := manager.GetScript("myscript")
	fakeScene(t, doc)
	_ = manager.SaveScript(doc)
	content, err := Marshal(doc.Serialize())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other, _ := manager.GetScript("other")
	replaced, err := manager.ReplaceScript("other", content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if replaced == other {
		t.Error("replace kept the old working copy")
	}
	if replaced.LineCount() != doc.LineCount() {
		t.Errorf("got %d lines, want %d", replaced.LineCount(), doc.LineCount())
	}

	cached, _ := manager.GetScript("other")
	if cached != replaced {
		t.Error("cache does not hold the replacement copy")
	}
}

func TestManagerRemoveScript(t *testing.T) {
	manager, dataStore := newTestManager(t)

	_, _ = manager.GetScript("myscript")
	if err := manager.RemoveScript("myscript"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exists, _ := dataStore.DoesScriptExist("myscript")
	if *exists {
		t.Error("script still in the store after removal")
	}
}

func TestManagerListScripts(t *testing.T) {
	manager, _ := newTestManager(t)
	for _, scriptID := range []string{"beta", "alpha"} {
		if _, err := manager.GetScript(scriptID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	scriptIds, err := manager.ListScripts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scriptIds) != 2 || scriptIds[0] != "alpha" || scriptIds[1] != "beta" {
		t.Errorf("got %v", scriptIds)
	}
}

func TestIsValidScriptId(t *testing.T) {
	manager, _ := newTestManager(t)

	valid := []string{"a", "myscript", "Draft-3", "9lives", strings.Repeat("x", 50)}
	for _, scriptID := range valid {
		if !manager.IsValidScriptId(scriptID) {
			t.Errorf("IsValidScriptId(%q) = false", scriptID)
		}
	}
	invalid := []string{"", "-leading", "has space", "tab\tid", strings.Repeat("x", 51)}
	for _, scriptID := range invalid {
		if manager.IsValidScriptId(scriptID) {
			t.Errorf("IsValidScriptId(%q) = true", scriptID)
		}
	}
}
