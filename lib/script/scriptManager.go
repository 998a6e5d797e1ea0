package script

import (
	"regexp"

	"go.uber.org/zap"

	"github.com/slugline/slugline-go/lib/db"
	"github.com/slugline/slugline-go/lib/exception"
)

var scriptIdRegex *regexp.Regexp

func init() {
	scriptIdRegex = regexp.MustCompile(`^[A-Za-z0-9][^ \t\r\n\f\v$]{0,49}$`)
}

type globalScriptCache struct {
	scriptCache map[string]*Document
}

func (g *globalScriptCache) GetScript(scriptID string) *Document {
	return g.scriptCache[scriptID]
}

func (g *globalScriptCache) SetScript(scriptID string, doc *Document) {
	g.scriptCache[scriptID] = doc
}

func (g *globalScriptCache) DeleteScript(scriptID string) {
	delete(g.scriptCache, scriptID)
}

// Manager fronts the datastore with a working-copy cache. A document is
// deserialized once per load; every later operation hits the cached copy
// until the script is unloaded or removed.
type Manager struct {
	store             db.DataStore
	globalScriptCache *globalScriptCache
	logger            *zap.SugaredLogger
}

func NewManager(store db.DataStore, logger *zap.SugaredLogger) *Manager {
	return &Manager{
		store: store,
		globalScriptCache: &globalScriptCache{
			scriptCache: make(map[string]*Document),
		},
		logger: logger,
	}
}

func (m *Manager) IsValidScriptId(scriptID string) bool {
	return scriptIdRegex.MatchString(scriptID)
}

func (m *Manager) DoesScriptExist(scriptID string) (*bool, error) {
	return m.store.DoesScriptExist(scriptID)
}

// GetScript returns the working copy for the id, loading it from the
// store or creating a fresh single-line document for an unknown id.
func (m *Manager) GetScript(scriptID string) (*Document, error) {
	if !m.IsValidScriptId(scriptID) {
		return nil, exception.NewScriptNotFoundError(scriptID)
	}

	if cached := m.globalScriptCache.GetScript(scriptID); cached != nil {
		return cached, nil
	}

	exists, err := m.store.DoesScriptExist(scriptID)
	if err != nil {
		return nil, exception.NewDatabaseError("failed to check script existence", err)
	}

	if !*exists {
		doc := NewDocument(scriptID)
		if err := m.SaveScript(doc); err != nil {
			return nil, err
		}
		m.globalScriptCache.SetScript(scriptID, doc)
		m.logger.Infow("script created", "scriptId", scriptID)
		return doc, nil
	}

	row, err := m.store.GetScript(scriptID)
	if err != nil {
		return nil, exception.NewDatabaseError("failed to load script", err)
	}
	ser, err := Unmarshal(row.Content)
	if err != nil {
		return nil, exception.NewDatabaseError("failed to decode script content", err)
	}
	doc := FromSerialized(scriptID, ser)
	m.globalScriptCache.SetScript(scriptID, doc)
	return doc, nil
}

// SaveScript writes the document's current serialization back to the
// store, creating the row on first save.
func (m *Manager) SaveScript(doc *Document) error {
	content, err := Marshal(doc.Serialize())
	if err != nil {
		return exception.NewDatabaseError("failed to encode script content", err)
	}
	saveErr := m.store.SaveScript(doc.Id, content)
	if saveErr != nil && saveErr.Error() == db.ScriptDoesNotExistError {
		saveErr = m.store.CreateScript(doc.Id, content)
	}
	if saveErr != nil {
		return exception.NewDatabaseError("failed to persist script", saveErr)
	}
	return nil
}

// ReplaceScript swaps the working copy for one rebuilt from content, used
// after a snapshot restore or a text import.
func (m *Manager) ReplaceScript(scriptID string, content string) (*Document, error) {
	ser, err := Unmarshal(content)
	if err != nil {
		return nil, exception.NewDatabaseError("failed to decode script content", err)
	}
	doc := FromSerialized(scriptID, ser)
	if err := m.SaveScript(doc); err != nil {
		return nil, err
	}
	m.globalScriptCache.SetScript(scriptID, doc)
	return doc, nil
}

func (m *Manager) RemoveScript(scriptID string) error {
	if err := m.store.RemoveScript(scriptID); err != nil {
		return exception.NewDatabaseError("failed to remove script", err)
	}
	m.globalScriptCache.DeleteScript(scriptID)
	m.logger.Infow("script removed", "scriptId", scriptID)
	return nil
}

func (m *Manager) ListScripts() ([]string, error) {
	scriptIds, err := m.store.GetScriptIds()
	if err != nil {
		return nil, exception.NewDatabaseError("failed to list scripts", err)
	}
	return *scriptIds, nil
}

func (m *Manager) UnloadScript(scriptID string) {
	m.globalScriptCache.DeleteScript(scriptID)
}
