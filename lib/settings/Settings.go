package settings

type DBSettings struct {
	Filename string
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

// AISettings configures the opaque text-generation collaborator. The
// engine only ever sends a prompt and reads back text; an empty endpoint
// disables the feature.
type AISettings struct {
	Endpoint string
	APIKey   string
	Model    string
}

type Settings struct {
	Title      string
	IP         string
	Port       string
	DBType     IDBType
	DBSettings DBSettings
	AI         AISettings
	// AutoSaveSnapshotNotes is the notes text stamped on auto-created
	// snapshots so they are distinguishable in the history list.
	AutoSaveSnapshotNotes string
}
