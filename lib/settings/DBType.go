package settings

import (
	"fmt"
	"strings"
)

// IDBType selects which DataStore backend the engine runs against.
type IDBType string

const (
	SQLITE   IDBType = "sqlite"
	MEMORY   IDBType = "memory"
	POSTGRES IDBType = "postgres"
)

// ParseDBType maps a configured string onto a backend, tolerating case
// and surrounding whitespace. Memory keeps everything in process and is
// meant for tests and throwaway runs.
func ParseDBType(raw string) (IDBType, error) {
	dbType := IDBType(strings.ToLower(strings.TrimSpace(raw)))
	switch dbType {
	case SQLITE, MEMORY, POSTGRES:
		return dbType, nil
	}
	return "", fmt.Errorf("unsupported dbType %q, expected sqlite, memory or postgres", raw)
}

func (dbType IDBType) String() string {
	return string(dbType)
}
