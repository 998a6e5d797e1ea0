package settings

import "testing"

func TestParseDBType(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    IDBType
		wantErr bool
	}{
		{"sqlite", "sqlite", SQLITE, false},
		{"memory", "memory", MEMORY, false},
		{"postgres", "postgres", POSTGRES, false},
		{"mixed case", "SQLite", SQLITE, false},
		{"padded", "  postgres ", POSTGRES, false},
		{"unknown", "mysql", "", true},
		{"empty", "", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDBType(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("got %q, want an error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
