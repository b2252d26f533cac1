// Package fixture provides local JSON snapshots of API payloads.
//
// Two directories are involved: a data directory holding fixtures that
// replace network calls in offline mode, and an optional debug directory
// that every fetched or submitted payload is dumped to. Both are explicit
// configuration, not process-wide flags.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store reads fixtures from a data directory and dumps debug snapshots
// to a debug directory. An empty debug directory disables dumping.
type Store struct {
	dataDir  string
	debugDir string
}

// NewStore returns a Store over the given directories.
func NewStore(dataDir, debugDir string) *Store {
	return &Store{dataDir: dataDir, debugDir: debugDir}
}

// Load reads and decodes the named fixture from the data directory.
func (s *Store) Load(name string, v any) error {
	path := filepath.Join(s.dataDir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode fixture %s: %w", path, err)
	}
	return nil
}

// DumpEnabled reports whether debug dumping is configured.
func (s *Store) DumpEnabled() bool {
	return s.debugDir != ""
}

// Dump writes v as indented JSON to the named file in the debug
// directory, creating the directory if needed. It is a no-op when no
// debug directory is configured.
func (s *Store) Dump(name string, v any) error {
	if !s.DumpEnabled() {
		return nil
	}

	if err := os.MkdirAll(s.debugDir, 0755); err != nil {
		return fmt.Errorf("failed to create debug directory %s: %w", s.debugDir, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode debug snapshot %s: %w", name, err)
	}

	path := filepath.Join(s.debugDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write debug snapshot %s: %w", path, err)
	}
	return nil
}
