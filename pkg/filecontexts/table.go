package filecontexts

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// Entry is a single file contexts table entry.
type Entry struct {
	// Path is the absolute path the entry applies to.
	Path string `toml:"path"`

	// Prefix lets the entry additionally match every path below Path.
	Prefix bool `toml:"prefix"`

	// Type restricts the entry to a single file type (see FileTypes). An
	// empty type matches every object.
	Type string `toml:"type"`

	// Label is the expected security context.
	Label string `toml:"label"`
}

// Table is a static file contexts Database loaded from a TOML file. The most
// specific matching entry wins: exact path matches beat prefix matches,
// longer prefixes beat shorter ones, later entries beat earlier ones. It
// deliberately understands no pattern language beyond path prefixes.
type Table struct {
	path    string
	entries []Entry
	mu      sync.RWMutex
}

// tomlTable is another way of looking at the entries, which is more in sync
// with the TOML specification.
type tomlTable struct {
	Context []Entry `toml:"context"`
}

// LoadTable reads a file contexts table from the TOML file at path.
func LoadTable(path string) (*Table, error) {
	t := &Table{path: path}
	if err := t.Reload(); err != nil {
		return nil, err
	}

	return t, nil
}

// Reload implements Reloader by re-reading the backing TOML file.
func (t *Table) Reload() error {
	data, err := os.ReadFile(t.path)
	if err != nil {
		return fmt.Errorf("unable to read file contexts table: %w", err)
	}

	table := tomlTable{}
	if _, err := toml.Decode(string(data), &table); err != nil {
		return fmt.Errorf("unable to decode file contexts table %s: %w", t.path, err)
	}

	for i, entry := range table.Context {
		if entry.Path == "" || entry.Label == "" {
			return fmt.Errorf("file contexts entry %d: path and label are required", i)
		}

		if entry.Type != "" {
			if _, err := ModeOfType(entry.Type); err != nil {
				return fmt.Errorf("file contexts entry %d: %w", i, err)
			}
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = table.Context

	return nil
}

// Lookup implements Database.
func (t *Table) Lookup(path string, mode fs.FileMode) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	fileType := TypeOfMode(mode)

	label := ""
	bestScore := -1

	for _, entry := range t.entries {
		if entry.Type != "" && entry.Type != fileType {
			continue
		}

		score := -1
		switch {
		case entry.Path == path:
			// Exact matches always beat prefix matches.
			score = len(entry.Path) + 1
		case entry.Prefix && matchesPrefix(path, entry.Path):
			score = len(entry.Path)
		}

		if score >= 0 && score >= bestScore {
			bestScore = score
			label = entry.Label
		}
	}

	if bestScore < 0 {
		return "", fmt.Errorf("no context configured for %s", path)
	}

	return label, nil
}

// matchesPrefix matches prefix against path on path element boundaries, so
// that /var/lib matches /var/lib/foo but not /var/library.
func matchesPrefix(path, prefix string) bool {
	if prefix == "/" {
		return strings.HasPrefix(path, "/")
	}

	return strings.HasPrefix(path, prefix+"/")
}
