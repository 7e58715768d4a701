package filecontexts

import (
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/cri-o/relabel/internal/cmdrunner"
)

// matchPathConBinary ships with libselinux and answers file contexts
// queries against the loaded policy.
const matchPathConBinary = "matchpathcon"

// noneContext is printed by matchpathcon for paths the policy explicitly
// leaves unlabeled.
const noneContext = "<<none>>"

// MatchPathCon is a Database backed by the matchpathcon binary. Resolved
// contexts are cached per path and file type, the same way libselinux caches
// its matches.
type MatchPathCon struct {
	cache map[string]string
	mu    sync.Mutex
}

// NewMatchPathCon creates a new matchpathcon backed Database.
func NewMatchPathCon() *MatchPathCon {
	return &MatchPathCon{cache: map[string]string{}}
}

// Lookup implements Database.
func (m *MatchPathCon) Lookup(path string, mode fs.FileMode) (string, error) {
	fileType := TypeOfMode(mode)
	key := fileType + ":" + path

	m.mu.Lock()
	label, hit := m.cache[key]
	m.mu.Unlock()

	if hit {
		return label, nil
	}

	args := []string{"-n"}
	if fileType != "" {
		args = append(args, "-m", fileType)
	}
	args = append(args, path)

	output, err := cmdrunner.CombinedOutput(matchPathConBinary, args...)
	if err != nil {
		return "", fmt.Errorf(
			"run %s for %s: %w (output: %s)",
			matchPathConBinary, path, err, strings.TrimSpace(string(output)),
		)
	}

	label = strings.TrimSpace(string(output))
	if label == "" || strings.Contains(label, noneContext) {
		return "", fmt.Errorf("no context configured for %s", path)
	}

	m.mu.Lock()
	m.cache[key] = label
	m.mu.Unlock()

	return label, nil
}

// Reload implements Reloader by dropping the lookup cache.
func (m *MatchPathCon) Reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache = map[string]string{}

	return nil
}
