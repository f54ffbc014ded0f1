// Package history persists audit score history. Entries are stored under the
// user cache directory, never inside the audited repository: the engine
// performs no writes to audited trees.
package history

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/deploycheck/deploycheck/internal/domain"
)

const appDir = "deploycheck"

// FileHistory implements domain.AuditHistory using JSON files keyed by the
// audited repository's absolute path.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(repoPath string, entry domain.AuditEntry) error {
	entries, err := h.Load(repoPath)
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	fp, err := historyFile(repoPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(repoPath string) ([]domain.AuditEntry, error) {
	fp, err := historyFile(repoPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.AuditEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func historyFile(repoPath string) (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return "", err
	}
	sum := sha1.Sum([]byte(abs))
	name := hex.EncodeToString(sum[:]) + ".json"
	return filepath.Join(cacheDir, appDir, "history", name), nil
}
