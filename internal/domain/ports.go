package domain

// FileFinder resolves a rule's path patterns against a repository root into
// an ordered, deduplicated list of matching relative paths.
type FileFinder interface {
	Find(root string, rule Rule) ([]string, error)
}

// FileReader returns the text content of a file. Implementations may cache
// per path within a single run; matched files are read-only audit input.
type FileReader interface {
	Read(path string) (string, error)
}

// CatalogLoader loads a rule catalog from a source path. An empty path loads
// the built-in catalog.
type CatalogLoader interface {
	Load(path string) (*Catalog, error)
}

// GitInfo exposes repository metadata for report traceability.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}

// AuditEntry is one persisted history record of a completed audit.
type AuditEntry struct {
	Timestamp      string  `json:"timestamp"`
	CommitHash     string  `json:"commit_hash,omitempty"`
	Score          float64 `json:"score"`
	Grade          string  `json:"grade"`
	CriticalFailed int     `json:"critical_failed"`
}

// AuditHistory persists audit entries outside the audited repository.
type AuditHistory interface {
	Save(repoPath string, entry AuditEntry) error
	Load(repoPath string) ([]AuditEntry, error)
}
