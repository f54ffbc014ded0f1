// Package content reads audited file text with a per-run cache, so a file
// matched by multiple rules is read once.
package content

import (
	"os"
	"sync"

	"github.com/deploycheck/deploycheck/internal/domain"
)

type cacheEntry struct {
	text string
	err  error
}

// CachedReader implements domain.FileReader. Reads are read-only and results
// (including failures) are cached: file-system errors are deterministic audit
// facts, not transient faults, so no retries are performed.
type CachedReader struct {
	mu    sync.Mutex
	cache map[string]cacheEntry
}

func New() *CachedReader {
	return &CachedReader{cache: make(map[string]cacheEntry)}
}

func (r *CachedReader) Read(path string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.cache[path]; ok {
		return entry.text, entry.err
	}

	data, err := os.ReadFile(path)
	entry := cacheEntry{text: string(data)}
	if err != nil {
		entry = cacheEntry{err: &domain.ContentReadError{Path: path, Err: err}}
	}
	r.cache[path] = entry
	return entry.text, entry.err
}
