// Package discovery resolves rule path patterns against a repository tree.
package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/deploycheck/deploycheck/internal/domain"
)

// Directories never worth auditing. Mirrors the usual ignore sets of build
// and dependency tooling.
var skipDirs = map[string]bool{
	".git":         true,
	".venv":        true,
	"venv":         true,
	"node_modules": true,
	".terraform":   true,
	".idea":        true,
	".vscode":      true,
	"__pycache__":  true,
	"dist":         true,
	"build":        true,
	"vendor":       true,
	"bin":          true,
}

// SkipDir reports whether a directory name is excluded from traversal.
func SkipDir(name string) bool { return skipDirs[name] }

// exampleSuffixes are appended to patterns of rules that opt into
// example/template variants of sensitive files.
var exampleSuffixes = []string{".example", ".sample", ".template"}

// Finder implements domain.FileFinder by walking the repository once per root
// and matching relative paths against expanded glob patterns. The walk result
// is cached for the duration of a run; the cache is safe for concurrent use.
type Finder struct {
	mu    sync.Mutex
	walks map[string][]string
}

func New() *Finder {
	return &Finder{walks: make(map[string][]string)}
}

// Find returns the lexicographically sorted, deduplicated relative paths
// matching the rule's patterns. A non-existent or unreadable root yields an
// empty list, not an error: absence of files is a valid audit input.
func (f *Finder) Find(root string, rule domain.Rule) ([]string, error) {
	files, err := f.filesUnder(root)
	if err != nil {
		return nil, err
	}

	patterns := ExpandPatterns(rule.PathPatterns, rule.ExampleVariants)

	matched := make(map[string]bool)
	for _, rel := range files {
		lower := strings.ToLower(rel)
		for _, pattern := range patterns {
			ok, err := doublestar.Match(pattern, lower)
			if err != nil {
				return nil, &domain.DiscoveryError{Pattern: pattern, Err: err}
			}
			if ok {
				matched[rel] = true
				break
			}
		}
	}

	out := make([]string, 0, len(matched))
	for rel := range matched {
		out = append(out, rel)
	}
	sort.Strings(out)
	return out, nil
}

func (f *Finder) filesUnder(root string) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, &domain.DiscoveryError{Pattern: root, Err: err}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if files, ok := f.walks[abs]; ok {
		return files, nil
	}

	files := walkTree(abs)
	f.walks[abs] = files
	return files, nil
}

// walkTree collects relative slash paths of all regular files under root.
// Directory symlinks are followed, with visited real paths tracked so cycles
// terminate instead of looping. Unreadable directories are skipped.
func walkTree(root string) []string {
	var files []string
	visited := make(map[string]bool)

	if real, err := filepath.EvalSymlinks(root); err == nil {
		visited[real] = true
	}

	var walk func(dir, rel string)
	walk = func(dir, rel string) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}
		for _, entry := range entries {
			name := entry.Name()
			childPath := filepath.Join(dir, name)
			childRel := name
			if rel != "" {
				childRel = rel + "/" + name
			}

			isDir := entry.IsDir()
			if entry.Type()&os.ModeSymlink != 0 {
				info, err := os.Stat(childPath)
				if err != nil {
					continue
				}
				isDir = info.IsDir()
			}

			if isDir {
				if skipDirs[name] {
					continue
				}
				real, err := filepath.EvalSymlinks(childPath)
				if err != nil || visited[real] {
					continue
				}
				visited[real] = true
				walk(childPath, childRel)
				continue
			}
			files = append(files, childRel)
		}
	}

	walk(root, "")
	sort.Strings(files)
	return files
}

// ExpandPatterns turns declared patterns into the full set of glob variants
// matched against lowercased relative paths:
//
//   - a pattern without recursive descent also matches at any depth beneath
//     its directory anchor (or anywhere in the tree for a bare file name);
//   - YAML extension classes alternate between .yml and .yaml;
//   - when exampleVariants is set, each variant also matches with an
//     .example/.sample/.template suffix.
func ExpandPatterns(patterns []string, exampleVariants bool) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		p = strings.ToLower(p)
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, pattern := range patterns {
		p := strings.TrimPrefix(filepath.ToSlash(pattern), "./")
		if p == "" {
			continue
		}

		variants := []string{p}
		if !strings.Contains(p, "**") {
			if i := strings.LastIndex(p, "/"); i >= 0 {
				variants = append(variants, p[:i]+"/**/"+p[i+1:])
			} else {
				variants = append(variants, "**/"+p)
			}
		}

		variants = append(variants, yamlAlternates(variants)...)

		for _, v := range variants {
			add(v)
			if exampleVariants {
				for _, suffix := range exampleSuffixes {
					add(v + suffix)
				}
			}
		}
	}
	return out
}

func yamlAlternates(variants []string) []string {
	var alts []string
	for _, v := range variants {
		switch {
		case strings.HasSuffix(v, ".yaml"):
			alts = append(alts, strings.TrimSuffix(v, ".yaml")+".yml")
		case strings.HasSuffix(v, ".yml"):
			alts = append(alts, strings.TrimSuffix(v, ".yml")+".yaml")
		}
	}
	return alts
}
