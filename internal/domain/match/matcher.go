// Package match evaluates content predicates against file text. Naming
// convention variance (snake_case vs UPPER_SNAKE vs camelCase) is handled as
// an explicit normalization step here, not as an assumption baked into a
// single comparison.
package match

import (
	"strings"

	"github.com/fatih/camelcase"

	"github.com/deploycheck/deploycheck/internal/domain"
)

// Content reports whether the predicate matches the text and returns the
// matched line. Binary content is treated as no-match, never as an error.
func Content(text string, p domain.Predicate) (bool, string) {
	if isBinary(text) {
		return false, ""
	}

	needles := needlesFor(p)
	for _, line := range strings.Split(text, "\n") {
		hay := line
		if !p.CaseSensitive {
			hay = strings.ToLower(line)
		}
		for _, needle := range needles {
			if strings.Contains(hay, needle) {
				return true, strings.TrimSpace(line)
			}
		}
	}
	return false, ""
}

// Dependencies reports whether a manifest declares the predicate term or any
// registered alias. The canonical term is satisfied transitively when a
// wrapper package known to depend on it appears instead.
func Dependencies(text string, p domain.Predicate, aliases []string) (bool, string) {
	merged := domain.Predicate{
		Term:          p.Term,
		CaseSensitive: p.CaseSensitive,
		Aliases:       append(append([]string{}, p.Aliases...), aliases...),
	}
	return Content(text, merged)
}

// needlesFor expands the predicate term and aliases into the set of strings
// searched for. Case-sensitive predicates match verbatim only.
func needlesFor(p domain.Predicate) []string {
	terms := append([]string{p.Term}, p.Aliases...)

	if p.CaseSensitive {
		return terms
	}

	seen := make(map[string]bool)
	var needles []string
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			needles = append(needles, s)
		}
	}
	for _, term := range terms {
		for _, v := range variants(term) {
			add(v)
		}
	}
	return needles
}

// variants returns the lowercase spellings of a term across naming
// conventions: as written, snake_case, kebab-case, and squashed (which also
// covers camelCase content once lowercased).
func variants(term string) []string {
	words := splitWords(term)
	if len(words) == 0 {
		return nil
	}
	lower := strings.ToLower(term)
	return dedupe([]string{
		lower,
		strings.Join(words, "_"),
		strings.Join(words, "-"),
		strings.Join(words, ""),
	})
}

// splitWords breaks a term into lowercase words, splitting on separator
// characters first and on camelCase humps when the term is a single token.
func splitWords(term string) []string {
	parts := strings.FieldsFunc(term, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})
	if len(parts) == 1 {
		parts = camelcase.Split(parts[0])
	}
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			words = append(words, strings.ToLower(p))
		}
	}
	return words
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

// isBinary treats NUL-bearing content as undecodable for matching purposes.
func isBinary(text string) bool {
	return strings.IndexByte(text, 0) >= 0
}
