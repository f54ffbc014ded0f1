package domain

import "fmt"

// Catalog is a loaded rule set plus the dependency alias table. It is loaded
// once per run and read-only thereafter.
type Catalog struct {
	// Aliases maps a canonical dependency term to wrapper or instrumentation
	// packages known to depend on it transitively. The table is data, so new
	// wrapper packages are added without touching matcher logic.
	Aliases map[string][]string `yaml:"aliases" json:"aliases,omitempty"`

	Rules []Rule `yaml:"rules" json:"rules"`
}

// DependencyAliases merges the catalog-level alias table entry for a rule's
// predicate term with the rule's own alias list.
func (c *Catalog) DependencyAliases(rule Rule) []string {
	var out []string
	out = append(out, rule.DependencyAliases...)
	if c.Aliases != nil && rule.Predicate != nil {
		out = append(out, c.Aliases[rule.Predicate.Term]...)
	}
	return out
}

// Validate checks catalog well-formedness. Duplicate IDs and missing required
// fields are definition errors, not runtime conditions.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Rules))
	for _, r := range c.Rules {
		if r.ID == "" {
			return &RuleDefinitionError{Reason: "rule is missing an id"}
		}
		if seen[r.ID] {
			return &RuleDefinitionError{RuleID: r.ID, Reason: "duplicate rule id"}
		}
		seen[r.ID] = true

		if err := validateRule(r); err != nil {
			return err
		}
	}
	return nil
}

func validateRule(r Rule) error {
	if !validCategory(r.Category) {
		return &RuleDefinitionError{
			RuleID: r.ID,
			Reason: fmt.Sprintf("unknown category %q (valid: %v)", r.Category, ValidCategories),
		}
	}
	if !validSeverity(r.Severity) {
		return &RuleDefinitionError{
			RuleID: r.ID,
			Reason: fmt.Sprintf("unknown severity %q (valid: %v)", r.Severity, ValidSeverities),
		}
	}
	if r.Weight < 0 {
		return &RuleDefinitionError{RuleID: r.ID, Reason: "weight must be non-negative"}
	}
	if len(r.PathPatterns) == 0 {
		return &RuleDefinitionError{RuleID: r.ID, Reason: "at least one path pattern is required"}
	}
	switch r.Category {
	case CategoryContentMatch, CategoryDependencyMatch:
		if r.Predicate == nil || r.Predicate.Term == "" {
			return &RuleDefinitionError{
				RuleID: r.ID,
				Reason: fmt.Sprintf("%s rules require a content_predicate with a term", r.Category),
			}
		}
	case CategoryFileExistence:
		// no predicate needed
	}
	if r.MustNotExist && r.Category != CategoryFileExistence {
		return &RuleDefinitionError{
			RuleID: r.ID,
			Reason: "must_not_exist is only valid for file-existence rules",
		}
	}
	if r.MustNotMatch && r.Category != CategoryContentMatch {
		return &RuleDefinitionError{
			RuleID: r.ID,
			Reason: "must_not_match is only valid for content-match rules",
		}
	}
	return nil
}

func validCategory(c Category) bool {
	for _, v := range ValidCategories {
		if c == v {
			return true
		}
	}
	return false
}

func validSeverity(s Severity) bool {
	for _, v := range ValidSeverities {
		if s == v {
			return true
		}
	}
	return false
}
