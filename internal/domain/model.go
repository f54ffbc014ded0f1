package domain

import "math"

// Severity classifies how much a rule matters for deployment sign-off.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// ValidSeverities enumerates all recognized severity tiers.
var ValidSeverities = []Severity{SeverityCritical, SeverityWarning, SeverityInfo}

// Category selects the evaluation strategy for a rule.
type Category string

const (
	CategoryFileExistence   Category = "file-existence"
	CategoryContentMatch    Category = "content-match"
	CategoryDependencyMatch Category = "dependency-match"
)

// ValidCategories enumerates all recognized rule categories.
var ValidCategories = []Category{
	CategoryFileExistence, CategoryContentMatch, CategoryDependencyMatch,
}

// Status is the per-rule outcome of an audit run.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
	StatusErrored Status = "errored"
)

// Predicate describes what a content or dependency rule looks for inside
// discovered files. Comparison is case-insensitive unless CaseSensitive is
// set; case-insensitive terms also match their snake_case, kebab-case and
// camelCase spellings.
type Predicate struct {
	Term          string   `yaml:"term"            json:"term"`
	CaseSensitive bool     `yaml:"case_sensitive"  json:"case_sensitive,omitempty"`
	Aliases       []string `yaml:"aliases"         json:"aliases,omitempty"`
}

// Rule is one immutable compliance check. Rules are pure data: the engine
// interprets them, so new checks are catalog changes, not code changes.
type Rule struct {
	ID          string   `yaml:"id"          json:"id"`
	Description string   `yaml:"description" json:"description"`
	Category    Category `yaml:"category"    json:"category"`
	Severity    Severity `yaml:"severity"    json:"severity"`
	Weight      float64  `yaml:"weight"      json:"weight"`

	// PathPatterns are glob patterns resolved against the repository root.
	// A pattern anchored at a directory prefix matches files at any depth
	// beneath it.
	PathPatterns []string `yaml:"path_patterns" json:"path_patterns"`

	// Predicate is required for content-match and dependency-match rules.
	Predicate *Predicate `yaml:"content_predicate" json:"content_predicate,omitempty"`

	// DependencyAliases lists wrapper packages that satisfy a
	// dependency-match rule transitively, in addition to any catalog-level
	// alias table entry for the predicate term.
	DependencyAliases []string `yaml:"dependency_aliases" json:"dependency_aliases,omitempty"`

	// ExampleVariants also discovers .example/.sample/.template variants of
	// matched paths, so distributed templates of sensitive files are still
	// structurally checked.
	ExampleVariants bool `yaml:"example_variants" json:"example_variants,omitempty"`

	// MustNotExist inverts a file-existence rule: the rule passes when no
	// file matches.
	MustNotExist bool `yaml:"must_not_exist" json:"must_not_exist,omitempty"`

	// MustNotMatch inverts a content-match rule: the rule passes when no
	// discovered file contains the predicate term.
	MustNotMatch bool `yaml:"must_not_match" json:"must_not_match,omitempty"`
}

// CheckResult is the outcome of evaluating one rule. Severity is copied from
// the rule so aggregation stays correct independent of catalog mutation.
type CheckResult struct {
	RuleID       string   `json:"id"`
	Category     Category `json:"category"`
	Severity     Severity `json:"severity"`
	Status       Status   `json:"status"`
	Message      string   `json:"message"`
	MatchedPaths []string `json:"matched_paths"`
}

// SeverityTotal tallies result statuses within one severity tier.
type SeverityTotal struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
	Errored int `json:"errored"`
}

// Report is the aggregate outcome of one audit run. Reports are constructed
// once, after all results exist, and never mutated afterwards. A report is a
// pure function of the repository tree and the catalog, so it carries no
// wall-clock timestamp.
type Report struct {
	Root           string                     `json:"root"`
	CommitHash     string                     `json:"commit_hash,omitempty"`
	Score          float64                    `json:"score"`
	PassedCount    int                        `json:"passed_count"`
	FailedCount    int                        `json:"failed_count"`
	SkippedCount   int                        `json:"skipped_count"`
	ErroredCount   int                        `json:"errored_count"`
	Results        []CheckResult              `json:"results"`
	SeverityTotals map[Severity]SeverityTotal `json:"severity_totals"`
}

// HasCriticalFailure reports whether any critical rule is failed or errored.
// A single critical failure fails the run regardless of the numeric score.
func (r *Report) HasCriticalFailure() bool {
	for _, res := range r.Results {
		if res.Severity == SeverityCritical &&
			(res.Status == StatusFailed || res.Status == StatusErrored) {
			return true
		}
	}
	return false
}

// CriticalFailureCount counts failed or errored critical results.
func (r *Report) CriticalFailureCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Severity == SeverityCritical &&
			(res.Status == StatusFailed || res.Status == StatusErrored) {
			n++
		}
	}
	return n
}

func (r *Report) Grade() string { return GradeFor(r.Score) }

func GradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

func BadgeColor(score float64) string {
	switch {
	case score >= 90:
		return "brightgreen"
	case score >= 80:
		return "green"
	case score >= 70:
		return "yellow"
	case score >= 60:
		return "orange"
	case score >= 50:
		return "red"
	default:
		return "critical"
	}
}

// round2 keeps scores stable across runs: two decimals, no float drift in
// rendered output.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
