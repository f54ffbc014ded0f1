package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/deploycheck/deploycheck/internal/domain"
	"github.com/deploycheck/deploycheck/internal/domain/match"
)

// AuditService orchestrates the audit pipeline: per rule, resolve path
// patterns, match content, record a result; then fold all results into a
// report. Rules are embarrassingly parallel, so evaluation runs over a
// bounded worker pool; aggregation is a single-threaded barrier step.
type AuditService struct {
	finder  domain.FileFinder
	reader  domain.FileReader
	workers int
}

func NewAuditService(finder domain.FileFinder, reader domain.FileReader, workers int) *AuditService {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &AuditService{
		finder:  finder,
		reader:  reader,
		workers: workers,
	}
}

// Audit evaluates every catalog rule against the repository at root and
// returns the aggregated report. Per-rule faults are contained as errored
// results; only a malformed catalog or an invalid root is fatal. When the
// context deadline fires, rules still pending are marked errored with a
// timeout reason and aggregation proceeds with whatever results exist.
func (s *AuditService) Audit(ctx context.Context, root string, cat *domain.Catalog) (*domain.Report, error) {
	if err := cat.Validate(); err != nil {
		return nil, err
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, &domain.UsageError{
			Reason: fmt.Sprintf("repository root %s is not a directory", root),
			Err:    err,
		}
	}

	// One slot per rule, written only by that rule's worker. Catalog order
	// is preserved so reports diff cleanly between runs.
	results := make([]domain.CheckResult, len(cat.Rules))

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, s.workers)

	for i, rule := range cat.Rules {
		i, rule := i, rule

		select {
		case sem <- struct{}{}:
		case <-gctx.Done():
			results[i] = timeoutResult(rule)
			continue
		}

		g.Go(func() error {
			defer func() { <-sem }()

			if gctx.Err() != nil {
				results[i] = timeoutResult(rule)
				return nil
			}
			results[i] = s.evaluateRule(root, cat, rule)
			return nil
		})
	}

	_ = g.Wait()

	return domain.BuildReport(root, cat.Rules, results), nil
}

// evaluateRule produces exactly one CheckResult and never propagates a fault
// to the caller: a panicking matcher or an unreadable file yields an errored
// result, not an aborted run.
func (s *AuditService) evaluateRule(root string, cat *domain.Catalog, rule domain.Rule) (result domain.CheckResult) {
	defer func() {
		if r := recover(); r != nil {
			result = erroredResult(rule, fmt.Sprintf("rule evaluation panicked: %v", r))
		}
	}()

	paths, err := s.finder.Find(root, rule)
	if err != nil {
		return erroredResult(rule, err.Error())
	}

	if len(paths) == 0 {
		if rule.MustNotExist {
			return newResult(rule, domain.StatusPassed, "no matching files, as required", nil)
		}
		if rule.Category == domain.CategoryFileExistence {
			return newResult(rule, domain.StatusFailed, "no files matched "+patternSummary(rule), nil)
		}
		return newResult(rule, domain.StatusSkipped, "no candidate files for "+patternSummary(rule), nil)
	}

	switch rule.Category {
	case domain.CategoryFileExistence:
		if rule.MustNotExist {
			return newResult(rule, domain.StatusFailed,
				fmt.Sprintf("found %d file(s) that must not exist", len(paths)), paths)
		}
		return newResult(rule, domain.StatusPassed,
			fmt.Sprintf("found %d matching file(s)", len(paths)), paths)

	case domain.CategoryContentMatch, domain.CategoryDependencyMatch:
		return s.matchFiles(root, cat, rule, paths)

	default:
		// Unreachable for a validated catalog.
		return erroredResult(rule, fmt.Sprintf("unknown category %q", rule.Category))
	}
}

// matchFiles runs the rule's predicate over every discovered file. A match in
// ANY file satisfies the rule; non-matching files stay recorded for
// diagnostics. Unreadable files only error the rule when nothing else
// matched.
func (s *AuditService) matchFiles(root string, cat *domain.Catalog, rule domain.Rule, paths []string) domain.CheckResult {
	var readErr error

	for _, rel := range paths {
		text, err := s.reader.Read(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			if readErr == nil {
				readErr = err
			}
			continue
		}

		var matched bool
		var line string
		if rule.Category == domain.CategoryDependencyMatch {
			matched, line = match.Dependencies(text, *rule.Predicate, cat.DependencyAliases(rule))
		} else {
			matched, line = match.Content(text, *rule.Predicate)
		}

		if matched {
			if rule.MustNotMatch {
				return newResult(rule, domain.StatusFailed,
					fmt.Sprintf("%s contains forbidden %q: %s", rel, rule.Predicate.Term, line), paths)
			}
			return newResult(rule, domain.StatusPassed,
				fmt.Sprintf("matched %q in %s: %s", rule.Predicate.Term, rel, line), paths)
		}
	}

	if rule.MustNotMatch {
		return newResult(rule, domain.StatusPassed,
			fmt.Sprintf("no file contains %q", rule.Predicate.Term), paths)
	}
	if readErr != nil {
		return erroredResult(rule, readErr.Error())
	}
	return newResult(rule, domain.StatusFailed,
		fmt.Sprintf("no matched file contains %q", rule.Predicate.Term), paths)
}

func newResult(rule domain.Rule, status domain.Status, message string, paths []string) domain.CheckResult {
	if paths == nil {
		paths = []string{}
	}
	return domain.CheckResult{
		RuleID:       rule.ID,
		Category:     rule.Category,
		Severity:     rule.Severity,
		Status:       status,
		Message:      message,
		MatchedPaths: paths,
	}
}

func erroredResult(rule domain.Rule, message string) domain.CheckResult {
	return newResult(rule, domain.StatusErrored, message, nil)
}

func timeoutResult(rule domain.Rule) domain.CheckResult {
	return erroredResult(rule, "audit timed out before rule evaluation")
}

func patternSummary(rule domain.Rule) string {
	if len(rule.PathPatterns) == 1 {
		return fmt.Sprintf("pattern %q", rule.PathPatterns[0])
	}
	return fmt.Sprintf("%d patterns (first: %q)", len(rule.PathPatterns), rule.PathPatterns[0])
}
