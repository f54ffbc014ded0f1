package application_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploycheck/deploycheck/internal/adapters/outbound/content"
	"github.com/deploycheck/deploycheck/internal/adapters/outbound/discovery"
	"github.com/deploycheck/deploycheck/internal/application"
	"github.com/deploycheck/deploycheck/internal/domain"
)

func newService() *application.AuditService {
	return application.NewAuditService(discovery.New(), content.New(), 4)
}

func writeFixture(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, text := range files {
		fp := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0755))
		require.NoError(t, os.WriteFile(fp, []byte(text), 0644))
	}
}

func fixtureCatalog() *domain.Catalog {
	return &domain.Catalog{
		Aliases: map[string][]string{
			"prometheus_client": {"prometheus-flask-exporter"},
		},
		Rules: []domain.Rule{
			{
				ID:           "dockerfile-exists",
				Category:     domain.CategoryFileExistence,
				Severity:     domain.SeverityCritical,
				Weight:       3,
				PathPatterns: []string{"Dockerfile"},
			},
			{
				ID:           "dockerfile-nonroot",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityCritical,
				Weight:       3,
				PathPatterns: []string{"Dockerfile"},
				Predicate:    &domain.Predicate{Term: "USER ", CaseSensitive: true},
			},
			{
				ID:           "no-latest-tag",
				Category:     domain.CategoryContentMatch,
				Severity:     domain.SeverityWarning,
				Weight:       2,
				PathPatterns: []string{"Dockerfile"},
				Predicate:    &domain.Predicate{Term: ":latest", CaseSensitive: true},
				MustNotMatch: true,
			},
			{
				ID:           "no-env-file",
				Category:     domain.CategoryFileExistence,
				Severity:     domain.SeverityCritical,
				Weight:       3,
				PathPatterns: []string{".env"},
				MustNotExist: true,
			},
			{
				ID:           "metrics-dep",
				Category:     domain.CategoryDependencyMatch,
				Severity:     domain.SeverityInfo,
				Weight:       1,
				PathPatterns: []string{"requirements.txt"},
				Predicate:    &domain.Predicate{Term: "prometheus_client"},
			},
		},
	}
}

func resultByID(t *testing.T, report *domain.Report, id string) domain.CheckResult {
	t.Helper()
	for _, r := range report.Results {
		if r.RuleID == id {
			return r
		}
	}
	t.Fatalf("no result for rule %s", id)
	return domain.CheckResult{}
}

func TestAudit_StatusesAcrossCategories(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, map[string]string{
		"Dockerfile":       "FROM python:3.12-slim\nUSER app\n",
		"requirements.txt": "flask==3.0\nprometheus-flask-exporter==0.23\n",
	})

	report, err := newService().Audit(context.Background(), root, fixtureCatalog())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPassed, resultByID(t, report, "dockerfile-exists").Status)
	assert.Equal(t, domain.StatusPassed, resultByID(t, report, "dockerfile-nonroot").Status)
	assert.Equal(t, domain.StatusPassed, resultByID(t, report, "no-latest-tag").Status)
	assert.Equal(t, domain.StatusPassed, resultByID(t, report, "no-env-file").Status)
	assert.Equal(t, domain.StatusPassed, resultByID(t, report, "metrics-dep").Status)
	assert.Equal(t, 100.0, report.Score)
	assert.False(t, report.HasCriticalFailure())
}

func TestAudit_FailuresAndInversions(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, map[string]string{
		"Dockerfile":       "FROM python:latest\n",
		".env":             "OPENAI_API_KEY=sk-live\n",
		"requirements.txt": "flask==3.0\n",
	})

	report, err := newService().Audit(context.Background(), root, fixtureCatalog())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPassed, resultByID(t, report, "dockerfile-exists").Status)
	assert.Equal(t, domain.StatusFailed, resultByID(t, report, "dockerfile-nonroot").Status)
	assert.Equal(t, domain.StatusFailed, resultByID(t, report, "no-latest-tag").Status)
	assert.Equal(t, domain.StatusFailed, resultByID(t, report, "no-env-file").Status)
	assert.Equal(t, domain.StatusFailed, resultByID(t, report, "metrics-dep").Status)
	assert.True(t, report.HasCriticalFailure())
	// Only dockerfile-exists (weight 3) passed out of 12 total weight.
	assert.InDelta(t, 25.0, report.Score, 0.001)
}

func TestAudit_AbsentTargetsSkipNonExistenceRules(t *testing.T) {
	// Only the existence rules can say anything about an empty tree; content
	// and dependency rules have no candidate files and are skipped.
	report, err := newService().Audit(context.Background(), t.TempDir(), fixtureCatalog())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusFailed, resultByID(t, report, "dockerfile-exists").Status)
	assert.Equal(t, domain.StatusSkipped, resultByID(t, report, "dockerfile-nonroot").Status)
	assert.Equal(t, domain.StatusSkipped, resultByID(t, report, "no-latest-tag").Status)
	assert.Equal(t, domain.StatusPassed, resultByID(t, report, "no-env-file").Status)
	assert.Equal(t, domain.StatusSkipped, resultByID(t, report, "metrics-dep").Status)

	// Denominator: 3 (failed existence) + 3 (passed must-not-exist) = 6.
	assert.InDelta(t, 50.0, report.Score, 0.001)
}

func TestAudit_SeverityTotalsPartitionResults(t *testing.T) {
	report, err := newService().Audit(context.Background(), t.TempDir(), fixtureCatalog())
	require.NoError(t, err)

	sum := 0
	for _, total := range report.SeverityTotals {
		sum += total.Passed + total.Failed + total.Skipped + total.Errored
	}
	assert.Equal(t, len(report.Results), sum)
}

func TestAudit_DeterministicOutput(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, map[string]string{
		"Dockerfile":       "FROM python:3.12-slim\nUSER app\n",
		"requirements.txt": "prometheus_client==0.20\n",
	})

	var serialized [][]byte
	for i := 0; i < 3; i++ {
		report, err := newService().Audit(context.Background(), root, fixtureCatalog())
		require.NoError(t, err)
		data, err := json.Marshal(report)
		require.NoError(t, err)
		serialized = append(serialized, data)
	}

	assert.Equal(t, serialized[0], serialized[1])
	assert.Equal(t, serialized[1], serialized[2])
}

func TestAudit_ResultsPreserveCatalogOrder(t *testing.T) {
	cat := fixtureCatalog()
	report, err := newService().Audit(context.Background(), t.TempDir(), cat)
	require.NoError(t, err)

	require.Len(t, report.Results, len(cat.Rules))
	for i, r := range cat.Rules {
		assert.Equal(t, r.ID, report.Results[i].RuleID)
	}
}

func TestAudit_InvalidRootIsUsageError(t *testing.T) {
	_, err := newService().Audit(context.Background(), filepath.Join(t.TempDir(), "nope"), fixtureCatalog())

	var usageErr *domain.UsageError
	require.ErrorAs(t, err, &usageErr)
}

func TestAudit_RootMustBeDirectory(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(fp, []byte("x"), 0644))

	_, err := newService().Audit(context.Background(), fp, fixtureCatalog())

	var usageErr *domain.UsageError
	require.ErrorAs(t, err, &usageErr)
}

func TestAudit_DuplicateRuleIDIsFatal(t *testing.T) {
	cat := fixtureCatalog()
	cat.Rules = append(cat.Rules, cat.Rules[0])

	_, err := newService().Audit(context.Background(), t.TempDir(), cat)

	var defErr *domain.RuleDefinitionError
	require.ErrorAs(t, err, &defErr)
}

func TestAudit_EmptyCatalogScoresVacuously(t *testing.T) {
	report, err := newService().Audit(context.Background(), t.TempDir(), &domain.Catalog{})
	require.NoError(t, err)

	assert.Equal(t, 100.0, report.Score)
	assert.Empty(t, report.Results)
}

func TestAudit_CanceledContextErrorsPendingRules(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := newService().Audit(ctx, t.TempDir(), fixtureCatalog())
	require.NoError(t, err)

	for _, r := range report.Results {
		assert.Equal(t, domain.StatusErrored, r.Status)
		assert.Contains(t, r.Message, "timed out")
	}
	assert.True(t, report.HasCriticalFailure())
}

func TestAudit_MatchedPathsNeverNil(t *testing.T) {
	report, err := newService().Audit(context.Background(), t.TempDir(), fixtureCatalog())
	require.NoError(t, err)

	for _, r := range report.Results {
		assert.NotNil(t, r.MatchedPaths, "rule %s", r.RuleID)
	}
}
