package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deploycheck/deploycheck/internal/adapters/outbound/tui"
	"github.com/deploycheck/deploycheck/internal/domain"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		Root:       "/repo",
		CommitHash: "0123456789abcdef",
		Score:      72.5,
		Results: []domain.CheckResult{
			{
				RuleID: "docker-dockerfile-exists", Category: domain.CategoryFileExistence,
				Severity: domain.SeverityCritical, Status: domain.StatusPassed,
				Message: "found 1 matching file(s)", MatchedPaths: []string{"Dockerfile"},
			},
			{
				RuleID: "cicd-deploy-step", Category: domain.CategoryContentMatch,
				Severity: domain.SeverityCritical, Status: domain.StatusFailed,
				Message: "no matched file contains \"kubectl apply\"", MatchedPaths: []string{".github/workflows/ci.yml"},
			},
			{
				RuleID: "obs-metrics-client-dependency", Category: domain.CategoryDependencyMatch,
				Severity: domain.SeverityWarning, Status: domain.StatusSkipped,
				Message: "no candidate files", MatchedPaths: []string{},
			},
		},
		PassedCount:  1,
		FailedCount:  1,
		SkippedCount: 1,
		SeverityTotals: map[domain.Severity]domain.SeverityTotal{
			domain.SeverityCritical: {Passed: 1, Failed: 1},
			domain.SeverityWarning:  {Skipped: 1},
		},
	}
}

func TestRenderReport_ContainsScoreAndGrade(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "72.50")
	assert.Contains(t, output, "B")
}

func TestRenderReport_ContainsRuleIDs(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "docker-dockerfile-exists")
	assert.Contains(t, output, "cicd-deploy-step")
	assert.Contains(t, output, "obs-metrics-client-dependency")
}

func TestRenderReport_GroupsBySeverityTier(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "CRITICAL")
	assert.Contains(t, output, "WARNING")
	assert.NotContains(t, output, "INFO")
}

func TestRenderReport_ShowsShortCommit(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "0123456")
	assert.NotContains(t, output, "0123456789abcdef")
}

func TestRenderReport_CriticalFailureBanner(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "sign-off blocked")
}

func TestRenderHistory_Empty(t *testing.T) {
	output := tui.RenderHistory(nil)
	assert.Contains(t, output, "No audit history")
}

func TestRenderHistory_Entries(t *testing.T) {
	output := tui.RenderHistory([]domain.AuditEntry{
		{Timestamp: "2024-06-01T12:00:00Z", CommitHash: "abcdef1234", Score: 88, Grade: "A"},
	})
	assert.Contains(t, output, "2024-06-01T12:00:00Z")
	assert.Contains(t, output, "abcdef1")
	assert.Contains(t, output, "88.00")
}
