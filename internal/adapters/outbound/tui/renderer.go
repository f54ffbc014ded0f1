// Package tui renders audit reports for terminals.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/deploycheck/deploycheck/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
	skip    = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lipgloss.Color("#A3E635"), // lime
		"C":  warning,
		"D":  lipgloss.Color("#FB923C"), // orange
		"F":  danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	skipStyle     = lipgloss.NewStyle().Foreground(skip)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	tierStyle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return danger
}

// RenderReport renders a full audit report grouped by severity tier, catalog
// order preserved within each tier.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	grade := report.Grade()
	title := headerStyle.Render("deploycheck")
	subtitle := dimStyle.Render("Deployment Compliance")
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(fmt.Sprintf("%.2f / 100", report.Score))
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n")

	if report.CommitHash != "" {
		b.WriteString("  " + dimStyle.Render("commit "+shortHash(report.CommitHash)) + "\n")
	}
	b.WriteString("\n")

	for _, tier := range domain.ValidSeverities {
		renderTier(&b, tier, report)
	}

	b.WriteString("  " + separatorLine + "\n\n")
	b.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		passStyle.Render(fmt.Sprintf("%d passed", report.PassedCount)),
		failStyle.Render(fmt.Sprintf("%d failed", report.FailedCount)),
		skipStyle.Render(fmt.Sprintf("%d skipped", report.SkippedCount)),
		failStyle.Render(fmt.Sprintf("%d errored", report.ErroredCount)),
	))

	if n := report.CriticalFailureCount(); n > 0 {
		b.WriteString("\n  " + failStyle.Bold(true).Render(
			fmt.Sprintf("%d critical check(s) failing — deployment sign-off blocked", n)) + "\n")
	}

	return b.String()
}

func renderTier(b *strings.Builder, tier domain.Severity, report *domain.Report) {
	var results []domain.CheckResult
	for _, res := range report.Results {
		if res.Severity == tier {
			results = append(results, res)
		}
	}
	if len(results) == 0 {
		return
	}

	total := report.SeverityTotals[tier]
	b.WriteString(fmt.Sprintf("  %s %s\n",
		tierStyle.Render(strings.ToUpper(string(tier))),
		dimStyle.Render(fmt.Sprintf("(%d passed, %d failed)", total.Passed, total.Failed)),
	))

	for _, res := range results {
		b.WriteString(fmt.Sprintf("    %s %s\n", statusMark(res.Status), titleStyle.Render(res.RuleID)))
		b.WriteString("      " + infoTagStyle.Render(res.Message) + "\n")
	}
	b.WriteString("\n")
}

func statusMark(status domain.Status) string {
	switch status {
	case domain.StatusPassed:
		return passStyle.Render("✓")
	case domain.StatusFailed:
		return failStyle.Render("✗")
	case domain.StatusSkipped:
		return skipStyle.Render("-")
	default:
		return failStyle.Render("!")
	}
}

// RenderHistory renders saved audit entries, oldest first.
func RenderHistory(entries []domain.AuditEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No audit history yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Audit History") + "\n\n")
	for _, e := range entries {
		hash := e.CommitHash
		if hash == "" {
			hash = "-------"
		}
		b.WriteString(fmt.Sprintf("  %s  %s  %6.2f  %s\n",
			dimStyle.Render(e.Timestamp),
			faintStyle.Render(shortHash(hash)),
			e.Score,
			lipgloss.NewStyle().Foreground(gradeColor(e.Grade)).Render(e.Grade),
		))
	}
	return b.String()
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
