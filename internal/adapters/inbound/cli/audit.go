package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/deploycheck/deploycheck/internal/adapters/outbound/catalog"
	"github.com/deploycheck/deploycheck/internal/adapters/outbound/content"
	"github.com/deploycheck/deploycheck/internal/adapters/outbound/discovery"
	"github.com/deploycheck/deploycheck/internal/adapters/outbound/gitinfo"
	"github.com/deploycheck/deploycheck/internal/adapters/outbound/history"
	"github.com/deploycheck/deploycheck/internal/adapters/outbound/tui"
	"github.com/deploycheck/deploycheck/internal/application"
	"github.com/deploycheck/deploycheck/internal/domain"
)

func newAuditCmd() *cobra.Command {
	var (
		jsonOutput  bool
		badge       bool
		showHistory bool
		catalogPath string
		timeout     time.Duration
		workers     int
	)

	cmd := &cobra.Command{
		Use:   "audit [path]",
		Short: "Audit a repository against the compliance rule catalog",
		Long:  "Evaluate every rule in the catalog against the repository tree and report a severity-weighted compliance score. Exits 1 when any critical rule fails, 2 on usage or catalog errors.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return &domain.UsageError{Reason: "resolving repository path", Err: err}
			}

			cat, err := catalog.New().Load(catalogPath)
			if err != nil {
				return err
			}

			svc := application.NewAuditService(discovery.New(), content.New(), workers)

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			report, err := svc.Audit(ctx, absPath, cat)
			if err != nil {
				return err
			}

			// Attach git commit hash if available
			if hash, err := gitinfo.New().CommitHash(absPath); err == nil {
				report.CommitHash = hash
			}

			// Save to history (outside the audited repository)
			hist := history.New()
			entry := domain.AuditEntry{
				Timestamp:      time.Now().UTC().Format(time.RFC3339),
				CommitHash:     report.CommitHash,
				Score:          report.Score,
				Grade:          report.Grade(),
				CriticalFailed: report.CriticalFailureCount(),
			}
			_ = hist.Save(absPath, entry) // best-effort

			if showHistory {
				entries, err := hist.Load(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			switch {
			case jsonOutput:
				if err := renderReportJSON(cmd, report); err != nil {
					return err
				}
			case badge:
				renderBadge(cmd, report)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if report.HasCriticalFailure() {
				return fmt.Errorf("%d critical check(s) failed", report.CriticalFailureCount())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&badge, "badge", false, "Output shields.io badge URL")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show audit history for this repository")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to a YAML rule catalog (default: built-in catalog)")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "Global audit timeout (0 disables)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Rule evaluation workers (default: number of CPUs)")

	return cmd
}

func renderReportJSON(cmd *cobra.Command, report *domain.Report) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func renderBadge(cmd *cobra.Command, report *domain.Report) {
	color := domain.BadgeColor(report.Score)
	url := fmt.Sprintf("https://img.shields.io/badge/deploycheck-%.0f%%2F100-%s", report.Score, color)
	fmt.Fprintln(cmd.OutOrStdout(), url)
}
