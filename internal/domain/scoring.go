package domain

// ComputeScore aggregates per-rule results into a 0-100 weighted score.
// Skipped rules are excluded from both numerator and denominator: a repository
// that does not attempt a check is distinct from one that fails it. A run with
// zero evaluable rules scores 100 by convention (vacuous compliance) so
// division by zero never occurs.
func ComputeScore(rules []Rule, results []CheckResult) float64 {
	var total, got float64
	for i, res := range results {
		if res.Status == StatusSkipped {
			continue
		}
		w := rules[i].Weight
		total += w
		if res.Status == StatusPassed {
			got += w
		}
	}
	if total == 0 {
		return 100
	}
	return round2(got / total * 100)
}

// TallySeverity counts result statuses per severity tier, independent of
// weight, so pipelines can fail on critical results alone.
func TallySeverity(results []CheckResult) map[Severity]SeverityTotal {
	totals := make(map[Severity]SeverityTotal, len(ValidSeverities))
	for _, res := range results {
		t := totals[res.Severity]
		switch res.Status {
		case StatusPassed:
			t.Passed++
		case StatusFailed:
			t.Failed++
		case StatusSkipped:
			t.Skipped++
		case StatusErrored:
			t.Errored++
		}
		totals[res.Severity] = t
	}
	return totals
}

// BuildReport folds independently produced results into an immutable Report.
// Results must be in catalog order, one per rule.
func BuildReport(root string, rules []Rule, results []CheckResult) *Report {
	report := &Report{
		Root:           root,
		Score:          ComputeScore(rules, results),
		Results:        results,
		SeverityTotals: TallySeverity(results),
	}
	for _, res := range results {
		switch res.Status {
		case StatusPassed:
			report.PassedCount++
		case StatusFailed:
			report.FailedCount++
		case StatusSkipped:
			report.SkippedCount++
		case StatusErrored:
			report.ErroredCount++
		}
	}
	return report
}
