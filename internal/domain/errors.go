package domain

import "fmt"

// DiscoveryError reports a path traversal failure for one rule. It is
// contained per-rule and surfaces as an errored CheckResult, never as a
// run-level crash.
type DiscoveryError struct {
	Pattern string
	Err     error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discovering files for pattern %q: %v", e.Pattern, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// ContentReadError reports an unreadable matched file. Other matched files
// for the same rule are still considered.
type ContentReadError struct {
	Path string
	Err  error
}

func (e *ContentReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ContentReadError) Unwrap() error { return e.Err }

// RuleDefinitionError marks a malformed catalog entry. It is fatal at load
// time: a meaningful partial report cannot be produced from a malformed rule
// set.
type RuleDefinitionError struct {
	RuleID string
	Reason string
}

func (e *RuleDefinitionError) Error() string {
	if e.RuleID == "" {
		return fmt.Sprintf("invalid rule catalog: %s", e.Reason)
	}
	return fmt.Sprintf("invalid rule %q: %s", e.RuleID, e.Reason)
}

// UsageError marks invalid invocation input, such as a repository root that
// does not exist or an unreadable catalog source. Fatal before any scoring
// attempt; maps to exit code 2.
type UsageError struct {
	Reason string
	Err    error
}

func (e *UsageError) Error() string {
	if e.Err == nil {
		return e.Reason
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *UsageError) Unwrap() error { return e.Err }
