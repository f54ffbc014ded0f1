package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploycheck/deploycheck/internal/domain"
	"github.com/deploycheck/deploycheck/internal/domain/rules"
)

func TestDefault_Validates(t *testing.T) {
	cat := rules.Default()
	require.NoError(t, cat.Validate())
	assert.NotEmpty(t, cat.Rules)
}

func TestDefault_SeverityWeightConvention(t *testing.T) {
	weights := map[domain.Severity]float64{
		domain.SeverityCritical: 3,
		domain.SeverityWarning:  2,
		domain.SeverityInfo:     1,
	}

	for _, r := range rules.Default().Rules {
		assert.Equal(t, weights[r.Severity], r.Weight, "rule %s", r.ID)
	}
}

func TestDefault_CoversEveryRuleFamily(t *testing.T) {
	prefixes := map[string]bool{}
	for _, r := range rules.Default().Rules {
		for _, p := range []string{"docker-", "cicd-", "quality-", "iac-", "k8s-", "obs-", "docs-"} {
			if len(r.ID) >= len(p) && r.ID[:len(p)] == p {
				prefixes[p] = true
			}
		}
	}

	for _, p := range []string{"docker-", "cicd-", "quality-", "iac-", "k8s-", "obs-", "docs-"} {
		assert.True(t, prefixes[p], "no default rule in family %s", p)
	}
}

func TestDefault_AliasTableReachable(t *testing.T) {
	cat := rules.Default()
	require.Contains(t, cat.Aliases, "prometheus_client")

	// Every alias key must be the term of at least one dependency rule,
	// otherwise the table entry is dead weight.
	for term := range cat.Aliases {
		found := false
		for _, r := range cat.Rules {
			if r.Category == domain.CategoryDependencyMatch && r.Predicate != nil && r.Predicate.Term == term {
				found = true
			}
		}
		assert.True(t, found, "alias %q has no dependency rule", term)
	}
}
