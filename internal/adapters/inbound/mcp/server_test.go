package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/deploycheck/deploycheck/internal/adapters/inbound/mcp"
)

func TestNewDeploycheckMCPServer(t *testing.T) {
	s := mcpadapter.NewDeploycheckMCPServer(".", "")
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewDeploycheckMCPServer(".", "")
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"deploycheck_audit",
		"deploycheck_rules",
		"deploycheck_rule_result",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
