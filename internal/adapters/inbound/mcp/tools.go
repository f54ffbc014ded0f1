package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/deploycheck/deploycheck/internal/adapters/outbound/catalog"
	"github.com/deploycheck/deploycheck/internal/adapters/outbound/content"
	"github.com/deploycheck/deploycheck/internal/adapters/outbound/discovery"
	"github.com/deploycheck/deploycheck/internal/application"
)

// registerTools registers the deploycheck MCP tools on the given server.
func registerTools(s *server.MCPServer, repoPath, catalogPath string) {
	// 1. deploycheck_audit
	s.AddTool(
		mcplib.NewTool("deploycheck_audit",
			mcplib.WithDescription("Audit the repository against the compliance rule catalog and return the full report as JSON"),
		),
		handleAudit(repoPath, catalogPath),
	)

	// 2. deploycheck_rules
	s.AddTool(
		mcplib.NewTool("deploycheck_rules",
			mcplib.WithDescription("Returns the effective rule catalog as JSON"),
		),
		handleRules(catalogPath),
	)

	// 3. deploycheck_rule_result
	s.AddTool(
		mcplib.NewTool("deploycheck_rule_result",
			mcplib.WithDescription("Audit the repository and return the result for a single rule"),
			mcplib.WithString("rule",
				mcplib.Required(),
				mcplib.Description("ID of the rule to inspect"),
			),
		),
		handleRuleResult(repoPath, catalogPath),
	)
}

func handleAudit(repoPath, catalogPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cat, err := catalog.New().Load(catalogPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading catalog: %v", err)), nil
		}

		svc := application.NewAuditService(discovery.New(), content.New(), 0)
		report, err := svc.Audit(ctx, repoPath, cat)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleRules(catalogPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cat, err := catalog.New().Load(catalogPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading catalog: %v", err)), nil
		}
		return jsonResult(cat)
	}
}

func handleRuleResult(repoPath, catalogPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		ruleID, err := request.RequireString("rule")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cat, err := catalog.New().Load(catalogPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading catalog: %v", err)), nil
		}

		svc := application.NewAuditService(discovery.New(), content.New(), 0)
		report, err := svc.Audit(ctx, repoPath, cat)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}

		for _, res := range report.Results {
			if res.RuleID == ruleID {
				return jsonResult(res)
			}
		}
		return errorResult(fmt.Sprintf("rule %q not found in catalog", ruleID)), nil
	}
}

// jsonResult marshals v into a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
