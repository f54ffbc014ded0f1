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

// registerResources registers the deploycheck MCP resources on the server.
func registerResources(s *server.MCPServer, repoPath, catalogPath string) {
	// 1. deploycheck://report - current compliance report
	s.AddResource(
		mcplib.NewResource(
			"deploycheck://report",
			"Compliance Report",
			mcplib.WithResourceDescription("Current deployment compliance report for the repository"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(repoPath, catalogPath),
	)

	// 2. deploycheck://catalog - effective rule catalog
	s.AddResource(
		mcplib.NewResource(
			"deploycheck://catalog",
			"Rule Catalog",
			mcplib.WithResourceDescription("The effective compliance rule catalog"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCatalogResource(catalogPath),
	)
}

func handleReportResource(repoPath, catalogPath string) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cat, err := catalog.New().Load(catalogPath)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}

		svc := application.NewAuditService(discovery.New(), content.New(), 0)
		report, err := svc.Audit(ctx, repoPath, cat)
		if err != nil {
			return nil, fmt.Errorf("audit failed: %w", err)
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "deploycheck://report",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleCatalogResource(catalogPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cat, err := catalog.New().Load(catalogPath)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}

		data, err := json.MarshalIndent(cat, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling catalog: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "deploycheck://catalog",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
