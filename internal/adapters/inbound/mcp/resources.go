package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dealscout/dealscout/internal/domain"
	"github.com/dealscout/dealscout/internal/domain/valuation"
)

// Resource URIs.
const (
	msrpTableURI        = "dealscout://tables/msrp"
	reliabilityTableURI = "dealscout://tables/reliability"
	savedCompsURI       = "dealscout://comps"
)

// registerResources registers all DealScout MCP resources on the given server.
func registerResources(s *server.MCPServer, h *handlers) {
	// 1. dealscout://tables/msrp - static MSRP table
	s.AddResource(
		mcplib.NewResource(
			msrpTableURI,
			"MSRP Table",
			mcplib.WithResourceDescription("Approximate new-vehicle MSRP ranges keyed by make and model"),
			mcplib.WithMIMEType("application/json"),
		),
		staticResource(msrpTableURI, valuation.MSRPTable),
	)

	// 2. dealscout://tables/reliability - brand reliability tiers
	s.AddResource(
		mcplib.NewResource(
			reliabilityTableURI,
			"Reliability Tiers",
			mcplib.WithResourceDescription("Brand reliability scores (0-100); unlisted makes score 65"),
			mcplib.WithMIMEType("application/json"),
		),
		staticResource(reliabilityTableURI, valuation.ReliabilityTable),
	)

	// 3. dealscout://comps - saved comparable set
	s.AddResource(
		mcplib.NewResource(
			savedCompsURI,
			"Saved Comps",
			mcplib.WithResourceDescription("Comparable listings saved in the project"),
			mcplib.WithMIMEType("application/json"),
		),
		h.handleCompsResource,
	)
}

func staticResource[T any](uri string, table func() T) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents(uri, table())
	}
}

func (h *handlers) handleCompsResource(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	comps, err := h.comps.List(h.projectPath)
	if err != nil {
		return nil, fmt.Errorf("listing comps: %w", err)
	}
	if comps == nil {
		comps = []domain.ComparableListing{}
	}
	return jsonContents(savedCompsURI, comps)
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}

	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
