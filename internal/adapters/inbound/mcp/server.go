package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/dealscout/dealscout/internal/adapters/outbound/compstore"
	"github.com/dealscout/dealscout/internal/adapters/outbound/config"
	"github.com/dealscout/dealscout/internal/adapters/outbound/logger"
	"github.com/dealscout/dealscout/internal/application"
	"github.com/dealscout/dealscout/internal/domain"
)

// Deps are the adapters the tools and resources run against. Nil fields get
// the file-based defaults; a nil Fetcher disables URL extraction.
type Deps struct {
	ConfigLoader domain.ConfigLoader
	CompStore    domain.CompStore
	Fetcher      domain.ListingFetcher
	Log          *slog.Logger
}

type handlers struct {
	projectPath string
	evaluate    *application.EvaluateService
	comps       *application.CompService
	payments    *application.PaymentService
	fetcher     domain.ListingFetcher
	log         *slog.Logger
}

// NewDealScoutMCPServer creates an MCP server with all DealScout tools and
// resources registered. projectPath holds .dealscout.yaml and saved comps.
func NewDealScoutMCPServer(projectPath string, deps Deps) *server.MCPServer {
	if deps.ConfigLoader == nil {
		deps.ConfigLoader = config.New()
	}
	if deps.CompStore == nil {
		deps.CompStore = compstore.New()
	}
	if deps.Log == nil {
		deps.Log = logger.Discard().Logger
	}
	log := deps.Log.With("component", "mcp")

	h := &handlers{
		projectPath: projectPath,
		evaluate:    application.NewEvaluateService(deps.ConfigLoader, deps.CompStore, log),
		comps:       application.NewCompService(deps.ConfigLoader, deps.CompStore, log),
		payments:    application.NewPaymentService(deps.ConfigLoader),
		fetcher:     deps.Fetcher,
		log:         log,
	}

	s := server.NewMCPServer(
		"dealscout",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, h)
	registerResources(s, h)

	return s
}
