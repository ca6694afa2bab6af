package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dealscout/dealscout/internal/adapters/outbound/extractor"
	"github.com/dealscout/dealscout/internal/application"
	"github.com/dealscout/dealscout/internal/domain"
)

// registerTools registers all DealScout MCP tools on the given server.
func registerTools(s *server.MCPServer, h *handlers) {
	// 1. dealscout_evaluate
	s.AddTool(
		mcplib.NewTool("dealscout_evaluate",
			mcplib.WithDescription("Score a used-car listing: deal, risk and fit sub-scores, BUY/CONSIDER/PASS verdict, estimated value and a negotiation talk track"),
			mcplib.WithObject("vehicle",
				mcplib.Required(),
				mcplib.Description("Listing: year, make, model, trim, price, mileage, vin, accident_hint, owner_hint"),
			),
			mcplib.WithObject("inputs",
				mcplib.Description("Buyer answers: has_accident, is_salvage, owner_count, is_rental_fleet, has_service_records, use_cases, drivetrain, body_style, msrp_override"),
			),
			mcplib.WithArray("comps",
				mcplib.Description("Comparable listings, each with price and mileage"),
				mcplib.Items(map[string]any{"type": "object"}),
			),
			mcplib.WithBoolean("saved_comps", mcplib.Description("Also use the comps saved in the project")),
		),
		h.handleEvaluate,
	)

	// 2. dealscout_comp_stats
	s.AddTool(
		mcplib.NewTool("dealscout_comp_stats",
			mcplib.WithDescription("Median, p25/p75 and mileage-adjusted value for a comparable set. Uses saved comps when none are given."),
			mcplib.WithArray("comps",
				mcplib.Description("Comparable listings, each with price and mileage"),
				mcplib.Items(map[string]any{"type": "object"}),
			),
			mcplib.WithNumber("mileage", mcplib.Description("Subject vehicle mileage (default 60000)")),
			mcplib.WithString("make", mcplib.Description("Subject vehicle make")),
			mcplib.WithString("body_style", mcplib.Description("sedan, suv, truck, van, coupe, hatchback, wagon or unknown")),
		),
		h.handleCompStats,
	)

	// 3. dealscout_lookup_msrp
	s.AddTool(
		mcplib.NewTool("dealscout_lookup_msrp",
			mcplib.WithDescription("Look up the MSRP range and brand reliability tier for a make and model"),
			mcplib.WithString("make", mcplib.Required(), mcplib.Description("Vehicle make, e.g. Toyota")),
			mcplib.WithString("model", mcplib.Required(), mcplib.Description("Vehicle model, e.g. RAV4")),
		),
		h.handleLookupMSRP,
	)

	// 4. dealscout_payment
	s.AddTool(
		mcplib.NewTool("dealscout_payment",
			mcplib.WithDescription("Estimate the monthly payment, tax and total cost for a purchase price. Omitted values use the project's finance defaults."),
			mcplib.WithNumber("price", mcplib.Required(), mcplib.Description("Purchase price in dollars")),
			mcplib.WithNumber("down_payment", mcplib.Description("Cash down in dollars")),
			mcplib.WithNumber("trade_value", mcplib.Description("Trade-in value in dollars")),
			mcplib.WithNumber("trade_payoff", mcplib.Description("Loan payoff owed on the trade-in")),
			mcplib.WithNumber("tax_rate", mcplib.Description("Sales tax percent")),
			mcplib.WithNumber("doc_fee", mcplib.Description("Taxable dealer doc fee")),
			mcplib.WithNumber("non_doc_fee", mcplib.Description("Untaxed fees (title, registration)")),
			mcplib.WithNumber("interest_rate", mcplib.Description("APR percent")),
			mcplib.WithNumber("term_months", mcplib.Description("Loan term in months")),
		),
		h.handlePayment,
	)

	// 5. dealscout_extract_listing
	s.AddTool(
		mcplib.NewTool("dealscout_extract_listing",
			mcplib.WithDescription("Best-effort extraction of year, make, model, price, mileage, VIN and history hints from a listing page. Pass the page HTML, or a URL to fetch."),
			mcplib.WithString("html", mcplib.Description("Listing page HTML")),
			mcplib.WithString("url", mcplib.Description("Listing URL (http or https)")),
		),
		h.handleExtract,
	)
}

func (h *handlers) handleEvaluate(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	var req application.EvaluationRequest
	if err := bindArguments(request, &req); err != nil {
		return errorResult(err.Error()), nil
	}
	saved, _ := request.GetArguments()["saved_comps"].(bool)

	ev, err := h.evaluate.Evaluate(req, application.EvaluateOptions{Dir: h.projectPath, SavedComps: saved})
	if err != nil {
		return errorResult(fmt.Sprintf("evaluation failed: %v", err)), nil
	}
	return jsonResult(ev)
}

type compStatsArgs struct {
	Comps     []domain.ComparableListing `json:"comps"`
	Mileage   *int                       `json:"mileage"`
	Make      string                     `json:"make"`
	BodyStyle domain.BodyStyle           `json:"body_style"`
}

func (h *handlers) handleCompStats(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	var args compStatsArgs
	if err := bindArguments(request, &args); err != nil {
		return errorResult(err.Error()), nil
	}
	subject := domain.VehicleListing{Make: args.Make, Mileage: args.Mileage}

	if len(args.Comps) == 0 {
		summary, err := h.comps.Stats(h.projectPath, subject, args.BodyStyle)
		if err != nil {
			return errorResult(fmt.Sprintf("comp stats failed: %v", err)), nil
		}
		return jsonResult(summary)
	}
	return jsonResult(application.Summarize(args.Comps, subject, args.BodyStyle))
}

func (h *handlers) handleLookupMSRP(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	vehicleMake, err := request.RequireString("make")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	model, err := request.RequireString("model")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return jsonResult(application.LookupReference(vehicleMake, model))
}

func (h *handlers) handlePayment(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	if _, ok := request.GetArguments()["price"]; !ok {
		return errorResult("required argument \"price\" not found"), nil
	}
	var req application.PaymentRequest
	if err := bindArguments(request, &req); err != nil {
		return errorResult(err.Error()), nil
	}

	est, err := h.payments.Estimate(h.projectPath, req)
	if err != nil {
		return errorResult(fmt.Sprintf("payment estimate failed: %v", err)), nil
	}
	return jsonResult(est)
}

func (h *handlers) handleExtract(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	args := request.GetArguments()
	page, _ := args["html"].(string)
	rawURL, _ := args["url"].(string)

	switch {
	case strings.TrimSpace(page) != "":
		res := extractor.Analyze(page)
		if rawURL != "" {
			res.Data.ListingURL = rawURL
		}
		return jsonResult(res)
	case rawURL != "":
		if h.fetcher == nil {
			return errorResult("fetching listings is not enabled on this server"), nil
		}
		res, err := h.fetcher.Fetch(ctx, rawURL)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(res)
	default:
		return errorResult("one of \"html\" or \"url\" is required"), nil
	}
}

// bindArguments decodes the tool arguments into v through their JSON form,
// so enum and pointer fields behave as they do for request files.
func bindArguments(request mcplib.CallToolRequest, v any) error {
	data, err := json.Marshal(request.GetArguments())
	if err != nil {
		return fmt.Errorf("encoding arguments: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
