package mcp

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/atelierdoces/backoffice/internal/domain/customer"
	"github.com/atelierdoces/backoffice/internal/domain/project"
)

func resolveToday(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return project.DateOnly(s)
}

type listUpcomingParams struct {
	Today string `json:"today,omitempty" jsonschema:"Reference day as YYYY-MM-DD (defaults to the server clock)"`
}

type getProjectParams struct {
	ID string `json:"id" jsonschema:"Project ID"`
}

type searchCustomersParams struct {
	Query string `json:"query,omitempty" jsonschema:"Name or phone fragment (empty lists everyone)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of results"`
}

type emptyParams struct{}

type upcomingResult struct {
	ThisWeek []project.Summary `json:"this_week"`
	NextWeek []project.Summary `json:"next_week"`
}

type customersResult struct {
	Customers []customer.Summary `json:"customers"`
}

// registerTools wires the read-only assistant tools onto the server.
func registerTools(server *sdkmcp.Server, svcs Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_upcoming_projects",
		Description: "List cake projects due this week and next week, ordered by event date",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in listUpcomingParams) (*sdkmcp.CallToolResult, upcomingResult, error) {
		today, err := resolveToday(in.Today)
		if err != nil {
			return nil, upcomingResult{}, err
		}
		buckets, err := svcs.Projects.Upcoming(ctx, today)
		if err != nil {
			return nil, upcomingResult{}, err
		}
		// The output schema declares arrays; nil slices would marshal as null.
		out := upcomingResult{ThisWeek: buckets.ThisWeek, NextWeek: buckets.NextWeek}
		if out.ThisWeek == nil {
			out.ThisWeek = []project.Summary{}
		}
		if out.NextWeek == nil {
			out.NextWeek = []project.Summary{}
		}
		return nil, out, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get full detail for one cake project",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in getProjectParams) (*sdkmcp.CallToolResult, *project.Project, error) {
		if in.ID == "" {
			return nil, nil, fmt.Errorf("id is required")
		}
		proj, err := svcs.Projects.Get(ctx, in.ID)
		if err != nil {
			return nil, nil, err
		}
		return nil, proj, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_customers",
		Description: "Search customers by name or phone",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in searchCustomersParams) (*sdkmcp.CallToolResult, customersResult, error) {
		customers, err := svcs.Customers.List(ctx, in.Query, in.Limit)
		if err != nil {
			return nil, customersResult{}, err
		}
		return nil, customersResult{Customers: customers}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_status_board",
		Description: "Get every project grouped by production status (working, planning, completed, cancelled)",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in emptyParams) (*sdkmcp.CallToolResult, project.StatusBuckets, error) {
		board, err := svcs.Projects.Board(ctx)
		if err != nil {
			return nil, project.StatusBuckets{}, err
		}
		if board.Working == nil {
			board.Working = []project.Summary{}
		}
		if board.Planning == nil {
			board.Planning = []project.Summary{}
		}
		if board.Completed == nil {
			board.Completed = []project.Summary{}
		}
		if board.Cancelled == nil {
			board.Cancelled = []project.Summary{}
		}
		return nil, board, nil
	})
}
