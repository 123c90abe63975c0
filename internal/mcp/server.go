package mcp

import (
	"context"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/atelierdoces/backoffice/internal/domain/customer"
	"github.com/atelierdoces/backoffice/internal/domain/project"
)

const serverInstructions = `Read-only assistant surface for the atelier back office.
Use list_upcoming_projects to see what is due this week and next week,
get_project for full order detail, search_customers to find a customer,
and get_status_board for the production pipeline.`

// ProjectService defines project operations needed by the assistant surface.
type ProjectService interface {
	Get(ctx context.Context, id string) (*project.Project, error)
	Upcoming(ctx context.Context, today time.Time) (project.WeekBuckets, error)
	Board(ctx context.Context) (project.StatusBuckets, error)
}

// CustomerService defines customer operations needed by the assistant surface.
type CustomerService interface {
	List(ctx context.Context, query string, limit int) ([]customer.Summary, error)
}

// Services contains the domain services exposed through MCP.
type Services struct {
	Projects  ProjectService
	Customers CustomerService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Resolver AccessResolver
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "atelier-backoffice",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	// No resolver means a trusted local transport; skip the bearer check.
	if cfg.Resolver != nil {
		server.AddReceivingMiddleware(authMiddleware(cfg.Resolver))
	}
	if cfg.Logger != nil {
		server.AddReceivingMiddleware(loggingMiddleware(cfg.Logger))
	}

	registerTools(server, cfg.Services)

	return server
}
