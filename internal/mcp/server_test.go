package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/atelierdoces/backoffice/internal/domain/customer"
	"github.com/atelierdoces/backoffice/internal/domain/project"
)

type projectStub struct {
	getFn      func(context.Context, string) (*project.Project, error)
	upcomingFn func(context.Context, time.Time) (project.WeekBuckets, error)
	boardFn    func(context.Context) (project.StatusBuckets, error)
}

func (p projectStub) Get(ctx context.Context, id string) (*project.Project, error) {
	return p.getFn(ctx, id)
}
func (p projectStub) Upcoming(ctx context.Context, today time.Time) (project.WeekBuckets, error) {
	return p.upcomingFn(ctx, today)
}
func (p projectStub) Board(ctx context.Context) (project.StatusBuckets, error) {
	return p.boardFn(ctx)
}

type customerStub struct {
	listFn func(context.Context, string, int) ([]customer.Summary, error)
}

func (c customerStub) List(ctx context.Context, query string, limit int) ([]customer.Summary, error) {
	return c.listFn(ctx, query, limit)
}

// connect wires a client to the server over in-memory transports.
func connect(t *testing.T, server *sdkmcp.Server) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test", Version: "0.0.0"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		clientSession.Close()
		serverSession.Wait()
	})
	return clientSession
}

func TestToolsListed(t *testing.T) {
	server := NewServer(Config{Services: Services{
		Projects:  projectStub{},
		Customers: customerStub{},
	}})
	session := connect(t, server)

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	require.ElementsMatch(t, []string{
		"list_upcoming_projects",
		"get_project",
		"search_customers",
		"get_status_board",
	}, names)
}

func TestListUpcomingProjects(t *testing.T) {
	var gotToday time.Time
	server := NewServer(Config{Services: Services{
		Projects: projectStub{
			upcomingFn: func(_ context.Context, today time.Time) (project.WeekBuckets, error) {
				gotToday = today
				return project.WeekBuckets{
					ThisWeek: []project.Summary{{ID: "p-1", EventDate: "2026-02-05"}},
				}, nil
			},
		},
		Customers: customerStub{},
	}})
	session := connect(t, server)

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "list_upcoming_projects",
		Arguments: map[string]any{"today": "2026-02-03"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Equal(t, 2026, gotToday.Year())
	require.Equal(t, time.February, gotToday.Month())
	require.Equal(t, 3, gotToday.Day())

	data, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var out struct {
		ThisWeek []struct {
			ID string `json:"id"`
		} `json:"this_week"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out.ThisWeek, 1)
	require.Equal(t, "p-1", out.ThisWeek[0].ID)
}

func TestListUpcomingProjectsEmptyWeeks(t *testing.T) {
	server := NewServer(Config{Services: Services{
		Projects: projectStub{
			upcomingFn: func(_ context.Context, _ time.Time) (project.WeekBuckets, error) {
				return project.WeekBuckets{}, nil
			},
		},
		Customers: customerStub{},
	}})
	session := connect(t, server)

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "list_upcoming_projects",
		Arguments: map[string]any{"today": "2026-02-03"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	data, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	require.JSONEq(t, `{"this_week":[],"next_week":[]}`, string(data))
}

func TestStatusBoardEmpty(t *testing.T) {
	server := NewServer(Config{Services: Services{
		Projects: projectStub{
			boardFn: func(_ context.Context) (project.StatusBuckets, error) {
				return project.StatusBuckets{}, nil
			},
		},
		Customers: customerStub{},
	}})
	session := connect(t, server)

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name: "get_status_board",
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	data, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	require.JSONEq(t, `{"working":[],"planning":[],"completed":[],"cancelled":[]}`, string(data))
}

func TestListUpcomingProjectsRejectsMalformedToday(t *testing.T) {
	server := NewServer(Config{Services: Services{
		Projects:  projectStub{},
		Customers: customerStub{},
	}})
	session := connect(t, server)

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "list_upcoming_projects",
		Arguments: map[string]any{"today": "03/02/2026"},
	})
	require.NoError(t, err)
	require.True(t, res.IsError)
}

func TestSearchCustomers(t *testing.T) {
	server := NewServer(Config{Services: Services{
		Projects: projectStub{},
		Customers: customerStub{
			listFn: func(_ context.Context, query string, _ int) ([]customer.Summary, error) {
				require.Equal(t, "maria", query)
				return []customer.Summary{{ID: "c-1", Name: "Maria Silva"}}, nil
			},
		},
	}})
	session := connect(t, server)

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "search_customers",
		Arguments: map[string]any{"query": "maria"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
}
