package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/imsks/statsig-mcp/internal/mcp/tools"
	"github.com/imsks/statsig-mcp/internal/statsig"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

// DefaultConfig exposes every Statsig tool backed by client.
func DefaultConfig(client *statsig.Client) Config {
	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"diagnostic_ping":  &tools.PingHandler{Service: client},
			"get_gate_value":   &tools.GetGateValueHandler{Service: client},
			"list_gates":       &tools.ListGatesHandler{Service: client},
			"list_experiments": &tools.ListExperimentsHandler{Service: client},
			"get_experiment":   &tools.GetExperimentHandler{Service: client},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath(EndpointPath),
			server.WithStateLess(true),
		},
	}
}
