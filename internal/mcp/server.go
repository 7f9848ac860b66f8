package mcp

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ServerName    = "statsig-mcp"
	ServerVersion = "1.0.0"
	EndpointPath  = "/mcp"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func readOnly(openWorld bool) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(openWorld),
	}
}

// ToolDefinitions returns the schema of every tool the server can expose.
func ToolDefinitions() map[string]mcp.Tool {
	return map[string]mcp.Tool{
		"diagnostic_ping": mcp.NewTool("diagnostic_ping", append(readOnly(false),
			mcp.WithDescription("Check that the Statsig MCP server is alive. Does not contact Statsig."),
		)...),
		"get_gate_value": mcp.NewTool("get_gate_value", append(readOnly(true),
			mcp.WithDescription("Fetch a Statsig feature gate by name. Returns the gate definition as JSON, including whether it is enabled and its rules."),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Feature gate name (e.g., 'new_checkout_flow')"),
			),
		)...),
		"list_gates": mcp.NewTool("list_gates", append(readOnly(true),
			mcp.WithDescription("List the names of all Statsig feature gates as a JSON array of strings."),
		)...),
		"list_experiments": mcp.NewTool("list_experiments", append(readOnly(true),
			mcp.WithDescription("List Statsig experiments. Returns the Statsig response unchanged."),
		)...),
		"get_experiment": mcp.NewTool("get_experiment", append(readOnly(true),
			mcp.WithDescription("Fetch a Statsig experiment by name, including its status, groups and parameters."),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Experiment name (e.g., 'pricing_page_test')"),
			),
		)...),
	}
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	toolDefinitions := ToolDefinitions()
	for name, adapter := range cfg.ToolAdapters {
		tool, ok := toolDefinitions[name]
		if !ok {
			log.Printf("skipping tool %q: no definition", name)
			continue
		}
		mcpServer.AddTool(tool, adapter.ToolAdapter)
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", statusHandler)
	mux.Handle(EndpointPath, httpServer)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: mux,
	}
}

// ServeStdio blocks serving MCP over stdin/stdout until the client goes away
// or the process is signalled. errLog must not write to stdout.
func (s *Server) ServeStdio(errLog *log.Logger) error {
	return server.ServeStdio(s.MCP, server.WithErrorLogger(errLog))
}

func statusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Statsig MCP Server is running"})
}
