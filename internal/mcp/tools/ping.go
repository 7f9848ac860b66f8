package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

type Pinger interface {
	Ping() string
}

type PingHandler struct {
	Service Pinger
}

func (h *PingHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(h.Service.Ping()), nil
}
