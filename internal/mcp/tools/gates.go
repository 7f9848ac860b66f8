package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/imsks/statsig-mcp/internal/statsig"
)

type GateService interface {
	GetGate(ctx context.Context, name string) (statsig.Value, error)
	ListGates(ctx context.Context) ([]string, error)
}

type GetGateValueHandler struct {
	Service GateService
}

func (h *GetGateValueHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, ok := stringArgument(req, "name")
	if !ok {
		return invalidArgument("name parameter is required"), nil
	}
	gate, err := h.Service.GetGate(ctx, name)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(string(gate.Raw())), nil
}

type ListGatesHandler struct {
	Service GateService
}

func (h *ListGatesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := h.Service.ListGates(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(string(mustMarshal(names))), nil
}
