package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/imsks/statsig-mcp/internal/statsig"
)

type ExperimentService interface {
	ListExperiments(ctx context.Context) (statsig.Value, error)
	GetExperiment(ctx context.Context, name string) (statsig.Value, error)
}

type ListExperimentsHandler struct {
	Service ExperimentService
}

func (h *ListExperimentsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	experiments, err := h.Service.ListExperiments(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(string(experiments.Raw())), nil
}

type GetExperimentHandler struct {
	Service ExperimentService
}

func (h *GetExperimentHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, ok := stringArgument(req, "name")
	if !ok {
		return invalidArgument("name parameter is required"), nil
	}
	experiment, err := h.Service.GetExperiment(ctx, name)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(string(experiment.Raw())), nil
}
