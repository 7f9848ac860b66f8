package tools

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/imsks/statsig-mcp/internal/statsig"
)

const (
	kindNotFound        = "not_found"
	kindUnauthorized    = "unauthorized"
	kindUpstream        = "upstream_error"
	kindInvalidArgument = "invalid_argument"
)

// toolError is the JSON body of every failed tool result.
type toolError struct {
	Error    string `json:"error"`
	Message  string `json:"message"`
	Endpoint string `json:"endpoint,omitempty"`
	Status   int    `json:"status,omitempty"`
	Body     string `json:"body,omitempty"`
}

func stringArgument(req mcp.CallToolRequest, key string) (string, bool) {
	value, _ := req.GetArguments()[key].(string)
	if strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

func invalidArgument(message string) *mcp.CallToolResult {
	return mcp.NewToolResultError(string(mustMarshal(toolError{Error: kindInvalidArgument, Message: message})))
}

// errorResult turns a statsig failure into a tool result flagged isError so
// the caller can tell the kinds apart.
func errorResult(err error) *mcp.CallToolResult {
	te := toolError{Error: kindUpstream, Message: err.Error()}

	var (
		notFound *statsig.NotFoundError
		upstream *statsig.UpstreamError
	)
	switch {
	case errors.Is(err, statsig.ErrEmptyName):
		te.Error = kindInvalidArgument
	case errors.As(err, &notFound):
		te.Error = kindNotFound
		te.Endpoint = notFound.Endpoint
	case statsig.IsUnauthorized(err):
		te.Error = kindUnauthorized
	case errors.As(err, &upstream):
		te.Endpoint = upstream.Endpoint
		te.Status = upstream.StatusCode
		te.Body = upstream.Body
	}
	return mcp.NewToolResultError(string(mustMarshal(te)))
}

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
