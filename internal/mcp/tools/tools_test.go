package tools

import (
	"context"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/imsks/statsig-mcp/internal/statsig"
)

type fakeService struct {
	value statsig.Value
	names []string
	err   error
	calls []string
}

func (f *fakeService) Ping() string { return statsig.PingResponse }

func (f *fakeService) GetGate(ctx context.Context, name string) (statsig.Value, error) {
	f.calls = append(f.calls, "gate:"+name)
	return f.value, f.err
}

func (f *fakeService) ListGates(ctx context.Context) ([]string, error) {
	f.calls = append(f.calls, "gates")
	return f.names, f.err
}

func (f *fakeService) ListExperiments(ctx context.Context) (statsig.Value, error) {
	f.calls = append(f.calls, "experiments")
	return f.value, f.err
}

func (f *fakeService) GetExperiment(ctx context.Context, name string) (statsig.Value, error) {
	f.calls = append(f.calls, "experiment:"+name)
	return f.value, f.err
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "unexpected content type %T", res.Content[0])
	return text.Text
}

func parseValue(t *testing.T, raw string) statsig.Value {
	t.Helper()
	v, err := statsig.Parse([]byte(raw))
	require.NoError(t, err)
	return v
}

func TestPingHandler(t *testing.T) {
	res, err := (&PingHandler{Service: &fakeService{}}).ToolAdapter(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, statsig.PingResponse, resultText(t, res))
}

func TestGetGateValueHandler(t *testing.T) {
	svc := &fakeService{value: parseValue(t, `{"name":"g","isEnabled":true}`)}
	res, err := (&GetGateValueHandler{Service: svc}).ToolAdapter(context.Background(), callRequest(map[string]any{"name": "g"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.JSONEq(t, `{"name":"g","isEnabled":true}`, resultText(t, res))
	assert.Equal(t, []string{"gate:g"}, svc.calls)
}

func TestGetGateValueHandler_MissingName(t *testing.T) {
	for _, args := range []map[string]any{nil, {"name": ""}, {"name": 12}} {
		svc := &fakeService{}
		res, err := (&GetGateValueHandler{Service: svc}).ToolAdapter(context.Background(), callRequest(args))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Equal(t, kindInvalidArgument, gjson.Get(resultText(t, res), "error").String())
		assert.Empty(t, svc.calls)
	}
}

func TestListGatesHandler(t *testing.T) {
	svc := &fakeService{names: []string{"a", "b", ""}}
	res, err := (&ListGatesHandler{Service: svc}).ToolAdapter(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b",""]`, resultText(t, res))

	svc = &fakeService{names: []string{}}
	res, err = (&ListGatesHandler{Service: svc}).ToolAdapter(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, `[]`, resultText(t, res))
}

func TestExperimentHandlers(t *testing.T) {
	svc := &fakeService{value: parseValue(t, `{"data":[{"id":"e"}]}`)}
	res, err := (&ListExperimentsHandler{Service: svc}).ToolAdapter(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[{"id":"e"}]}`, resultText(t, res))

	res, err = (&GetExperimentHandler{Service: svc}).ToolAdapter(context.Background(), callRequest(map[string]any{"name": "e"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, []string{"experiments", "experiment:e"}, svc.calls)

	res, err = (&GetExperimentHandler{Service: svc}).ToolAdapter(context.Background(), callRequest(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestErrorResult(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		kind     string
		endpoint string
		status   int64
	}{
		{"not found", &statsig.NotFoundError{Endpoint: "/gates/x"}, kindNotFound, "/gates/x", 0},
		{"unauthorized", &statsig.UnauthorizedError{}, kindUnauthorized, "", 0},
		{"upstream", &statsig.UpstreamError{Endpoint: "/gates", StatusCode: 500, Body: "boom"}, kindUpstream, "/gates", 500},
		{"transport", &statsig.UpstreamError{Endpoint: "/gates", Err: fmt.Errorf("dial tcp: refused")}, kindUpstream, "/gates", 0},
		{"wrapped", fmt.Errorf("call: %w", &statsig.NotFoundError{Endpoint: "/experiments/y"}), kindNotFound, "/experiments/y", 0},
		{"empty name", statsig.ErrEmptyName, kindInvalidArgument, "", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeService{err: tc.err}
			res, err := (&GetGateValueHandler{Service: svc}).ToolAdapter(context.Background(), callRequest(map[string]any{"name": "x"}))
			require.NoError(t, err)
			require.True(t, res.IsError)

			body := resultText(t, res)
			assert.Equal(t, tc.kind, gjson.Get(body, "error").String())
			assert.Equal(t, tc.endpoint, gjson.Get(body, "endpoint").String())
			assert.Equal(t, tc.status, gjson.Get(body, "status").Int())
			assert.NotEmpty(t, gjson.Get(body, "message").String())
		})
	}
}
