package statsig

import (
	"context"
	"net/url"
	"strings"
)

// PingResponse is what Ping returns.
const PingResponse = "pong"

const (
	gatesPath       = "/gates"
	experimentsPath = "/experiments"
)

// Ping answers without touching the network.
func (c *Client) Ping() string {
	return PingResponse
}

// GetGate fetches a single feature gate.
func (c *Client) GetGate(ctx context.Context, name string) (Value, error) {
	endpoint, err := namedPath(gatesPath, name)
	if err != nil {
		return Value{}, err
	}
	return c.get(ctx, endpoint)
}

// ListGates returns the names of all gates.
func (c *Client) ListGates(ctx context.Context) ([]string, error) {
	value, err := c.get(ctx, gatesPath)
	if err != nil {
		return nil, err
	}
	return GateNames(value), nil
}

// ListExperiments returns the upstream payload unchanged; it is not
// guaranteed to be an array.
func (c *Client) ListExperiments(ctx context.Context) (Value, error) {
	return c.get(ctx, experimentsPath)
}

func (c *Client) GetExperiment(ctx context.Context, name string) (Value, error) {
	endpoint, err := namedPath(experimentsPath, name)
	if err != nil {
		return Value{}, err
	}
	return c.get(ctx, endpoint)
}

func namedPath(collection, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}
	return collection + "/" + url.PathEscape(name), nil
}
