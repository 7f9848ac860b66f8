package statsig

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/imsks/statsig-mcp/internal/config"
	"github.com/imsks/statsig-mcp/internal/logging"
)

const (
	headerAPIKey = "statsig-api-key"
	maxErrorBody = 1 << 20
)

// Client issues read-only calls against the Statsig console API. It holds no
// mutable state and is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	http    *http.Client
	log     *logging.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = &l }
}

func NewClient(cfg config.Config, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		timeout: cfg.RequestTimeout,
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		l := logging.New(logging.DefaultLogger().WithName("statsig"))
		c.log = &l
	}
	if c.http.CheckRedirect == nil {
		hc := *c.http
		hc.CheckRedirect = dropKeyOnForeignRedirect
		c.http = &hc
	}
	return c
}

// dropKeyOnForeignRedirect keeps the API key on same-host redirects only.
// net/http strips Authorization and Cookie across hosts but not custom headers.
func dropKeyOnForeignRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= 10 {
		return errors.New("stopped after 10 redirects")
	}
	if req.URL.Host != via[0].URL.Host {
		req.Header.Del(headerAPIKey)
	}
	return nil
}

// get performs a single GET against endpoint and classifies the outcome.
func (c *Client) get(ctx context.Context, endpoint string) (Value, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return Value{}, &UpstreamError{Endpoint: endpoint, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		annotated := c.annotateError(err)
		c.log.Error(annotated, "statsig request failed", "path", endpoint, "duration", time.Since(start).String())
		return Value{}, &UpstreamError{Endpoint: endpoint, Err: annotated}
	}
	defer resp.Body.Close()

	log := c.log.WithValues("method", http.MethodGet, "path", endpoint, "status", resp.StatusCode, "duration", time.Since(start).String())

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		log.Debug("statsig resource not found")
		return Value{}, &NotFoundError{Endpoint: endpoint}
	case resp.StatusCode == http.StatusUnauthorized:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		err := &UnauthorizedError{}
		log.Error(err, "statsig rejected credentials")
		return Value{}, err
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		err := &UpstreamError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: errorBody(body)}
		log.Error(err, "statsig returned an error status")
		return Value{}, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Value{}, &UpstreamError{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	value, err := Parse(body)
	if err != nil {
		return Value{}, &UpstreamError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: errorBody(body), Err: err}
	}
	log.Debug("statsig request succeeded", "kind", value.Kind().String())
	return value, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) annotateError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("statsig call timed out after %s: %w", c.timeout, err)
	}
	return err
}

func errorBody(body []byte) string {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return strings.TrimSpace(string(body))
}
