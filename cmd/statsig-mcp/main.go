package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"

	"github.com/imsks/statsig-mcp/internal/config"
	"github.com/imsks/statsig-mcp/internal/logging"
	"github.com/imsks/statsig-mcp/internal/mcp"
	"github.com/imsks/statsig-mcp/internal/statsig"
)

func main() {
	root := &cobra.Command{
		Use:           "statsig-mcp",
		Short:         "Statsig MCP server",
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("statsig-api-key", "", "Statsig console API key")
	root.PersistentFlags().String("statsig-base-url", config.DefaultBaseURL, "Statsig console API base URL")
	root.PersistentFlags().String("statsig-request-timeout", "30s", "Timeout for each Statsig request")
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("transport", "stdio", "MCP transport (stdio or http)")
	root.PersistentFlags().String("host", "127.0.0.1", "HTTP host")
	root.PersistentFlags().Int("port", 8000, "HTTP port")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("statsig-mcp: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zapLogger, err := logging.NewZap(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	logger := logging.New(zapr.NewLogger(zapLogger))

	client := statsig.NewClient(cfg, statsig.WithLogger(logger.WithName("statsig")))
	srv := mcp.New(mcp.DefaultConfig(client))

	switch transport := config.Transport(); transport {
	case "stdio":
		logger.Info("serving MCP over stdio", "baseURL", cfg.BaseURL)
		return srv.ServeStdio(logging.StdLog(zapLogger))
	case "http":
		addr := config.HTTPHost() + ":" + strconv.Itoa(config.HTTPPort())
		return serveHTTP(srv, addr, logger)
	default:
		return &config.ConfigurationError{Key: config.KeyTransport, Reason: fmt.Sprintf("unknown transport %q", transport)}
	}
}

func serveHTTP(srv *mcp.Server, addr string, logger logging.Logger) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("MCP server listening", "addr", addr, "endpoint", mcp.EndpointPath)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
