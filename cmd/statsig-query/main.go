package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/imsks/statsig-mcp/internal/config"
	"github.com/imsks/statsig-mcp/internal/logging"
	"github.com/imsks/statsig-mcp/internal/statsig"
)

func main() {
	root := newRootCmd()
	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("statsig-query: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "statsig-query",
		Short:         "Run a single Statsig lookup and print the result",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var output string
	root.PersistentFlags().StringVarP(&output, "output", "o", "json", "Output format (json or yaml)")
	root.PersistentFlags().String("statsig-api-key", "", "Statsig console API key")
	root.PersistentFlags().String("statsig-base-url", config.DefaultBaseURL, "Statsig console API base URL")
	root.PersistentFlags().String("statsig-request-timeout", "30s", "Timeout for the Statsig request")
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	withClient := func(fn func(ctx context.Context, c *statsig.Client, args []string) (any, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := logging.New(logging.ForLevel(cfg.LogLevel).WithName("statsig-query"))
			client := statsig.NewClient(cfg, statsig.WithLogger(logger))

			result, err := fn(cmd.Context(), client, args)
			if err != nil {
				return err
			}
			return render(os.Stdout, output, result)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "ping",
			Short: "Print the diagnostic ping literal",
			Args:  cobra.NoArgs,
			RunE: withClient(func(ctx context.Context, c *statsig.Client, args []string) (any, error) {
				return c.Ping(), nil
			}),
		},
		&cobra.Command{
			Use:   "gate NAME",
			Short: "Fetch a feature gate",
			Args:  cobra.ExactArgs(1),
			RunE: withClient(func(ctx context.Context, c *statsig.Client, args []string) (any, error) {
				return c.GetGate(ctx, args[0])
			}),
		},
		&cobra.Command{
			Use:   "gates",
			Short: "List feature gate names",
			Args:  cobra.NoArgs,
			RunE: withClient(func(ctx context.Context, c *statsig.Client, args []string) (any, error) {
				return c.ListGates(ctx)
			}),
		},
		&cobra.Command{
			Use:   "experiments",
			Short: "List experiments",
			Args:  cobra.NoArgs,
			RunE: withClient(func(ctx context.Context, c *statsig.Client, args []string) (any, error) {
				return c.ListExperiments(ctx)
			}),
		},
		&cobra.Command{
			Use:   "experiment NAME",
			Short: "Fetch an experiment",
			Args:  cobra.ExactArgs(1),
			RunE: withClient(func(ctx context.Context, c *statsig.Client, args []string) (any, error) {
				return c.GetExperiment(ctx, args[0])
			}),
		},
	)
	return root
}

func render(w io.Writer, format string, result any) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	switch format {
	case "json":
		var indented any
		if err := json.Unmarshal(payload, &indented); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(indented)
	case "yaml":
		out, err := yaml.JSONToYAML(payload)
		if err != nil {
			return fmt.Errorf("convert to yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
