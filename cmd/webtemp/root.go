package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/weegigs/webtemp/support"
)

func newRootCommand() *cobra.Command {
	cfg, envErr := support.DefaultConfig().FromEnvironment(os.LookupEnv)

	root := &cobra.Command{
		Use:          "webtemp [host] [port]",
		Short:        "Serve the current sensor temperature at GET /temp",
		Args:         cobra.RangeArgs(0, 2),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return envErr
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cfg.WithArguments(args)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), c)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.File, "file", cfg.File, "sensor file, relative to the working directory")
	flags.StringVar(&cfg.Layout, "layout", cfg.Layout, "response layout: classic or detailed")
	flags.BoolVar(&cfg.Strict, "strict", cfg.Strict, "fail instead of reading 0 when the sensor line is not an integer")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	root.Flags().StringVar(&cfg.Trace, "trace", cfg.Trace, "trace exporter: none, console, otlp or jaeger")
	root.Flags().StringVar(&cfg.TraceEndpoint, "trace-endpoint", cfg.TraceEndpoint, "collector endpoint for otlp or jaeger")

	root.AddCommand(newReadCommand(&cfg))
	root.AddCommand(newWatchCommand(&cfg))

	return root
}
