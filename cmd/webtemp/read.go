package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weegigs/webtemp/support"
)

func newReadCommand(cfg *support.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "read",
		Short: "Print the current reading as the endpoint would render it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			reading, err := newSource(*cfg).Read(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cfg.SensorLayout().Render(reading))
			return nil
		},
	}
}
