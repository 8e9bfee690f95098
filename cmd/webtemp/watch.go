package main

import (
	"github.com/spf13/cobra"

	"github.com/weegigs/webtemp/sensor"
	"github.com/weegigs/webtemp/support"
)

func newWatchCommand(cfg *support.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Log a reading every time the sensor file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger := newLogger(*cfg)

			watcher, err := sensor.NewWatcher(newSource(*cfg))
			if err != nil {
				return err
			}
			defer watcher.Stop()

			onReading := func(reading sensor.Reading) {
				logger.Info().
					Int("value", reading.Value).
					Str("modified", sensor.ModificationTime(reading.ObservedAt)).
					Msg("reading")
			}
			onError := func(err error) {
				logger.Warn().Err(err).Msg("failed to read sensor")
			}

			if err := watcher.Watch(cmd.Context(), onReading, onError); err != nil {
				return err
			}
			logger.Info().Str("file", cfg.File).Msg("watching")

			<-cmd.Context().Done()
			return nil
		},
	}
}
