package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"cuetag/config"
)

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "cuetag",
		Short:         "Generate cue sheets from tracklists and tag split tracks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "./config/config.yaml", "path to the config file")

	root.AddCommand(
		newGenerateCommand(&configPath),
		newPostprocessCommand(&configPath),
	)
	return root
}

// setup loads the config and installs the default logger at the
// configured level.
func setup(configPath string) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	return cfg, nil
}
