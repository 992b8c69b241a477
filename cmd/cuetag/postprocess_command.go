package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"cuetag/internal/audio"
	"cuetag/internal/postprocess"
	"cuetag/internal/storage"
)

func newPostprocessCommand(configPath *string) *cobra.Command {
	var (
		tracksDir    string
		pattern      string
		outputFormat string
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "postprocess <sheet.cue>",
		Short: "Tag and rename split tracks using a cue sheet and ffmpeg",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(*configPath)
			if err != nil {
				return err
			}

			if pattern == "" {
				pattern = cfg.Pattern
			}
			if outputFormat == "" {
				outputFormat = cfg.OutputFormat
			}

			var opts []postprocess.Option
			if cfg.Matcher.Fuzzy {
				opts = append(opts, postprocess.WithFuzzyMatching(cfg.Matcher.MaxDistance))
			}
			processor := postprocess.New(storage.LocalFiles{}, audio.NewFFmpeg(), opts...)

			summary, err := processor.Run(cmd.Context(), postprocess.Options{
				SheetPath:    args[0],
				TracksDir:    tracksDir,
				Pattern:      pattern,
				OutputFormat: outputFormat,
				DryRun:       dryRun,
			})
			if err != nil {
				return err
			}

			slog.Info("Postprocess complete",
				"tracks", summary.Total,
				"tagged", summary.Tagged,
				"skipped", summary.Skipped,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&tracksDir, "tracks-dir", ".", "directory containing the split tracks")
	cmd.Flags().StringVar(&pattern, "pattern", "", "glob pattern for candidate files (default from config)")
	cmd.Flags().StringVar(&outputFormat, "output-format", "", "output file extension, e.g. m4a, flac, wav (default from config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show actions without invoking ffmpeg")

	return cmd
}
