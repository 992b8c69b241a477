package main

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"cuetag/internal/cuesheet"
	"cuetag/internal/tracklist"
)

func newGenerateCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <tracklist>",
		Short: "Convert a tracklist file or URL into a cue sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := setup(*configPath); err != nil {
				return err
			}

			source := args[0]
			order := tracklist.OrderFromSource(source)
			importer := tracklist.ImporterFor(source, order)

			sheet, diag, err := importer.Import(cmd.Context(), source)
			if err != nil {
				return err
			}

			text := cuesheet.Write(sheet)
			fmt.Fprint(cmd.OutOrStdout(), text)

			outPath, err := sheetPath(source)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
				return fmt.Errorf("failed to write cue sheet: %w", err)
			}

			slog.Info("Wrote cue sheet",
				"path", outPath,
				"tracks", len(sheet.Tracks),
				"ignored_lines", diag.IgnoredLines,
			)
			return nil
		},
	}
}

// sheetPath replaces the source's extension with .cue. URL sources map
// to a sheet named after the last path segment, in the working
// directory.
func sheetPath(source string) (string, error) {
	name := source
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		u, err := url.Parse(source)
		if err != nil {
			return "", fmt.Errorf("invalid source url: %w", err)
		}
		name = path.Base(u.Path)
		if name == "/" || name == "." || name == "" {
			return u.Hostname() + ".cue", nil
		}
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".cue", nil
}
