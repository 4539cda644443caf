// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/findthatbook/internal/catalog"
	"github.com/pdiddy/findthatbook/internal/finder"
	"github.com/pdiddy/findthatbook/internal/intent"
	"github.com/pdiddy/findthatbook/internal/report"
	"github.com/pdiddy/findthatbook/pkg/types"
)

var findCmd = &cobra.Command{
	Use:   "find <query...>",
	Short: "Search for a book from a free-text query",
	Long: `Find extracts a title, author, year and keywords from the query, searches
Open Library with them and prints the best-matching records with the reasons
each one matched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper(), loadedSecrets)
		if err != nil {
			return err
		}
		f, err := buildFinder(cfg, slog.Default())
		if err != nil {
			return err
		}

		maxResults, _ := cmd.Flags().GetInt("max-results")
		resp, err := f.Find(cmd.Context(), finder.Request{
			Query:      strings.Join(args, " "),
			MaxResults: maxResults,
		})
		if err != nil {
			return err
		}

		if path, _ := cmd.Flags().GetString("save"); path != "" {
			if err := report.WriteSearchFile(path, report.NewSearchFile(resp, maxResults)); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Saved search to %s\n", path)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return report.FormatJSON(resp, cmd.OutOrStdout())
		}
		report.FormatTable(resp, cmd.OutOrStdout())
		return nil
	},
}

func init() {
	findCmd.Flags().Int("max-results", finder.DefaultMaxResults, "maximum number of candidates to return (1-10)")
	findCmd.Flags().Bool("json", false, "output results as JSON")
	findCmd.Flags().String("save", "", "save the intent, records and ranking to a YAML file")

	rootCmd.AddCommand(findCmd)
}

// buildFinder wires the extraction service and catalog client from cfg.
func buildFinder(cfg types.Config, logger *slog.Logger) (*finder.Finder, error) {
	extractor, err := intent.New(cfg.Extraction, logger)
	if err != nil {
		return nil, fmt.Errorf("configuring extraction: %w", err)
	}
	searcher := catalog.NewOpenLibraryClient(cfg.Catalog, logger)
	return finder.New(extractor, searcher, nil, cfg.Catalog.FanOut, logger), nil
}
