// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/findthatbook/internal/finder"
	"github.com/pdiddy/findthatbook/internal/report"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Re-rank a saved search offline",
	Long: `Rank loads a search file written by find --save (or written by hand) and
scores its records against its intent. No remote service is called.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		if path == "" {
			return fmt.Errorf("--file is required")
		}
		sf, err := report.ReadSearchFile(path)
		if err != nil {
			return err
		}

		maxResults, _ := cmd.Flags().GetInt("max-results")
		resp := finder.New(nil, nil, nil, 0, nil).Rank(sf.Intent, sf.Books, maxResults)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return report.FormatJSON(resp, cmd.OutOrStdout())
		}
		report.FormatTable(resp, cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rankCmd.Flags().String("file", "", "search file to re-rank")
	rankCmd.Flags().Int("max-results", finder.DefaultMaxResults, "maximum number of candidates to return")
	rankCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(rankCmd)
}
