// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/findthatbook/internal/finder"
)

// FormatTable writes a human-readable ranking to w.
func FormatTable(resp *finder.Response, w io.Writer) {
	fmt.Fprintf(w, "Query: %s\n", resp.OriginalQuery)
	fmt.Fprintf(w, "Intent: %s\n\n", formatIntent(resp.ExtractedInfo))

	if len(resp.Candidates) == 0 {
		fmt.Fprintln(w, "No matching books found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-50s  %-20s  %-4s  %-7s  %s\n",
		"Rank", "Title", "Authors", "Year", "Score", "Match")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, c := range resp.Candidates {
		year := ""
		if c.FirstPublishYear != nil {
			year = fmt.Sprintf("%d", *c.FirstPublishYear)
		}
		fmt.Fprintf(w, "%-4d  %-50s  %-20s  %-4s  %-7.2f  %s\n",
			i+1, truncate(c.Title, 50), formatAuthors(c.Authors), year, c.MatchScore, c.MatchStrength)
		for _, r := range c.MatchReasons {
			fmt.Fprintf(w, "      - %s\n", r)
		}
	}

	fmt.Fprintf(w, "\n%d candidates in %.1f ms\n", resp.TotalCandidates, resp.ProcessingTimeMS)
}

// FormatJSON writes resp as indented JSON to w.
func FormatJSON(resp *finder.Response, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func formatIntent(in finder.IntentView) string {
	var parts []string
	if in.Title != "" {
		parts = append(parts, fmt.Sprintf("title=%q", in.Title))
	}
	if in.Author != "" {
		parts = append(parts, fmt.Sprintf("author=%q", in.Author))
	}
	if in.Year != nil {
		parts = append(parts, fmt.Sprintf("year=%d", *in.Year))
	}
	if len(in.Keywords) > 0 {
		parts = append(parts, "keywords="+strings.Join(in.Keywords, ","))
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, " ")
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 20)
	default:
		return truncate(authors[0], 14) + " et al."
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
