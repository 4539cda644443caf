// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match scores catalog records against a search intent and ranks
// them. Four independent strategies (title, author, year, keyword) each
// produce a bounded score; a registry combines their weighted
// contributions and explanations, a rule chain maps the scores to a match
// tier, and the ranker filters, sorts and truncates the candidates.
//
// Everything in this package is pure and safe for concurrent use.
//
// See DESIGN.md § Matching engine.
package match

import "strings"

// normalizeReplacer drops . , ' " and turns - and _ into spaces.
var normalizeReplacer = strings.NewReplacer(
	".", "",
	",", "",
	"'", "",
	`"`, "",
	"-", " ",
	"_", " ",
)

// Normalize canonicalizes text for comparison: lower-case, strip a fixed
// set of punctuation, replace word separators with spaces and trim.
// Empty or whitespace-only input yields "".
func Normalize(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return strings.TrimSpace(normalizeReplacer.Replace(strings.ToLower(text)))
}

// SplitWords normalizes text and splits it on whitespace, dropping empty tokens.
func SplitWords(text string) []string {
	return strings.Fields(Normalize(text))
}

// overlaps reports whether either string contains the other.
func overlaps(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// countOverlapping returns how many needles overlap at least one haystack word.
func countOverlapping(needles, haystack []string) int {
	matched := 0
	for _, n := range needles {
		for _, h := range haystack {
			if overlaps(h, n) {
				matched++
				break
			}
		}
	}
	return matched
}
