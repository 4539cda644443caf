// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// MatchStrength is the ordinal match tier. Higher values are stronger, so
// sorting by strength is a plain integer comparison.
type MatchStrength int

const (
	MatchNone MatchStrength = iota
	MatchWeak
	MatchPartial
	MatchStrong
	MatchExact
)

var strengthNames = [...]string{
	MatchNone:    "None",
	MatchWeak:    "Weak",
	MatchPartial: "Partial",
	MatchStrong:  "Strong",
	MatchExact:   "Exact",
}

// String returns the tier name ("Exact", "Strong", ...).
func (s MatchStrength) String() string {
	if s < MatchNone || s > MatchExact {
		return fmt.Sprintf("MatchStrength(%d)", int(s))
	}
	return strengthNames[s]
}

// ParseMatchStrength converts a tier name back to a MatchStrength.
// Matching is case-insensitive.
func ParseMatchStrength(name string) (MatchStrength, error) {
	for i, n := range strengthNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return MatchStrength(i), nil
		}
	}
	return MatchNone, fmt.Errorf("unknown match strength %q", name)
}

// MarshalText encodes the tier as its name in JSON and YAML.
func (s MatchStrength) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a tier name.
func (s *MatchStrength) UnmarshalText(text []byte) error {
	v, err := ParseMatchStrength(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

const noMatchExplanation = "No significant match found"

// Candidate is a catalog record paired with its match evaluation.
type Candidate struct {
	Book          Book          `json:"book" yaml:"book"`
	MatchStrength MatchStrength `json:"match_strength" yaml:"match_strength"`

	// MatchScore is the weighted total in [0,100], rounded to 2 decimals.
	MatchScore float64 `json:"match_score" yaml:"match_score"`

	// MatchReasons holds one explanation per matching signal, in strategy order.
	MatchReasons []string `json:"match_reasons" yaml:"match_reasons"`
}

// Explanation joins the reasons behind a tier prefix, e.g.
// "Exact match: r1; r2". A None tier yields a fixed message.
func (c Candidate) Explanation() string {
	if c.MatchStrength == MatchNone {
		return noMatchExplanation
	}
	return fmt.Sprintf("%s match: %s", c.MatchStrength, strings.Join(c.MatchReasons, "; "))
}
