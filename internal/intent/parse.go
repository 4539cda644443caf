// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package intent

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/pdiddy/findthatbook/pkg/types"
)

var (
	errEmptyReply     = errors.New("empty reply")
	errMalformedReply = errors.New("reply is not a JSON object")
)

// extractedFields mirrors the JSON object requested by the prompt.
type extractedFields struct {
	Title    string          `json:"title"`
	Author   string          `json:"author"`
	Year     json.RawMessage `json:"year"`
	Keywords []string        `json:"keywords"`
}

// stripFences removes Markdown code fences models add despite being told not to.
func stripFences(reply string) string {
	s := strings.ReplaceAll(reply, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// parseReply decodes a model reply, repairing near-JSON first when the
// strict decode fails.
func parseReply(reply, query string) (types.SearchIntent, error) {
	clean := stripFences(reply)

	var f extractedFields
	if err := decodeObject(clean, &f); err != nil {
		repaired, rerr := jsonrepair.JSONRepair(clean)
		if rerr != nil {
			return types.SearchIntent{}, fmt.Errorf("%w: %v", errMalformedReply, rerr)
		}
		f = extractedFields{}
		if err := decodeObject(repaired, &f); err != nil {
			return types.SearchIntent{}, err
		}
	}

	intent := types.SearchIntent{
		Title:         cleanField(f.Title),
		Author:        cleanField(f.Author),
		Year:          parseYear(f.Year),
		OriginalQuery: query,
	}
	for _, kw := range f.Keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			intent.Keywords = append(intent.Keywords, kw)
		}
	}
	return intent, nil
}

func decodeObject(s string, f *extractedFields) error {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") {
		return errMalformedReply
	}
	if err := json.Unmarshal([]byte(s), f); err != nil {
		return fmt.Errorf("%w: %v", errMalformedReply, err)
	}
	return nil
}

// cleanField trims v and treats a literal "null" as absent.
func cleanField(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "null") {
		return ""
	}
	return v
}

// parseYear accepts a JSON number or a numeric string. Missing, null and
// non-positive values yield nil.
func parseYear(raw json.RawMessage) *int {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" || s == "null" {
		return nil
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return nil
		}
		y = int(f)
	}
	if y <= 0 {
		return nil
	}
	return &y
}
