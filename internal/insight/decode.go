// Package insight builds rationale prompts and turns raw model output into a
// validated AIInsight.
package insight

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"stockswipe/internal/models"
	"stockswipe/internal/validator"
)

// Word budgets for the text fields.
const (
	DescriptionWordLimit = 40
	RationaleWordLimit   = 60
)

// ErrNoJSON is returned when the model output contains no JSON object.
var ErrNoJSON = errors.New("no JSON object found in model output")

// rawInsight mirrors the requested shape loosely; every field is decoded as
// any so a mistyped value defaults instead of failing the whole answer.
type rawInsight struct {
	CompanyDescription any `json:"companyDescription"`
	Buy                any `json:"buy"`
	BuyProbability     any `json:"buyProbability"`
	Sell               any `json:"sell"`
	SellProbability    any `json:"sellProbability"`
}

// ExtractJSON strips markdown code fences and returns the span from the first
// '{' to the last '}'.
func ExtractJSON(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end < start {
		return "", ErrNoJSON
	}
	return s[start : end+1], nil
}

// Decode parses model output into an AIInsight. Text fields are trimmed to
// their word budgets and the probabilities are normalized, so the result
// always satisfies buy + sell == 100.
func Decode(raw string) (*models.AIInsight, error) {
	body, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var in rawInsight
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		return nil, fmt.Errorf("failed to decode insight JSON: %w", err)
	}

	buy, sell := Normalize(in.BuyProbability, in.SellProbability)
	out := &models.AIInsight{
		CompanyDescription: truncateWords(toText(in.CompanyDescription), DescriptionWordLimit),
		Buy:                truncateWords(toText(in.Buy), RationaleWordLimit),
		BuyProbability:     buy,
		Sell:               truncateWords(toText(in.Sell), RationaleWordLimit),
		SellProbability:    sell,
	}
	if err := validator.Struct(out); err != nil {
		return nil, fmt.Errorf("insight failed validation: %w", err)
	}
	return out, nil
}

// toText returns v when it is a string and "" for anything else.
func toText(v any) string {
	s, _ := v.(string)
	return s
}

func truncateWords(s string, limit int) string {
	words := strings.Fields(s)
	if len(words) <= limit {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:limit], " ") + "…"
}
