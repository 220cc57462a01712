package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Outcome says which branch produced a Result's Estimate.
type Outcome string

const (
	// OutcomeEstimated means the model answered and the reply parsed.
	OutcomeEstimated Outcome = "estimated"
	// OutcomeDisabled means no API key is configured.
	OutcomeDisabled Outcome = "disabled"
	// OutcomeFailed means the call or the reply was unusable.
	OutcomeFailed Outcome = "failed"
)

// Estimate is a per-portion nutrition guess for a pictured food.
type Estimate struct {
	FoodName   string  `json:"food_name"`
	Calories   float64 `json:"calories"`
	Proteins   float64 `json:"proteins"`
	Carbs      float64 `json:"carbs"`
	Fats       float64 `json:"fats"`
	Confidence string  `json:"confidence"`
}

// Result is always well formed: either a model Estimate or one of the sentinels.
type Result struct {
	Estimate Estimate
	Outcome  Outcome
}

var (
	// DisabledEstimate is returned when analysis is not configured.
	DisabledEstimate = Estimate{FoodName: "feature disabled", Calories: 200, Proteins: 5, Carbs: 30, Fats: 8, Confidence: ConfidenceLow}
	// FailedEstimate is returned when analysis was attempted and failed.
	FailedEstimate = Estimate{FoodName: "analysis failed", Confidence: ConfidenceLow}
)

// Confidence tiers.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Analyzer converts a food photo into an Estimate. Implementations never
// return an error; failures surface as Result.Outcome.
type Analyzer interface {
	Analyze(ctx context.Context, image []byte, mimeType string) Result
}

var (
	leadingNumber = regexp.MustCompile(`^[-+]?(\d+([.,]\d*)?|[.,]\d+)`)
	// groupedNumber matches thousands separators such as "1,200" or "12,500.5".
	groupedNumber = regexp.MustCompile(`^[-+]?\d{1,3}(,\d{3})+(\D|$)`)
)

// quantity accepts a JSON number or a string such as "180 kcal" or "12.5g".
type quantity struct {
	value float64
}

func (q *quantity) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		q.value = n
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("quantity must be a number or string: %s", data)
	}
	v, err := parseLeadingNumber(s)
	if err != nil {
		return err
	}
	q.value = v
	return nil
}

// parseLeadingNumber strips any trailing unit and parses the number in front.
// A single comma is a decimal mark; comma-grouped thousands are rejected.
func parseLeadingNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if groupedNumber.MatchString(s) {
		return 0, fmt.Errorf("ambiguous thousands separator in %q", s)
	}
	match := leadingNumber.FindString(s)
	if match == "" {
		return 0, fmt.Errorf("no number in %q", s)
	}
	return strconv.ParseFloat(strings.Replace(match, ",", ".", 1), 64)
}

type modelReply struct {
	FoodName   *string   `json:"food_name"`
	Calories   *quantity `json:"calories"`
	Proteins   *quantity `json:"proteins"`
	Carbs      *quantity `json:"carbs"`
	Fats       *quantity `json:"fats"`
	Confidence *string   `json:"confidence"`
}

// parseEstimate decodes the model's JSON text. Every field is required.
func parseEstimate(text string) (Estimate, error) {
	var reply modelReply
	if err := json.Unmarshal([]byte(cleanModelText(text)), &reply); err != nil {
		return Estimate{}, fmt.Errorf("decode model reply: %w", err)
	}

	switch {
	case reply.FoodName == nil:
		return Estimate{}, fmt.Errorf("model reply missing food_name")
	case reply.Calories == nil:
		return Estimate{}, fmt.Errorf("model reply missing calories")
	case reply.Proteins == nil:
		return Estimate{}, fmt.Errorf("model reply missing proteins")
	case reply.Carbs == nil:
		return Estimate{}, fmt.Errorf("model reply missing carbs")
	case reply.Fats == nil:
		return Estimate{}, fmt.Errorf("model reply missing fats")
	case reply.Confidence == nil:
		return Estimate{}, fmt.Errorf("model reply missing confidence")
	}

	return Estimate{
		FoodName:   strings.TrimSpace(*reply.FoodName),
		Calories:   reply.Calories.value,
		Proteins:   reply.Proteins.value,
		Carbs:      reply.Carbs.value,
		Fats:       reply.Fats.value,
		Confidence: normalizeConfidence(*reply.Confidence),
	}, nil
}

func normalizeConfidence(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "alta":
		return ConfidenceHigh
	case "medium", "moderate", "média", "media":
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// cleanModelText strips markdown fences and anything outside the outermost braces.
func cleanModelText(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		text = text[start : end+1]
	}
	return text
}
