package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL  = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultMimeType = "image/jpeg"
	maxReplyBytes   = 1 << 20
)

const analysisPrompt = `You are a nutrition expert. Identify the food in the image and estimate its macronutrients for one portion.
Reply ONLY with valid JSON using exactly these fields:
{
  "food_name": "name of the food",
  "calories": "number (kcal)",
  "proteins": "number (g)",
  "carbs": "number (g)",
  "fats": "number (g)",
  "confidence": "high/medium/low"
}`

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GeminiAnalyzer asks a Gemini vision model for a nutrition Estimate.
type GeminiAnalyzer struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// Option customizes a GeminiAnalyzer.
type Option func(*GeminiAnalyzer)

// WithBaseURL points the analyzer at a different models endpoint.
func WithBaseURL(u string) Option {
	return func(a *GeminiAnalyzer) { a.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(a *GeminiAnalyzer) { a.client = c }
}

// NewGeminiAnalyzer creates an analyzer. An empty apiKey yields an analyzer
// that always returns DisabledEstimate.
func NewGeminiAnalyzer(apiKey, model string, timeout time.Duration, opts ...Option) *GeminiAnalyzer {
	a := &GeminiAnalyzer{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var _ Analyzer = (*GeminiAnalyzer)(nil)

// Analyze never fails: missing credentials and any error degrade to sentinels.
func (a *GeminiAnalyzer) Analyze(ctx context.Context, image []byte, mimeType string) Result {
	if a.apiKey == "" {
		return Result{Estimate: DisabledEstimate, Outcome: OutcomeDisabled}
	}

	est, err := a.estimate(ctx, image, mimeType)
	if err != nil {
		log.Printf("vision: food analysis failed: %v", err)
		return Result{Estimate: FailedEstimate, Outcome: OutcomeFailed}
	}
	return Result{Estimate: est, Outcome: OutcomeEstimated}
}

func (a *GeminiAnalyzer) estimate(ctx context.Context, image []byte, mimeType string) (Estimate, error) {
	if len(image) == 0 {
		return Estimate{}, fmt.Errorf("empty image")
	}
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = defaultMimeType
	}

	text, err := a.generate(ctx, geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: analysisPrompt},
				{InlineData: &inlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
			},
		}},
		GenerationConfig: generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return Estimate{}, err
	}
	return parseEstimate(text)
}

func (a *GeminiAnalyzer) generate(ctx context.Context, body geminiRequest) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", a.baseURL, a.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call model: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model returned status %d: %s", resp.StatusCode, bytes.TrimSpace(raw))
	}

	var decoded geminiResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	var text strings.Builder
	for _, part := range decoded.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("empty candidate text")
	}
	return text.String(), nil
}
