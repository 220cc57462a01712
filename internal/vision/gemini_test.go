package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiReply(t *testing.T, text string) []byte {
	t.Helper()
	body := map[string]interface{}{
		"candidates": []interface{}{
			map[string]interface{}{
				"content": map[string]interface{}{
					"parts": []interface{}{map[string]interface{}{"text": text}},
				},
			},
		},
	}
	out, err := json.Marshal(body)
	require.NoError(t, err)
	return out
}

func newTestAnalyzer(srv *httptest.Server) *GeminiAnalyzer {
	return NewGeminiAnalyzer("test-key", "gemini-test", 2*time.Second, WithBaseURL(srv.URL))
}

func TestGeminiAnalyzer_Disabled(t *testing.T) {
	a := NewGeminiAnalyzer("", "gemini-test", time.Second)

	res := a.Analyze(context.Background(), []byte("img"), "image/png")
	assert.Equal(t, OutcomeDisabled, res.Outcome)
	assert.Equal(t, DisabledEstimate, res.Estimate)
}

func TestGeminiAnalyzer_Success(t *testing.T) {
	var captured geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(geminiReply(t, `{"food_name":"apple","calories":"95 kcal","proteins":"0.5g","carbs":25,"fats":0.3,"confidence":"high"}`))
	}))
	defer srv.Close()

	res := newTestAnalyzer(srv).Analyze(context.Background(), []byte{0xff, 0xd8}, "application/octet-stream")

	require.Equal(t, OutcomeEstimated, res.Outcome)
	assert.Equal(t, Estimate{FoodName: "apple", Calories: 95, Proteins: 0.5, Carbs: 25, Fats: 0.3, Confidence: ConfidenceHigh}, res.Estimate)

	require.Len(t, captured.Contents, 1)
	require.Len(t, captured.Contents[0].Parts, 2)
	assert.Equal(t, "image/jpeg", captured.Contents[0].Parts[1].InlineData.MimeType)
	assert.Equal(t, "/9g=", captured.Contents[0].Parts[1].InlineData.Data)
}

func TestGeminiAnalyzer_FailuresFallBack(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusInternalServerError)
		}},
		{"garbage body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}},
		{"no candidates", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		}},
		{"grouped thousands", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(geminiReply(t, `{"food_name":"pizza","calories":"1,200 kcal","proteins":40,"carbs":120,"fats":50,"confidence":"high"}`))
		}},
		{"missing field", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(geminiReply(t, `{"food_name":"apple","calories":95}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			res := newTestAnalyzer(srv).Analyze(context.Background(), []byte("img"), "image/png")
			assert.Equal(t, OutcomeFailed, res.Outcome)
			assert.Equal(t, FailedEstimate, res.Estimate)
		})
	}
}

func TestGeminiAnalyzer_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	a := NewGeminiAnalyzer("test-key", "gemini-test", 50*time.Millisecond, WithBaseURL(srv.URL))
	res := a.Analyze(context.Background(), []byte("img"), "image/png")
	assert.Equal(t, OutcomeFailed, res.Outcome)
}

func TestGeminiAnalyzer_EmptyImage(t *testing.T) {
	a := NewGeminiAnalyzer("test-key", "gemini-test", time.Second, WithBaseURL("http://127.0.0.1:0"))
	res := a.Analyze(context.Background(), nil, "image/png")
	assert.Equal(t, OutcomeFailed, res.Outcome)
}
