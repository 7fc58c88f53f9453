package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"easymed-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiServer(t *testing.T, responseText string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "generateContent")

		body := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": responseText}}}},
			},
		}
		_ = json.NewEncoder(w).Encode(body)
	}))
}

func TestAnalyzeSymptomsParsesGeminiResponse(t *testing.T) {
	responseText := "Here is the assessment:\n```json\n" + `{
		"possibleConditions": [
			{"condition": "Dengue fever", "probability": 0.55},
			{"condition": "Seasonal flu", "probability": 0.3}
		],
		"severity": "High",
		"urgency": "Urgent",
		"confidenceScore": 0.8,
		"recommendedActions": ["Get a blood test", "Visit a doctor today"],
		"disclaimerNote": "Preliminary analysis only."
	}` + "\n```"

	server := geminiServer(t, responseText)
	defer server.Close()

	client := NewClient(config.AIConfig{GeminiAPIKey: "test-key", GeminiBaseURL: server.URL})
	result := client.AnalyzeSymptoms(context.Background(), SymptomInput{
		Symptoms: []string{"high fever", "joint pain"},
		Duration: "3 days",
		Severity: "severe",
	})

	require.Len(t, result.PossibleConditions, 2)
	assert.Equal(t, "Dengue fever", result.PossibleConditions[0].Condition)
	assert.Equal(t, SeverityHigh, result.Severity)
	assert.Equal(t, UrgencyUrgent, result.Urgency)
	assert.InDelta(t, 0.8, result.ConfidenceScore, 0.001)
	assert.NotEmpty(t, result.RecommendedActions)
	assert.NotEmpty(t, result.DisclaimerNote)
}

func TestAnalyzeSymptomsFallsBackOnUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(config.AIConfig{GeminiAPIKey: "test-key", GeminiBaseURL: server.URL})
	result := client.AnalyzeSymptoms(context.Background(), SymptomInput{Symptoms: []string{"headache"}})

	assert.Equal(t, SeverityMedium, result.Severity)
	assert.Equal(t, UrgencySoon, result.Urgency)
	assert.InDelta(t, 0.3, result.ConfidenceScore, 0.001)
	assert.NotEmpty(t, result.RecommendedActions)
	assert.Contains(t, strings.Join(result.RecommendedActions, " "), "108")
	assert.NotEmpty(t, result.DisclaimerNote)
}

func TestAnalyzeSymptomsFallsBackOnGarbageResponse(t *testing.T) {
	server := geminiServer(t, "I cannot help with that.")
	defer server.Close()

	client := NewClient(config.AIConfig{GeminiAPIKey: "test-key", GeminiBaseURL: server.URL})
	result := client.AnalyzeSymptoms(context.Background(), SymptomInput{Symptoms: []string{"cough"}})

	assert.Equal(t, SeverityMedium, result.Severity)
	assert.Equal(t, UrgencySoon, result.Urgency)
}

func TestAnalyzeSymptomsWithoutProviderKeys(t *testing.T) {
	client := NewClient(config.AIConfig{})
	result := client.AnalyzeSymptoms(context.Background(), SymptomInput{Symptoms: []string{"fever"}})

	assert.Equal(t, SeverityMedium, result.Severity)
	assert.Equal(t, UrgencySoon, result.Urgency)
	assert.NotEmpty(t, result.RecommendedActions)
	assert.NotEmpty(t, result.DisclaimerNote)
}

func TestAnalyzeUsesOpenAIWhenOnlyThatKeyIsSet(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": `{"possibleConditions":[{"condition":"Migraine","probability":0.7}],"severity":"Low","urgency":"Non-urgent","confidenceScore":0.6,"recommendedActions":["Rest"],"disclaimerNote":"See a doctor if it persists."}`}},
			},
		}
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer server.Close()

	client := NewClient(config.AIConfig{OpenAIAPIKey: "sk-test", OpenAIBaseURL: server.URL})
	result := client.AnalyzeSymptoms(context.Background(), SymptomInput{Symptoms: []string{"headache"}})

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, SeverityLow, result.Severity)
	require.Len(t, result.PossibleConditions, 1)
	assert.Equal(t, "Migraine", result.PossibleConditions[0].Condition)
}

func TestSanitizeBoundsUpstreamValues(t *testing.T) {
	result := sanitize(AnalysisResult{
		PossibleConditions: []Condition{{Condition: "X", Probability: 1.7}, {Condition: "Y", Probability: -0.2}},
		Severity:           "Catastrophic",
		Urgency:            "Immediately",
		ConfidenceScore:    2.5,
	})

	assert.InDelta(t, 1.0, result.PossibleConditions[0].Probability, 0.001)
	assert.InDelta(t, 0.0, result.PossibleConditions[1].Probability, 0.001)
	assert.Equal(t, SeverityMedium, result.Severity)
	assert.Equal(t, UrgencySoon, result.Urgency)
	assert.InDelta(t, 1.0, result.ConfidenceScore, 0.001)
	assert.NotEmpty(t, result.RecommendedActions)
	assert.NotEmpty(t, result.DisclaimerNote)
}

func TestExtractJSONObject(t *testing.T) {
	payload, err := extractJSONObject("prefix {\"a\": {\"b\": 1}} suffix")
	require.NoError(t, err)
	assert.Equal(t, `{"a": {"b": 1}}`, payload)

	_, err = extractJSONObject("no braces here")
	assert.Error(t, err)
}

func TestHealthInsightsParsesJSONArray(t *testing.T) {
	server := geminiServer(t, `["Drink plenty of water.", "Sleep at least seven hours.", "Add tulsi to your diet."]`)
	defer server.Close()

	client := NewClient(config.AIConfig{GeminiAPIKey: "test-key", GeminiBaseURL: server.URL})
	insights := client.HealthInsights(context.Background(), []string{"fatigue"}, "")

	require.Len(t, insights, 3)
	assert.Equal(t, "Drink plenty of water.", insights[0])
}

func TestHealthInsightsFallsBackOnFailure(t *testing.T) {
	client := NewClient(config.AIConfig{})
	insights := client.HealthInsights(context.Background(), []string{"fatigue"}, "")

	require.NotEmpty(t, insights)
	assert.LessOrEqual(t, len(insights), 4)
}
