package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"easymed-backend/internal/config"

	"github.com/rs/zerolog/log"
)

// ErrNoProvider is returned internally when neither provider key is
// configured; callers of the Analyzer never see it, they see the
// fallback payload.
var ErrNoProvider = errors.New("no language-model provider configured")

// Client calls the configured language-model provider over HTTPS.
// Gemini is preferred; OpenAI is used when only its key is present.
// Exactly one upstream call is made per operation, with no retry: a
// slow or failed call degrades that single request to the fallback.
type Client struct {
	cfg        config.AIConfig
	httpClient *http.Client
}

func NewClient(cfg config.AIConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// AnalyzeSymptoms implements Analyzer. Any upstream or parse failure
// yields the deterministic fallback, never an error.
func (c *Client) AnalyzeSymptoms(ctx context.Context, input SymptomInput) AnalysisResult {
	return c.analyze(ctx, buildAnalysisPrompt(input))
}

// AnalyzeMultilingualSymptoms implements Analyzer for the per-language
// variant of the triage prompt.
func (c *Client) AnalyzeMultilingualSymptoms(ctx context.Context, symptoms []string, language string) AnalysisResult {
	return c.analyze(ctx, buildMultilingualPrompt(symptoms, language))
}

func (c *Client) analyze(ctx context.Context, prompt string) AnalysisResult {
	responseText, err := c.generate(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Msg("symptom analysis upstream call failed, serving fallback")
		return fallbackResult()
	}

	payload, err := extractJSONObject(responseText)
	if err != nil {
		log.Warn().Err(err).Msg("no JSON object in analysis response, serving fallback")
		return fallbackResult()
	}

	var result AnalysisResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		log.Warn().Err(err).Msg("unparseable analysis response, serving fallback")
		return fallbackResult()
	}

	return sanitize(result)
}

// HealthInsights implements Analyzer. Returns 3-4 short wellness
// insights, or the fixed fallback list when generation fails.
func (c *Client) HealthInsights(ctx context.Context, symptoms []string, patientHistory string) []string {
	responseText, err := c.generate(ctx, buildInsightsPrompt(symptoms, patientHistory))
	if err != nil {
		log.Warn().Err(err).Msg("health insights upstream call failed, serving fallback")
		return fallbackInsights()
	}

	if payload, err := extractJSONArray(responseText); err == nil {
		var insights []string
		if err := json.Unmarshal([]byte(payload), &insights); err == nil && len(insights) > 0 {
			return capInsights(insights)
		}
	}

	// Not JSON: salvage the longest lines of the free-text response.
	insights := []string{}
	for _, line := range strings.Split(responseText, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "0123456789.-) "))
		if len(line) > 10 {
			insights = append(insights, line)
		}
	}
	if len(insights) == 0 {
		return fallbackInsights()
	}
	return capInsights(insights)
}

func capInsights(insights []string) []string {
	if len(insights) > 4 {
		return insights[:4]
	}
	return insights
}

// generate performs the single upstream text-generation call.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	switch {
	case c.cfg.GeminiAPIKey != "":
		return c.generateGemini(ctx, prompt)
	case c.cfg.OpenAIAPIKey != "":
		return c.generateOpenAI(ctx, prompt)
	default:
		return "", ErrNoProvider
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generateGemini(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/v1beta/models/gemini-2.5-flash:generateContent?key=%s",
		c.cfg.GeminiBaseURL, c.cfg.GeminiAPIKey)

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	raw, err := c.post(ctx, url, nil, body)
	if err != nil {
		return "", err
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini response: no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) generateOpenAI(ctx context.Context, prompt string) (string, error) {
	url := c.cfg.OpenAIBaseURL + "/v1/chat/completions"

	body, err := json.Marshal(openAIRequest{
		Model: "gpt-4o",
		Messages: []openAIMessage{
			{Role: "system", Content: "You are a medical AI assistant providing preliminary symptom analysis. Always respond with valid JSON in the exact format requested. Be conservative with urgency assessments and always recommend professional medical consultation for serious symptoms."},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", err
	}

	headers := map[string]string{"Authorization": "Bearer " + c.cfg.OpenAIAPIKey}
	raw, err := c.post(ctx, url, headers, body)
	if err != nil {
		return "", err
	}

	var parsed openAIResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("openai response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("openai response: no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

func (c *Client) post(ctx context.Context, url string, headers map[string]string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// extractJSONObject locates the outermost {...} span in free text.
func extractJSONObject(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", errors.New("no JSON object found")
	}
	return s[start : end+1], nil
}

// extractJSONArray locates the outermost [...] span in free text.
func extractJSONArray(s string) (string, error) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end <= start {
		return "", errors.New("no JSON array found")
	}
	return s[start : end+1], nil
}

// sanitize bounds every field of an upstream result so the output
// contract holds regardless of what the model produced.
func sanitize(result AnalysisResult) AnalysisResult {
	if len(result.PossibleConditions) == 0 {
		result.PossibleConditions = []Condition{
			{Condition: "Common viral infection", Probability: 0.6},
			{Condition: "Seasonal flu", Probability: 0.3},
		}
	}
	for i := range result.PossibleConditions {
		result.PossibleConditions[i].Probability = clamp01(result.PossibleConditions[i].Probability)
	}

	switch result.Severity {
	case SeverityLow, SeverityMedium, SeverityHigh:
	default:
		result.Severity = SeverityMedium
	}

	switch result.Urgency {
	case UrgencyNonUrgent, UrgencySoon, UrgencyUrgent:
	default:
		result.Urgency = UrgencySoon
	}

	result.ConfidenceScore = clamp01(result.ConfidenceScore)

	if len(result.RecommendedActions) == 0 {
		result.RecommendedActions = []string{"Consult with a healthcare professional"}
	}
	if result.DisclaimerNote == "" {
		result.DisclaimerNote = defaultDisclaimer
	}

	return result
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
