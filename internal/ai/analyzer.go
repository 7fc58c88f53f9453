package ai

import "context"

// Severity and urgency are closed sets; anything else coming back from
// an upstream model is coerced before it leaves this package.
const (
	SeverityLow    = "Low"
	SeverityMedium = "Medium"
	SeverityHigh   = "High"

	UrgencyNonUrgent = "Non-urgent"
	UrgencySoon      = "Soon"
	UrgencyUrgent    = "Urgent"
)

// SymptomInput is one structured symptom-intake form.
type SymptomInput struct {
	Symptoms       []string `json:"symptoms"`
	Duration       string   `json:"duration"`
	Severity       string   `json:"severity"`
	RiskFactors    []string `json:"riskFactors,omitempty"`
	AdditionalInfo string   `json:"additionalInfo,omitempty"`
}

// Condition is one candidate diagnosis with its probability in [0,1].
type Condition struct {
	Condition   string  `json:"condition"`
	Probability float64 `json:"probability"`
}

// AnalysisResult is always fully populated, on the success path and on
// every failure path alike.
type AnalysisResult struct {
	PossibleConditions []Condition `json:"possibleConditions"`
	Severity           string      `json:"severity"`
	Urgency            string      `json:"urgency"`
	ConfidenceScore    float64     `json:"confidenceScore"`
	RecommendedActions []string    `json:"recommendedActions"`
	DisclaimerNote     string      `json:"disclaimerNote"`
}

// Analyzer turns symptom intake into a bounded triage suggestion. No
// method returns an error: availability of a safe answer takes
// priority over correctness of the AI answer, so every upstream
// failure becomes the deterministic fallback rather than an exception
// or a confident negative diagnosis.
type Analyzer interface {
	AnalyzeSymptoms(ctx context.Context, input SymptomInput) AnalysisResult
	AnalyzeMultilingualSymptoms(ctx context.Context, symptoms []string, language string) AnalysisResult
	HealthInsights(ctx context.Context, symptoms []string, patientHistory string) []string
}
