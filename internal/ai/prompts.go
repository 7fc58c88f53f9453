package ai

import (
	"fmt"
	"strings"
)

const analysisFormat = `Respond with JSON in this format:
{
  "possibleConditions": [{"condition": "condition name", "probability": 0.0-1.0}],
  "severity": "Low|Medium|High",
  "urgency": "Non-urgent|Soon|Urgent",
  "confidenceScore": 0.0-1.0,
  "recommendedActions": ["action1", "action2"],
  "disclaimerNote": "brief medical disclaimer"
}`

func buildAnalysisPrompt(input SymptomInput) string {
	riskFactors := "None reported"
	if len(input.RiskFactors) > 0 {
		riskFactors = strings.Join(input.RiskFactors, ", ")
	}
	additional := input.AdditionalInfo
	if additional == "" {
		additional = "None provided"
	}

	return fmt.Sprintf(`You are a medical AI assistant providing preliminary symptom analysis for healthcare professionals in India. Analyze the following patient information and provide a structured medical assessment. Consider Indian healthcare context and common conditions in India.

Patient Information:
- Symptoms: %s
- Duration: %s
- Severity Level: %s
- Risk Factors: %s
- Additional Information: %s

%s

Guidelines:
- List 3-5 most likely conditions based on symptoms, considering common Indian health conditions
- Assign realistic probability scores
- Include recommendations for consulting local healthcare providers or 108 emergency services if urgent
- Always include an appropriate medical disclaimer`,
		strings.Join(input.Symptoms, ", "),
		input.Duration,
		input.Severity,
		riskFactors,
		additional,
		analysisFormat,
	)
}

// Per-language advisory lines appended to the multilingual analysis
// prompt so recommendations come back in the patient's language.
var languagePrompts = map[string]string{
	"hindi":   "कृपया हिंदी में चिकित्सा सलाह प्रदान करें। भारतीय स्वास्थ्य सेवा प्रणाली के संदर्भ में सुझाव दें।",
	"tamil":   "தயவுசெய்து தமிழில் மருத்துவ ஆலோசனை வழங்கவும். இந்திய சுகாதார அமைப்பின் சூழலில் பரிந்துரைகளை வழங்கவும்.",
	"telugu":  "దయచేసి తెలుగులో వైద్య సలహా అందించండి. భారతీయ ఆరోగ్య సేవా వ్యవస్థ సందర్భంలో సిఫార్సులు అందించండి.",
	"english": "Please provide medical advice in English, considering the Indian healthcare system context.",
}

func buildMultilingualPrompt(symptoms []string, language string) string {
	advisory, ok := languagePrompts[language]
	if !ok {
		advisory = languagePrompts["english"]
	}

	return fmt.Sprintf(`You are a medical AI assistant for Indian patients. Analyze these symptoms: %s

%s

Provide analysis considering common Indian health conditions, seasonal factors, and healthcare accessibility.

%s`,
		strings.Join(symptoms, ", "),
		advisory,
		analysisFormat,
	)
}

func buildInsightsPrompt(symptoms []string, patientHistory string) string {
	if patientHistory == "" {
		patientHistory = "Not provided"
	}

	return fmt.Sprintf(`As a healthcare AI assistant for Indian patients, provide 3-4 brief health insights and wellness recommendations based on these symptoms: %s

Patient history: %s

Consider Indian healthcare context, common conditions, seasonal factors, preventive care, and when to seek medical help. Keep each insight to 1-2 sentences.

Return the insights as a JSON array of strings.`,
		strings.Join(symptoms, ", "),
		patientHistory,
	)
}
