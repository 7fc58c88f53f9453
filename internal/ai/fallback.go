package ai

// fallbackResult is the deterministic, conservative answer served when
// the upstream analysis cannot be obtained or parsed. It never carries
// Urgent (failure must not manufacture false urgency) but always
// refers the patient to in-person care, so a failure is never
// indistinguishable from a confident negative diagnosis.
func fallbackResult() AnalysisResult {
	return AnalysisResult{
		PossibleConditions: []Condition{
			{Condition: "Analysis Service Temporarily Unavailable", Probability: 1.0},
		},
		Severity:        SeverityMedium,
		Urgency:         UrgencySoon,
		ConfidenceScore: 0.3,
		RecommendedActions: []string{
			"Visit your nearest Primary Health Centre (PHC) or Community Health Centre (CHC)",
			"Consult with a local doctor or healthcare provider",
			"Call 108 for emergency medical assistance if symptoms worsen",
			"Monitor symptoms and seek immediate medical attention if condition deteriorates",
		},
		DisclaimerNote: "AI analysis service is currently unavailable. Please consult with a healthcare professional immediately for proper medical evaluation. In case of emergency, call 108.",
	}
}

// fallbackInsights is the fixed wellness list used when insight
// generation fails.
func fallbackInsights() []string {
	return []string{
		"Maintain regular sleep patterns and stay hydrated, especially during hot weather.",
		"Include immunity-boosting foods like tulsi, ginger, and turmeric in your diet.",
		"Schedule regular health check-ups at your nearest government health center or private clinic.",
	}
}

const defaultDisclaimer = "This is a preliminary AI analysis. Please consult with a qualified healthcare professional for proper medical evaluation."
