package service

import (
	"context"
	"encoding/json"
	"testing"

	"easymed-backend/internal/ai"
	"easymed-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAnalyzer returns a canned result and records which variant was
// called.
type stubAnalyzer struct {
	result           ai.AnalysisResult
	multilingualUsed bool
	language         string
}

func (s *stubAnalyzer) AnalyzeSymptoms(ctx context.Context, input ai.SymptomInput) ai.AnalysisResult {
	return s.result
}

func (s *stubAnalyzer) AnalyzeMultilingualSymptoms(ctx context.Context, symptoms []string, language string) ai.AnalysisResult {
	s.multilingualUsed = true
	s.language = language
	return s.result
}

func (s *stubAnalyzer) HealthInsights(ctx context.Context, symptoms []string, patientHistory string) []string {
	return []string{"Stay hydrated.", "Rest well."}
}

func cannedResult() ai.AnalysisResult {
	return ai.AnalysisResult{
		PossibleConditions: []ai.Condition{{Condition: "Viral fever", Probability: 0.6}},
		Severity:           ai.SeverityLow,
		Urgency:            ai.UrgencyNonUrgent,
		ConfidenceScore:    0.75,
		RecommendedActions: []string{"Rest and fluids"},
		DisclaimerNote:     "Preliminary only.",
	}
}

func TestAnalyzeStoresConsultation(t *testing.T) {
	fx := newFixture(t)
	analyzer := &stubAnalyzer{result: cannedResult()}
	svc := NewTriageService(fx.store, analyzer)

	result, err := svc.Analyze(context.Background(), TriageInput{
		PatientID: &fx.patient.ID,
		Symptoms:  []string{"fever", "fatigue"},
		Duration:  "2 days",
	})
	require.NoError(t, err)

	assert.Equal(t, 0.75, result.Consultation.ConfidenceScore)
	assert.Equal(t, models.ConsultationPending, result.Consultation.Status)

	var storedAnalysis ai.AnalysisResult
	require.NoError(t, json.Unmarshal(result.Consultation.AiAnalysis, &storedAnalysis))
	assert.Equal(t, ai.SeverityLow, storedAnalysis.Severity)

	var storedSymptoms []string
	require.NoError(t, json.Unmarshal(result.Consultation.Symptoms, &storedSymptoms))
	assert.Equal(t, []string{"fever", "fatigue"}, storedSymptoms)

	listed, err := svc.ListByPatient(fx.patient.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestAnalyzeRequiresSymptoms(t *testing.T) {
	fx := newFixture(t)
	svc := NewTriageService(fx.store, &stubAnalyzer{result: cannedResult()})

	_, err := svc.Analyze(context.Background(), TriageInput{PatientID: &fx.patient.ID})
	assert.True(t, IsValidation(err))
}

func TestAnalyzeSelectsMultilingualVariant(t *testing.T) {
	fx := newFixture(t)
	analyzer := &stubAnalyzer{result: cannedResult()}
	svc := NewTriageService(fx.store, analyzer)

	_, err := svc.Analyze(context.Background(), TriageInput{
		Symptoms: []string{"बुखार"},
		Language: "hindi",
	})
	require.NoError(t, err)
	assert.True(t, analyzer.multilingualUsed)
	assert.Equal(t, "hindi", analyzer.language)
}

func TestAnalyzeAnonymousConsultationIsAllowed(t *testing.T) {
	fx := newFixture(t)
	svc := NewTriageService(fx.store, &stubAnalyzer{result: cannedResult()})

	result, err := svc.Analyze(context.Background(), TriageInput{Symptoms: []string{"cough"}})
	require.NoError(t, err)
	assert.Nil(t, result.Consultation.PatientID)
}

func TestReviewConsultation(t *testing.T) {
	fx := newFixture(t)
	svc := NewTriageService(fx.store, &stubAnalyzer{result: cannedResult()})

	result, err := svc.Analyze(context.Background(), TriageInput{
		PatientID: &fx.patient.ID,
		Symptoms:  []string{"fever"},
	})
	require.NoError(t, err)

	reviewed, err := svc.Review(result.Consultation.ID, "Looks like a mild viral infection.", models.ConsultationReviewed)
	require.NoError(t, err)
	assert.Equal(t, models.ConsultationReviewed, reviewed.Status)
	assert.NotEmpty(t, reviewed.DoctorReview)
}
