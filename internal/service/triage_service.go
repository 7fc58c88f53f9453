package service

import (
	"context"
	"encoding/json"
	"fmt"

	"easymed-backend/internal/ai"
	"easymed-backend/internal/models"
	"easymed-backend/internal/repository"
)

// TriageService runs symptom analysis through the AI adapter and
// persists the consultation. Because the adapter never returns an
// error, an upstream outage still produces a stored, schema-valid
// consultation carrying the fallback analysis.
type TriageService struct {
	store    repository.Store
	analyzer ai.Analyzer
}

func NewTriageService(store repository.Store, analyzer ai.Analyzer) *TriageService {
	return &TriageService{store: store, analyzer: analyzer}
}

// TriageInput is the validated symptom-checker submission.
type TriageInput struct {
	PatientID      *uint
	Symptoms       []string
	Duration       string
	Severity       string
	RiskFactors    []string
	AdditionalInfo string
	Language       string
}

// TriageResult pairs the stored consultation with the analysis that
// produced it.
type TriageResult struct {
	Consultation *models.AiConsultation `json:"consultation"`
	Analysis     ai.AnalysisResult      `json:"analysis"`
}

// Analyze runs one triage pass and records it. A non-English language
// tag selects the multilingual prompt variant.
func (s *TriageService) Analyze(ctx context.Context, input TriageInput) (*TriageResult, error) {
	if len(input.Symptoms) == 0 {
		return nil, validationErrorf("at least one symptom is required")
	}
	if input.PatientID != nil {
		if _, err := s.store.GetPatient(*input.PatientID); err != nil {
			return nil, err
		}
	}

	var analysis ai.AnalysisResult
	if input.Language != "" && input.Language != "english" {
		analysis = s.analyzer.AnalyzeMultilingualSymptoms(ctx, input.Symptoms, input.Language)
	} else {
		analysis = s.analyzer.AnalyzeSymptoms(ctx, ai.SymptomInput{
			Symptoms:       input.Symptoms,
			Duration:       input.Duration,
			Severity:       input.Severity,
			RiskFactors:    input.RiskFactors,
			AdditionalInfo: input.AdditionalInfo,
		})
	}

	consultation, err := s.record(input, analysis)
	if err != nil {
		return nil, err
	}

	return &TriageResult{Consultation: consultation, Analysis: analysis}, nil
}

func (s *TriageService) record(input TriageInput, analysis ai.AnalysisResult) (*models.AiConsultation, error) {
	symptoms, err := json.Marshal(input.Symptoms)
	if err != nil {
		return nil, fmt.Errorf("failed to encode symptoms: %w", err)
	}
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis: %w", err)
	}
	actions, err := json.Marshal(analysis.RecommendedActions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recommended actions: %w", err)
	}

	consultation := &models.AiConsultation{
		PatientID:          input.PatientID,
		Symptoms:           symptoms,
		AiAnalysis:         analysisJSON,
		ConfidenceScore:    analysis.ConfidenceScore,
		RecommendedActions: actions,
		Status:             models.ConsultationPending,
	}
	if len(input.RiskFactors) > 0 {
		riskFactors, err := json.Marshal(input.RiskFactors)
		if err != nil {
			return nil, fmt.Errorf("failed to encode risk factors: %w", err)
		}
		consultation.RiskFactors = riskFactors
	}

	if err := s.store.CreateAiConsultation(consultation); err != nil {
		return nil, fmt.Errorf("failed to store consultation: %w", err)
	}

	_ = s.store.CreateAuditLog(nil, "ai_consultation", fmt.Sprintf("Consultation %d recorded (severity %s)", consultation.ID, analysis.Severity))

	return consultation, nil
}

func (s *TriageService) GetConsultation(id uint) (*models.AiConsultation, error) {
	return s.store.GetAiConsultation(id)
}

func (s *TriageService) ListByPatient(patientID uint) ([]models.AiConsultation, error) {
	return s.store.ListAiConsultationsByPatient(patientID)
}

// Review records a doctor's review of a pending consultation.
func (s *TriageService) Review(id uint, review string, status models.ConsultationStatus) (*models.AiConsultation, error) {
	if !status.Valid() {
		return nil, validationErrorf(fmt.Sprintf("invalid consultation status %q", status))
	}

	consultation, err := s.store.GetAiConsultation(id)
	if err != nil {
		return nil, err
	}

	consultation.DoctorReview = review
	consultation.Status = status
	if err := s.store.UpdateAiConsultation(consultation); err != nil {
		return nil, fmt.Errorf("failed to update consultation: %w", err)
	}
	return consultation, nil
}

// Insights returns wellness insights for a symptom list, falling back
// to the adapter's fixed list on upstream failure.
func (s *TriageService) Insights(ctx context.Context, symptoms []string, patientHistory string) ([]string, error) {
	if len(symptoms) == 0 {
		return nil, validationErrorf("at least one symptom is required")
	}
	return s.analyzer.HealthInsights(ctx, symptoms, patientHistory), nil
}
