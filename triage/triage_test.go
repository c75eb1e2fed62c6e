package triage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carefinder/carefinder-api/schema"
	"github.com/carefinder/carefinder-api/triage"
)

func TestEvaluateEmptyReport(t *testing.T) {
	result := triage.Evaluate(schema.SymptomReport{})

	assert.Equal(t, schema.ConcernLow, result.ConcernLevel, "wrong concern level")
	assert.Equal(t, []string{triage.PrimaryCare}, result.RecommendedDepartments, "wrong departments")
	assert.Equal(t, triage.Suggestions, result.Suggestions, "wrong suggestions")
}

func TestEvaluateRedFlag(t *testing.T) {
	result := triage.Evaluate(schema.SymptomReport{
		Symptoms: []string{"chest pain"},
	})

	assert.Equal(t, schema.ConcernHigh, result.ConcernLevel, "wrong concern level")
	assert.Equal(t, []string{triage.Emergency, triage.Cardiology}, result.RecommendedDepartments, "wrong departments")
}

func TestEvaluateRedFlagOverridesSeverity(t *testing.T) {
	for symptom := range triage.RedFlagSymptoms {
		result := triage.Evaluate(schema.SymptomReport{
			Symptoms: []string{symptom},
			Severity: "mild",
			Duration: "day",
		})
		assert.Equal(t, schema.ConcernHigh, result.ConcernLevel, "wrong concern level for "+symptom)
	}
}

func TestEvaluateRedFlagCaseInsensitive(t *testing.T) {
	result := triage.Evaluate(schema.SymptomReport{
		Symptoms: []string{"Difficulty Breathing"},
	})

	assert.Equal(t, schema.ConcernHigh, result.ConcernLevel, "wrong concern level")
}

func TestEvaluateSevereSeverity(t *testing.T) {
	result := triage.Evaluate(schema.SymptomReport{
		Symptoms: []string{"fatigue"},
		Severity: "severe",
	})

	assert.Equal(t, schema.ConcernHigh, result.ConcernLevel, "wrong concern level")
	assert.Equal(t, []string{triage.Emergency}, result.RecommendedDepartments, "wrong departments")
}

func TestEvaluateModerateSeverity(t *testing.T) {
	result := triage.Evaluate(schema.SymptomReport{
		Symptoms: []string{"fatigue"},
		Severity: "moderate",
	})

	assert.Equal(t, schema.ConcernModerate, result.ConcernLevel, "wrong concern level")
	assert.Equal(t, []string{triage.GeneralMedicine}, result.RecommendedDepartments, "wrong departments")
}

func TestEvaluateChronicDuration(t *testing.T) {
	for _, duration := range []string{"week", "weeks", "month", "chronic"} {
		result := triage.Evaluate(schema.SymptomReport{
			Symptoms: []string{"fatigue"},
			Severity: "mild",
			Duration: duration,
		})
		assert.Equal(t, schema.ConcernModerate, result.ConcernLevel, "wrong concern level for "+duration)
	}
}

func TestEvaluateThreeSymptomRule(t *testing.T) {
	result := triage.Evaluate(schema.SymptomReport{
		Symptoms: []string{"headache", "nausea", "rash"},
		Severity: "mild",
		Duration: "day",
	})

	assert.Equal(t, schema.ConcernModerate, result.ConcernLevel, "wrong concern level")
	// gastroenterology rule precedes neurology and dermatology
	assert.Equal(t, []string{triage.Gastroenterology}, result.RecommendedDepartments, "wrong departments")
}

func TestEvaluateTwoSymptomsStayLow(t *testing.T) {
	result := triage.Evaluate(schema.SymptomReport{
		Symptoms: []string{"headache", "rash"},
		Severity: "mild",
		Duration: "day",
	})

	assert.Equal(t, schema.ConcernLow, result.ConcernLevel, "wrong concern level")
	assert.Equal(t, []string{triage.Neurology}, result.RecommendedDepartments, "wrong departments")
}

func TestEvaluateDepartmentPriority(t *testing.T) {
	tests := []struct {
		symptom    string
		department string
	}{
		{"stomach pain", triage.Gastroenterology},
		{"palpitations", triage.Cardiology},
		{"cough", triage.Pulmonology},
		{"dizziness", triage.Neurology},
		{"hives", triage.Dermatology},
	}

	for _, tc := range tests {
		result := triage.Evaluate(schema.SymptomReport{Symptoms: []string{tc.symptom}})
		assert.Contains(t, result.RecommendedDepartments, tc.department, "wrong department for "+tc.symptom)
	}
}

func TestEvaluateUnknownSymptom(t *testing.T) {
	result := triage.Evaluate(schema.SymptomReport{
		Symptoms: []string{"hiccups"},
	})

	assert.Equal(t, schema.ConcernLow, result.ConcernLevel, "wrong concern level")
	assert.Equal(t, []string{triage.PrimaryCare}, result.RecommendedDepartments, "wrong departments")
}

func TestEvaluateDeterministic(t *testing.T) {
	report := schema.SymptomReport{
		Symptoms: []string{"shortness of breath", "cough"},
		Severity: "moderate",
		Duration: "weeks",
	}

	first := triage.Evaluate(report)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, triage.Evaluate(report), "evaluation not deterministic")
	}
}
