package schema

type ConcernLevel string

const (
	ConcernLow      ConcernLevel = "low"
	ConcernModerate ConcernLevel = "moderate"
	ConcernHigh     ConcernLevel = "high"
)

// SymptomReport is the payload of a triage request. Every field is
// optional; an empty report is assessed the same way as any other.
type SymptomReport struct {
	Symptoms []string `json:"symptoms"`
	Severity string   `json:"severity"`
	Duration string   `json:"duration"`
}

// Assessment is the outcome of evaluating a symptom report.
type Assessment struct {
	ConcernLevel           ConcernLevel `json:"concern_level"`
	Suggestions            []string     `json:"suggestions"`
	RecommendedDepartments []string     `json:"recommended_departments"`
}
