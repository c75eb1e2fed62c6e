package triage

import (
	"strings"

	"github.com/carefinder/carefinder-api/schema"
)

const (
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

const (
	PrimaryCare      = "Primary Care"
	GeneralMedicine  = "General Medicine"
	Emergency        = "Emergency"
	Gastroenterology = "Gastroenterology"
	Cardiology       = "Cardiology"
	Pulmonology      = "Pulmonology"
	Neurology        = "Neurology"
	Dermatology      = "Dermatology"
)

// RedFlagSymptoms force a high concern level regardless of any other field
// in the report.
var RedFlagSymptoms = map[string]struct{}{
	"chest pain":            {},
	"difficulty breathing":  {},
	"shortness of breath":   {},
	"loss of consciousness": {},
	"severe bleeding":       {},
	"sudden weakness":       {},
}

// moderateDurations are duration values that on their own push the concern
// level to moderate.
var moderateDurations = map[string]struct{}{
	"week":    {},
	"weeks":   {},
	"month":   {},
	"chronic": {},
}

// DepartmentRule maps a group of symptom keywords to a department. Rules
// are evaluated in order and the first match wins.
type DepartmentRule struct {
	Department string
	Symptoms   []string
}

var DepartmentRules = []DepartmentRule{
	{Gastroenterology, []string{"stomach pain", "abdominal pain", "nausea", "vomiting", "diarrhea", "bloating"}},
	{Cardiology, []string{"chest pain", "palpitations", "heart"}},
	{Pulmonology, []string{"shortness of breath", "breathlessness", "cough", "wheezing"}},
	{Neurology, []string{"headache", "migraine", "dizziness", "numbness", "seizure"}},
	{Dermatology, []string{"rash", "itching", "skin", "hives"}},
}

// Suggestions is attached verbatim to every assessment.
var Suggestions = []string{
	"This is a preliminary assessment and not a diagnosis.",
	"If concern is high, seek emergency care.",
}

// Evaluate assesses a symptom report. It is a pure function: no I/O, no
// shared state, identical input always yields identical output. An empty
// report evaluates to a low concern with a primary care recommendation.
func Evaluate(report schema.SymptomReport) schema.Assessment {
	symptoms := make(map[string]struct{}, len(report.Symptoms))
	for _, s := range report.Symptoms {
		symptoms[strings.ToLower(s)] = struct{}{}
	}

	concern := concernLevel(symptoms, report)
	department := inferDepartment(symptoms)

	departments := make([]string, 0, 2)
	if concern == schema.ConcernHigh {
		departments = append(departments, Emergency)
	}
	if department != PrimaryCare {
		departments = append(departments, department)
	}
	if len(departments) == 0 {
		if concern == schema.ConcernModerate {
			departments = append(departments, GeneralMedicine)
		} else {
			departments = append(departments, PrimaryCare)
		}
	}

	return schema.Assessment{
		ConcernLevel:           concern,
		Suggestions:            Suggestions,
		RecommendedDepartments: departments,
	}
}

func concernLevel(symptoms map[string]struct{}, report schema.SymptomReport) schema.ConcernLevel {
	for s := range symptoms {
		if _, ok := RedFlagSymptoms[s]; ok {
			return schema.ConcernHigh
		}
	}

	if report.Severity == SeveritySevere {
		return schema.ConcernHigh
	}

	if report.Severity == SeverityModerate {
		return schema.ConcernModerate
	}
	if _, ok := moderateDurations[report.Duration]; ok {
		return schema.ConcernModerate
	}

	if len(report.Symptoms) >= 3 {
		return schema.ConcernModerate
	}

	return schema.ConcernLow
}

func inferDepartment(symptoms map[string]struct{}) string {
	for _, rule := range DepartmentRules {
		for _, s := range rule.Symptoms {
			if _, ok := symptoms[s]; ok {
				return rule.Department
			}
		}
	}
	return PrimaryCare
}
