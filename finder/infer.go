package finder

import "strings"

// specialtyRule infers a specialty from loose keyword matches against a
// facility's provider categories and its name.
type specialtyRule struct {
	specialty      string
	categoryTokens []string
	nameTokens     []string
	nameWords      []string
}

// specialtyRules are evaluated in order; a facility collects every
// specialty whose rule matches.
var specialtyRules = []specialtyRule{
	{specialty: "Cardiology", categoryTokens: []string{"cardio", "heart"}, nameTokens: []string{"cardio", "heart"}},
	{specialty: "Gastroenterology", categoryTokens: []string{"gastro"}, nameTokens: []string{"gastro"}},
	{specialty: "Neurology", categoryTokens: []string{"neuro"}, nameTokens: []string{"neuro"}},
	{specialty: "Dermatology", categoryTokens: []string{"dermatology"}, nameTokens: []string{"derma", "skin"}},
	{specialty: "ENT", nameTokens: []string{"ear nose throat"}, nameWords: []string{"ent"}},
	{specialty: "Orthopedics", categoryTokens: []string{"ortho"}, nameTokens: []string{"ortho", "bone"}},
	{specialty: "Dental", nameTokens: []string{"dent", "dental", "dentist"}},
	{specialty: "Surgery", nameTokens: []string{"surgical"}},
}

func (r specialtyRule) matches(nameLower string, nameFields []string, categoriesLower []string) bool {
	for _, token := range r.categoryTokens {
		for _, category := range categoriesLower {
			if strings.Contains(category, token) {
				return true
			}
		}
	}
	for _, token := range r.nameTokens {
		if strings.Contains(nameLower, token) {
			return true
		}
	}
	for _, word := range r.nameWords {
		for _, field := range nameFields {
			if field == word {
				return true
			}
		}
	}
	return false
}

// inferSpecialties guesses a facility's specialties from its name and the
// provider's category tags. A facility may match zero, one or several
// rules.
func inferSpecialties(name string, categories []string) []string {
	nameLower := strings.ToLower(name)
	nameFields := strings.Fields(nameLower)

	categoriesLower := make([]string, 0, len(categories))
	for _, c := range categories {
		categoriesLower = append(categoriesLower, strings.ToLower(c))
	}

	var specialties []string
	for _, rule := range specialtyRules {
		if rule.matches(nameLower, nameFields, categoriesLower) {
			specialties = append(specialties, rule.specialty)
		}
	}

	return specialties
}

// isEmergency flags facilities whose name suggests an emergency room or
// whose opening hours advertise round-the-clock service.
func isEmergency(name, openingHours string) bool {
	nameLower := strings.ToLower(name)
	return strings.Contains(nameLower, "emergency") ||
		strings.Contains(nameLower, "er") ||
		strings.Contains(openingHours, "24/7")
}
