package consts

// Geoapify place categories this service queries. Only the broadly
// supported ones are used; narrow specialties fall back to the generic
// healthcare category.
const (
	HealthcareCategory = "healthcare"
	HospitalCategory   = "healthcare.hospital"
	DentistCategory    = "healthcare.dentist"
)

// GeoapifyCategory maps a normalized department name to the Geoapify
// category used for the places query.
var GeoapifyCategory map[string]string

// DepartmentSynonyms maps a normalized department name to keywords
// matched against a facility's name and address when its inferred
// specialties do not answer the question.
var DepartmentSynonyms map[string][]string

func init() {
	GeoapifyCategory = make(map[string]string)

	GeoapifyCategory["cardiology"] = HealthcareCategory
	GeoapifyCategory["neurology"] = HealthcareCategory
	GeoapifyCategory["dermatology"] = HealthcareCategory
	GeoapifyCategory["orthopedics"] = HealthcareCategory
	GeoapifyCategory["gastroenterology"] = HealthcareCategory
	GeoapifyCategory["pulmonology"] = HealthcareCategory
	GeoapifyCategory["ent"] = HealthcareCategory
	GeoapifyCategory["dental"] = DentistCategory
	GeoapifyCategory["dentistry"] = DentistCategory
	GeoapifyCategory["emergency"] = HospitalCategory
	GeoapifyCategory["general medicine"] = HealthcareCategory
	GeoapifyCategory["primary care"] = HealthcareCategory

	DepartmentSynonyms = make(map[string][]string)

	DepartmentSynonyms["dental"] = []string{"dental", "dentist"}
	DepartmentSynonyms["orthopedics"] = []string{"ortho", "orthopedics", "bone"}
	DepartmentSynonyms["cardiology"] = []string{"cardio", "cardiology", "heart"}
	DepartmentSynonyms["neurology"] = []string{"neuro", "neurology"}
	DepartmentSynonyms["dermatology"] = []string{"derma", "dermatology", "skin"}
	DepartmentSynonyms["gastroenterology"] = []string{"gastro", "gastroenterology"}
	DepartmentSynonyms["ent"] = []string{"ent", "ear", "nose", "throat"}
	DepartmentSynonyms["primary care"] = []string{"general", "primary", "family"}
	DepartmentSynonyms["general medicine"] = []string{"general", "medicine", "gp", "general medicine"}
}
