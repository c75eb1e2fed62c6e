package finder

import (
	"strings"

	"github.com/carefinder/carefinder-api/consts"
	"github.com/carefinder/carefinder-api/schema"
)

// matchesDepartment reports whether a facility answers a department
// request. The department must already be trimmed and lowercased; an
// empty department matches everything. The emergency department is a
// special case keyed off the emergency flag; otherwise the inferred
// specialties are consulted first and known synonym groups are matched
// against the facility's name and address as a last resort.
func matchesDepartment(facility schema.Facility, department string) bool {
	if department == "" {
		return true
	}

	if department == "emergency" {
		if facility.Emergency {
			return true
		}
		for _, s := range facility.Specialties {
			if strings.Contains(strings.ToLower(s), "emergency") {
				return true
			}
		}
		return false
	}

	for _, s := range facility.Specialties {
		if strings.Contains(strings.ToLower(s), department) {
			return true
		}
	}

	if synonyms, ok := consts.DepartmentSynonyms[department]; ok {
		nameAddress := strings.ToLower(facility.Name + " " + facility.Address)
		for _, synonym := range synonyms {
			if strings.Contains(nameAddress, synonym) {
				return true
			}
		}
	}

	return false
}
