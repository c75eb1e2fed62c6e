package finder

import (
	"fmt"
	"math"

	"github.com/carefinder/carefinder-api/schema"
)

// defaultRating stands in when the provider reports no rate for a place.
const defaultRating = 4.5

// FormatDistance renders a distance for display: integer meters below one
// kilometer, one-decimal kilometers otherwise, empty when unknown.
func FormatDistance(distanceKM *float64) string {
	if distanceKM == nil {
		return ""
	}
	if *distanceKM < 1 {
		return fmt.Sprintf("%d m", int(*distanceKM*1000))
	}
	return fmt.Sprintf("%.1f km", *distanceKM)
}

func roundRating(rating float64) float64 {
	if rating == 0 {
		rating = defaultRating
	}
	return math.Round(rating*10) / 10
}

func formatFacility(facility schema.Facility) schema.FacilityView {
	specialties := facility.Specialties
	if specialties == nil {
		// serialize as an empty list, not null
		specialties = []string{}
	}

	return schema.FacilityView{
		ID:             facility.ID,
		Name:           facility.Name,
		Address:        facility.Address,
		Lat:            facility.Lat,
		Lng:            facility.Lng,
		Emergency:      facility.Emergency,
		Phone:          facility.Phone,
		Specialties:    specialties,
		HasSpecialties: facility.HasSpecialties,
		Rating:         roundRating(facility.Rating),
		Distance:       FormatDistance(facility.DistanceKM),
	}
}
