package schema

// GeoQuery describes a nearby-facility lookup around a coordinate.
// RadiusM of zero means the caller did not ask for a specific radius.
type GeoQuery struct {
	Latitude   float64
	Longitude  float64
	Department string
	RadiusM    int
}

// Facility is a healthcare place derived from one provider result.
// Lat, Lng and DistanceKM are nil when the provider returned no usable
// geometry for the place.
type Facility struct {
	ID             string
	Name           string
	Address        string
	Lat            *float64
	Lng            *float64
	Emergency      bool
	Phone          string
	Specialties    []string
	HasSpecialties bool
	Rating         float64
	DistanceKM     *float64
}

// FacilityView is the response representation of a facility.
type FacilityView struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Lat            *float64 `json:"lat"`
	Lng            *float64 `json:"lng"`
	Emergency      bool     `json:"emergency"`
	Phone          string   `json:"phone"`
	Specialties    []string `json:"specialties"`
	HasSpecialties bool     `json:"has_specialties"`
	Rating         float64  `json:"rating"`
	Distance       string   `json:"distance"`
}
