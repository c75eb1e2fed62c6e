package geo

import "math"

const earthRadiusKM = 6371

// Distance returns the great-circle distance in kilometers between two
// latitude/longitude pairs given in degrees, computed with the haversine
// formula. The second return value is false when the distance cannot be
// determined, e.g. when any of the inputs is NaN; a degenerate input never
// produces an error or a panic, only an unknown distance.
func Distance(lat1, lng1, lat2, lng2 float64) (float64, bool) {
	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dlat := (lat2 - lat1) * math.Pi / 180
	dlng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlng/2)*math.Sin(dlng/2)
	c := 2 * math.Asin(math.Sqrt(a))

	d := earthRadiusKM * c
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, false
	}

	return d, true
}
