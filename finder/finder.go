package finder

import (
	"context"
	"sort"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/carefinder/carefinder-api/consts"
	"github.com/carefinder/carefinder-api/external/geoapify"
	"github.com/carefinder/carefinder-api/geo"
	"github.com/carefinder/carefinder-api/schema"
)

const (
	logPrefix = "finder"

	// DefaultRadiusM is used when a query does not ask for a radius.
	DefaultRadiusM = 20000

	// fallbackLimit bounds how many facilities the department-miss
	// fallback returns.
	fallbackLimit = 15
)

// Finder looks up nearby healthcare facilities through a places searcher
// and post-processes the results into response order.
type Finder struct {
	searcher geoapify.PlacesSearcher
}

// New - new Finder on top of the given places searcher
func New(searcher geoapify.PlacesSearcher) *Finder {
	return &Finder{
		searcher: searcher,
	}
}

// Nearby queries facilities around the given coordinate sorted by distance,
// filtered by the requested department when one is given. When a requested
// department matches nothing, the nearest facilities are returned instead
// and the second return value reports that the fallback was taken.
//
// Coordinates are forwarded to the provider as-is; out-of-range values are
// not rejected here.
func (f *Finder) Nearby(ctx context.Context, query schema.GeoQuery) ([]schema.FacilityView, bool, error) {
	department := strings.ToLower(strings.TrimSpace(query.Department))

	category := consts.HealthcareCategory
	if c, ok := consts.GeoapifyCategory[department]; ok {
		category = c
	}

	radius := query.RadiusM
	if radius <= 0 {
		radius = DefaultRadiusM
	}

	features, err := f.searcher.Nearby(ctx, geoapify.NearbyRequest{
		Category:  category,
		Latitude:  query.Latitude,
		Longitude: query.Longitude,
		RadiusM:   radius,
	})
	if err != nil {
		return nil, false, err
	}

	facilities := deriveFacilities(query.Latitude, query.Longitude, features)
	sortByDistance(facilities)

	filtered := make([]schema.Facility, 0, len(facilities))
	for _, facility := range facilities {
		if matchesDepartment(facility, department) {
			filtered = append(filtered, facility)
		}
	}

	fallbackUsed := false
	if department != "" && len(filtered) == 0 {
		fallbackUsed = true
		filtered = facilities
		if len(filtered) > fallbackLimit {
			filtered = filtered[:fallbackLimit]
		}

		log.WithFields(log.Fields{
			"prefix":     logPrefix,
			"department": department,
			"count":      len(filtered),
		}).Info("department filter matched nothing, falling back to nearest facilities")
	}

	views := make([]schema.FacilityView, 0, len(filtered))
	for _, facility := range filtered {
		views = append(views, formatFacility(facility))
	}

	return views, fallbackUsed, nil
}

// deriveFacilities converts provider features into facilities. Features
// without a name are dropped; features without geometry are kept with an
// unknown location and distance.
func deriveFacilities(originLat, originLng float64, features []geoapify.Feature) []schema.Facility {
	facilities := make([]schema.Facility, 0, len(features))

	for i, feature := range features {
		name := feature.Properties.Name
		if name == "" {
			continue
		}

		address := feature.Properties.Formatted
		if address == "" {
			address = feature.Properties.AddressLine1
		}
		if address == "" {
			address = "Address not available"
		}

		var lat, lng *float64
		if len(feature.Geometry.Coordinates) >= 2 {
			lngValue := feature.Geometry.Coordinates[0]
			latValue := feature.Geometry.Coordinates[1]
			lng = &lngValue
			lat = &latValue
		}

		var distanceKM *float64
		if lat != nil && lng != nil {
			if d, ok := geo.Distance(originLat, originLng, *lat, *lng); ok {
				distanceKM = &d
			}
		}

		id := feature.Properties.PlaceID
		if id == "" {
			id = strconv.Itoa(i)
		}

		phone := feature.Properties.Phone
		if phone == "" {
			phone = "Not available"
		}

		specialties := inferSpecialties(name, feature.Properties.Categories)

		facilities = append(facilities, schema.Facility{
			ID:             id,
			Name:           name,
			Address:        address,
			Lat:            lat,
			Lng:            lng,
			Emergency:      isEmergency(name, feature.Properties.OpeningHours),
			Phone:          phone,
			Specialties:    specialties,
			HasSpecialties: len(specialties) > 0,
			Rating:         feature.Properties.Rate,
			DistanceKM:     distanceKM,
		})
	}

	return facilities
}

// sortByDistance orders facilities by ascending distance with unknown
// distances last. The sort is stable so ties keep the provider's order.
func sortByDistance(facilities []schema.Facility) {
	sort.SliceStable(facilities, func(i, j int) bool {
		di := facilities[i].DistanceKM
		dj := facilities[j].DistanceKM
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return *di < *dj
	})
}
