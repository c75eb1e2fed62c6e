package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carefinder/carefinder-api/external/geoapify"
	"github.com/carefinder/carefinder-api/schema"
)

func (s *Server) nearbyHospitals(c *gin.Context) {
	// coordinates only need to parse; their range is not validated and
	// out-of-range values are forwarded to the provider unchanged
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorLatLngRequired, err)
		return
	}

	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorLatLngRequired, err)
		return
	}

	radiusM := 0
	if v := c.Query("radius_m"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			radiusM = n
		}
	}

	hospitals, fallbackUsed, err := s.finder.Nearby(c.Request.Context(), schema.GeoQuery{
		Latitude:   lat,
		Longitude:  lng,
		Department: c.Query("department"),
		RadiusM:    radiusM,
	})
	if err != nil {
		if err == geoapify.ErrEmptyAPIKey {
			abortWithEncoding(c, http.StatusInternalServerError, errorAPIKeyNotConfigured, err)
			return
		}

		log.WithError(err).Error("nearby hospitals lookup failed")
		abortWithEncoding(c, http.StatusInternalServerError, errorUpstreamFetch(err), err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hospitals":     hospitals,
		"fallback_used": fallbackUsed,
	})
}
