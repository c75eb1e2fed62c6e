package geoapify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carefinder/carefinder-api/external/geoapify"
)

func TestNearby(t *testing.T) {
	var gotQuery map[string]string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"categories": r.URL.Query().Get("categories"),
			"filter":     r.URL.Query().Get("filter"),
			"limit":      r.URL.Query().Get("limit"),
			"apiKey":     r.URL.Query().Get("apiKey"),
		}

		type properties struct {
			Name    string  `json:"name"`
			PlaceID string  `json:"place_id"`
			Rate    float64 `json:"rate"`
		}
		type geometry struct {
			Coordinates []float64 `json:"coordinates"`
		}
		type feature struct {
			Properties properties `json:"properties"`
			Geometry   geometry   `json:"geometry"`
		}
		type collection struct {
			Features []feature `json:"features"`
		}

		resp := collection{
			Features: []feature{
				{
					Properties: properties{Name: "City Hospital", PlaceID: "abc", Rate: 4.2},
					Geometry:   geometry{Coordinates: []float64{121.73, 25.13}},
				},
			},
		}

		b, _ := json.Marshal(resp)
		_, _ = w.Write(b)
	}))
	defer ts.Close()

	g := geoapify.New("test-key", ts.URL)
	features, err := g.Nearby(context.Background(), geoapify.NearbyRequest{
		Category:  "healthcare",
		Latitude:  25.13,
		Longitude: 121.73,
		RadiusM:   20000,
	})

	assert.Nil(t, err, "wrong Nearby")
	assert.Len(t, features, 1, "wrong feature count")
	assert.Equal(t, "City Hospital", features[0].Properties.Name, "wrong name")
	assert.Equal(t, "abc", features[0].Properties.PlaceID, "wrong place id")
	assert.Equal(t, []float64{121.73, 25.13}, features[0].Geometry.Coordinates, "wrong coordinates")

	assert.Equal(t, "healthcare", gotQuery["categories"], "wrong categories param")
	assert.Equal(t, "circle:121.730000,25.130000,20000", gotQuery["filter"], "wrong filter param")
	assert.Equal(t, "100", gotQuery["limit"], "wrong limit param")
	assert.Equal(t, "test-key", gotQuery["apiKey"], "wrong api key param")
}

func TestNearbyEmptyAPIKey(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	}))
	defer ts.Close()

	g := geoapify.New("", ts.URL)
	_, err := g.Nearby(context.Background(), geoapify.NearbyRequest{Category: "healthcare"})

	assert.Equal(t, geoapify.ErrEmptyAPIKey, err, "wrong error")
	assert.False(t, called, "provider should not be called without a key")
}

func TestNearbyUpstreamFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	g := geoapify.New("test-key", ts.URL)
	_, err := g.Nearby(context.Background(), geoapify.NearbyRequest{Category: "healthcare"})

	assert.NotNil(t, err, "expect error on non-2xx status")
	assert.Contains(t, err.Error(), "401", "status should be part of the error")
}

func TestNearbyMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer ts.Close()

	g := geoapify.New("test-key", ts.URL)
	_, err := g.Nearby(context.Background(), geoapify.NearbyRequest{Category: "healthcare"})

	assert.NotNil(t, err, "expect error on malformed body")
}
