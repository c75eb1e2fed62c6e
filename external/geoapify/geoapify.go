package geoapify

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	logPrefix      = "geoapify"
	defaultURL     = "https://api.geoapify.com/v2/places"
	defaultTimeout = 8 * time.Second

	// resultLimit caps how many places a single query may return.
	resultLimit = 100
)

var (
	ErrEmptyAPIKey = fmt.Errorf("empty api key")
)

// NearbyRequest is a circular places query around a coordinate.
type NearbyRequest struct {
	Category  string
	Latitude  float64
	Longitude float64
	RadiusM   int
}

// Properties of a GeoJSON feature returned by the places API. Geoapify
// flattens contact details into colon-separated keys.
type Properties struct {
	Name         string   `json:"name"`
	Formatted    string   `json:"formatted"`
	AddressLine1 string   `json:"address_line1"`
	Categories   []string `json:"categories"`
	PlaceID      string   `json:"place_id"`
	Phone        string   `json:"contact:phone"`
	OpeningHours string   `json:"opening_hours"`
	Rate         float64  `json:"rate"`
}

type Geometry struct {
	Coordinates []float64 `json:"coordinates"`
}

type Feature struct {
	Properties Properties `json:"properties"`
	Geometry   Geometry   `json:"geometry"`
}

type featureCollection struct {
	Features []Feature `json:"features"`
}

// PlacesSearcher - interface to query the places API
type PlacesSearcher interface {
	Nearby(ctx context.Context, req NearbyRequest) ([]Feature, error)
}

type client struct {
	apiKey     string
	url        string
	httpClient *http.Client
}

func (c *client) Nearby(ctx context.Context, req NearbyRequest) ([]Feature, error) {
	if c.apiKey == "" {
		return nil, ErrEmptyAPIKey
	}

	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"category": req.Category,
		"lat":      req.Latitude,
		"lng":      req.Longitude,
		"radius":   req.RadiusM,
	}).Info("query nearby places")

	query := url.Values{}
	query.Set("categories", req.Category)
	query.Set("filter", fmt.Sprintf("circle:%f,%f,%d", req.Longitude, req.Latitude, req.RadiusM))
	query.Set("limit", strconv.Itoa(resultLimit))
	query.Set("apiKey", c.apiKey)

	httpReq, err := http.NewRequest("GET", c.url+"?"+query.Encode(), nil)
	if nil != err {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq.WithContext(ctx))
	if nil != err {
		return nil, err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return nil, err
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"status": resp.StatusCode,
	}).Debug("places response: ", string(d[:min(len(d), 300)]))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("places query failed with status %d", resp.StatusCode)
	}

	var collection featureCollection
	if err := json.Unmarshal(d, &collection); nil != err {
		return nil, err
	}

	return collection.Features, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// New - new PlacesSearcher backed by the Geoapify places API. An empty
// url falls back to the production endpoint.
func New(apiKey string, url string) PlacesSearcher {
	u := defaultURL
	if url != "" {
		u = url
	}

	return &client{
		apiKey: apiKey,
		url:    u,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}
