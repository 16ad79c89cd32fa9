package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"fundi/config"
	"fundi/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const geocodeCacheTTL = 24 * time.Hour

// geocodeResponse mirrors the fields we read from the Google Geocoding API.
type geocodeResponse struct {
	Results []struct {
		AddressComponents []struct {
			LongName string   `json:"long_name"`
			Types    []string `json:"types"`
		} `json:"address_components"`
	} `json:"results"`
}

// GoogleGeocoder resolves place names through the Google Geocoding API, with
// a Redis cache in front so hot spots don't re-hit the API.
type GoogleGeocoder struct {
	HTTPClient *http.Client
	Cache      *redis.Client
	Logger     *zap.Logger
}

// NewGoogleGeocoder constructs a geocoder backed by the global cache client.
func NewGoogleGeocoder(logger *zap.Logger) *GoogleGeocoder {
	return &GoogleGeocoder{
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		Cache:      utils.GetGeocodeCacheClient(),
		Logger:     logger,
	}
}

func (g *GoogleGeocoder) LocationNameFromCoordinates(ctx context.Context, lat, lng float64) (string, error) {
	cacheKey := fmt.Sprintf("geocode:%.4f,%.4f", lat, lng)
	if name, ok := g.cached(ctx, cacheKey); ok {
		return name, nil
	}

	requestURL := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/geocode/json?latlng=%f,%f&key=%s",
		lat, lng, config.AppConfig.GoogleAPIKey,
	)
	name, err := g.lookup(ctx, requestURL)
	if err != nil {
		return "", err
	}

	g.store(ctx, cacheKey, name)
	return name, nil
}

func (g *GoogleGeocoder) LocationNameFromPostalCode(ctx context.Context, code string) (string, error) {
	cacheKey := "geocode:postal:" + code
	if name, ok := g.cached(ctx, cacheKey); ok {
		return name, nil
	}

	requestURL := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/geocode/json?components=postal_code:%s&key=%s",
		url.QueryEscape(code), config.AppConfig.GoogleAPIKey,
	)
	name, err := g.lookup(ctx, requestURL)
	if err != nil {
		return "", err
	}

	g.store(ctx, cacheKey, name)
	return name, nil
}

// lookup calls the geocoding API and extracts a city name, preferring the
// locality component and falling back to administrative_area_level_3.
func (g *GoogleGeocoder) lookup(ctx context.Context, requestURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return "", fmt.Errorf("build geocoding request: %w", err)
	}

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	var data geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("decode geocoding response: %w", err)
	}

	if len(data.Results) == 0 {
		return "", nil
	}

	var city, town string
	for _, component := range data.Results[0].AddressComponents {
		for _, t := range component.Types {
			switch t {
			case "locality":
				city = component.LongName
			case "administrative_area_level_3":
				town = component.LongName
			}
		}
	}
	if city != "" {
		return city, nil
	}
	return town, nil
}

func (g *GoogleGeocoder) cached(ctx context.Context, key string) (string, bool) {
	if g.Cache == nil {
		return "", false
	}
	name, err := g.Cache.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return name, true
}

func (g *GoogleGeocoder) store(ctx context.Context, key, name string) {
	if g.Cache == nil || name == "" {
		return
	}
	if err := g.Cache.Set(ctx, key, name, geocodeCacheTTL).Err(); err != nil {
		g.Logger.Warn("failed to cache geocode result", zap.String("key", key), zap.Error(err))
	}
}
