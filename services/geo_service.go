package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
)

// Sentinels recorded when the lookup service fails or omits fields.
const (
	UnknownLocation = "Unknown Location"
	UnknownCountry  = "Unknown Country"
	UnknownCity     = "Unknown City"
)

// LocationResolver resolves an IP address to a human-readable location.
type LocationResolver interface {
	Resolve(ip string) string
}

// GeoService resolves locations through an ip-api.com style JSON endpoint.
// Successful lookups are cached per IP so repeat visitors do not re-hit the
// external service.
type GeoService struct {
	endpoint string
	client   *http.Client
	cache    *cache.Cache
}

func NewGeoService(endpoint string, timeout, cacheTTL time.Duration) *GeoService {
	return &GeoService{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		cache:    cache.New(cacheTTL, 2*cacheTTL),
	}
}

type geoResponse struct {
	Status  string `json:"status"`
	Country string `json:"country"`
	City    string `json:"city"`
}

// Resolve never fails: any lookup problem degrades to the unknown sentinel.
// An overdue lookup is abandoned by the client timeout and treated the same
// as a failed one.
func (g *GeoService) Resolve(ip string) string {
	if loc, ok := g.cache.Get(ip); ok {
		return loc.(string)
	}

	loc := g.lookup(ip)
	if loc != UnknownLocation {
		g.cache.Set(ip, loc, cache.DefaultExpiration)
	}
	return loc
}

func (g *GeoService) lookup(ip string) string {
	ctx, cancel := context.WithTimeout(context.Background(), g.client.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"/"+ip, nil)
	if err != nil {
		return UnknownLocation
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return UnknownLocation
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return UnknownLocation
	}

	var data geoResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return UnknownLocation
	}
	if data.Status != "" && data.Status != "success" {
		return UnknownLocation
	}

	country := data.Country
	if country == "" {
		country = UnknownCountry
	}
	city := data.City
	if city == "" {
		city = UnknownCity
	}

	return fmt.Sprintf("%s, %s", country, city)
}
