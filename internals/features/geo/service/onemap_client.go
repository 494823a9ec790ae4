// internals/features/geo/service/onemap_client.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"sync"
	"time"
)

// PostalCodePattern gates every geocoding entry point: Singapore postal
// codes are exactly six digits.
var PostalCodePattern = regexp.MustCompile(`^\d{6}$`)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Resolver is the geocoding capability the orchestrator depends on:
// coordinates, or nil when the provider has nothing for the code.
type Resolver interface {
	Resolve(ctx context.Context, postalCode string) (*Coordinates, error)
}

/* =====================
   OneMap client
===================== */

// OneMapClient resolves postal codes through the OneMap elastic search API,
// memoizing every answer (hits and misses) for the process lifetime. The
// postal-code space of one city-state is small and values are immutable
// once resolved, so the cache is unbounded on purpose.
type OneMapClient struct {
	BaseURL string
	HTTP    *http.Client

	mu    sync.RWMutex
	cache map[string]*Coordinates // nil entry = cached miss
}

func NewOneMapClient(baseURL string) *OneMapClient {
	return &OneMapClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 5 * time.Second},
		cache:   make(map[string]*Coordinates),
	}
}

type oneMapResult struct {
	SearchVal string `json:"SEARCHVAL"`
	Latitude  string `json:"LATITUDE"`
	Longitude string `json:"LONGITUDE"`
}

type oneMapResponse struct {
	Found   int            `json:"found"`
	Results []oneMapResult `json:"results"`
}

// Resolve returns coordinates for a postal code, or (nil, nil) when neither
// the provider nor the district fallback knows it. At most one upstream
// call is issued per postal code per process lifetime.
func (c *OneMapClient) Resolve(ctx context.Context, postalCode string) (*Coordinates, error) {
	if !PostalCodePattern.MatchString(postalCode) {
		return nil, nil
	}

	c.mu.RLock()
	cached, ok := c.cache[postalCode]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	coords, err := c.fetch(ctx, postalCode)
	if err != nil {
		// Upstream failure: fall back to the district centroid if we have
		// one, but do not poison the cache — a later call may succeed.
		if fb := districtFallback(postalCode); fb != nil {
			return fb, nil
		}
		return nil, err
	}
	if coords == nil {
		coords = districtFallback(postalCode)
	}

	c.mu.Lock()
	c.cache[postalCode] = coords // last-write-wins; values are immutable
	c.mu.Unlock()
	return coords, nil
}

func (c *OneMapClient) fetch(ctx context.Context, postalCode string) (*Coordinates, error) {
	endpoint := fmt.Sprintf(
		"%s/api/common/elastic/search?searchVal=%s&returnGeom=Y&getAddrDetails=Y&pageNum=1",
		c.BaseURL, url.QueryEscape(postalCode),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("onemap: unexpected status %d", resp.StatusCode)
	}

	var body oneMapResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Found == 0 || len(body.Results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(body.Results[0].Latitude, 64)
	if err != nil {
		return nil, nil
	}
	lng, err := strconv.ParseFloat(body.Results[0].Longitude, 64)
	if err != nil {
		return nil, nil
	}
	return &Coordinates{Latitude: lat, Longitude: lng}, nil
}

/* =====================
   District fallback
   Approximate centroids keyed by the 2-digit postal sector, used when the
   provider has no exact match for a code.
===================== */

var districtCentroids = map[string]Coordinates{
	"01": {1.2789, 103.8536}, "02": {1.2789, 103.8536}, "03": {1.2896, 103.8471},
	"04": {1.2711, 103.8440}, "05": {1.2765, 103.7940}, "06": {1.2893, 103.8500},
	"07": {1.3000, 103.8558}, "08": {1.3117, 103.8557}, "09": {1.2890, 103.8316},
	"10": {1.3057, 103.8165}, "11": {1.3144, 103.8177}, "12": {1.3253, 103.8552},
	"13": {1.3322, 103.8684}, "14": {1.3224, 103.8871}, "15": {1.3036, 103.9023},
	"16": {1.3200, 103.9308}, "17": {1.3438, 103.9532}, "18": {1.3525, 103.9447},
	"19": {1.3618, 103.8855}, "20": {1.3521, 103.8425}, "21": {1.3404, 103.7788},
	"22": {1.3384, 103.7060}, "23": {1.3590, 103.7649}, "24": {1.4043, 103.7531},
	"25": {1.4382, 103.7890}, "26": {1.3905, 103.8182}, "27": {1.4304, 103.8354},
	"28": {1.3866, 103.8720},
}

func districtFallback(postalCode string) *Coordinates {
	if len(postalCode) < 2 {
		return nil
	}
	if c, ok := districtCentroids[postalCode[:2]]; ok {
		cc := c
		return &cc
	}
	return nil
}
