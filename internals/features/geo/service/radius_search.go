// internals/features/geo/service/radius_search.go
package service

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	logService "schoolsg_backend/internals/features/activitylog/service"
	schoolModel "schoolsg_backend/internals/features/schools/model"
	"schoolsg_backend/internals/helpers/errs"
)

/* =====================
   Radius search orchestrator
===================== */

type RadiusSearchService struct {
	DB  *gorm.DB
	Geo Resolver
	Log logService.Sink

	// Geocoding is batched to respect the provider's rate limits:
	// concurrent within a batch, throttled between batches.
	BatchSize   int
	BatchDelay  time.Duration
	CallTimeout time.Duration
}

func NewRadiusSearchService(db *gorm.DB, geo Resolver, sink logService.Sink) *RadiusSearchService {
	if sink == nil {
		sink = logService.NoopSink{}
	}
	return &RadiusSearchService{
		DB:          db,
		Geo:         geo,
		Log:         sink,
		BatchSize:   8,
		BatchDelay:  150 * time.Millisecond,
		CallTimeout: 3 * time.Second,
	}
}

type SchoolWithDistance struct {
	schoolModel.SchoolModel
	DistanceKm float64 `json:"distance_km" gorm:"-"`
}

type RadiusStats struct {
	SchoolsProcessed   int `json:"schools_processed"`
	CoordinatesFetched int `json:"coordinates_fetched"`
	ResultCount        int `json:"result_count"`
}

// Search returns every school whose geocoded location lies within radiusKm
// of the center postal code, nearest first.
func (s *RadiusSearchService) Search(ctx context.Context, postalCode string, radiusKm float64) ([]SchoolWithDistance, *RadiusStats, error) {
	// Validation happens before any store or network call.
	if !PostalCodePattern.MatchString(postalCode) {
		return nil, nil, errs.InvalidInput("postal code must be exactly 6 digits")
	}
	if radiusKm <= 0 {
		return nil, nil, errs.InvalidInput("radius must be a positive number")
	}

	center, err := s.resolveWithTimeout(ctx, postalCode)
	if err != nil || center == nil {
		// Provider unavailable degrades the center resolution to not-found;
		// no candidate queries are issued.
		return nil, nil, errs.LocationNotFound("postal code " + postalCode + " could not be geocoded")
	}

	// Candidate set: schools with a well-formed postal code. Malformed
	// postal data is silently excluded, not errored.
	var candidates []schoolModel.SchoolModel
	if err := s.DB.WithContext(ctx).
		Where(`postal_code IS NOT NULL AND postal_code ~ '^[0-9]{6}$'`).
		Find(&candidates).Error; err != nil {
		return nil, nil, errs.QueryExecution(err)
	}

	coords := s.geocodeBatched(ctx, candidates)
	results, fetched := filterByRadius(center, candidates, coords, radiusKm)

	s.Log.Append("radius_search", map[string]any{
		"postal_code":         postalCode,
		"radius_km":           radiusKm,
		"result_count":        len(results),
		"schools_processed":   len(candidates),
		"coordinates_fetched": fetched,
	})
	return results, &RadiusStats{
		SchoolsProcessed:   len(candidates),
		CoordinatesFetched: fetched,
		ResultCount:        len(results),
	}, nil
}

// filterByRadius keeps candidates whose resolved location lies within
// radiusKm of the center, nearest first. Unresolved candidates (nil coords)
// are dropped, never counted as matches.
func filterByRadius(center *Coordinates, candidates []schoolModel.SchoolModel, coords []*Coordinates, radiusKm float64) ([]SchoolWithDistance, int) {
	results := make([]SchoolWithDistance, 0, len(candidates))
	fetched := 0
	for i, school := range candidates {
		c := coords[i]
		if c == nil {
			continue // soft-drop: never fabricate a distance
		}
		fetched++
		d := HaversineKm(center.Latitude, center.Longitude, c.Latitude, c.Longitude)
		if d <= radiusKm {
			results = append(results, SchoolWithDistance{SchoolModel: school, DistanceKm: RoundKm(d)})
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})
	return results, fetched
}

// geocodeBatched resolves candidate coordinates in fixed-size batches:
// concurrent within a batch, a short pause between batches. Batch i+1 does
// not start before every call in batch i has returned. Per-candidate
// failures leave a nil slot.
func (s *RadiusSearchService) geocodeBatched(ctx context.Context, candidates []schoolModel.SchoolModel) []*Coordinates {
	coords := make([]*Coordinates, len(candidates))
	batch := s.BatchSize
	if batch <= 0 {
		batch = 8
	}

	for start := 0; start < len(candidates); start += batch {
		end := start + batch
		if end > len(candidates) {
			end = len(candidates)
		}

		var g errgroup.Group
		for i := start; i < end; i++ {
			i := i
			if candidates[i].PostalCode == nil {
				continue
			}
			g.Go(func() error {
				c, err := s.resolveWithTimeout(ctx, *candidates[i].PostalCode)
				if err == nil {
					coords[i] = c
				}
				return nil // soft-drop, never fail the batch
			})
		}
		_ = g.Wait()

		if end < len(candidates) && s.BatchDelay > 0 {
			select {
			case <-ctx.Done():
				return coords
			case <-time.After(s.BatchDelay):
			}
		}
	}
	return coords
}

func (s *RadiusSearchService) resolveWithTimeout(ctx context.Context, postalCode string) (*Coordinates, error) {
	timeout := s.CallTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.Geo.Resolve(cctx, postalCode)
}
