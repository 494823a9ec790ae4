package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	schoolModel "schoolsg_backend/internals/features/schools/model"
	"schoolsg_backend/internals/helpers/errs"
)

type fakeResolver struct {
	coords map[string]*Coordinates
	err    error
	calls  int64
}

func (f *fakeResolver) Resolve(_ context.Context, postalCode string) (*Coordinates, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return f.coords[postalCode], nil
}

func strPtr(s string) *string { return &s }

func TestRadiusSearch_ValidationBeforeResolution(t *testing.T) {
	geo := &fakeResolver{}
	svc := NewRadiusSearchService(nil, geo, nil)

	cases := []struct {
		postal string
		radius float64
	}{
		{"12345", 5},
		{"1234567", 5},
		{"12a456", 5},
		{"", 5},
		{"510101", 0},
		{"510101", -2},
	}
	for _, tc := range cases {
		_, _, err := svc.Search(context.Background(), tc.postal, tc.radius)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidInput), "postal=%q radius=%v: got %v", tc.postal, tc.radius, err)
	}
	assert.EqualValues(t, 0, atomic.LoadInt64(&geo.calls), "resolver must not run on invalid input")
}

func TestRadiusSearch_UnresolvableCenter(t *testing.T) {
	// DB is nil: reaching the candidate query would panic, so a clean
	// LocationNotFound proves resolution failure short-circuits the search.
	svc := NewRadiusSearchService(nil, &fakeResolver{}, nil)

	_, _, err := svc.Search(context.Background(), "999999", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrLocationNotFound))
}

func TestRadiusSearch_ResolverErrorIsLocationNotFound(t *testing.T) {
	svc := NewRadiusSearchService(nil, &fakeResolver{err: errors.New("provider down")}, nil)

	_, _, err := svc.Search(context.Background(), "510101", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrLocationNotFound))
}

func TestGeocodeBatched_SoftDropsFailures(t *testing.T) {
	geo := &fakeResolver{coords: map[string]*Coordinates{
		"510101": {1.39, 103.88},
		"510103": {1.40, 103.89},
	}}
	svc := NewRadiusSearchService(nil, geo, nil)
	svc.BatchDelay = 0

	candidates := []schoolModel.SchoolModel{
		{PostalCode: strPtr("510101")},
		{PostalCode: strPtr("510102")}, // unknown to the resolver
		{PostalCode: nil},              // malformed row survives, unresolved
		{PostalCode: strPtr("510103")},
	}
	coords := svc.geocodeBatched(context.Background(), candidates)

	require.Len(t, coords, 4)
	assert.NotNil(t, coords[0])
	assert.Nil(t, coords[1])
	assert.Nil(t, coords[2])
	assert.NotNil(t, coords[3])
}

func TestGeocodeBatched_ResolvesEveryCandidateAcrossBatches(t *testing.T) {
	known := map[string]*Coordinates{}
	var candidates []schoolModel.SchoolModel
	for _, p := range []string{"100001", "100002", "100003", "100004", "100005"} {
		known[p] = &Coordinates{1.3, 103.8}
		candidates = append(candidates, schoolModel.SchoolModel{PostalCode: strPtr(p)})
	}
	geo := &fakeResolver{coords: known}
	svc := NewRadiusSearchService(nil, geo, nil)
	svc.BatchSize = 2
	svc.BatchDelay = 0

	coords := svc.geocodeBatched(context.Background(), candidates)
	for i := range coords {
		assert.NotNil(t, coords[i], "candidate %d", i)
	}
	assert.EqualValues(t, 5, atomic.LoadInt64(&geo.calls))
}

func TestFilterByRadius(t *testing.T) {
	center := &Coordinates{1.3000, 103.8000}
	near := &Coordinates{1.3010, 103.8000}  // ~0.11 km
	mid := &Coordinates{1.3200, 103.8000}   // ~2.2 km
	far := &Coordinates{1.4000, 103.8000}   // ~11 km

	candidates := []schoolModel.SchoolModel{
		{SchoolName: "Far"},
		{SchoolName: "Near"},
		{SchoolName: "Unresolved"},
		{SchoolName: "Mid"},
	}
	coords := []*Coordinates{far, near, nil, mid}

	t.Run("keeps in-radius, nearest first, drops unresolved", func(t *testing.T) {
		results, fetched := filterByRadius(center, candidates, coords, 5)
		assert.Equal(t, 3, fetched, "unresolved candidates are not counted as fetched")
		require.Len(t, results, 2)
		assert.Equal(t, "Near", results[0].SchoolName)
		assert.Equal(t, "Mid", results[1].SchoolName)
		assert.Less(t, results[0].DistanceKm, results[1].DistanceKm)
	})

	t.Run("distances round to two decimals", func(t *testing.T) {
		results, _ := filterByRadius(center, candidates, coords, 5)
		for _, r := range results {
			assert.Equal(t, RoundKm(r.DistanceKm), r.DistanceKm)
		}
	})

	t.Run("wide radius keeps all resolved", func(t *testing.T) {
		results, _ := filterByRadius(center, candidates, coords, 100)
		assert.Len(t, results, 3)
	})

	t.Run("zero matches is an empty slice, not nil", func(t *testing.T) {
		results, _ := filterByRadius(center, candidates, coords, 0.01)
		require.NotNil(t, results)
		assert.Len(t, results, 0)
	})
}
