package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeOneMap(t *testing.T, known map[string][2]string) (*httptest.Server, *int64) {
	t.Helper()
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		postal := r.URL.Query().Get("searchVal")
		w.Header().Set("Content-Type", "application/json")
		if coords, ok := known[postal]; ok {
			fmt.Fprintf(w, `{"found":1,"results":[{"SEARCHVAL":"%s","LATITUDE":"%s","LONGITUDE":"%s"}]}`,
				postal, coords[0], coords[1])
			return
		}
		fmt.Fprint(w, `{"found":0,"results":[]}`)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestOneMapClient_ResolveAndCache(t *testing.T) {
	srv, calls := newFakeOneMap(t, map[string][2]string{
		"510101": {"1.3915", "103.8860"},
	})
	c := NewOneMapClient(srv.URL)

	first, err := c.Resolve(context.Background(), "510101")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.InDelta(t, 1.3915, first.Latitude, 1e-9)
	assert.InDelta(t, 103.8860, first.Longitude, 1e-9)

	// Second resolution is a cache hit: identical coords, no second call.
	second, err := c.Resolve(context.Background(), "510101")
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
	assert.EqualValues(t, 1, atomic.LoadInt64(calls))
}

func TestOneMapClient_MalformedPostalSkipsUpstream(t *testing.T) {
	srv, calls := newFakeOneMap(t, nil)
	c := NewOneMapClient(srv.URL)

	for _, bad := range []string{"", "12345", "1234567", "12a456"} {
		coords, err := c.Resolve(context.Background(), bad)
		require.NoError(t, err)
		assert.Nil(t, coords)
	}
	assert.EqualValues(t, 0, atomic.LoadInt64(calls))
}

func TestOneMapClient_DistrictFallback(t *testing.T) {
	srv, _ := newFakeOneMap(t, nil) // provider knows nothing
	c := NewOneMapClient(srv.URL)

	// Sector 20 (Ang Mo Kio area) exists in the fallback table.
	coords, err := c.Resolve(context.Background(), "209999")
	require.NoError(t, err)
	require.NotNil(t, coords)
	assert.InDelta(t, 1.3521, coords.Latitude, 1e-6)

	// Sector 99 does not: unresolvable → (nil, nil).
	coords, err = c.Resolve(context.Background(), "999999")
	require.NoError(t, err)
	assert.Nil(t, coords)
}

func TestOneMapClient_CachesMisses(t *testing.T) {
	srv, calls := newFakeOneMap(t, nil)
	c := NewOneMapClient(srv.URL)

	_, _ = c.Resolve(context.Background(), "999999")
	_, _ = c.Resolve(context.Background(), "999999")
	assert.EqualValues(t, 1, atomic.LoadInt64(calls))
}

func TestOneMapClient_UpstreamFailureFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	c := NewOneMapClient(srv.URL)

	// District centroid still answers when the provider is down.
	coords, err := c.Resolve(context.Background(), "019999")
	require.NoError(t, err)
	require.NotNil(t, coords)

	// No fallback sector → the upstream error surfaces.
	_, err = c.Resolve(context.Background(), "999999")
	assert.Error(t, err)
}
