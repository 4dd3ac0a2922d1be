package geosearch

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/facility-resolver/internal/store"
	"github.com/jonathan/facility-resolver/internal/types"
)

// geoStore answers QueryNearby from a canned slice, or defers to the
// coordinate fallback when trigErr is set.
type geoStore struct {
	nearby     []types.GeoResult
	nearbyErr  error
	coords     []types.FacilityRecord
	coordsErr  error
	lastRadius float64
	lastLimit  int
}

func (g *geoStore) QueryNearby(_ context.Context, _, _, radiusMiles float64, limit int) ([]types.GeoResult, error) {
	g.lastRadius = radiusMiles
	g.lastLimit = limit
	if g.nearbyErr != nil {
		return nil, g.nearbyErr
	}
	return g.nearby, nil
}

func (g *geoStore) QueryWithCoordinates(_ context.Context) ([]types.FacilityRecord, error) {
	if g.coordsErr != nil {
		return nil, g.coordsErr
	}
	return g.coords, nil
}

func coordRecord(name string, lat, lon float64) types.FacilityRecord {
	return types.FacilityRecord{FacilityName: name, Latitude: &lat, Longitude: &lon}
}

func TestNearbyAppliesDefaults(t *testing.T) {
	gs := &geoStore{}
	svc := NewService(gs)

	_, err := svc.Nearby(context.Background(), 34.0522, -118.2437, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultRadiusMiles, gs.lastRadius)
	assert.Equal(t, DefaultLimit, gs.lastLimit)
}

func TestNearbyPassesThroughStoreResults(t *testing.T) {
	gs := &geoStore{nearby: []types.GeoResult{
		{Facility: types.FacilityRecord{FacilityName: "Ocean View"}, DistanceMiles: 3.1},
		{Facility: types.FacilityRecord{FacilityName: "Hillcrest"}, DistanceMiles: 9.8},
	}}
	svc := NewService(gs)

	results, err := svc.Nearby(context.Background(), 34.0522, -118.2437, 10, 50)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Ocean View", results[0].Facility.FacilityName)
	assert.False(t, results[0].Approximate)
	assert.InDelta(t, 3.1, results[0].DistanceMiles, 1e-9)
}

func TestNearbyRejectsInvalidCoordinates(t *testing.T) {
	svc := NewService(&geoStore{nearbyErr: errors.New("should never be reached")})

	tests := []struct {
		name             string
		lat, lon, radius float64
		wantField        string
	}{
		{"latitude too high", 91, 0, 25, "latitude"},
		{"latitude too low", -91, 0, 25, "latitude"},
		{"latitude NaN", math.NaN(), 0, 25, "latitude"},
		{"longitude too high", 0, 181, 25, "longitude"},
		{"longitude too low", 0, -181, 25, "longitude"},
		{"longitude infinite", 0, math.Inf(1), 25, "longitude"},
		{"negative radius", 0, 0, -5, "radius_miles"},
		{"radius NaN", 0, 0, math.NaN(), "radius_miles"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Nearby(context.Background(), tt.lat, tt.lon, tt.radius, 10)
			require.Error(t, err)
			var coordErr *InvalidCoordinateError
			require.ErrorAs(t, err, &coordErr)
			assert.Equal(t, tt.wantField, coordErr.Field)
		})
	}
}

func TestNearbyStoreErrorWrapped(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := NewService(&geoStore{nearbyErr: storeErr})

	_, err := svc.Nearby(context.Background(), 34.0522, -118.2437, 25, 50)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), "failed to query nearby facilities")
}

func TestNearbyFallsBackToBoundingBox(t *testing.T) {
	gs := &geoStore{
		nearbyErr: store.ErrTrigUnsupported,
		coords: []types.FacilityRecord{
			coordRecord("Santa Monica Gardens", 34.0195, -118.4912),
			coordRecord("Manhattan Towers", 40.7128, -74.0060),
			{FacilityName: "No Coordinates"},
		},
	}
	svc := NewService(gs)

	results, err := svc.Nearby(context.Background(), 34.0522, -118.2437, 25, 50)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Santa Monica Gardens", results[0].Facility.FacilityName)
	assert.True(t, results[0].Approximate)
	assert.Zero(t, results[0].DistanceMiles)
}

func TestNearbyFallbackHonorsLimit(t *testing.T) {
	coords := make([]types.FacilityRecord, 0, 5)
	for i := 0; i < 5; i++ {
		coords = append(coords, coordRecord("Downtown", 34.05, -118.24))
	}
	gs := &geoStore{nearbyErr: store.ErrTrigUnsupported, coords: coords}
	svc := NewService(gs)

	results, err := svc.Nearby(context.Background(), 34.0522, -118.2437, 25, 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestNearbyFallbackCoordinateErrorWrapped(t *testing.T) {
	coordsErr := errors.New("relation does not exist")
	gs := &geoStore{nearbyErr: store.ErrTrigUnsupported, coordsErr: coordsErr}
	svc := NewService(gs)

	_, err := svc.Nearby(context.Background(), 34.0522, -118.2437, 25, 50)
	require.Error(t, err)
	assert.ErrorIs(t, err, coordsErr)
}

func TestNearbyFallbackEmptyDirectory(t *testing.T) {
	gs := &geoStore{nearbyErr: store.ErrTrigUnsupported}
	svc := NewService(gs)

	results, err := svc.Nearby(context.Background(), 34.0522, -118.2437, 25, 50)
	require.NoError(t, err)
	assert.Empty(t, results)
}
