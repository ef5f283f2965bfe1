package directions

import (
	"context"
	"errors"
	"testing"
	"time"

	"skillswitch-service/src/pkg/geo"
	"skillswitch-service/src/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

type fakeAPI struct {
	routes []maps.Route
	err    error
	got    *maps.DirectionsRequest
}

func (f *fakeAPI) Directions(ctx context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error) {
	f.got = r
	return f.routes, nil, f.err
}

func leg(meters int, d time.Duration) *maps.Leg {
	return &maps.Leg{Distance: maps.Distance{Meters: meters}, Duration: d}
}

func TestWalkingRoutePicksShortest(t *testing.T) {
	api := &fakeAPI{routes: []maps.Route{
		{Legs: []*maps.Leg{leg(900, 11*time.Minute)}},
		{Legs: []*maps.Leg{leg(300, 3*time.Minute), leg(200, 2*time.Minute+10*time.Second)}},
	}}
	c := NewClient(api, time.Second, log.Discard())

	got, err := c.WalkingRoute(context.Background(), geo.Point{Lat: 1, Lng: 2}, geo.Point{Lat: 3, Lng: 4})
	require.NoError(t, err)
	assert.Equal(t, 500, got.DistanceMeters)
	assert.Equal(t, 6, got.DurationMinutes)
	assert.Equal(t, "6 mins", got.Duration)
	assert.Equal(t, maps.TravelModeWalking, api.got.Mode)
	assert.Equal(t, "1.000000,2.000000", api.got.Origin)
}

func TestWalkingRouteErrors(t *testing.T) {
	c := NewClient(&fakeAPI{}, time.Second, log.Discard())
	_, err := c.WalkingRoute(context.Background(), geo.Point{}, geo.Point{})
	assert.ErrorIs(t, err, ErrNoRoute)

	boom := errors.New("REQUEST_DENIED")
	c = NewClient(&fakeAPI{err: boom}, time.Second, log.Discard())
	_, err = c.WalkingRoute(context.Background(), geo.Point{}, geo.Point{})
	assert.ErrorIs(t, err, boom)
}
