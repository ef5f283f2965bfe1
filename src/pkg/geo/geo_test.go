package geo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var campus = []Zone{
	{ID: "1", Name: "Campus Library", Location: Point{Lat: 37.7749, Lng: -122.4194}, RadiusMeters: 100},
	{ID: "2", Name: "Student Coffee House", Location: Point{Lat: 37.7759, Lng: -122.4184}, RadiusMeters: 100},
	{ID: "3", Name: "Student Center", Location: Point{Lat: 37.7739, Lng: -122.4204}, RadiusMeters: 100},
	{ID: "4", Name: "Study Hall", Location: Point{Lat: 37.7769, Lng: -122.4174}, RadiusMeters: 100},
}

func TestDistanceSamePointIsZero(t *testing.T) {
	zone := Zone{ID: "a", Location: Point{Lat: 23.0356, Lng: 72.5063}, RadiusMeters: 100}

	got, d, err := Nearest(Point{Lat: 23.0356, Lng: 72.5063}, []Zone{zone})
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, 0.0, d)
	assert.True(t, WithinGeofence(d, got))
}

func TestDistanceIsSymmetric(t *testing.T) {
	points := []Point{
		{Lat: 37.7749, Lng: -122.4194},
		{Lat: 23.0356, Lng: 72.5063},
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 0, Lng: 0},
		{Lat: 51.5074, Lng: -0.1278},
	}
	for _, a := range points {
		for _, b := range points {
			assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-6)
		}
	}
}

func TestDistanceKnownValue(t *testing.T) {
	// London to Paris is roughly 343.5 km.
	d := Distance(Point{Lat: 51.5074, Lng: -0.1278}, Point{Lat: 48.8566, Lng: 2.3522})
	assert.InDelta(t, 343_500, d, 1_500)
}

func TestNearestPicksMinimum(t *testing.T) {
	tests := []struct {
		name   string
		point  Point
		wantID string
	}{
		{name: "on library", point: Point{Lat: 37.7749, Lng: -122.4194}, wantID: "1"},
		{name: "near study hall", point: Point{Lat: 37.7770, Lng: -122.4173}, wantID: "4"},
		{name: "south west of center", point: Point{Lat: 37.7730, Lng: -122.4210}, wantID: "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, d, err := Nearest(tt.point, campus)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
			for _, z := range campus {
				assert.LessOrEqual(t, d, Distance(tt.point, z.Location))
			}
		})
	}
}

func TestNearestTieKeepsListOrder(t *testing.T) {
	same := Point{Lat: 10, Lng: 10}
	zones := []Zone{
		{ID: "first", Location: same, RadiusMeters: 5},
		{ID: "second", Location: same, RadiusMeters: 50},
	}
	got, _, err := Nearest(Point{Lat: 10.001, Lng: 10}, zones)
	require.NoError(t, err)
	assert.Equal(t, "first", got.ID)
}

func TestNearestEmpty(t *testing.T) {
	_, _, err := Nearest(Point{}, nil)
	assert.ErrorIs(t, err, ErrNoZones)
}

func TestWithinGeofenceBoundary(t *testing.T) {
	z := Zone{RadiusMeters: 100}
	assert.True(t, WithinGeofence(99.99, z))
	assert.True(t, WithinGeofence(100, z))
	assert.False(t, WithinGeofence(100.0001, z))
}

func TestZoneIsOpen(t *testing.T) {
	day := func(h, m int) time.Time { return time.Date(2024, 3, 1, h, m, 0, 0, time.UTC) }
	library := Zone{OpenHours: &OpenHours{Open: "08:00", Close: "22:00"}}
	lateNight := Zone{OpenHours: &OpenHours{Open: "20:00", Close: "02:00"}}
	pacificLibrary := Zone{Timezone: "America/Los_Angeles", OpenHours: library.OpenHours}
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	tests := []struct {
		name string
		zone Zone
		at   time.Time
		want bool
	}{
		{name: "no hours", zone: Zone{}, at: day(3, 0), want: true},
		{name: "before open", zone: library, at: day(7, 59), want: false},
		{name: "at open", zone: library, at: day(8, 0), want: true},
		{name: "at close", zone: library, at: day(22, 0), want: false},
		{name: "past midnight", zone: lateNight, at: day(1, 30), want: true},
		{name: "midday overnight zone", zone: lateNight, at: day(12, 0), want: false},
		{name: "bad format", zone: Zone{OpenHours: &OpenHours{Open: "8am", Close: "x"}}, at: day(3, 0), want: true},
		{name: "campus morning", zone: pacificLibrary, at: day(17, 0), want: true},
		{name: "campus late evening", zone: pacificLibrary, at: day(7, 0), want: false},
		{name: "no timezone reads utc", zone: lateNight, at: day(12, 0).In(tokyo), want: false},
		{name: "unknown timezone reads utc", zone: Zone{Timezone: "Mars/Base", OpenHours: library.OpenHours}, at: day(12, 0), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.zone.IsOpen(tt.at))
		})
	}
}
