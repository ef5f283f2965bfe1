// Package geo evaluates distances between coordinates and the safe-zone geofence.
package geo

import (
	"errors"
	"math"
	"time"
	_ "time/tzdata"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6371000.0

var ErrNoZones = errors.New("no safe zones configured")

type Point struct {
	Lat float64 `json:"lat" mapstructure:"lat"`
	Lng float64 `json:"lng" mapstructure:"lng"`
}

// OpenHours uses "HH:MM" wall-clock strings; Close is exclusive.
type OpenHours struct {
	Open  string `json:"open" mapstructure:"open"`
	Close string `json:"close" mapstructure:"close"`
}

type Zone struct {
	ID           string     `json:"id" mapstructure:"id"`
	Name         string     `json:"name" mapstructure:"name"`
	Description  string     `json:"description" mapstructure:"description"`
	Type         string     `json:"type" mapstructure:"type"`
	Location     Point      `json:"location" mapstructure:"location"`
	RadiusMeters float64    `json:"radius" mapstructure:"radius"`
	OpenHours    *OpenHours `json:"openHours,omitempty" mapstructure:"open_hours"`
	Timezone     string     `json:"timezone,omitempty" mapstructure:"timezone"`
}

// Distance returns the great-circle distance in meters.
func Distance(a, b Point) float64 {
	phi1 := a.Lat * math.Pi / 180
	phi2 := b.Lat * math.Pi / 180
	dPhi := (b.Lat - a.Lat) * math.Pi / 180
	dLambda := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusMeters * c
}

// Nearest returns the closest zone; on equal distances the earlier zone wins.
func Nearest(p Point, zones []Zone) (Zone, float64, error) {
	if len(zones) == 0 {
		return Zone{}, 0, ErrNoZones
	}
	best := 0
	bestDist := Distance(p, zones[0].Location)
	for i := 1; i < len(zones); i++ {
		if d := Distance(p, zones[i].Location); d < bestDist {
			best, bestDist = i, d
		}
	}
	return zones[best], bestDist, nil
}

// WithinGeofence is inclusive at the boundary.
func WithinGeofence(distance float64, zone Zone) bool {
	return distance <= zone.RadiusMeters
}

// IsOpen reports whether t, read on the zone's wall clock (IANA Timezone, UTC when empty), falls inside its hours.
// Zones without hours, or with unparsable hours, are treated as always open.
func (z Zone) IsOpen(t time.Time) bool {
	if z.OpenHours == nil {
		return true
	}
	t = z.localTime(t)
	open, err1 := time.Parse("15:04", z.OpenHours.Open)
	closing, err2 := time.Parse("15:04", z.OpenHours.Close)
	if err1 != nil || err2 != nil {
		return true
	}
	now := t.Hour()*60 + t.Minute()
	from := open.Hour()*60 + open.Minute()
	to := closing.Hour()*60 + closing.Minute()
	if from <= to {
		return now >= from && now < to
	}
	// spans midnight
	return now >= from || now < to
}

// localTime falls back to UTC when the timezone is empty or unknown.
func (z Zone) localTime(t time.Time) time.Time {
	if z.Timezone == "" {
		return t.UTC()
	}
	loc, err := time.LoadLocation(z.Timezone)
	if err != nil {
		return t.UTC()
	}
	return t.In(loc)
}
