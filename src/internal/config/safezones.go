package config

import (
	"skillswitch-service/src/pkg/geo"

	"github.com/spf13/viper"
)

var campusCenter = geo.Point{Lat: 37.7749, Lng: -122.4194}

const campusTimezone = "America/Los_Angeles"

// DefaultSafeZones is used when no zones are configured under "safezones".
func DefaultSafeZones() []geo.Zone {
	return []geo.Zone{
		{
			ID: "1", Name: "Campus Library", Type: "library", RadiusMeters: 100, Timezone: campusTimezone,
			Description: "Main university library with study rooms",
			Location:    geo.Point{Lat: 37.7749, Lng: -122.4194},
			OpenHours:   &geo.OpenHours{Open: "08:00", Close: "22:00"},
		},
		{
			ID: "2", Name: "Student Coffee House", Type: "cafe", RadiusMeters: 100, Timezone: campusTimezone,
			Description: "Popular cafe for study groups",
			Location:    geo.Point{Lat: 37.7759, Lng: -122.4184},
			OpenHours:   &geo.OpenHours{Open: "07:00", Close: "20:00"},
		},
		{
			ID: "3", Name: "Student Center", Type: "campus", RadiusMeters: 100, Timezone: campusTimezone,
			Description: "Main student activity center",
			Location:    geo.Point{Lat: 37.7739, Lng: -122.4204},
			OpenHours:   &geo.OpenHours{Open: "06:00", Close: "23:00"},
		},
		{
			ID: "4", Name: "Study Hall", Type: "study_hall", RadiusMeters: 100, Timezone: campusTimezone,
			Description: "24/7 study space for students",
			Location:    geo.Point{Lat: 37.7769, Lng: -122.4174},
		},
	}
}

func LoadSafeZones(v *viper.Viper) []geo.Zone {
	if !v.IsSet("safezones") {
		return DefaultSafeZones()
	}
	var zones []geo.Zone
	if err := v.UnmarshalKey("safezones", &zones); err != nil {
		panic(err)
	}
	return zones
}

func LoadDefaultLocation(v *viper.Viper) geo.Point {
	if !v.IsSet("geo.default") {
		return campusCenter
	}
	return geo.Point{Lat: v.GetFloat64("geo.default.lat"), Lng: v.GetFloat64("geo.default.lng")}
}
