package model

import "skillswitch-service/src/pkg/geo"

type CheckLocationRequest struct {
	UserID      string  `json:"-"`
	Lat         float64 `json:"lat" validate:"latitude"`
	Lng         float64 `json:"lng" validate:"longitude"`
	HasLocation bool    `json:"hasLocation"`
	SessionID   string  `json:"sessionId,omitempty" validate:"max=100"`
}

type WalkingRoute struct {
	DistanceMeters  int    `json:"distanceMeters"`
	DurationMinutes int    `json:"durationMinutes"`
	Duration        string `json:"duration"`
}

type SafeZoneCheckResponse struct {
	Zone                 geo.Zone      `json:"zone"`
	UserLocation         geo.Point     `json:"userLocation"`
	DistanceMeters       float64       `json:"distanceMeters"`
	DisplayDistance      int           `json:"displayDistance"`
	WithinGeofence       bool          `json:"withinGeofence"`
	OpenNow              bool          `json:"openNow"`
	UsingDefaultLocation bool          `json:"usingDefaultLocation"`
	MapsEnabled          bool          `json:"mapsEnabled"`
	Route                *WalkingRoute `json:"route"`
}
