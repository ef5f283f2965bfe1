package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"skillswitch-service/src/internal/gateway/directions"
	"skillswitch-service/src/internal/model"
	"skillswitch-service/src/pkg/geo"
	httpError "skillswitch-service/src/pkg/http-error"
	"skillswitch-service/src/pkg/log"
	"skillswitch-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type SafeZoneUseCase struct {
	Log             log.Log
	Validate        *validator.Validate
	Zones           []geo.Zone
	DefaultLocation geo.Point
	Routes          directions.RouteFinder
	Analytics       EventTracker
	Now             func() time.Time
}

func NewSafeZoneUseCase(
	logger log.Log,
	validate *validator.Validate,
	zones []geo.Zone,
	defaultLocation geo.Point,
	routes directions.RouteFinder,
	analytics EventTracker,
) *SafeZoneUseCase {
	return &SafeZoneUseCase{
		Log:             logger,
		Validate:        validate,
		Zones:           zones,
		DefaultLocation: defaultLocation,
		Routes:          routes,
		Analytics:       analytics,
		Now:             time.Now,
	}
}

func (c *SafeZoneUseCase) List(ctx context.Context) utils.Result {
	zones := make([]geo.Zone, len(c.Zones))
	copy(zones, c.Zones)
	return utils.Result{Data: zones}
}

// Check finds the nearest safe zone to the caller. Without a device location the campus default is used.
func (c *SafeZoneUseCase) Check(ctx context.Context, request *model.CheckLocationRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	point := geo.Point{Lat: request.Lat, Lng: request.Lng}
	usingDefault := !request.HasLocation
	if usingDefault {
		point = c.DefaultLocation
	}

	zone, dist, err := geo.Nearest(point, c.Zones)
	if err != nil {
		if errors.Is(err, geo.ErrNoZones) {
			errObj := httpError.NewServiceUnavailable()
			errObj.Message = "no safe zones are configured"
			result.Error = errObj
			return result
		}
		result.Error = err
		return result
	}

	res := model.SafeZoneCheckResponse{
		Zone:                 zone,
		UserLocation:         point,
		DistanceMeters:       dist,
		DisplayDistance:      int(math.Round(dist)),
		WithinGeofence:       geo.WithinGeofence(dist, zone),
		OpenNow:              zone.IsOpen(c.Now()),
		UsingDefaultLocation: usingDefault,
		MapsEnabled:          c.Routes != nil,
	}
	if c.Routes != nil {
		route, err := c.Routes.WalkingRoute(ctx, point, zone.Location)
		if err != nil {
			c.Log.Error("safezone-usecase", err.Error(), "Check", zone.ID)
		} else {
			res.Route = route
		}
	}

	if c.Analytics != nil {
		c.Analytics.Track(model.EventGeofenceCheck, request.UserID, map[string]interface{}{
			"zone_id": zone.ID, "distance": res.DisplayDistance, "within": res.WithinGeofence,
			"default_location": usingDefault,
		})
		if res.WithinGeofence && request.SessionID != "" {
			c.Analytics.Track(model.EventSessionStart, request.UserID, map[string]interface{}{
				"session_id": request.SessionID, "zone_id": zone.ID,
			})
		}
	}

	result.Data = res
	return result
}
