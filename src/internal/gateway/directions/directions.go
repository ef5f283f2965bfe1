package directions

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"skillswitch-service/src/internal/model"
	"skillswitch-service/src/pkg/geo"
	"skillswitch-service/src/pkg/log"
	"skillswitch-service/src/pkg/utils"

	"googlemaps.github.io/maps"
)

var ErrNoRoute = errors.New("no walking route found")

// API is the slice of *maps.Client we use.
type API interface {
	Directions(ctx context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error)
}

type RouteFinder interface {
	WalkingRoute(ctx context.Context, from, to geo.Point) (*model.WalkingRoute, error)
}

type Client struct {
	API     API
	Timeout time.Duration
	Log     log.Log
}

func NewClient(api API, timeout time.Duration, logger log.Log) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{API: api, Timeout: timeout, Log: logger}
}

// WalkingRoute returns the shortest walking alternative between two points.
func (c *Client) WalkingRoute(ctx context.Context, from, to geo.Point) (*model.WalkingRoute, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	origin := fmt.Sprintf("%f,%f", from.Lat, from.Lng)
	destination := fmt.Sprintf("%f,%f", to.Lat, to.Lng)
	req := &maps.DirectionsRequest{
		Origin:       origin,
		Destination:  destination,
		Mode:         maps.TravelModeWalking,
		Alternatives: true,
	}

	routes, _, err := c.API.Directions(ctx, req)
	if err != nil {
		c.Log.Error("gateway/directions", err.Error(), "WalkingRoute", fmt.Sprintf("Origin: %s, Destination: %s", origin, destination))
		return nil, fmt.Errorf("error making directions request: %w", err)
	}
	if len(routes) == 0 {
		return nil, ErrNoRoute
	}

	best := -1
	var bestMeters int
	var bestSeconds float64
	for i, route := range routes {
		meters := 0
		seconds := 0.0
		for _, leg := range route.Legs {
			if leg == nil {
				continue
			}
			meters += leg.Distance.Meters
			seconds += leg.Duration.Seconds()
		}
		if best < 0 || meters < bestMeters {
			best, bestMeters, bestSeconds = i, meters, seconds
		}
	}

	minutes := int(math.Ceil(bestSeconds / 60))
	return &model.WalkingRoute{
		DistanceMeters:  bestMeters,
		DurationMinutes: minutes,
		Duration:        utils.FormatDuration(minutes),
	}, nil
}
