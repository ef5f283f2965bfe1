package config

import (
	"skillswitch-service/src/internal/gateway/directions"
	"skillswitch-service/src/pkg/geo"
	"skillswitch-service/src/pkg/log"

	"github.com/spf13/viper"
	"googlemaps.github.io/maps"
)

type GeoService struct {
	Client          *maps.Client
	Routes          directions.RouteFinder
	Zones           []geo.Zone
	DefaultLocation geo.Point
}

// NewGeoService loads the safe zones; walking routes are only available with a maps API key.
func NewGeoService(viper *viper.Viper, log log.Log) (*GeoService, error) {
	service := &GeoService{
		Zones:           LoadSafeZones(viper),
		DefaultLocation: LoadDefaultLocation(viper),
	}

	key := viper.GetString("thirdparty.google.api_key")
	if key == "" {
		log.Info("geo-config", "maps api key not set, walking routes disabled", "NewGeoService", "")
		return service, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(key))
	if err != nil {
		return nil, err
	}
	service.Client = client
	service.Routes = directions.NewClient(client, viper.GetDuration("thirdparty.google.timeout"), log)
	return service, nil
}
