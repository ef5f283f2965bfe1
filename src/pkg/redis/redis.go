package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewClient connects to a single node or a cluster and pings it once.
func NewClient(ctx context.Context, cfg Config) (redis.UniversalClient, error) {
	var client redis.UniversalClient

	if !cfg.UseCluster {
		var tlsConf *tls.Config
		if cfg.Single.EnableTLS {
			tlsConf = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		client = redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%s", cfg.Single.Host, cfg.Single.Port),
			Password:     cfg.Single.Password,
			DB:           cfg.Single.DB,
			TLSConfig:    tlsConf,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolSize:     10,
			MaxRetries:   2,
		})
	} else {
		var tlsConf *tls.Config
		if cfg.Cluster.EnableTLS {
			tlsConf = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		client = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:        cfg.Cluster.Hosts,
			Password:     cfg.Cluster.Password,
			TLSConfig:    tlsConf,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cannot connect to redis: %w", err)
	}
	return client, nil
}
