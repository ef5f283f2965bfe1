package redis

import (
	"strings"
)

type CfgRedis struct {
	UseCluster           bool
	EnableTLS            bool
	RedisHost            string
	RedisPort            string
	RedisPassword        string
	RedisDB              int
	RedisClusterNode     string
	RedisClusterPassword string
}

type RedisConfig struct {
	Host      string
	Port      string
	Password  string
	DB        int
	EnableTLS bool
}

type RedisClusterConfig struct {
	Hosts     []string
	Password  string
	EnableTLS bool
}

// Config is the resolved connection setup for either a single node or a cluster.
type Config struct {
	UseCluster bool
	Single     RedisConfig
	Cluster    RedisClusterConfig
}

func LoadConfig(cfg *CfgRedis) Config {
	host := cfg.RedisHost
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.RedisPort
	if port == "" {
		port = "6379"
	}

	var nodes []string
	for _, node := range strings.Split(cfg.RedisClusterNode, ";") {
		if node = strings.TrimSpace(node); node != "" {
			nodes = append(nodes, node)
		}
	}

	return Config{
		UseCluster: cfg.UseCluster,
		Single: RedisConfig{
			Host:      host,
			Port:      port,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			EnableTLS: cfg.EnableTLS,
		},
		Cluster: RedisClusterConfig{
			Hosts:     nodes,
			Password:  cfg.RedisClusterPassword,
			EnableTLS: cfg.EnableTLS,
		},
	}
}
