package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// NewViper reads config.yaml from CONFIG_PATH (default ./); SKILLSWITCH_* env vars override it.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./"
	}
	v.AddConfigPath(path)

	v.SetEnvPrefix("SKILLSWITCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(err)
		}
	}
	return v
}
