package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"paybatch/internal/http"
	"paybatch/internal/sqlite"
)

type Config struct {
	LogLevel int `envconfig:"LOG_LEVEL" default:"-4"`

	// BanksPath overrides the embedded bank catalog with an external YAML
	// file, so banks can be added without a rebuild.
	BanksPath string `envconfig:"BANKS_PATH" default:""`

	Database sqlite.Config
	HTTP     http.Config
}

func Load() (Config, error) {
	var config Config
	err := envconfig.Process("", &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process config: %w", err)
	}

	return config, nil
}
