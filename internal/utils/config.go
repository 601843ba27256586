package utils

import (
	"time"

	"github.com/ecoflow-tools/ecoflow-tool/internal/client"
	"github.com/ecoflow-tools/ecoflow-tool/pkg/file"
)

// Config represents the structure of the configuration file.
type Config struct {
	API struct {
		Host      string        `yaml:"host"`       // EcoFlow API host (EU accounts use https://api-eu.ecoflow.com)
		AccessKey string        `yaml:"access_key"` // API access key from developer.ecoflow.com
		SecretKey string        `yaml:"secret_key"` // API secret key from developer.ecoflow.com
		Timeout   time.Duration `yaml:"timeout"`    // Timeout for each API request (in seconds)
	} `yaml:"api"`

	Logging struct {
		Level string `yaml:"level"` // Log level (debug, info, warn, error)
	} `yaml:"logging"`
}

// LoadConfig loads the YAML configuration from the specified file and fills
// in defaults for omitted fields. Credentials are passed through opaque and
// are not validated here; the client reports missing keys itself.
func LoadConfig(filename string, fileClient file.FileOperations) (*Config, error) {
	var config Config
	err := fileClient.ReadYamlFile(filename, &config)
	if err != nil {
		return nil, err
	}

	if config.API.Host == "" {
		config.API.Host = client.DefaultAPIHost
	}
	if config.API.Timeout == 0 {
		config.API.Timeout = 30
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}

	return &config, nil
}
