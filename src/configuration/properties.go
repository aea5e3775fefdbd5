package configuration

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type (
	Properties struct {
		LogLevel string `env:"LOG_LEVEL" envDefault:"INFO"`

		// Shared secret for the optional X-API-Key header. The default is
		// a development value and must be overridden in any real
		// deployment.
		APIKey string `env:"API_KEY" envDefault:"dev-api-key-12345"`

		Server  HttpServerProperties `envPrefix:"HTTP_"`
		Storage StorageProperties    `envPrefix:"STORAGE_"`
	}

	HttpServerProperties struct {
		Name        string        `env:"NAME" envDefault:"image-analysis-api"`
		Port        string        `env:"PORT" envDefault:"8000"`
		ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	}

	StorageProperties struct {
		Dir string `env:"DIR" envDefault:"./uploads"`
	}
)

func ReadProperties() *Properties {
	config := &Properties{}

	if err := env.Parse(config); err != nil {
		panic(fmt.Errorf("read config error: %w", err))
	}
	return config
}
