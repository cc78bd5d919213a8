package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Generator kinds.
const (
	GeneratorExec = "exec"
	GeneratorFile = "file"
)

// Config is the runtime configuration, read from the environment.
type Config struct {
	ServiceName string `envconfig:"SERVICE_NAME" default:"crossword-api"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogOutput   string `envconfig:"LOG_OUTPUT" default:"stdout"`

	HTTPAddr          string        `envconfig:"HTTP_ADDR" default:":8080"`
	ReadHeaderTimeout time.Duration `envconfig:"HTTP_READ_HEADER_TIMEOUT" default:"5s"`
	ShutdownTimeout   time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"10s"`

	// Generator
	GeneratorKind    string        `envconfig:"GENERATOR_KIND" default:"exec"`
	GeneratorCommand string        `envconfig:"GENERATOR_COMMAND" default:"python3 crossWord.py"`
	GeneratorDir     string        `envconfig:"GENERATOR_DIR" default:""`
	GeneratorFormat  string        `envconfig:"GENERATOR_FORMAT" default:"grid"`
	GeneratorTimeout time.Duration `envconfig:"GENERATOR_TIMEOUT" default:"0s"`
	GeneratorFile    string        `envconfig:"GENERATOR_FILE" default:""`
	RevealCount      int           `envconfig:"GENERATOR_REVEAL_COUNT" default:"10"`

	// Telemetry
	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	TracingEnabled bool   `envconfig:"TRACING_ENABLED" default:"false"`
	TracingOutput  string `envconfig:"TRACING_OUTPUT" default:""`
}

// Load reads the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	cfg.GeneratorKind = strings.ToLower(strings.TrimSpace(cfg.GeneratorKind))
	cfg.GeneratorFormat = strings.ToLower(strings.TrimSpace(cfg.GeneratorFormat))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerations and required companions.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ServiceName) == "" {
		return fmt.Errorf("SERVICE_NAME must be provided")
	}
	switch c.GeneratorKind {
	case GeneratorExec:
		if strings.TrimSpace(c.GeneratorCommand) == "" {
			return fmt.Errorf("GENERATOR_COMMAND must be provided when GENERATOR_KIND=exec")
		}
	case GeneratorFile:
		if strings.TrimSpace(c.GeneratorFile) == "" {
			return fmt.Errorf("GENERATOR_FILE must be provided when GENERATOR_KIND=file")
		}
	default:
		return fmt.Errorf("unsupported GENERATOR_KIND %q", c.GeneratorKind)
	}
	switch c.GeneratorFormat {
	case "json", "grid":
	default:
		return fmt.Errorf("unsupported GENERATOR_FORMAT %q", c.GeneratorFormat)
	}
	if c.RevealCount < 0 {
		return fmt.Errorf("GENERATOR_REVEAL_COUNT must not be negative")
	}
	if c.GeneratorTimeout < 0 {
		return fmt.Errorf("GENERATOR_TIMEOUT must not be negative")
	}
	return nil
}
