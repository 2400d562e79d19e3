package config

import (
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
)

// Config holds all configuration from environment variables.
type Config struct {
	Token string `envconfig:"TELEGRAM_API_TOKEN" required:"true"`

	// Content locations
	QuotesDir string `envconfig:"QUOTES_DIR" default:"quotes"`
	ImagesDir string `envconfig:"IMAGES_DIR" default:"images"`

	// Category catalog file (TOML); built-in defaults apply when absent
	CatalogFile string `envconfig:"CATALOG_FILE" default:"catalog.toml"`

	// Anti-repeat state persistence. StateFile is resolved under DataDir
	// when relative. When DatabaseURL is set, state lives in Postgres
	// instead of the file.
	DataDir     string `envconfig:"DATA_DIR" default:"data"`
	StateFile   string `envconfig:"STATE_FILE" default:"state.json"`
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// Liveness endpoint
	HealthAddr string `envconfig:"HEALTH_ADDR" default:":8080"`
}

// LoadEnv loads the configuration from environment variables.
func (c Config) LoadEnv() (Config, error) {
	cfg := c

	if err := envconfig.Process("", &cfg); err != nil {
		return c, err
	}

	return cfg, nil
}

// StatePath returns the resolved location of the state file.
func (c *Config) StatePath() string {
	if filepath.IsAbs(c.StateFile) {
		return c.StateFile
	}
	return filepath.Join(c.DataDir, c.StateFile)
}

func NewConfig() (*Config, error) {
	var cfg Config
	loadedCfg, err := cfg.LoadEnv()
	if err != nil {
		return nil, err
	}

	return &loadedCfg, nil
}

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(
			NewConfig,
		),
	)
}
