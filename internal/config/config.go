// Package config loads the process configuration from the environment
// and validates it before anything else is wired up.
package config

import (
	"time"

	"github.com/la-castro-web/solanapix/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces every environment variable (e.g.,
// SOLANAPIX_RPC_ENDPOINT).
const envPrefix = "solanapix"

// Redis holds the optional cache backend settings. The caches are only
// wired when Addr is set.
type Redis struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Username string `envconfig:"REDIS_USERNAME"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`

	RecordTTL time.Duration `envconfig:"REDIS_RECORD_TTL" default:"24h"`
	RateTTL   time.Duration `envconfig:"REDIS_RATE_TTL" default:"1m"`
}

// Config is the full process configuration.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	RPCEndpoint    string        `envconfig:"RPC_ENDPOINT" validate:"required,url"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"5s"`

	ReportingCurrency string `envconfig:"REPORTING_CURRENCY" default:"brl"`
	CoinGeckoBaseURL  string `envconfig:"COINGECKO_BASE_URL" default:"https://api.coingecko.com/api/v3"`

	HistoryWindow    int `envconfig:"HISTORY_WINDOW" default:"20" validate:"gt=0"`
	StatsWindow      int `envconfig:"STATS_WINDOW" default:"50" validate:"gt=0"`
	FetchConcurrency int `envconfig:"FETCH_CONCURRENCY" default:"8" validate:"gt=0"`

	TelemetryEnabled bool `envconfig:"TELEMETRY_ENABLED" default:"false"`

	Redis Redis
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
