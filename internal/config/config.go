package config

import (
	"time"
)

// Default configuration values.
const (
	defaultServiceName     = "repurposer"
	defaultServiceVersion  = "1.0.0"
	defaultServicePort     = 8085
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
	defaultHashtagPolicy   = "baseline"
	defaultShortFormCap    = 280
	defaultRateLimitRPS    = 50
	defaultRequestTimeout  = 10 * time.Second
	defaultShutdownTimeout = 30 * time.Second
)

// Config holds all configuration for the repurposer service.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Logging  LoggingConfig  `yaml:"logging"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Policies PoliciesConfig `yaml:"policies"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name            string        `yaml:"name"`
	Version         string        `yaml:"version"`
	Port            int           `env:"REPURPOSER_PORT" yaml:"port"`
	Debug           bool          `env:"APP_DEBUG"       yaml:"debug"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	RateLimitRPS    int           `env:"REPURPOSER_RATE_LIMIT_RPS" yaml:"rate_limit_rps"`
	RateLimitBurst  int           `yaml:"rate_limit_burst"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// PipelineConfig holds content pipeline settings.
type PipelineConfig struct {
	// DefaultHashtagPolicy selects the hashtag strategy used when a request
	// does not name one ("baseline" or "optimized").
	DefaultHashtagPolicy string `yaml:"default_hashtag_policy"`

	// ShortFormHardCap is the hard character cap of the short-form channel.
	ShortFormHardCap int `yaml:"short_form_hard_cap"`
}

// PoliciesConfig holds the optional policy-table override store settings.
// When DSN is empty the built-in policy tables are used as-is.
type PoliciesConfig struct {
	Driver string `env:"POLICIES_DB_DRIVER" yaml:"driver"` // "sqlite3" or "postgres"
	DSN    string `env:"POLICIES_DB_DSN"    yaml:"dsn"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	return LoadFileWithDefaults[Config](path, setDefaults)
}

// Default returns a configuration with every default applied, used when no
// config file is present.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setLoggingDefaults(&cfg.Logging)
	setPipelineDefaults(&cfg.Pipeline)
	if cfg.Policies.Driver == "" {
		cfg.Policies.Driver = "sqlite3"
	}
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.RequestTimeout == 0 {
		s.RequestTimeout = defaultRequestTimeout
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = defaultShutdownTimeout
	}
	if s.RateLimitRPS == 0 {
		s.RateLimitRPS = defaultRateLimitRPS
	}
	if s.RateLimitBurst == 0 {
		s.RateLimitBurst = s.RateLimitRPS
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}

func setPipelineDefaults(p *PipelineConfig) {
	if p.DefaultHashtagPolicy == "" {
		p.DefaultHashtagPolicy = defaultHashtagPolicy
	}
	if p.ShortFormHardCap == 0 {
		p.ShortFormHardCap = defaultShortFormCap
	}
}
