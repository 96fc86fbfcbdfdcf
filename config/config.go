// Package config loads application configuration with viper.
//
// Precedence (highest first): explicit overrides by the caller (command-line
// flags), PRECATORIO_* environment variables, the config file, defaults.
// The config file is optional.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/warp/precatorio-engine/generic"
	"github.com/warp/precatorio-engine/precatorio"
)

// EnvPrefix prefixes every environment variable, e.g. PRECATORIO_SERVER_PORT.
const EnvPrefix = "PRECATORIO"

// Config is the full application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Rates    RatesConfig    `mapstructure:"rates"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	StaticDir      string        `mapstructure:"static_dir"`
}

type DatabaseConfig struct {
	// Path of the SQLite file. ":memory:" keeps cases in memory only.
	Path string `mapstructure:"path"`
}

// RatesConfig holds the default annual rates in percent per year.
type RatesConfig struct {
	Correction float64 `mapstructure:"correction"`
	Interest   float64 `mapstructure:"interest"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // console, json
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173", "http://localhost:8080"})
	v.SetDefault("server.static_dir", "./web/dist")
	v.SetDefault("database.path", "precatorio.db")
	v.SetDefault("rates.correction", precatorio.DefaultCorrectionRate)
	v.SetDefault("rates.interest", precatorio.DefaultInterestRate)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (if path is non-empty, or precatorio.yaml in
// the working directory if present) and decodes the configuration.
func Load(path string) (*Config, error) {
	v := New()
	if err := ReadFile(v, path); err != nil {
		return nil, err
	}
	return Decode(v)
}

// ReadFile reads path into v. With an empty path it looks for an optional
// precatorio.yaml in the working directory.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("precatorio")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Decode unmarshals v into a validated Config.
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}
	if c.Rates.Correction < 0 || c.Rates.Interest < 0 {
		return fmt.Errorf("rates must not be negative (correction %v, interest %v)",
			c.Rates.Correction, c.Rates.Interest)
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// DefaultRates converts the configured rates for the engine.
func (c *Config) DefaultRates() precatorio.Rates {
	return precatorio.Rates{
		Correction: generic.NewRate(c.Rates.Correction),
		Interest:   generic.NewRate(c.Rates.Interest),
	}
}
