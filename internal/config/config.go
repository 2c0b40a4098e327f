// Package config handles configuration loading from a YAML file and
// environment variables.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/flosswash/swish"
)

// Sink names accepted by LogSink.
const (
	SinkStdout  = "stdout"
	SinkZerolog = "zerolog"
)

// Config holds all application configuration.
type Config struct {
	// ListenAddr is the address:port the server listens on.
	ListenAddr string `yaml:"listen_addr"`

	// HttpLogging enables the swish access log.
	HttpLogging bool `yaml:"http_logging"`

	// EnablePprof mounts the /debug/pprof handlers.
	EnablePprof bool `yaml:"enable_pprof"`

	// CORSOrigins lists the allowed CORS origins. Empty disables CORS.
	CORSOrigins []string `yaml:"cors_origins"`

	// LogSink selects where access lines go: "stdout" or "zerolog".
	LogSink string `yaml:"log_sink"`

	// Swish configures the access log format.
	Swish swish.Options `yaml:"swish"`

	// envErrs collects environment values that could not be parsed.
	envErrs []string
}

// Load reads configuration from the YAML file named by SWISH_CONFIG_PATH
// (default "swish.yaml"), if present, and then applies environment
// overrides.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:  ":3000",
		HttpLogging: true,
		LogSink:     SinkStdout,
	}

	configPath := getEnv("SWISH_CONFIG_PATH", "swish.yaml")
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	overrideFromEnv(cfg)
	return cfg, nil
}

func overrideFromEnv(cfg *Config) {
	cfg.ListenAddr = getEnv("LISTEN_ADDR", cfg.ListenAddr)
	cfg.LogSink = getEnv("SWISH_SINK", cfg.LogSink)
	if v := os.Getenv("SWISH_LEVEL"); v != "" {
		cfg.Swish.Level = swish.Level(v)
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = strings.Split(v, ",")
	}
	if b, ok := getEnvBool(cfg, "HTTP_LOGGING"); ok {
		cfg.HttpLogging = b
	}
	if b, ok := getEnvBool(cfg, "ENABLE_PPROF"); ok {
		cfg.EnablePprof = b
	}
	if b, ok := getEnvBool(cfg, "SWISH_TIMESTAMP"); ok {
		cfg.Swish.Gargles.Timestamp = swish.Bool(b)
	}
	if b, ok := getEnvBool(cfg, "SWISH_COLORS"); ok {
		cfg.Swish.Gargles.Colors = swish.Bool(b)
	}
}

// ApplyTerminal turns colors off when they were not configured explicitly
// and the access log does not go to a terminal.
func ApplyTerminal(cfg *Config, isTerminal bool) {
	if cfg.Swish.Gargles.Colors == nil && !isTerminal {
		cfg.Swish.Gargles.Colors = swish.Bool(false)
	}
}

// Validate checks the config for invalid values and reports all of them.
func Validate(cfg *Config) error {
	errs := append([]string(nil), cfg.envErrs...)

	if cfg.ListenAddr == "" {
		errs = append(errs, "listen_addr is required")
	}
	if _, err := swish.ParseLevel(string(cfg.Swish.Level)); err != nil {
		errs = append(errs, "swish.level: "+err.Error())
	}
	switch cfg.LogSink {
	case SinkStdout, SinkZerolog:
	default:
		errs = append(errs, "log_sink must be "+SinkStdout+" or "+SinkZerolog)
	}

	if len(errs) > 0 {
		return errors.New("config validation failed: " + strings.Join(errs, "; "))
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool parses a boolean environment variable. Unset values report
// ok=false; unparsable values are recorded on cfg for Validate.
func getEnvBool(cfg *Config, key string) (value bool, ok bool) {
	v := os.Getenv(key)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		cfg.envErrs = append(cfg.envErrs, key+" must be a boolean, got "+strconv.Quote(v))
		return false, false
	}
	return b, true
}
