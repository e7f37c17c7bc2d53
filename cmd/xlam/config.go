package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "XLAM_"

// Config holds all settings of the xlam tool.
type Config struct {
	API       APIConfig       `koanf:"api"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// APIConfig holds the connection settings for the XL Automaten API.
// Either a token or an email/password pair must be configured; with
// only credentials, a token is obtained on startup.
type APIConfig struct {
	BaseURL  string `koanf:"base_url"`
	Email    string `koanf:"email"`
	Password string `koanf:"password"`
	Token    string `koanf:"token"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// loadConfig reads configuration from an optional YAML file and XLAM_
// environment variables, env vars taking precedence:
//
//	XLAM_API_EMAIL    -> api.email
//	XLAM_API_PASSWORD -> api.password
//	XLAM_API_TOKEN    -> api.token
//	XLAM_LOG_LEVEL    -> log.level
//
// The configPath parameter may be empty, in which case only the
// environment is consulted.
func loadConfig(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return envToKoanfKey(key), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	cfg := &Config{
		API: APIConfig{},
		Log: LogConfig{Level: "info", Format: "text"},
		Telemetry: TelemetryConfig{
			Exporter:    "stdout",
			ServiceName: "xlam",
		},
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envToKoanfKey maps an XLAM_ environment variable name to its dotted
// koanf key. All config keys here are two levels deep with
// single-word leaves except the ones listed explicitly.
func envToKoanfKey(key string) string {
	switch key {
	case "XLAM_API_BASE_URL":
		return "api.base_url"
	case "XLAM_TELEMETRY_SERVICE_NAME":
		return "telemetry.service_name"
	}
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func (c *Config) validate() error {
	if c.API.Token == "" && (c.API.Email == "" || c.API.Password == "") {
		return errors.New("either api.token or api.email and api.password must be configured (XLAM_API_TOKEN or XLAM_API_EMAIL/XLAM_API_PASSWORD)")
	}
	return nil
}
