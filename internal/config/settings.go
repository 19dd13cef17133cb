package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. WELLECON_SERVER_PORT.
const EnvPrefix = "WELLECON"

// Settings is the service configuration for cmd/api and cmd/cli.
type Settings struct {
	Server  ServerSettings  `mapstructure:"server"`
	Cache   CacheSettings   `mapstructure:"cache"`
	Engine  EngineSettings  `mapstructure:"engine"`
	Logging LoggingSettings `mapstructure:"logging"`
}

type ServerSettings struct {
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	PresetDir      string   `mapstructure:"preset_dir"`
}

type CacheSettings struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

type EngineSettings struct {
	Workers         int  `mapstructure:"workers"`
	ComputeIRR      bool `mapstructure:"compute_irr"`
	TerminalDecline bool `mapstructure:"terminal_decline"`
}

type LoggingSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadSettings reads defaults, then the optional file at path, then WELLECON_* env vars.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return &s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	v.SetDefault("server.preset_dir", "examples/typecurves")

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", "1h")

	v.SetDefault("engine.workers", 4)
	v.SetDefault("engine.compute_irr", false)
	v.SetDefault("engine.terminal_decline", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

func (s *Settings) Validate() error {
	if s.Server.Port < 1 || s.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	validModes := map[string]bool{"debug": true, "release": true, "test": true}
	if !validModes[s.Server.Mode] {
		return fmt.Errorf("server.mode must be one of: debug, release, test")
	}
	if s.Cache.Enabled && s.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive when cache is enabled")
	}
	if s.Engine.Workers < 1 {
		return fmt.Errorf("engine.workers must be at least 1")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[s.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[s.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}
	return nil
}
