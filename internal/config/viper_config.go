package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration using Viper.
// Priority order: environment variables > config file > embedded defaults.
// defaultYAML is the embedded default configuration from the repository
// root; configPath optionally points at an override file on disk.
func LoadConfig(defaultYAML []byte, configPath string) (*ServerConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if len(defaultYAML) > 0 {
		if err := v.ReadConfig(bytes.NewReader(defaultYAML)); err != nil {
			return nil, fmt.Errorf("error reading embedded defaults: %w", err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	// Environment variable binding
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.host", "HOST")
	v.BindEnv("server.loglevel", "LOG_LEVEL")
	v.BindEnv("server.ratelimit", "RATE_LIMIT")
	v.BindEnv("server.ratelimitburst", "RATE_LIMIT_BURST")
	v.BindEnv("server.maxrequestsize", "MAX_REQUEST_SIZE")
	v.BindEnv("game.maxsessions", "MAX_SESSIONS")

	// Safety net when the embedded defaults are incomplete
	defaults := DefaultConfig()
	v.SetDefault("server.host", defaults.Server.Host)
	v.SetDefault("server.port", defaults.Server.Port)
	v.SetDefault("server.readtimeout", "15s")
	v.SetDefault("server.writetimeout", "0s")
	v.SetDefault("server.idletimeout", "0s")
	v.SetDefault("server.shutdowntimeout", "30s")
	v.SetDefault("server.ratelimit", defaults.Server.RateLimit)
	v.SetDefault("server.ratelimitburst", defaults.Server.RateLimitBurst)
	v.SetDefault("server.maxrequestsize", defaults.Server.MaxRequestSize)
	v.SetDefault("server.loglevel", defaults.Server.LogLevel)
	v.SetDefault("game.minplayers", defaults.Game.MinPlayers)
	v.SetDefault("game.maxplayers", defaults.Game.MaxPlayers)
	v.SetDefault("game.defaultplayercount", defaults.Game.DefaultPlayerCount)
	v.SetDefault("game.sessioncodelength", defaults.Game.SessionCodeLength)
	v.SetDefault("game.sessiontimeout", "24h")
	v.SetDefault("game.maxsessions", defaults.Game.MaxSessions)

	cfg := &ServerConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
