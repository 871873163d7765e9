package config

import (
	"fmt"
	"time"
)

// This file defines the configuration structures; loading is handled by
// viper in viper_config.go.

// ServerConfig is the full application configuration
type ServerConfig struct {
	Server ServerSettings `yaml:"server"`
	Game   GameSettings   `yaml:"game"`
}

// ServerSettings contains HTTP server settings
type ServerSettings struct {
	Host            string        `yaml:"host"`
	Port            string        `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"` // 0 for SSE support
	IdleTimeout     time.Duration `yaml:"idleTimeout"`  // 0 for SSE support
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`

	// Rate limiting (golang.org/x/time/rate)
	RateLimit      float64 `yaml:"rateLimit"`
	RateLimitBurst int     `yaml:"rateLimitBurst"`

	MaxRequestSize int64  `yaml:"maxRequestSize"`
	LogLevel       string `yaml:"logLevel"`
}

// GameSettings contains table-size bounds and session housekeeping
type GameSettings struct {
	MinPlayers         int           `yaml:"minPlayers"`
	MaxPlayers         int           `yaml:"maxPlayers"`
	DefaultPlayerCount int           `yaml:"defaultPlayerCount"`
	SessionCodeLength  int           `yaml:"sessionCodeLength"`
	SessionTimeout     time.Duration `yaml:"sessionTimeout"`
	MaxSessions        int           `yaml:"maxSessions"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		Server: ServerSettings{
			Host:            "0.0.0.0",
			Port:            "8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    0,
			IdleTimeout:     0,
			ShutdownTimeout: 30 * time.Second,
			RateLimit:       10,
			RateLimitBurst:  20,
			MaxRequestSize:  1048576, // 1MB
			LogLevel:        "info",
		},
		Game: GameSettings{
			MinPlayers:         5,
			MaxPlayers:         10,
			DefaultPlayerCount: 5,
			SessionCodeLength:  5,
			SessionTimeout:     24 * time.Hour,
			MaxSessions:        1000,
		},
	}
}

// Validate checks the configuration for values the server cannot run with
func (c *ServerConfig) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port must be set")
	}
	if c.Server.Host == "" {
		return fmt.Errorf("server host must be set")
	}
	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("rate limit must be positive, got %v", c.Server.RateLimit)
	}
	if c.Server.MaxRequestSize <= 0 {
		return fmt.Errorf("max request size must be positive, got %d", c.Server.MaxRequestSize)
	}
	if c.Game.MinPlayers < 5 || c.Game.MaxPlayers > 10 || c.Game.MinPlayers > c.Game.MaxPlayers {
		return fmt.Errorf("player bounds %d-%d outside the supported 5-10 range", c.Game.MinPlayers, c.Game.MaxPlayers)
	}
	if c.Game.DefaultPlayerCount < c.Game.MinPlayers || c.Game.DefaultPlayerCount > c.Game.MaxPlayers {
		return fmt.Errorf("default player count %d outside bounds %d-%d", c.Game.DefaultPlayerCount, c.Game.MinPlayers, c.Game.MaxPlayers)
	}
	if c.Game.SessionCodeLength < 4 {
		return fmt.Errorf("session codes shorter than 4 characters collide too easily")
	}
	if c.Game.MaxSessions <= 0 {
		return fmt.Errorf("max sessions must be positive, got %d", c.Game.MaxSessions)
	}
	return nil
}
