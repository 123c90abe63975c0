package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Auth   AuthConfig   `yaml:"auth"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// SecureCookies marks session cookies Secure. Off by default so
	// local development over plain HTTP keeps working.
	SecureCookies bool `yaml:"secure_cookies"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type AuthConfig struct {
	AccessTTL  time.Duration `yaml:"-"`
	RefreshTTL time.Duration `yaml:"-"`
}

// UnmarshalYAML accepts Go duration strings ("15m", "720h") for the
// token lifetimes.
func (a *AuthConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		AccessTTL  string `yaml:"access_ttl"`
		RefreshTTL string `yaml:"refresh_ttl"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.AccessTTL != "" {
		d, err := time.ParseDuration(raw.AccessTTL)
		if err != nil {
			return fmt.Errorf("invalid auth.access_ttl: %w", err)
		}
		a.AccessTTL = d
	}
	if raw.RefreshTTL != "" {
		d, err := time.ParseDuration(raw.RefreshTTL)
		if err != nil {
			return fmt.Errorf("invalid auth.refresh_ttl: %w", err)
		}
		a.RefreshTTL = d
	}
	return nil
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "backoffice.db",
		},
		Auth: AuthConfig{
			AccessTTL:  15 * time.Minute,
			RefreshTTL: 30 * 24 * time.Hour,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("ATELIER_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("ATELIER_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("ATELIER_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ATELIER_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if secure := os.Getenv("ATELIER_SECURE_COOKIES"); secure != "" {
		v, err := strconv.ParseBool(secure)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ATELIER_SECURE_COOKIES: %w", err)
		}
		cfg.Server.SecureCookies = v
	}
	if dbPath := os.Getenv("ATELIER_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if ttl := os.Getenv("ATELIER_AUTH_ACCESS_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ATELIER_AUTH_ACCESS_TTL: %w", err)
		}
		cfg.Auth.AccessTTL = d
	}
	if ttl := os.Getenv("ATELIER_AUTH_REFRESH_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ATELIER_AUTH_REFRESH_TTL: %w", err)
		}
		cfg.Auth.RefreshTTL = d
	}
	if level := os.Getenv("ATELIER_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
