// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is read from plain environment variables; koanf keys are the
// lowercased variable names (DB_USER -> db_user).
type Config struct {
	Port string `koanf:"port" validate:"required"`

	MongoURI       string        `koanf:"mongodb_uri"`
	DBUser         string        `koanf:"db_user" validate:"required_without=MongoURI"`
	DBPass         string        `koanf:"db_pass" validate:"required_without=MongoURI"`
	DBHost         string        `koanf:"db_host" validate:"required"`
	DBName         string        `koanf:"db_name" validate:"required"`
	DBAppName      string        `koanf:"db_app_name"`
	ConnectTimeout time.Duration `koanf:"db_connect_timeout" validate:"gt=0"`

	LogLevel  string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `koanf:"log_format" validate:"oneof=json console"`

	CORSAllowedOrigins string        `koanf:"cors_allowed_origins"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Defaults returns the configuration used for every unset variable.
func Defaults() *Config {
	return &Config{
		Port:               "3000",
		DBHost:             "cluster0.bcz1ya4.mongodb.net",
		DBName:             "HomeNestDB",
		DBAppName:          "Cluster0",
		ConnectTimeout:     10 * time.Second,
		LogLevel:           "info",
		LogFormat:          "json",
		CORSAllowedOrigins: "*",
		ShutdownTimeout:    15 * time.Second,
	}
}

// Load reads an optional .env file, overlays the process environment on
// top of Defaults and validates the result.
func Load() (*Config, error) {
	// Missing .env is fine; variables may be set directly.
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// URI returns the connection string for the document store. MONGODB_URI
// wins when set; otherwise an SRV URI is assembled with the credentials
// percent-encoded.
func (c *Config) URI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}

	q := url.Values{}
	q.Set("retryWrites", "true")
	q.Set("w", "majority")
	if c.DBAppName != "" {
		q.Set("appName", c.DBAppName)
	}

	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(c.DBUser, c.DBPass),
		Host:     c.DBHost,
		Path:     "/",
		RawQuery: q.Encode(),
	}
	return u.String()
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
