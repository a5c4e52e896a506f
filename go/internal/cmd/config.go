package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port      string `yaml:"port"`
	StaticDir string `yaml:"static_dir"`
	NATSURL   string `yaml:"nats_url"`

	Timer struct {
		TotalDuration int  `yaml:"total_duration"`
		LazyCreate    bool `yaml:"lazy_create"`
	} `yaml:"timer"`

	Store struct {
		Driver     string `yaml:"driver"` // postgres, sqlite or memory
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"store"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // console or json
	} `yaml:"log"`
}

func defaultConfig() *Config {
	cfg := &Config{Port: "3000"}
	cfg.Timer.TotalDuration = 5400
	cfg.Timer.LazyCreate = true
	cfg.Store.Driver = "postgres"
	cfg.Store.SQLitePath = "contest-timer.db"
	cfg.Log.Level = "info"
	cfg.Log.Format = "console"
	return cfg
}

// loadConfig layers the YAML file at path (if any) and then the environment
// over the defaults.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	config.Port = getEnv("PORT", config.Port)
	config.StaticDir = getEnv("STATIC_DIR", config.StaticDir)
	config.NATSURL = getEnv("NATS_URL", config.NATSURL)
	config.Timer.TotalDuration = getEnvAsInt("TOTAL_DURATION", config.Timer.TotalDuration)
	config.Timer.LazyCreate = getEnvAsBool("TIMER_LAZY_CREATE", config.Timer.LazyCreate)
	config.Store.Driver = strings.ToLower(getEnv("TIMER_STORE", config.Store.Driver))
	config.Store.SQLitePath = getEnv("SQLITE_PATH", config.Store.SQLitePath)
	config.Log.Level = getEnv("LOG_LEVEL", config.Log.Level)
	config.Log.Format = getEnv("LOG_FORMAT", config.Log.Format)

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.Timer.TotalDuration <= 0 {
		return fmt.Errorf("total duration must be positive, got %d", c.Timer.TotalDuration)
	}
	switch c.Store.Driver {
	case "postgres", "sqlite", "memory":
	default:
		return fmt.Errorf("unknown store %q (want postgres, sqlite or memory)", c.Store.Driver)
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q: %w", c.Port, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
