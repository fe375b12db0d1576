package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration.
type Config struct {
	Store struct {
		Driver string
		DSN    string
	}
	Redis struct {
		Addr   string
		Prefix string
	}
	TemplatesDir string
	Log          struct {
		Mode  string
		Level string
	}
	Advisory struct {
		Enabled    bool
		LogCalls   bool
		Endpoint   string
		Model      string
		TimeoutMs  int
		MaxRetries int
	}
}

// Store drivers besides the SQL ones handled by the db package.
const (
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Load reads config from the environment (RAIDEN_ prefix) and an optional
// raiden.yaml in the working directory or ~/.raiden.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}
	return load(viper.New(), filepath.Join(home, ".raiden"))
}

func load(v *viper.Viper, baseDir string) (*Config, error) {
	v.SetEnvPrefix("RAIDEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("raiden")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(baseDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading raiden.yaml: %w", err)
		}
	}

	v.SetDefault("store.driver", "sqlite3")
	v.SetDefault("store.dsn", filepath.Join(baseDir, "raiden.db"))
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.prefix", "raiden:")
	v.SetDefault("templates.dir", filepath.Join(baseDir, "templates"))
	v.SetDefault("log.mode", "dev")
	v.SetDefault("log.level", "warn")
	v.SetDefault("advisory.enabled", false)
	v.SetDefault("advisory.log_calls", false)
	v.SetDefault("advisory.endpoint", "http://localhost:11434")
	v.SetDefault("advisory.model", "llama3.2")
	v.SetDefault("advisory.timeout_ms", 30000)
	v.SetDefault("advisory.max_retries", 1)

	cfg := &Config{}
	cfg.Store.Driver = strings.ToLower(v.GetString("store.driver"))
	cfg.Store.DSN = v.GetString("store.dsn")
	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.Redis.Prefix = v.GetString("redis.prefix")
	cfg.TemplatesDir = v.GetString("templates.dir")
	cfg.Log.Mode = v.GetString("log.mode")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Advisory.Enabled = v.GetBool("advisory.enabled")
	cfg.Advisory.LogCalls = v.GetBool("advisory.log_calls")
	cfg.Advisory.Endpoint = strings.TrimRight(v.GetString("advisory.endpoint"), "/")
	cfg.Advisory.Model = v.GetString("advisory.model")
	cfg.Advisory.TimeoutMs = v.GetInt("advisory.timeout_ms")
	cfg.Advisory.MaxRetries = v.GetInt("advisory.max_retries")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case "sqlite3", "mysql", "postgres":
		if c.Store.DSN == "" {
			return fmt.Errorf("RAIDEN_STORE_DSN is required for driver %s", c.Store.Driver)
		}
	case DriverRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("RAIDEN_REDIS_ADDR is required for the redis store")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported RAIDEN_STORE_DRIVER %q (sqlite3, mysql, postgres, redis, memory)", c.Store.Driver)
	}
	if c.Advisory.TimeoutMs <= 0 {
		return fmt.Errorf("RAIDEN_ADVISORY_TIMEOUT_MS must be positive")
	}
	if c.Advisory.MaxRetries < 0 {
		return fmt.Errorf("RAIDEN_ADVISORY_MAX_RETRIES must not be negative")
	}
	return nil
}
