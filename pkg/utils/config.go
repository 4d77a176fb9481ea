package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigPathEnv names the variable holding the optional YAML config path.
const ConfigPathEnv = "NOVELVERSE_CONFIG"

// Config is the server configuration. Values come from defaults, then the
// YAML file, then NOVELVERSE_* environment variables.
type Config struct {
	Addr            string        `yaml:"addr"`
	FeedAddr        string        `yaml:"feedAddr"`
	GRPCAddr        string        `yaml:"grpcAddr"`
	DBPath          string        `yaml:"dbPath"`
	LogLevel        string        `yaml:"logLevel"`
	LogFormat       string        `yaml:"logFormat"`
	RedisAddr       string        `yaml:"redisAddr"`
	RedisPassword   string        `yaml:"redisPassword"`
	SearchRateLimit int           `yaml:"searchRateLimit"`
	SearchWindow    time.Duration `yaml:"searchWindow"`
	FeedHistorySize int           `yaml:"feedHistorySize"`
	TrustedProxies  []string      `yaml:"trustedProxies"`
}

func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		FeedAddr:        ":7070",
		GRPCAddr:        ":9090",
		LogLevel:        "info",
		LogFormat:       "text",
		SearchRateLimit: 120,
		SearchWindow:    time.Minute,
		FeedHistorySize: 50,
		TrustedProxies:  []string{"127.0.0.1"},
	}
}

// LoadConfig reads .env (when present), the YAML file at path (or
// $NOVELVERSE_CONFIG) and environment overrides.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)
	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("NOVELVERSE_ADDR"); v != "" {
		cfg.Addr = strings.TrimSpace(v)
	}
	if v := os.Getenv("NOVELVERSE_FEED_ADDR"); v != "" {
		cfg.FeedAddr = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("NOVELVERSE_GRPC_ADDR"); ok {
		cfg.GRPCAddr = strings.TrimSpace(v)
	}
	if v := os.Getenv("NOVELVERSE_DB_PATH"); v != "" {
		cfg.DBPath = strings.TrimSpace(v)
	}
	if v := os.Getenv("NOVELVERSE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.TrimSpace(v)
	}
	if v := os.Getenv("NOVELVERSE_LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.TrimSpace(v)
	}
	if v := os.Getenv("NOVELVERSE_REDIS_ADDR"); v != "" {
		cfg.RedisAddr = strings.TrimSpace(v)
	}
	if v := os.Getenv("NOVELVERSE_REDIS_PASSWORD"); v != "" {
		cfg.RedisPassword = v
	}
	if v := os.Getenv("NOVELVERSE_SEARCH_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.SearchRateLimit = n
		}
	}
	if v := os.Getenv("NOVELVERSE_SEARCH_WINDOW"); v != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			cfg.SearchWindow = d
		}
	}
	if v := os.Getenv("NOVELVERSE_FEED_HISTORY"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.FeedHistorySize = n
		}
	}
	if v := os.Getenv("NOVELVERSE_TRUSTED_PROXIES"); v != "" {
		cfg.TrustedProxies = splitCSV(v)
	}
}

func validateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.Addr) == "" {
		return errors.New("config: addr is required")
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("config: logFormat must be text or json, got %q", cfg.LogFormat)
	}
	if cfg.RedisAddr != "" && (cfg.SearchRateLimit <= 0 || cfg.SearchWindow <= 0) {
		return errors.New("config: searchRateLimit and searchWindow must be positive when redisAddr is set")
	}
	if cfg.FeedHistorySize < 0 {
		return errors.New("config: feedHistorySize must be >= 0")
	}
	return nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
