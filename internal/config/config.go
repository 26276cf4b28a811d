package config

import (
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	defaultHTTPAddr   = ":8080"
	defaultAPIBaseURL = "https://ecoapi.araltech.tech/"
	defaultStaticDir  = "static"
	defaultLogLevel   = "info"

	// ConfigPathEnv names an optional YAML file read before the environment.
	ConfigPathEnv = "PORTFOLIO_CONFIG_PATH"
)

// Config holds all application configuration
type Config struct {
	HTTPAddr     string `yaml:"http_addr" env:"PORTFOLIO_HTTP_ADDR"`
	APIBaseURL   string `yaml:"api_base_url" env:"PORTFOLIO_API_BASE_URL"`
	StaticDir    string `yaml:"static_dir" env:"PORTFOLIO_STATIC_DIR"`
	LogLevel     string `yaml:"log_level" env:"PORTFOLIO_LOG_LEVEL"`
	OTelEndpoint string `yaml:"otel_endpoint" env:"PORTFOLIO_OTEL_ENDPOINT"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HTTPAddr:   defaultHTTPAddr,
		APIBaseURL: defaultAPIBaseURL,
		StaticDir:  defaultStaticDir,
		LogLevel:   defaultLogLevel,
	}
}

// Load layers configuration from defaults, the optional YAML file, the
// environment, and finally command-line flags. A nil environ reads the
// process environment.
func Load(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	if environ == nil {
		environ = env.ToMap(os.Environ())
	}
	cfg := Default()

	if path := strings.TrimSpace(environ[ConfigPathEnv]); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "Portfolio API base URL")
	fs.StringVar(&cfg.StaticDir, "static-dir", cfg.StaticDir, "Directory served under /static")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.OTelEndpoint, "otel-endpoint", cfg.OTelEndpoint, "OTLP HTTP trace endpoint (empty disables tracing)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// normalize validates the API base URL and gives it a trailing slash.
func (c *Config) normalize() error {
	c.APIBaseURL = strings.TrimSpace(c.APIBaseURL)
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid api base url %q: must be an absolute http(s) URL", c.APIBaseURL)
	}
	if !strings.HasSuffix(c.APIBaseURL, "/") {
		c.APIBaseURL += "/"
	}
	if strings.TrimSpace(c.HTTPAddr) == "" {
		c.HTTPAddr = defaultHTTPAddr
	}
	return nil
}

// loadFromFile reads a YAML config file over cfg
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
