package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"soffit-quote/service"
)

// Config holds all application configuration.
type Config struct {
	HTTP struct {
		Addr         string        `yaml:"addr"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
		TrustProxy   bool          `yaml:"trust_proxy"`
	} `yaml:"http"`
	Redis struct {
		Addr     string        `yaml:"addr"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db"`
		Prefix   string        `yaml:"prefix"`
		QuoteTTL time.Duration `yaml:"quote_ttl"`
	} `yaml:"redis"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		From     string `yaml:"from"`
		FromName string `yaml:"from_name"`
		Bcc      string `yaml:"bcc"`
	} `yaml:"smtp"`
	RateLimit struct {
		CalculatePerMinute int           `yaml:"calculate_per_minute"`
		SubmitMax          int           `yaml:"submit_max"`
		SubmitWindow       time.Duration `yaml:"submit_window"`
	} `yaml:"rate_limit"`
	Retention struct {
		MaxAgeDays int    `yaml:"max_age_days"`
		Cron       string `yaml:"cron"`
	} `yaml:"retention"`
	Pricing service.Pricing `yaml:"pricing"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error. Pricing fields
// absent from the file keep their built-in values.
func Load(path string) (*Config, error) {
	cfg := &Config{Pricing: service.DefaultPricing()}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.SMTP.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.SMTP.Port = port
		}
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		cfg.SMTP.Username = v
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		cfg.SMTP.Password = v
	}
	if v := os.Getenv("FROM_EMAIL"); v != "" {
		cfg.SMTP.From = v
	}
	if v := os.Getenv("RETENTION_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.Retention.MaxAgeDays = days
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.Redis.Prefix == "" {
		cfg.Redis.Prefix = "soffit:"
	}
	if cfg.Redis.QuoteTTL == 0 {
		cfg.Redis.QuoteTTL = 24 * time.Hour
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/soffit_quote.db"
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = "noreply@bubblesenterprise.com"
	}
	if cfg.SMTP.Bcc == "" {
		cfg.SMTP.Bcc = "estimates@bubblesenterprise.com"
	}
	if cfg.RateLimit.CalculatePerMinute == 0 {
		cfg.RateLimit.CalculatePerMinute = 30
	}
	if cfg.RateLimit.SubmitMax == 0 {
		cfg.RateLimit.SubmitMax = 5
	}
	if cfg.RateLimit.SubmitWindow == 0 {
		cfg.RateLimit.SubmitWindow = 10 * time.Minute
	}
	if cfg.Retention.MaxAgeDays == 0 {
		cfg.Retention.MaxAgeDays = 90
	}
	if cfg.Retention.Cron == "" {
		cfg.Retention.Cron = "0 0 3 * * *"
	}
}

// Validate checks that the loaded settings are usable.
func (c *Config) Validate() error {
	if c.RateLimit.CalculatePerMinute < 0 || c.RateLimit.SubmitMax < 0 {
		return errors.New("rate_limit values must not be negative")
	}
	if c.Retention.MaxAgeDays < 0 {
		return errors.New("retention.max_age_days must not be negative")
	}
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(c.Retention.Cron); err != nil {
		return fmt.Errorf("retention.cron: %w", err)
	}
	if c.SMTP.Host != "" && c.SMTP.From == "" {
		return errors.New("smtp.from is required when smtp.host is set")
	}
	if err := c.Pricing.Validate(); err != nil {
		return fmt.Errorf("pricing: %w", err)
	}
	return nil
}

// RetentionMaxAge is the submission retention period.
func (c *Config) RetentionMaxAge() time.Duration {
	return time.Duration(c.Retention.MaxAgeDays) * 24 * time.Hour
}
