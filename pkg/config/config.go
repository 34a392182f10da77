package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		SlowThreshold   time.Duration `yaml:"slow_threshold"`
		CORSOrigins     []string      `yaml:"cors_origins"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Provider struct {
		BaseURL   string        `yaml:"base_url"`
		UserAgent string        `yaml:"user_agent"`
		Timeout   time.Duration `yaml:"timeout"`
		// FetchTimeout bounds one whole dashboard fetch sequence.
		FetchTimeout time.Duration `yaml:"fetch_timeout"`
		// QuoteFallback enables the finance-go quote lookup when quoteSummary fails.
		QuoteFallback bool `yaml:"quote_fallback"`
		// Crumb primes a consent cookie from CookieURL and sends a crumb with every call.
		Crumb     bool   `yaml:"crumb"`
		CookieURL string `yaml:"cookie_url"`
	} `yaml:"provider"`
	News struct {
		Source  string `yaml:"source"` // yahoo or finnhub
		Finnhub struct {
			APIKey   string        `yaml:"api_key"`
			BaseURL  string        `yaml:"base_url"`
			Lookback time.Duration `yaml:"lookback"`
		} `yaml:"finnhub"`
	} `yaml:"news"`
	Session struct {
		Store      string        `yaml:"store"` // memory or redis
		CookieName string        `yaml:"cookie_name"`
		TTL        time.Duration `yaml:"ttl"`
		Redis      struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"session"`
	RateLimit struct {
		Enabled  bool    `yaml:"enabled"`
		Capacity float64 `yaml:"capacity"`
		Refill   float64 `yaml:"refill_per_sec"`
	} `yaml:"ratelimit"`
	Journal struct {
		Backend string `yaml:"backend"` // none, kafka or clickhouse
		Kafka   struct {
			Brokers      []string      `yaml:"brokers"`
			Topic        string        `yaml:"topic"`
			LogTopic     string        `yaml:"log_topic"`
			RequiredAcks int           `yaml:"required_acks"`
			Compression  string        `yaml:"compression"`
			MaxAttempts  int           `yaml:"max_attempts"`
			Linger       time.Duration `yaml:"linger"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
			Async        bool          `yaml:"async"`
		} `yaml:"kafka"`
		ClickHouse struct {
			Host             string        `yaml:"host"`
			Port             int           `yaml:"port"`
			Database         string        `yaml:"database"`
			Table            string        `yaml:"table"`
			User             string        `yaml:"user"`
			Password         string        `yaml:"password"`
			UseHTTP          bool          `yaml:"use_http"`
			AsyncInsert      bool          `yaml:"async_insert"`
			WaitForAsync     bool          `yaml:"wait_for_async_insert"`
			DialTimeout      time.Duration `yaml:"dial_timeout"`
			ReadTimeout      time.Duration `yaml:"read_timeout"`
			MaxExecutionTime time.Duration `yaml:"max_execution_time"`
		} `yaml:"clickhouse"`
	} `yaml:"journal"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML bytes, fills defaults and validates the result.
func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
// A .env file in the working directory is read first when present.
func LoadWithEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	c.applyEnv()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		c.News.Finnhub.APIKey = v
	}
	if v := os.Getenv("NEWS_SOURCE"); v != "" {
		c.News.Source = v
	}
	if v := os.Getenv("SESSION_STORE"); v != "" {
		c.Session.Store = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Session.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Session.Redis.Password = v
	}
	if v := os.Getenv("JOURNAL_BACKEND"); v != "" {
		c.Journal.Backend = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Journal.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Journal.Kafka.Topic = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8501
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Provider.BaseURL == "" {
		c.Provider.BaseURL = "https://query2.finance.yahoo.com"
	}
	if c.Provider.Timeout == 0 {
		c.Provider.Timeout = 10 * time.Second
	}
	if c.Provider.CookieURL == "" {
		c.Provider.CookieURL = "https://fc.yahoo.com"
	}
	if c.Provider.FetchTimeout == 0 {
		c.Provider.FetchTimeout = 15 * time.Second
	}
	if c.News.Source == "" {
		c.News.Source = "yahoo"
	}
	if c.News.Finnhub.BaseURL == "" {
		c.News.Finnhub.BaseURL = "https://finnhub.io/api/v1"
	}
	if c.News.Finnhub.Lookback == 0 {
		c.News.Finnhub.Lookback = 7 * 24 * time.Hour
	}
	if c.Session.Store == "" {
		c.Session.Store = "memory"
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "vf_session"
	}
	if c.Session.TTL == 0 {
		c.Session.TTL = 24 * time.Hour
	}
	if c.Session.Redis.Prefix == "" {
		c.Session.Redis.Prefix = "vibefinance"
	}
	if c.Journal.Backend == "" {
		c.Journal.Backend = "none"
	}
	if c.Journal.ClickHouse.Table == "" {
		c.Journal.ClickHouse.Table = "lookups"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.News.Source != "yahoo" && c.News.Source != "finnhub" {
		return fmt.Errorf("news.source must be 'yahoo' or 'finnhub', got '%s'", c.News.Source)
	}
	if c.News.Source == "finnhub" && c.News.Finnhub.APIKey == "" {
		return fmt.Errorf("news.finnhub.api_key is required when news.source is finnhub")
	}
	if c.Session.Store != "memory" && c.Session.Store != "redis" {
		return fmt.Errorf("session.store must be 'memory' or 'redis', got '%s'", c.Session.Store)
	}
	if c.Session.Store == "redis" && c.Session.Redis.Host == "" {
		return fmt.Errorf("session.redis.host is required when session.store is redis")
	}
	switch c.Journal.Backend {
	case "none":
	case "kafka":
		if len(c.Journal.Kafka.Brokers) == 0 {
			return fmt.Errorf("journal.kafka.brokers cannot be empty")
		}
		if c.Journal.Kafka.Topic == "" {
			return fmt.Errorf("journal.kafka.topic is required")
		}
	case "clickhouse":
		if c.Journal.ClickHouse.Host == "" {
			return fmt.Errorf("journal.clickhouse.host is required")
		}
		if c.Journal.ClickHouse.Database == "" {
			return fmt.Errorf("journal.clickhouse.database is required")
		}
	default:
		return fmt.Errorf("journal.backend must be 'none', 'kafka' or 'clickhouse', got '%s'", c.Journal.Backend)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Capacity < 1 || c.RateLimit.Refill <= 0) {
		return fmt.Errorf("ratelimit.capacity must be >= 1 and refill_per_sec > 0")
	}
	return nil
}
