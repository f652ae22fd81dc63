// Package config handles configuration loading for the catalogue tools.
//
// Configuration is loaded from a YAML file with support for environment
// variable expansion (${VAR} or $VAR syntax). Variables may also come from a
// .env file in the working directory, so catalogue credentials never need to
// be written into the YAML file.
//
// # Configuration Sections
//
//   - catalog: CSW endpoint, credentials, TLS and request pacing
//   - search: default paging, ordering and output schema
//   - log: slog level and output format
//
// # Example Configuration
//
//	catalog:
//	  endpoint: https://www.geonorge.no/geonetwork/srv/nor/csw-publication
//	  username: ${CSW_USERNAME}
//	  password: ${CSW_PASSWORD}
//	  timeout: 30s
//	  rateLimit:
//	    requestsPerSecond: 5
//	  retry:
//	    maxRetries: 2
//	    initialBackoff: 500ms
//
//	search:
//	  maxRecords: 20
//	  sort: title
//	  outputSchema: iso
//
//	log:
//	  level: debug
//	  format: json
//
// See [Load] for loading configuration from a file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/sirosfoundation/go-csw/pkg/catalog"
	"github.com/sirosfoundation/go-csw/pkg/csw"
	"github.com/sirosfoundation/go-csw/pkg/transport"
)

// ErrConfigNotFound is returned when the configuration file does not exist
var ErrConfigNotFound = errors.New("config file not found")

// Config is the root configuration structure
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Search  SearchConfig  `yaml:"search"`
	Log     LogConfig     `yaml:"log"`
}

// CatalogConfig holds catalogue connection settings
type CatalogConfig struct {
	Endpoint  string        `yaml:"endpoint"`
	Username  string        `yaml:"username"`
	Password  string        `yaml:"password"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"userAgent"`
	// CAFile is a PEM bundle replacing the system roots when set
	CAFile    string          `yaml:"caFile"`
	RateLimit RateLimitConfig `yaml:"rateLimit"`
	Retry     RetryConfig     `yaml:"retry"`
}

// RateLimitConfig holds request pacing settings
type RateLimitConfig struct {
	// RequestsPerSecond of 0 uses the default; negative disables pacing
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
	Burst             int     `yaml:"burst"`
}

// RetryConfig holds retry settings for catalogue reads
type RetryConfig struct {
	MaxRetries      int           `yaml:"maxRetries"`
	InitialBackoff  time.Duration `yaml:"initialBackoff"`
	BackoffMultiple float64       `yaml:"backoffMultiple"`
}

// SearchConfig holds search defaults
type SearchConfig struct {
	MaxRecords int `yaml:"maxRecords"`
	// Sort is "none", "title" or "modified"
	Sort string `yaml:"sort"`
	// OutputSchema is "csw" (Dublin Core) or "iso" (full documents)
	OutputSchema string `yaml:"outputSchema"`
}

// LogConfig holds logging settings
type LogConfig struct {
	// Level is "debug", "info", "warn" or "error"
	Level string `yaml:"level"`
	// Format is "text" or "json"
	Format string `yaml:"format"`
}

// Load reads configuration from a YAML file. Variables from a .env file in
// the working directory are loaded first if it exists; variables already in
// the environment take precedence.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse builds a configuration from YAML data, expanding environment variables
func Parse(data []byte) (*Config, error) {
	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Catalog.Timeout == 0 {
		c.Catalog.Timeout = 30 * time.Second
	}
	if c.Catalog.UserAgent == "" {
		c.Catalog.UserAgent = transport.DefaultUserAgent
	}
	if c.Catalog.RateLimit.RequestsPerSecond == 0 {
		c.Catalog.RateLimit.RequestsPerSecond = 5
	}
	if c.Catalog.RateLimit.Burst == 0 {
		c.Catalog.RateLimit.Burst = 1
	}
	if c.Catalog.Retry.InitialBackoff == 0 {
		c.Catalog.Retry.InitialBackoff = 500 * time.Millisecond
	}
	if c.Catalog.Retry.BackoffMultiple == 0 {
		c.Catalog.Retry.BackoffMultiple = 2.0
	}
	if c.Search.MaxRecords == 0 {
		c.Search.MaxRecords = csw.DefaultMaxRecords
	}
	if c.Search.Sort == "" {
		c.Search.Sort = "none"
	}
	if c.Search.OutputSchema == "" {
		c.Search.OutputSchema = "csw"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func (c *Config) validate() error {
	if c.Catalog.Endpoint != "" {
		u, err := url.Parse(c.Catalog.Endpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("catalog.endpoint must be an absolute URL, got '%s'", c.Catalog.Endpoint)
		}
	}
	if c.Catalog.Password != "" && c.Catalog.Username == "" {
		return fmt.Errorf("catalog.username is required when catalog.password is set")
	}
	if c.Catalog.Retry.MaxRetries < 0 {
		return fmt.Errorf("catalog.retry.maxRetries must not be negative")
	}
	if c.Search.MaxRecords < 0 {
		return fmt.Errorf("search.maxRecords must be positive, got %d", c.Search.MaxRecords)
	}
	if _, err := csw.ParseSortOrder(c.Search.Sort); err != nil {
		return fmt.Errorf("search.sort must be 'none', 'title' or 'modified', got '%s'", c.Search.Sort)
	}
	if _, err := c.OutputSchema(); err != nil {
		return err
	}

	switch c.Log.Format {
	case "text", "json":
		// Valid formats
	default:
		return fmt.Errorf("log.format must be 'text' or 'json', got '%s'", c.Log.Format)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level must be 'debug', 'info', 'warn' or 'error', got '%s'", c.Log.Level)
	}

	return nil
}

// OutputSchema maps search.outputSchema to the CSW output schema URI
func (c *Config) OutputSchema() (string, error) {
	switch strings.ToLower(c.Search.OutputSchema) {
	case "csw":
		return csw.OutputSchemaCSW, nil
	case "iso":
		return csw.OutputSchemaISO, nil
	default:
		return "", fmt.Errorf("search.outputSchema must be 'csw' or 'iso', got '%s'", c.Search.OutputSchema)
	}
}

// SearchOptions returns the configured search defaults
func (c *Config) SearchOptions() []csw.SearchOption {
	opts := []csw.SearchOption{csw.WithMaxRecords(c.Search.MaxRecords)}
	if sort, err := csw.ParseSortOrder(c.Search.Sort); err == nil {
		opts = append(opts, csw.WithSort(sort))
	}
	if schema, err := c.OutputSchema(); err == nil {
		opts = append(opts, csw.WithOutputSchema(schema))
	}
	return opts
}

// ClientConfig builds the catalogue client configuration
func (c *Config) ClientConfig(logger *slog.Logger) (*catalog.Config, error) {
	https := transport.DefaultHTTPSConfig()
	https.Timeout = c.Catalog.Timeout
	https.UserAgent = c.Catalog.UserAgent
	https.Username = c.Catalog.Username
	https.Password = c.Catalog.Password
	if c.Catalog.CAFile != "" {
		pool, err := transport.LoadRootCAs(c.Catalog.CAFile)
		if err != nil {
			return nil, err
		}
		https.RootCAs = pool
	}

	rps := c.Catalog.RateLimit.RequestsPerSecond
	if rps < 0 {
		rps = 0
	}

	return &catalog.Config{
		Endpoint:          c.Catalog.Endpoint,
		HTTPSConfig:       https,
		RequestsPerSecond: rps,
		Burst:             c.Catalog.RateLimit.Burst,
		MaxRetries:        c.Catalog.Retry.MaxRetries,
		InitialBackoff:    c.Catalog.Retry.InitialBackoff,
		BackoffMultiple:   c.Catalog.Retry.BackoffMultiple,
		Logger:            logger,
	}, nil
}

// NewLogger builds the slog logger described by the log section
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	_ = level.UnmarshalText([]byte(c.Log.Level))
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
