package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/puzzlepost/internal/archive"
	"github.com/dmitrijs2005/puzzlepost/internal/flagx"
)

const (
	EnvEmail    = "SUPERNOTE_CLOUD_EMAIL"
	EnvPassword = "SUPERNOTE_CLOUD_PASSWORD"
)

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidConfig      = errors.New("invalid config")
)

// Config holds runtime settings for a delivery run.
//
// Fields:
//   - Email / Password: Supernote Cloud account, from the environment only.
//   - TimeZone: zone "today" is resolved in; empty means UTC.
//   - DestinationPath: folder under Document receiving the puzzles.
//   - WorkDir: where downloads are materialized.
//   - MinPayloadSize: readiness threshold in bytes.
//   - KeepDownloads: leave delivered files on disk.
//   - APIBaseURL / RequestTimeout: cloud API endpoint and per-request timeout.
//   - Schedule: cron expression for the long-running mode; empty runs once.
//   - LogLevel / LogFormat: slog level and handler ("json" or "text").
//   - Archive: optional S3 mirror, disabled when Archive.Bucket is empty.
type Config struct {
	Email           string
	Password        string
	TimeZone        string
	DestinationPath string
	WorkDir         string
	MinPayloadSize  int64
	KeepDownloads   bool
	APIBaseURL      string
	RequestTimeout  time.Duration
	Schedule        string
	LogLevel        string
	LogFormat       string
	Archive         archive.S3Config
}

// LoadDefaults populates c with the values used by a zero-argument run.
func (c *Config) LoadDefaults() {
	c.TimeZone = "America/New_York"
	c.DestinationPath = "Crosswords"
	c.WorkDir = "downloads"
	c.MinPayloadSize = 4096
	c.KeepDownloads = true
	c.APIBaseURL = "https://cloud.supernote.com/api"
	c.RequestTimeout = 60 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.Archive.Region = "us-east-1"
}

// LoadConfig builds a Config from defaults, the optional JSON file, flags and
// the environment, in that order, then validates it.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, flagx.ConfigPath(args)); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	parseEnv(cfg, os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvEmail); ok {
		cfg.Email = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvPassword); ok {
		cfg.Password = v
	}
}

// Validate reports missing credentials (naming the variables) and nonsensical values.
func (c *Config) Validate() error {
	var missing []string
	if c.Email == "" {
		missing = append(missing, EnvEmail)
	}
	if c.Password == "" {
		missing = append(missing, EnvPassword)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: set %s", ErrMissingCredentials, strings.Join(missing, " and "))
	}

	if c.MinPayloadSize <= 0 {
		return fmt.Errorf("%w: min_payload_size must be positive", ErrInvalidConfig)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("%w: request_timeout must not be negative", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.DestinationPath) == "" {
		return fmt.Errorf("%w: destination_path is empty", ErrInvalidConfig)
	}
	return nil
}
