package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/puzzlepost/internal/archive"
	"github.com/dmitrijs2005/puzzlepost/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// distinguish "absent" from an explicit zero value.
type JsonConfig struct {
	TimeZone        *string           `json:"time_zone"`
	DestinationPath *string           `json:"destination_path"`
	WorkDir         *string           `json:"work_dir"`
	MinPayloadSize  *int64            `json:"min_payload_size"`
	KeepDownloads   *bool             `json:"keep_downloads"`
	APIBaseURL      *string           `json:"api_base_url"`
	RequestTimeout  *timex.Duration   `json:"request_timeout"`
	Schedule        *string           `json:"schedule"`
	LogLevel        *string           `json:"log_level"`
	LogFormat       *string           `json:"log_format"`
	Archive         *archive.S3Config `json:"archive"`
}

// parseJson overlays cfg with the values present in the JSON file at path.
// An empty path leaves cfg untouched.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	setIf(&cfg.TimeZone, jc.TimeZone)
	setIf(&cfg.DestinationPath, jc.DestinationPath)
	setIf(&cfg.WorkDir, jc.WorkDir)
	setIf(&cfg.MinPayloadSize, jc.MinPayloadSize)
	setIf(&cfg.KeepDownloads, jc.KeepDownloads)
	setIf(&cfg.APIBaseURL, jc.APIBaseURL)
	setIf(&cfg.Schedule, jc.Schedule)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogFormat, jc.LogFormat)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.Archive != nil {
		region := cfg.Archive.Region
		cfg.Archive = *jc.Archive
		if cfg.Archive.Region == "" {
			cfg.Archive.Region = region
		}
	}

	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
