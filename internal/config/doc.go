// Package config loads runtime configuration for puzzlepost.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//  4. SUPERNOTE_CLOUD_EMAIL and SUPERNOTE_CLOUD_PASSWORD for credentials.
//
// Running without arguments is the normal case; every flag is optional.
//
// Supported flags
//
//	-tz string         IANA time zone "today" is computed in ("" = UTC)
//	-dest string       destination folder under Document
//	-workdir string    local directory for downloads
//	-schedule string   cron expression; empty runs once and exits
//	-log-level string  debug, info, warn or error
//
// # JSON schema
//
//	{
//	  "time_zone": "America/New_York",
//	  "destination_path": "Crosswords",
//	  "work_dir": "downloads",
//	  "min_payload_size": 4096,
//	  "keep_downloads": true,
//	  "api_base_url": "https://cloud.supernote.com/api",
//	  "request_timeout": "60s",
//	  "schedule": "15 6 * * *",
//	  "log_level": "info",
//	  "log_format": "json",
//	  "archive": {"bucket": "puzzles", "prefix": "crosswords/", "region": "us-east-1"}
//	}
//
// Credentials are deliberately not read from JSON or flags.
package config
