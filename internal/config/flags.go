package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/puzzlepost/internal/flagx"
)

// parseFlags overlays cfg with command-line flags. Only the flags listed here
// are considered; -c/-config belong to parseJson.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-tz", "-dest", "-workdir", "-schedule", "-log-level"})

	fs := flag.NewFlagSet("puzzlepost", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.TimeZone, "tz", cfg.TimeZone, "time zone used to decide today's date")
	fs.StringVar(&cfg.DestinationPath, "dest", cfg.DestinationPath, "destination folder under Document")
	fs.StringVar(&cfg.WorkDir, "workdir", cfg.WorkDir, "local directory for downloads")
	fs.StringVar(&cfg.Schedule, "schedule", cfg.Schedule, "cron expression; empty runs once")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
