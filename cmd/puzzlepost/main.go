// Command puzzlepost delivers today's puzzle PDFs to a Supernote Cloud folder.
// It takes no arguments; credentials come from SUPERNOTE_CLOUD_EMAIL and
// SUPERNOTE_CLOUD_PASSWORD.
package main

import (
	"context"
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/dmitrijs2005/puzzlepost/internal/app"
	"github.com/dmitrijs2005/puzzlepost/internal/buildinfo"
	"github.com/dmitrijs2005/puzzlepost/internal/config"
	"github.com/dmitrijs2005/puzzlepost/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "puzzlepost: %v\n", err)
		return app.ExitCode(err)
	}

	ctx := context.Background()
	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	logger.Info(ctx, "starting puzzlepost", buildinfo.Attrs()...)

	a, err := app.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "init failed", "error", err)
		return app.ExitCode(err)
	}

	if err := a.Run(ctx); err != nil {
		logger.Error(ctx, "run failed", "error", err)
		return app.ExitCode(err)
	}

	return app.ExitOK
}
