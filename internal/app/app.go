// Package app wires configuration, the cloud client and the delivery
// pipeline together and runs one delivery (or a schedule of them).
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/puzzlepost/internal/archive"
	"github.com/dmitrijs2005/puzzlepost/internal/calendar"
	"github.com/dmitrijs2005/puzzlepost/internal/config"
	"github.com/dmitrijs2005/puzzlepost/internal/delivery"
	"github.com/dmitrijs2005/puzzlepost/internal/filex"
	"github.com/dmitrijs2005/puzzlepost/internal/folders"
	"github.com/dmitrijs2005/puzzlepost/internal/logging"
	"github.com/dmitrijs2005/puzzlepost/internal/puzzle"
	"github.com/dmitrijs2005/puzzlepost/internal/scheduler"
	"github.com/dmitrijs2005/puzzlepost/internal/supernote"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

var ErrDeliveryFailed = errors.New("delivery failed")

type App struct {
	config    *config.Config
	logger    logging.Logger
	loc       *time.Location
	client    supernote.Client
	predictor *puzzle.Predictor
	pipeline  *delivery.Pipeline
	now       func() time.Time
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	loc, err := calendar.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, err
	}

	fs := afero.NewOsFs()
	workDir, err := filex.EnsureDir(fs, c.WorkDir)
	if err != nil {
		return nil, fmt.Errorf("work dir: %w", err)
	}

	arch, err := archive.New(ctx, c.Archive)
	if err != nil {
		return nil, fmt.Errorf("archive init error: %w", err)
	}

	httpClient := &http.Client{Timeout: c.RequestTimeout}
	client := supernote.NewHTTPClient(c.APIBaseURL, httpClient, logger)

	return newApp(c, logger, loc, client, delivery.HTTPDownloader{Client: httpClient}, fs, workDir, arch), nil
}

func newApp(c *config.Config, logger logging.Logger, loc *time.Location, client supernote.Client,
	downloader delivery.Downloader, fs afero.Fs, workDir string, arch archive.Archive) *App {

	pipeline := delivery.NewPipeline(client, downloader, fs, delivery.Options{
		MinPayloadSize: c.MinPayloadSize,
		KeepDownloads:  c.KeepDownloads,
		Archive:        arch,
		Logger:         logger,
	})

	return &App{
		config:    c,
		logger:    logger,
		loc:       loc,
		client:    client,
		predictor: puzzle.NewPredictor(workDir),
		pipeline:  pipeline,
		now:       time.Now,
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run performs a single delivery, or keeps delivering on the configured
// schedule until the process is signalled.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	if app.config.Schedule == "" {
		_, err := app.RunOnce(ctx, app.now())
		return err
	}

	s, err := scheduler.New(app.config.Schedule, app.loc, app.logger)
	if err != nil {
		return err
	}

	app.logger.Info(ctx, "starting scheduled mode", "schedule", app.config.Schedule, "time_zone", app.loc.String())
	return s.Run(ctx, func(ctx context.Context, tick time.Time) error {
		_, err := app.RunOnce(ctx, tick)
		return err
	})
}

// RunOnce delivers every puzzle due on the day now falls on in the
// configured zone. Login and folder resolution failures abort the run before
// any delivery starts; per-puzzle failures are collected in the report and
// returned joined under ErrDeliveryFailed.
func (app *App) RunOnce(ctx context.Context, now time.Time) (delivery.Report, error) {
	log := app.logger.With("run_id", uuid.NewString())

	day := calendar.Resolve(now, app.loc)
	due := day.Due()
	if len(due) == 0 {
		log.Info(ctx, fmt.Sprintf("Today is %s. No puzzles to deliver.", day.Weekday), "date", day.ISO())
		return delivery.Report{}, nil
	}

	specs, err := app.predictor.PredictAll(due)
	if err != nil {
		return delivery.Report{}, err
	}

	token, err := app.client.Login(ctx, app.config.Email, app.config.Password)
	if err != nil {
		return delivery.Report{}, fmt.Errorf("login error: %w", err)
	}

	folderID, err := folders.Resolve(ctx, app.client, token, app.config.DestinationPath)
	if err != nil {
		return delivery.Report{}, fmt.Errorf("destination folder error: %w", err)
	}

	for _, s := range specs {
		log.Info(ctx, fmt.Sprintf("Delivering today's %s puzzle.", s.Identity.Variant),
			"puzzle", s.Identity.Kind.String(), "url", s.RemoteURL)
	}

	report := app.pipeline.Run(ctx, token, folderID, specs)

	log.Info(ctx, "run finished",
		"date", day.ISO(),
		"stamp", day.MDY(),
		"delivered", report.Count(delivery.StatusDelivered),
		"already_delivered", report.Count(delivery.StatusAlreadyDelivered),
		"not_published", report.Count(delivery.StatusNotPublished),
		"failed", report.Count(delivery.StatusFailed),
	)

	if err := report.Err(); err != nil {
		return report, fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	return report, nil
}
