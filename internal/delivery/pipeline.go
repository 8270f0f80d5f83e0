package delivery

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/puzzlepost/internal/archive"
	"github.com/dmitrijs2005/puzzlepost/internal/logging"
	"github.com/dmitrijs2005/puzzlepost/internal/netx"
	"github.com/dmitrijs2005/puzzlepost/internal/puzzle"
	"github.com/dmitrijs2005/puzzlepost/internal/supernote"
	"github.com/spf13/afero"
)

// DefaultMinPayloadSize is the readiness threshold: anything smaller is not a
// real puzzle PDF.
const DefaultMinPayloadSize = 4096

// Remote is the slice of the cloud client the pipeline needs.
type Remote interface {
	ListFiles(ctx context.Context, token supernote.Token, directoryID supernote.ID) ([]supernote.File, error)
	UploadFile(ctx context.Context, token supernote.Token, directoryID supernote.ID, fileName string, data []byte) error
}

type Downloader interface {
	Download(ctx context.Context, url string, fs afero.Fs, dest string) (int64, error)
}

// HTTPDownloader downloads with netx.Download over Client.
type HTTPDownloader struct {
	Client *http.Client
}

func (d HTTPDownloader) Download(ctx context.Context, url string, fs afero.Fs, dest string) (int64, error) {
	return netx.Download(ctx, d.Client, url, fs, dest)
}

type Options struct {
	MinPayloadSize int64
	KeepDownloads  bool
	Archive        archive.Archive
	Logger         logging.Logger
}

type Pipeline struct {
	remote     Remote
	downloader Downloader
	fs         afero.Fs
	opts       Options
}

func NewPipeline(remote Remote, downloader Downloader, fs afero.Fs, opts Options) *Pipeline {
	if opts.MinPayloadSize <= 0 {
		opts.MinPayloadSize = DefaultMinPayloadSize
	}
	if opts.Archive == nil {
		opts.Archive = archive.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger{}
	}
	return &Pipeline{remote: remote, downloader: downloader, fs: fs, opts: opts}
}

// Deliver runs check, download, validate and upload for spec. It never
// returns early with a bare error: every outcome is reported in the Result.
// Besides the size gate, a 4xx answer from the publisher counts as not yet
// published, while a 5xx answer or transport error fails the delivery.
func (p *Pipeline) Deliver(ctx context.Context, token supernote.Token, folderID supernote.ID, spec puzzle.DeliverySpec) Result {
	log := p.opts.Logger.With("puzzle", spec.Identity.Kind.String(), "file", spec.CanonicalName)
	res := Result{Spec: spec}

	fail := func(step string, err error) Result {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("%s: %w", step, err)
		log.Error(ctx, "delivery failed", "step", step, "error", err)
		return res
	}

	existing, err := p.remote.ListFiles(ctx, token, folderID)
	if err != nil {
		return fail("check", err)
	}
	if hasFile(existing, spec.CanonicalName) {
		log.Info(ctx, "already delivered, skipping")
		res.Status = StatusAlreadyDelivered
		return res
	}

	log.Debug(ctx, "downloading", "url", spec.RemoteURL, "path", spec.LocalPath)
	if _, err := p.downloader.Download(ctx, spec.RemoteURL, p.fs, spec.LocalPath); err != nil {
		if notPublished(err) {
			log.Info(ctx, "not published yet", "url", spec.RemoteURL, "reason", err.Error())
			res.Status = StatusNotPublished
			return res
		}
		return fail("download", err)
	}

	fi, err := p.fs.Stat(spec.LocalPath)
	if err != nil {
		return fail("validate", err)
	}
	res.Size = fi.Size()

	if res.Size < p.opts.MinPayloadSize {
		log.Info(ctx, "payload too small, not published yet", "size", res.Size, "min_size", p.opts.MinPayloadSize)
		_ = p.fs.Remove(spec.LocalPath)
		res.Status = StatusNotPublished
		return res
	}

	data, err := afero.ReadFile(p.fs, spec.LocalPath)
	if err != nil {
		return fail("read", err)
	}

	if err := p.remote.UploadFile(ctx, token, folderID, spec.CanonicalName, data); err != nil {
		return fail("upload", err)
	}
	log.Info(ctx, "delivered", "size", res.Size)

	if err := p.opts.Archive.Store(ctx, spec.CanonicalName, data); err != nil {
		log.Warn(ctx, "archive copy failed", "error", err)
	}

	if !p.opts.KeepDownloads {
		if err := p.fs.Remove(spec.LocalPath); err != nil {
			log.Warn(ctx, "removing local copy failed", "path", spec.LocalPath, "error", err)
		}
	}

	res.Status = StatusDelivered
	return res
}

func hasFile(items []supernote.File, name string) bool {
	for _, it := range items {
		if it.FileName == name {
			return true
		}
	}
	return false
}

// notPublished reports whether a download error means the publisher has no
// file at the predicted URL yet (a 4xx answer) rather than a transport failure.
func notPublished(err error) bool {
	var se *netx.StatusError
	if !errors.As(err, &se) {
		return false
	}
	return se.Code >= 400 && se.Code < 500
}
