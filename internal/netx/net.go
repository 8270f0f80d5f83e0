// Package netx holds the plain HTTP transfers puzzlepost performs: streaming
// a published file to local storage and PUTting bytes to a presigned URL.
package netx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/afero"
)

var ErrBadStatus = errors.New("unexpected http status")

// StatusError reports a non-2xx response. It matches ErrBadStatus.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Status)
	}
	return fmt.Sprintf("%s %s: %s; body: %s", e.Method, e.URL, e.Status, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrBadStatus
}

func newStatusError(req *http.Request, resp *http.Response) *StatusError {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{
		Method: req.Method,
		URL:    req.URL.Redacted(),
		Code:   resp.StatusCode,
		Status: resp.Status,
		Body:   string(b),
	}
}

func clientOrDefault(c *http.Client) *http.Client {
	if c == nil {
		return http.DefaultClient
	}
	return c
}

// Download streams url into dest on fs and returns the number of bytes
// written. The body goes to dest+".part" first and is renamed on success, so
// dest never holds a partial file. Non-2xx responses return a *StatusError
// and leave nothing behind.
func Download(ctx context.Context, client *http.Client, url string, fs afero.Fs, dest string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := clientOrDefault(client).Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, newStatusError(req, resp)
	}

	tmp := dest + ".part"
	f, err := fs.Create(tmp)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", tmp, err)
	}

	n, err := io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = fs.Remove(tmp)
		return 0, fmt.Errorf("write %s: %w", tmp, err)
	}

	if err := fs.Rename(tmp, dest); err != nil {
		_ = fs.Remove(tmp)
		return 0, fmt.Errorf("rename %s: %w", tmp, err)
	}

	return n, nil
}

// UploadToPresignedURL PUTs data to a presigned object-storage URL, adding
// any signing headers the issuer handed out alongside the URL.
func UploadToPresignedURL(ctx context.Context, client *http.Client, url string, headers map[string]string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := clientOrDefault(client).Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("upload failed: %w", newStatusError(req, resp))
	}
	return nil
}
