package supernote

import (
	"bytes"
	"context"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/puzzlepost/internal/logging"
	"github.com/dmitrijs2005/puzzlepost/internal/netx"
)

const (
	DefaultBaseURL = "https://cloud.supernote.com/api"

	accessTokenHeader = "x-access-token"
	listPageSize      = 100
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, httpClient *http.Client, logger logging.Logger) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient, logger: logger}
}

func hashPassword(password, randomCode string) string {
	m := md5.Sum([]byte(password))
	s := sha256.Sum256([]byte(hex.EncodeToString(m[:]) + randomCode))
	return hex.EncodeToString(s[:])
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (Token, error) {
	var code randomCodeResponse
	if err := c.post(ctx, "/official/user/query/random/code", "", randomCodeRequest{CountryCode: 1, Account: email}, &code); err != nil {
		return "", fmt.Errorf("random code: %w", err)
	}

	req := loginRequest{
		CountryCode: 1,
		Account:     email,
		Password:    hashPassword(password, code.RandomCode),
		Browser:     "Chrome107",
		Equipment:   "1",
		LoginMethod: "1",
		Timestamp:   code.Timestamp,
		Language:    "en",
	}

	var resp loginResponse
	if err := c.post(ctx, "/official/user/account/login/new", "", req, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("login: %w: %w", ErrUnauthorized, err)
		}
		return "", fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login: %w: empty token", ErrUnauthorized)
	}

	return Token(resp.Token), nil
}

// ListFiles returns every entry of directoryID, following pagination.
func (c *HTTPClient) ListFiles(ctx context.Context, token Token, directoryID ID) ([]File, error) {
	if directoryID == "" {
		directoryID = RootDirectoryID
	}

	var files []File
	for page := 1; ; page++ {
		req := listRequest{DirectoryID: directoryID, PageNo: page, PageSize: listPageSize, Order: "time", Sequence: "desc"}

		var resp listResponse
		if err := c.post(ctx, "/file/list/query", token, req, &resp); err != nil {
			return nil, fmt.Errorf("list %s: %w", directoryID, err)
		}

		files = append(files, resp.FileList...)
		c.logger.Debug(ctx, "listed folder page", "directory_id", directoryID, "page", page, "entries", len(resp.FileList), "total", resp.Total)

		if len(resp.FileList) == 0 || len(files) >= resp.Total {
			return files, nil
		}
	}
}

// UploadFile stores data as fileName in directoryID: apply for an upload
// slot, PUT the bytes to the returned object-storage URL, then confirm.
func (c *HTTPClient) UploadFile(ctx context.Context, token Token, directoryID ID, fileName string, data []byte) error {
	sum := md5.Sum(data)
	digest := hex.EncodeToString(sum[:])

	var slot uploadApplyResponse
	apply := uploadApplyRequest{DirectoryID: directoryID, FileName: fileName, MD5: digest, Size: len(data)}
	if err := c.post(ctx, "/file/upload/apply", token, apply, &slot); err != nil {
		return fmt.Errorf("upload apply %s: %w", fileName, err)
	}

	headers := map[string]string{
		"Authorization":        slot.S3Authorization,
		"x-amz-date":           slot.XAmzDate,
		"x-amz-content-sha256": "UNSIGNED-PAYLOAD",
	}
	if err := netx.UploadToPresignedURL(ctx, c.http, slot.URL, headers, data); err != nil {
		return fmt.Errorf("upload %s: %w", fileName, err)
	}

	finish := uploadFinishRequest{DirectoryID: directoryID, FileName: fileName, FileSize: len(data), InnerName: slot.InnerName, MD5: digest}
	if err := c.post(ctx, "/file/upload/finish", token, finish, nil); err != nil {
		return fmt.Errorf("upload finish %s: %w", fileName, err)
	}

	return nil
}

func (c *HTTPClient) post(ctx context.Context, path string, token Token, in any, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(accessTokenHeader, string(token))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	if err := mapStatus(resp.StatusCode); err != nil {
		return fmt.Errorf("%s: %w: %s", path, err, resp.Status)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%s: %w: decode: %v", path, ErrRequestFailed, err)
	}
	if !env.Success {
		return &APIError{Path: path, Code: env.ErrorCode, Msg: env.ErrorMsg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: %w: decode: %v", path, ErrRequestFailed, err)
	}
	return nil
}

func mapStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusTooManyRequests, code >= 500:
		return ErrUnavailable
	default:
		return ErrRequestFailed
	}
}
