package supernote

import (
	"context"
	"errors"
	"fmt"
)

// RootDirectoryID is the id of the top of a user's cloud drive.
const RootDirectoryID ID = "0"

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrUnavailable   = errors.New("service unavailable")
	ErrRequestFailed = errors.New("request failed")
)

// Token is an access token issued by Login.
type Token string

type Client interface {
	Login(ctx context.Context, email, password string) (Token, error)
	ListFiles(ctx context.Context, token Token, directoryID ID) ([]File, error)
	UploadFile(ctx context.Context, token Token, directoryID ID, fileName string, data []byte) error
}

// APIError is a failure reported inside a successful HTTP response.
type APIError struct {
	Path string
	Code string
	Msg  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Path, e.Msg, e.Code)
}

func (e *APIError) Is(target error) bool {
	return target == ErrRequestFailed
}
