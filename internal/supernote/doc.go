// Package supernote is a client for the Supernote Cloud file API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) with the three
//     operations puzzlepost needs: Login, ListFiles and UploadFile.
//  2. HTTPClient, the concrete implementation speaking the JSON API served
//     under https://cloud.supernote.com/api.
//
// # Sessions
//
// Login returns a Token. The token is an immutable value; callers pass it to
// every subsequent call and may share it between goroutines.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnauthorized, ErrUnavailable, ErrRequestFailed. API level
// failures (success=false in the response envelope) are returned as *APIError,
// which matches ErrRequestFailed.
package supernote
