package opentdb

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrRateLimited indicates OpenTDB refused the request for coming too soon
// after the previous one.
var ErrRateLimited = errors.New("rate limited by OpenTDB")

// StatusError reports a non-200 HTTP response.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.Code, e.URL)
}

// InvalidResponseError indicates a body that is not the JSON shape OpenTDB documents.
type InvalidResponseError struct {
	Content json.RawMessage
	Err     error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid OpenTDB response: %v", e.Err)
}

func (e *InvalidResponseError) Unwrap() error { return e.Err }

// ResponseCodeError is a non-zero response_code from api.php.
type ResponseCodeError struct {
	Code int
}

func (e *ResponseCodeError) Error() string {
	return fmt.Sprintf("OpenTDB response code %d: %s", e.Code, responseCodeText(e.Code))
}

func (e *ResponseCodeError) Unwrap() error {
	if e.Code == codeRateLimit {
		return ErrRateLimited
	}
	return nil
}

// api.php response codes.
const (
	codeSuccess      = 0
	codeNoResults    = 1
	codeInvalidParam = 2
	codeTokenMissing = 3
	codeTokenEmpty   = 4
	codeRateLimit    = 5
)

func responseCodeText(code int) string {
	switch code {
	case codeSuccess:
		return "success"
	case codeNoResults:
		return "no results"
	case codeInvalidParam:
		return "invalid parameter"
	case codeTokenMissing:
		return "session token not found"
	case codeTokenEmpty:
		return "session token exhausted"
	case codeRateLimit:
		return "rate limit"
	default:
		return "unknown"
	}
}
