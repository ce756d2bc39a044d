package fetcher

import (
	"errors"
	"fmt"
	"time"
)

// LegacyUserAgent is sent with every request unless overridden. Some
// mirrors only serve binaries to clients that look like curl.
const LegacyUserAgent = "curl/7.21.2 (i386-pc-win32) libcurl/7.21.2 OpenSSL/0.9.8o zlib/1.2.5"

// Request identifies what to fetch and where to save it.
type Request struct {
	URL         string `json:"url" validate:"required,http_url"`
	Destination string `json:"destination" validate:"required"`
}

// Result describes a completed fetch.
type Result struct {
	ID         string
	URL        string
	Path       string
	Bytes      int64
	StatusCode int
	Duration   time.Duration
}

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrTransport      = errors.New("transport error")
	ErrFileSystem     = errors.New("filesystem error")
)

// StatusError is returned when the server answers with anything but 200.
type StatusError struct {
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http get failed: %d", e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// Kind classifies a fetch error.
type Kind int

const (
	KindNone Kind = iota
	KindInvalid
	KindStatus
	KindTransport
	KindFileSystem
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "success"
	case KindInvalid:
		return "invalid"
	case KindStatus:
		return "status"
	case KindTransport:
		return "transport"
	case KindFileSystem:
		return "filesystem"
	default:
		return "unknown"
	}
}

// KindOf reports the Kind of err. Errors that did not come from a
// Fetcher are treated as transport errors.
func KindOf(err error) Kind {
	var statusErr *StatusError

	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &statusErr):
		return KindStatus
	case errors.Is(err, ErrInvalidRequest):
		return KindInvalid
	case errors.Is(err, ErrFileSystem):
		return KindFileSystem
	default:
		return KindTransport
	}
}
