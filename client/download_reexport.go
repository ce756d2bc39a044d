package client

import (
	"io/fs"

	"github.com/adamwoolhether/httpget/client/download"
)

// Re-exports from [download], so most callers need only this package.

type (
	// DownloadOption configures [Client.Download].
	DownloadOption = download.Option

	// DownloadError wraps a sentinel error with additional detail.
	DownloadError = download.Error
)

var (
	// ErrContentLengthMismatch indicates the byte count did not match Content-Length.
	ErrContentLengthMismatch = download.ErrContentLengthMismatch

	// ErrDownloadCancelled indicates the download was cancelled via context.
	ErrDownloadCancelled = download.ErrDownloadCancelled
)

// WithProgress enables periodic download progress logging.
func WithProgress() DownloadOption { return download.WithProgress() }

// WithFileMode sets the permission bits of the saved file.
func WithFileMode(mode fs.FileMode) DownloadOption { return download.WithFileMode(mode) }
