package download

import (
	"errors"
	"io/fs"
)

// Option defines optional settings for downloading files.
//
// WithProgress enables periodic download progress logging via the
// logger supplied to Handle.
//
// WithFileMode sets the permission bits of the saved file. The temp
// file is created 0600, so without it the result would not be readable
// by anyone else.
type Option func(*options) error

type options struct {
	progress bool
	mode     fs.FileMode
}

const defaultFileMode fs.FileMode = 0o644

func WithProgress() Option {
	return func(opts *options) error {
		opts.progress = true
		return nil
	}
}

func WithFileMode(mode fs.FileMode) Option {
	return func(opts *options) error {
		if mode&^fs.ModePerm != 0 {
			return errors.New("file mode must only contain permission bits")
		}

		opts.mode = mode
		return nil
	}
}
