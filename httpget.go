// Package httpget downloads a single URL to a local file.
package httpget

import (
	"context"

	"github.com/adamwoolhether/httpget/fetcher"
)

// New instantiates a new *fetcher.Fetcher with the provided options.
// If not specified, the legacy curl User-Agent and no timeout are used.
func New(opts ...fetcher.Option) (*fetcher.Fetcher, error) {
	return fetcher.New(opts...)
}

// Get fetches rawURL into dest with a one-off Fetcher.
func Get(ctx context.Context, rawURL, dest string, opts ...fetcher.Option) (fetcher.Result, error) {
	f, err := New(opts...)
	if err != nil {
		return fetcher.Result{}, err
	}

	return f.Fetch(ctx, fetcher.Request{URL: rawURL, Destination: dest})
}
