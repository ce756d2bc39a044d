// Package fetcher performs a single HTTP GET and saves a 200 response body
// to disk.
//
// # Fetching
//
//	f, err := fetcher.New(fetcher.WithTimeout(time.Minute))
//	res, err := f.Fetch(ctx, fetcher.Request{
//		URL:         "https://example.com/setup.exe",
//		Destination: "/tmp/setup.exe",
//	})
//
// Requests carry [LegacyUserAgent] unless [WithUserAgent] is given.
// Redirects are followed unless [WithNoFollowRedirects] is given.
//
// # Errors
//
// A response other than 200 yields a [*StatusError] and nothing is written.
// Other failures wrap [ErrInvalidRequest], [ErrTransport] or [ErrFileSystem].
// [KindOf] maps any error returned by [Fetcher.Fetch] to a [Kind].
package fetcher
