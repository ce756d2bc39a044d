// Package download streams HTTP response bodies to disk with optional
// progress reporting.
//
// # Single Download
//
// [Handle] writes the response body to a temporary file alongside the
// destination path, then atomically renames it on success, replacing
// whatever was there before:
//
//	n, err := download.Handle(ctx, resp.Body, resp.ContentLength, destPath, logger,
//		download.WithProgress(),
//	)
//
// # Destination Names
//
// [ResolvePath] maps a directory destination to a file inside it, named
// after the last segment of the URL path.
//
// Most callers should use the higher-level
// [github.com/adamwoolhether/httpget/client] package, which invokes
// Handle internally.
package download
