// Package client provides the configurable HTTP client used to fetch
// files, built on [net/http].
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := client.Build(
//		client.WithTimeout(10 * time.Second),
//		client.WithUserAgent("myapp/1.0"),
//	)
//
// # Downloading Files
//
// Construct a [Request] and stream the response body directly to disk.
// The file is only written when the status matches:
//
//	req, err := client.Request(ctx, u, http.MethodGet)
//	n, err := c.Download(req, http.StatusOK, "/tmp/file.bin",
//		client.WithProgress(),
//	)
//
// A status mismatch yields an [*UnexpectedStatusError]; a failure to get
// any response wraps [ErrTransport].
//
// For lower-level control see the
// [github.com/adamwoolhether/httpget/client/download] package.
package client
