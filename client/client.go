package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/adamwoolhether/httpget/client/download"
)

// Client sends requests and streams accepted responses to disk.
type Client struct {
	hc     *http.Client
	logger *slog.Logger
}

// Build returns a Client configured by opts. Without options it uses
// [http.DefaultTransport], follows redirects and never times out.
func Build(opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	hc := &http.Client{}
	if o.base != nil {
		cpy := *o.base
		hc = &cpy
	}

	if o.timeout != nil {
		hc.Timeout = *o.timeout
	}

	if o.noRedirect {
		hc.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	rt := o.transport
	if rt == nil {
		rt = hc.Transport
	}
	if rt == nil {
		rt = http.DefaultTransport
	}
	if o.userAgent != "" {
		rt = uaTransport{ua: o.userAgent, next: rt}
	}
	hc.Transport = rt

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{hc: hc, logger: logger}, nil
}

// Download sends req and, when the response status equals expCode, saves the
// body to destPath and returns the number of bytes written. The body lands in
// a temp file beside destPath first, so destPath is either fully replaced or
// left alone. Any other status yields an [*UnexpectedStatusError].
func (c *Client) Download(req *http.Request, expCode int, destPath string, opts ...DownloadOption) (int64, error) {
	if destPath == "" {
		return 0, errors.New("destPath must not be empty")
	}

	var n int64
	err := c.do(req, expCode, func(resp *http.Response) error {
		var err error
		n, err = download.Handle(req.Context(), resp.Body, resp.ContentLength, destPath, c.logger, opts...)
		if err != nil {
			return fmt.Errorf("download: %w", err)
		}
		return nil
	})

	return n, err
}

// Request is [Request] bound to the Client for call-site symmetry.
func (c *Client) Request(ctx context.Context, reqURL *url.URL, method string, opts ...RequestOption) (*http.Request, error) {
	return Request(ctx, reqURL, method, opts...)
}

// do sends req and hands the response to fn once its status is expCode.
// The body is always closed. It is drained first only when fn consumed it
// successfully; after a status mismatch or a failed read the connection is
// not worth reusing.
func (c *Client) do(req *http.Request, expCode int, fn execFn) error {
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: exec http do: %w", ErrTransport, err)
	}

	c.logger.Debug("response received",
		"url", req.URL.Redacted(),
		"status", resp.StatusCode,
		"contentLength", resp.ContentLength,
	)

	drain := true
	defer func() { c.closeBody(resp.Body, drain) }()

	if resp.StatusCode != expCode {
		// The error body may never end; read the capped prefix and drop
		// the connection instead of draining it.
		drain = false
		return c.statusError(resp)
	}

	if err := fn(resp); err != nil {
		drain = false
		return fmt.Errorf("exec fn: %w", err)
	}

	return nil
}

func (c *Client) statusError(resp *http.Response) error {
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBodySize))
	if err != nil {
		b = []byte("unable to read body")
	}

	return &UnexpectedStatusError{
		StatusCode: resp.StatusCode,
		Body:       string(b),
		Err:        ErrUnexpectedStatusCode,
	}
}

func (c *Client) closeBody(body io.ReadCloser, drain bool) {
	if drain {
		if _, err := io.Copy(io.Discard, body); err != nil {
			c.logger.Error("draining response body", "error", err)
		}
	}
	if err := body.Close(); err != nil {
		c.logger.Error("closing response body", "error", err)
	}
}

// Request builds a body-less request for reqURL.
func Request(ctx context.Context, reqURL *url.URL, method string, opts ...RequestOption) (*http.Request, error) {
	var o requestOptions
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("instantiating request: %w", err)
	}

	for k, vs := range o.header {
		req.Header[k] = append(req.Header[k], vs...)
	}

	return req, nil
}
