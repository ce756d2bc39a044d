package client

import (
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// Option configures a [Client] built by [Build].
type Option func(*options) error

type options struct {
	base       *http.Client
	transport  http.RoundTripper
	timeout    *time.Duration
	userAgent  string
	noRedirect bool
	logger     *slog.Logger
}

// WithClient starts from a copy of hc instead of a zero [http.Client].
// hc itself is never modified.
func WithClient(hc *http.Client) Option {
	return func(o *options) error {
		if hc == nil {
			return errors.New("client must not be nil")
		}
		o.base = hc
		return nil
	}
}

// WithTransport replaces the round tripper requests are sent through.
// It takes precedence over the transport of a client given to [WithClient].
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) error {
		if rt == nil {
			return errors.New("transport must not be nil")
		}
		o.transport = rt
		return nil
	}
}

// WithTimeout bounds each request, body transfer included. Zero disables
// the limit.
func WithTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d < 0 {
			return errors.New("timeout must not be negative")
		}
		o.timeout = &d
		return nil
	}
}

// WithUserAgent overwrites the User-Agent header of every request.
func WithUserAgent(ua string) Option {
	return func(o *options) error {
		o.userAgent = ua
		return nil
	}
}

// WithNoFollowRedirects returns 3xx responses to the caller as-is.
func WithNoFollowRedirects() Option {
	return func(o *options) error {
		o.noRedirect = true
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		o.logger = logger
		return nil
	}
}

// uaTransport sets a fixed User-Agent on a clone of each request.
type uaTransport struct {
	ua   string
	next http.RoundTripper
}

func (t uaTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("User-Agent", t.ua)
	return t.next.RoundTrip(r)
}

// RequestOption configures a request built by [Request].
type RequestOption func(*requestOptions) error

type requestOptions struct {
	header http.Header
}

// WithHeaders adds headers to the request. Values for the same key accumulate.
func WithHeaders(headers map[string][]string) RequestOption {
	return func(o *requestOptions) error {
		if o.header == nil {
			o.header = make(http.Header, len(headers))
		}
		for k, vs := range headers {
			for _, v := range vs {
				o.header.Add(k, v)
			}
		}
		return nil
	}
}
