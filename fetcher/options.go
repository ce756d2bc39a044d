package fetcher

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Recorder receives the outcome of every fetch.
type Recorder interface {
	RecordFetch(kind Kind, res Result)
}

// Option defines optional settings for a [Fetcher].
type Option func(*options) error

type options struct {
	logger            *slog.Logger
	out               io.Writer
	tracer            trace.Tracer
	transport         http.RoundTripper
	userAgent         string
	timeout           time.Duration
	noFollowRedirects bool
	progress          bool
	recorder          Recorder
}

// WithLogger sets the structured logger. Defaults to [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		o.logger = logger
		return nil
	}
}

// WithOutput sets where the operator-facing progress line is written.
// Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) error {
		if w == nil {
			return errors.New("output must not be nil")
		}
		o.out = w
		return nil
	}
}

// WithTracer sets the tracer used for the fetch span.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		o.tracer = tracer
		return nil
	}
}

// WithTransport sets the base round tripper of the HTTP client.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) error {
		if rt == nil {
			return errors.New("transport must not be nil")
		}
		o.transport = rt
		return nil
	}
}

// WithUserAgent overrides [LegacyUserAgent].
func WithUserAgent(ua string) Option {
	return func(o *options) error {
		if ua == "" {
			return errors.New("user agent must not be empty")
		}
		o.userAgent = ua
		return nil
	}
}

// WithTimeout bounds the whole request, body included. Zero, the default,
// waits forever.
func WithTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d < 0 {
			return errors.New("timeout must not be negative")
		}
		o.timeout = d
		return nil
	}
}

func WithNoFollowRedirects() Option {
	return func(o *options) error {
		o.noFollowRedirects = true
		return nil
	}
}

func WithProgress() Option {
	return func(o *options) error {
		o.progress = true
		return nil
	}
}

func WithRecorder(r Recorder) Option {
	return func(o *options) error {
		o.recorder = r
		return nil
	}
}
