package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/httpget/client"
	"github.com/adamwoolhether/httpget/client/download"
)

const tracerName = "github.com/adamwoolhether/httpget/fetcher"

// Fetcher downloads a single URL to a local file.
type Fetcher struct {
	opts options
}

// New returns a Fetcher configured with the provided options.
func New(optFns ...Option) (*Fetcher, error) {
	opts := options{
		logger:    slog.Default(),
		out:       os.Stdout,
		tracer:    otel.Tracer(tracerName),
		userAgent: LegacyUserAgent,
	}

	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying fetcher option: %w", err)
		}
	}

	return &Fetcher{opts: opts}, nil
}

// Fetch issues a GET for r.URL and saves a 200 response body to
// r.Destination, replacing any existing file. Any other status leaves the
// destination untouched and returns a *StatusError.
//
// When r.Destination names an existing directory, the file name is taken
// from the URL.
func (f *Fetcher) Fetch(ctx context.Context, r Request) (Result, error) {
	start := time.Now()
	res := Result{
		ID:  uuid.NewString(),
		URL: r.URL,
	}
	log := f.opts.logger.With("fetch_id", res.ID)

	ctx, span := f.opts.tracer.Start(ctx, "fetcher.fetch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.url", r.URL)),
	)
	defer span.End()

	err := f.fetch(ctx, log, r, &res)
	res.Duration = time.Since(start)

	span.SetAttributes(
		attribute.Int("http.status_code", res.StatusCode),
		attribute.String("file.path", res.Path),
		attribute.Int64("file.bytes", res.Bytes),
	)

	kind := KindOf(err)
	if f.opts.recorder != nil {
		f.opts.recorder.RecordFetch(kind, res)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, kind.String())
		log.Debug("fetch failed", "url", r.URL, "kind", kind.String(), "error", err)
		return res, err
	}

	log.Info("fetch complete", "url", r.URL, "path", res.Path, "bytes", res.Bytes, "duration", res.Duration)

	return res, nil
}

func (f *Fetcher) fetch(ctx context.Context, log *slog.Logger, r Request, res *Result) error {
	if err := Validate(r); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	u, err := url.Parse(r.URL)
	if err != nil {
		return fmt.Errorf("%w: parsing url: %w", ErrInvalidRequest, err)
	}

	path, err := download.ResolvePath(r.URL, r.Destination)
	if err != nil {
		return fmt.Errorf("%w: resolving destination: %w", ErrInvalidRequest, err)
	}
	res.Path = path

	c, err := client.Build(f.clientOptions(log)...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	// Save the bytes as sent; the transport would otherwise ask for gzip and
	// decode a Content-Encoding: gzip body before it reaches disk.
	req, err := c.Request(ctx, u, http.MethodGet, client.WithHeaders(map[string][]string{
		"Accept-Encoding": {"identity"},
	}))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	fmt.Fprintf(f.opts.out, "retrieving %s\n", r.URL)

	var dlOpts []client.DownloadOption
	if f.opts.progress {
		dlOpts = append(dlOpts, client.WithProgress())
	}

	n, err := c.Download(req, http.StatusOK, path, dlOpts...)
	res.Bytes = n
	if err != nil {
		return classify(res, err)
	}
	res.StatusCode = http.StatusOK

	return nil
}

func (f *Fetcher) clientOptions(log *slog.Logger) []client.Option {
	opts := []client.Option{
		client.WithLogger(log),
		client.WithUserAgent(f.opts.userAgent),
		client.WithTimeout(f.opts.timeout),
	}

	if f.opts.transport != nil {
		opts = append(opts, client.WithTransport(f.opts.transport))
	}

	if f.opts.noFollowRedirects {
		opts = append(opts, client.WithNoFollowRedirects())
	}

	return opts
}

// classify maps a client error onto the fetcher's error kinds.
func classify(res *Result, err error) error {
	if errors.Is(err, client.ErrTransport) {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	// Past this point a response arrived; only a status mismatch says which.
	res.StatusCode = http.StatusOK

	var statusErr *client.UnexpectedStatusError
	if errors.As(err, &statusErr) {
		res.StatusCode = statusErr.StatusCode
		return &StatusError{StatusCode: statusErr.StatusCode, Err: err}
	}

	var pathErr *fs.PathError
	var linkErr *os.LinkError
	if errors.As(err, &pathErr) || errors.As(err, &linkErr) {
		return fmt.Errorf("%w: %w", ErrFileSystem, err)
	}

	// Body read failures, truncation and cancellation mid-body.
	return fmt.Errorf("%w: %w", ErrTransport, err)
}
