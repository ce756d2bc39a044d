// Command httpget downloads a URL to a file.
//
//	httpget [flags] <url> <destination-path>
//
// A 200 response is saved to the destination, replacing any existing file.
// Any other status leaves the destination untouched.
//
// Exit codes:
//
//	0  saved
//	1  usage or configuration error
//	2  response status was not 200
//	3  transport error
//	4  filesystem error
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/adamwoolhether/httpget"
	"github.com/adamwoolhether/httpget/fetcher"
	"github.com/adamwoolhether/httpget/internal/config"
	"github.com/adamwoolhether/httpget/internal/metrics"
)

const (
	exitOK = iota
	exitUsage
	exitStatus
	exitTransport
	exitFileSystem
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "httpget: %v\n", err)
		return exitUsage
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	opts := []fetcher.Option{
		fetcher.WithLogger(logger),
		fetcher.WithOutput(stdout),
		fetcher.WithTimeout(cfg.Timeout),
	}
	if cfg.UserAgent != "" {
		opts = append(opts, fetcher.WithUserAgent(cfg.UserAgent))
	}
	if cfg.NoRedirect {
		opts = append(opts, fetcher.WithNoFollowRedirects())
	}
	if cfg.Progress {
		opts = append(opts, fetcher.WithProgress())
	}

	var m *metrics.Metrics
	if cfg.MetricsFile != "" {
		m = metrics.New()
		opts = append(opts, fetcher.WithRecorder(m))
	}

	f, err := httpget.New(opts...)
	if err != nil {
		fmt.Fprintf(stderr, "httpget: %v\n", err)
		return exitUsage
	}

	_, err = f.Fetch(ctx, fetcher.Request{URL: cfg.URL, Destination: cfg.Destination})

	if m != nil {
		if werr := m.WriteTextfile(cfg.MetricsFile); werr != nil {
			logger.Error("writing metrics", "path", cfg.MetricsFile, "error", werr)
		}
	}

	return report(stderr, err)
}

// report prints err for the operator and maps it to an exit code.
func report(stderr io.Writer, err error) int {
	switch fetcher.KindOf(err) {
	case fetcher.KindNone:
		return exitOK
	case fetcher.KindStatus:
		fmt.Fprintln(stderr, err)
		return exitStatus
	case fetcher.KindInvalid:
		fmt.Fprintf(stderr, "httpget: %v\n", err)
		return exitUsage
	case fetcher.KindFileSystem:
		fmt.Fprintf(stderr, "httpget: %v\n", err)
		return exitFileSystem
	default:
		fmt.Fprintf(stderr, "httpget: %v\n", err)
		return exitTransport
	}
}
