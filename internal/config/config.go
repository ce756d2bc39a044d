// Package config assembles the CLI settings from flags, the environment
// and an optional dotenv file. Flags win over the environment, and variables
// already set in the environment win over the dotenv file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// ErrUsage reports malformed command-line arguments.
var ErrUsage = errors.New("usage: httpget [flags] <url> <destination-path>")

// Config holds everything the CLI needs for a single fetch.
type Config struct {
	URL         string
	Destination string

	Timeout     time.Duration
	UserAgent   string
	NoRedirect  bool
	Progress    bool
	MetricsFile string
	LogLevel    slog.Level
	EnvFile     string
}

// Load parses args, which exclude the program name. Flag errors and usage
// text are written to output. A -h or -help flag yields [flag.ErrHelp].
func Load(args []string, output io.Writer) (Config, error) {
	var cfg Config
	var logLevel string

	fs := flag.NewFlagSet("httpget", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), ErrUsage.Error())
		fs.PrintDefaults()
	}

	fs.DurationVar(&cfg.Timeout, "timeout", 0, "overall request timeout, 0 for none")
	fs.StringVar(&cfg.UserAgent, "user-agent", "", "override the User-Agent header")
	fs.BoolVar(&cfg.NoRedirect, "no-redirect", false, "do not follow redirects")
	fs.BoolVar(&cfg.Progress, "progress", false, "log transfer progress")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "write Prometheus metrics to this file after the run")
	fs.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.StringVar(&cfg.EnvFile, "env-file", "", "load settings from this dotenv file (default .env if present)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if fs.NArg() != 2 {
		return Config{}, fmt.Errorf("%w: expected 2 arguments, got %d", ErrUsage, fs.NArg())
	}
	cfg.URL = fs.Arg(0)
	cfg.Destination = fs.Arg(1)

	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if err := applyEnv(&cfg, &logLevel, set); err != nil {
		return Config{}, err
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, fmt.Errorf("parsing log level: %w", err)
	}

	if cfg.Timeout < 0 {
		return Config{}, fmt.Errorf("timeout must not be negative: %s", cfg.Timeout)
	}

	return cfg, nil
}

// loadEnvFile loads path into the environment without overriding variables
// that are already set. An empty path loads .env when it exists.
func loadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(defaultEnvFile); err != nil {
			return nil
		}
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}

	return nil
}

// applyEnv fills every setting whose flag was not given explicitly.
func applyEnv(cfg *Config, logLevel *string, set map[string]bool) error {
	var err error

	if !set["timeout"] {
		if cfg.Timeout, err = getDuration("HTTPGET_TIMEOUT", cfg.Timeout); err != nil {
			return err
		}
	}
	if !set["user-agent"] {
		cfg.UserAgent = getEnv("HTTPGET_USER_AGENT", cfg.UserAgent)
	}
	if !set["no-redirect"] {
		if cfg.NoRedirect, err = getBool("HTTPGET_NO_REDIRECT", cfg.NoRedirect); err != nil {
			return err
		}
	}
	if !set["progress"] {
		if cfg.Progress, err = getBool("HTTPGET_PROGRESS", cfg.Progress); err != nil {
			return err
		}
	}
	if !set["metrics-file"] {
		cfg.MetricsFile = getEnv("HTTPGET_METRICS_FILE", cfg.MetricsFile)
	}
	if !set["log-level"] {
		*logLevel = getEnv("HTTPGET_LOG_LEVEL", *logLevel)
	}

	return nil
}
