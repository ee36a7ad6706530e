// Package config loads huffd settings from flags with environment fallbacks.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/op/go-logging"
)

// Environment variables consulted when a flag is not given.
const (
	EnvAddr            = "HUFFMAN_ADDR"
	EnvMaxInput        = "HUFFMAN_MAX_INPUT"
	EnvLogLevel        = "HUFFMAN_LOG_LEVEL"
	EnvShutdownTimeout = "HUFFMAN_SHUTDOWN_TIMEOUT"
)

// Defaults.
const (
	DefaultAddr            = ":8080"
	DefaultMaxInput        = 1 << 20
	DefaultLogLevel        = "INFO"
	DefaultShutdownTimeout = 5 * time.Second
)

// Config holds the server settings.
type Config struct {
	Addr            string
	MaxInputBytes   int64
	LogLevel        string
	ShutdownTimeout time.Duration
}

// Load parses args (without the program name). Values missing from args are
// taken from getenv, then from the defaults. getenv is usually os.Getenv.
func Load(args []string, getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:            DefaultAddr,
		MaxInputBytes:   DefaultMaxInput,
		LogLevel:        DefaultLogLevel,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
	if err := cfg.fromEnv(getenv); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("huffd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Addr, "listen", cfg.Addr, "address to listen on")
	fs.Int64Var(&cfg.MaxInputBytes, "max-input", cfg.MaxInputBytes, "largest accepted request body in bytes")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "DEBUG, INFO, NOTICE, WARNING, ERROR or CRITICAL")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "grace period for in-flight requests")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return cfg, cfg.Validate()
}

func (c *Config) fromEnv(getenv func(string) string) error {
	if v := getenv(EnvAddr); v != "" {
		c.Addr = v
	}
	if v := getenv(EnvMaxInput); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxInput, err)
		}
		c.MaxInputBytes = n
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvShutdownTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvShutdownTimeout, err)
		}
		c.ShutdownTimeout = d
	}
	return nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.Addr == "":
		return errors.New("config: empty listen address")
	case c.MaxInputBytes <= 0:
		return fmt.Errorf("config: max input %d must be positive", c.MaxInputBytes)
	case c.ShutdownTimeout < 0:
		return fmt.Errorf("config: negative shutdown timeout %s", c.ShutdownTimeout)
	}
	if _, err := logging.LogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}
	return nil
}
