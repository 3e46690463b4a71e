// Package cmd holds the startup sequence shared by service commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pleromasprings/website/internal/platform/config"
	"github.com/pleromasprings/website/internal/platform/otel"
)

// ServiceWeb names the public website process in telemetry.
const ServiceWeb = "web"

const defaultTelemetryFlushTimeout = 5 * time.Second

// ParseConfig loads environment defaults into cfg. Callers register flags
// against the loaded values and then call ParseArgs so flags win.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// RunOption adjusts RunWithTelemetry.
type RunOption func(*runOptions)

type runOptions struct {
	flushTimeout time.Duration
	setup        func(context.Context, string) (func(context.Context) error, error)
}

// WithFlushTimeout bounds the final span flush.
func WithFlushTimeout(timeout time.Duration) RunOption {
	return func(o *runOptions) {
		if timeout > 0 {
			o.flushTimeout = timeout
		}
	}
}

// RunWithTelemetry installs tracing for service, executes run and flushes
// spans on the way out regardless of run's result.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error, opts ...RunOption) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	options := runOptions{flushTimeout: defaultTelemetryFlushTimeout, setup: otel.Setup}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	shutdown, err := options.setup(ctx, service)
	if err != nil {
		return fmt.Errorf("telemetry for %s: %w", service, err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), options.flushTimeout)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			log.Printf("otel shutdown service=%s err=%v", service, err)
		}
	}()

	started := time.Now()
	log.Printf("service starting service=%s", service)
	err = run(ctx)
	log.Printf("service stopped service=%s uptime=%s", service, time.Since(started).Round(time.Millisecond))
	return err
}
