package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	httpAdapter "github.com/aretw0/turing/internal/adapters/http"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// shutdownTimeout gives outstanding requests a deadline for completion.
const shutdownTimeout = 5 * time.Second

// ServeOptions configures the HTTP server.
type ServeOptions struct {
	Addr      string
	StepLimit int
	Debug     bool

	// Stdout receives lifecycle messages. Defaults to os.Stdout.
	Stdout io.Writer

	// Ready, if set, receives the bound address once the listener is open.
	Ready func(addr string)
}

// Serve runs the HTTP server until ctx is cancelled or a SIGINT/SIGTERM arrives,
// then shuts it down gracefully.
func Serve(ctx context.Context, opts ServeOptions) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	logger := createLogger(opts.Debug)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(reg)

	handler := httpAdapter.NewHandler(
		httpAdapter.WithLogger(logger),
		httpAdapter.WithStepLimit(opts.StepLimit),
		httpAdapter.WithMetrics(metrics, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})),
	)

	ln, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", opts.Addr, err)
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sctx := NewSignalContext(ctx)
	defer sctx.Cancel()

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	printSystemMessage(opts.Stdout, "Starting Turing Server on %s", ln.Addr())
	go func() {
		serverErrors <- srv.Serve(ln)
	}()
	if opts.Ready != nil {
		opts.Ready(ln.Addr().String())
	}

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-sctx.Done():
		logger.Info("shutdown requested", "signal", sctx.Signal())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		printSystemMessage(opts.Stdout, "Turing Server stopped gracefully")
		return nil
	}
}
