package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	restapi "github.com/hedisam/ringbuffer/api/rest"
	"github.com/hedisam/ringbuffer/internal/custompromauto"
	"github.com/hedisam/ringbuffer/internal/store/memdb"
)

type Options struct {
	ServerAddr  string
	MaxCapacity int
	Verbose     bool
}

func main() {
	var opts Options
	flag.StringVar(&opts.ServerAddr, "server-addr", "localhost:8080", "Server addr to serve the http server on")
	flag.IntVar(&opts.MaxCapacity, "max-capacity", memdb.DefaultMaxCapacity, "Largest capacity a single buffer can be created with")
	flag.BoolVar(&opts.Verbose, "v", false, "Verbose output")
	flag.Parse()

	logger := logrus.New()
	ensureValidOpts(logger, opts)

	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	bufferStore := memdb.NewBufferStore(memdb.WithMaxCapacity(opts.MaxCapacity))

	mux := http.NewServeMux()
	restapi.NewServer(logger, bufferStore).Register(mux)

	// use a custom prom registry to avoid recording the default http handler metrics
	mux.Handle("/metrics", promhttp.HandlerFor(custompromauto.Registry(), promhttp.HandlerOpts{}))

	mustListenAndServe(ctx, logger, opts.ServerAddr, mux)
}

func mustListenAndServe(ctx context.Context, logger *logrus.Logger, addr string, handler http.Handler) {
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	listener, err := listenWithRetry(ctx, logger, addr)
	if err != nil {
		logger.WithError(err).WithField("addr", addr).Fatal("Could not listen on server addr")
	}

	go func() {
		logger.WithField("addr", addr).Info("Serving server...")
		err := srv.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed with error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	logger.Info("Shutting down server...")
	err = srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.WithError(err).Error("Failed to shutdown server gracefully")
	}
}

// listenWithRetry keeps trying to bind addr for a few seconds, e.g. while a previous instance is
// still releasing the port during a restart.
func listenWithRetry(ctx context.Context, logger *logrus.Logger, addr string) (net.Listener, error) {
	bk := backoff.WithContext(newExponentialBackoffConfig(), ctx)
	return backoff.RetryWithData[net.Listener](func() (net.Listener, error) {
		l, err := net.Listen("tcp", addr)
		if err != nil {
			logger.WithField("addr", addr).WithError(err).Warn("Failed to listen, retrying...")
			return nil, fmt.Errorf("listen on %q: %w", addr, err)
		}
		return l, nil
	}, bk)
}

func newExponentialBackoffConfig() *backoff.ExponentialBackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithMaxElapsedTime(time.Second*5),
		backoff.WithMaxInterval(time.Second),
		backoff.WithInitialInterval(time.Millisecond*100),
		backoff.WithMultiplier(2),
		backoff.WithRandomizationFactor(0.2),
	)
}

func ensureValidOpts(logger *logrus.Logger, opts Options) {
	if opts.ServerAddr == "" {
		logger.Error("--server-addr is required")
		flag.Usage()
		os.Exit(1)
	}
	if opts.MaxCapacity < 1 {
		logger.Error("--max-capacity is too small, it cannot be less than 1")
		flag.Usage()
		os.Exit(1)
	}
}
