package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"veristub/internal/consumer"
	"veristub/internal/customer"
	"veristub/internal/engine"
	"veristub/internal/platform/config"
	"veristub/internal/platform/httpserver"
	"veristub/internal/platform/logger"
	"veristub/internal/platform/metrics"
	httptransport "veristub/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	eng := engine.New(engine.Config{
		Environment:       cfg.Environment,
		AutoDecisionDelay: cfg.AutoDecisionDelay,
		Metrics:           m,
		Logger:            log,
	})

	directory := customer.NewInMemoryDirectory()
	adapter := consumer.NewAdapter(eng.Inquiries, directory, log)
	adapter.Register(eng.Dispatcher())

	handler := httptransport.NewHandler(eng, log)
	srv := httpserver.New(cfg.Addr, httptransport.NewRouter(handler))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting veristub", "addr", cfg.Addr, "auto_decision_delay", cfg.AutoDecisionDelay)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err.Error())
		os.Exit(1)
	}
}
