package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"arcana/internal/catalog"
	"arcana/internal/platform/config"
	"arcana/internal/platform/httpserver"
	"arcana/internal/platform/logger"
	"arcana/internal/platform/metrics"
	"arcana/internal/platform/random"
	platformredis "arcana/internal/platform/redis"
	"arcana/internal/reading"
	readinghandler "arcana/internal/reading/handler"
	"arcana/internal/session"
	memorystore "arcana/internal/session/store/memory"
	redisstore "arcana/internal/session/store/redis"
	"arcana/internal/shuffle"
	shufflehandler "arcana/internal/shuffle/handler"
	httptransport "arcana/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", "error", err.Error())
		os.Exit(1)
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	rng := random.New()
	cat := catalog.LoadOrFallback(cfg.DeckDir, log)

	var store session.Store
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis unavailable", "error", err.Error())
		os.Exit(1)
	}
	if redisClient != nil {
		store = redisstore.New(redisClient.Client, cfg.SessionTTL)
		log.Info("using redis session store")
		defer redisClient.Close()
	} else {
		store = memorystore.New()
	}

	sessions := session.NewService(store, cfg.SessionTTL, log, m)
	shuffles := shuffle.NewService(cat, sessions, shuffle.NewSampler(rng), cfg.PoolSize, log, m)
	readings := reading.NewService(cat, sessions,
		reading.NewEngine(rng), reading.NewClosingComposer(rng), cfg.PickCount, log, m)

	router := httptransport.NewRouter(log, m,
		shufflehandler.New(shuffles, log),
		readinghandler.New(readings, log, m),
		cfg.StaticDir,
	)
	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting arcana server", "addr", cfg.Addr, "cards", cat.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Expired sessions are removed by a fixed-interval sweep rather than at
	// read time; the redis store expires keys natively and sweeps nothing.
	g.Go(func() error {
		err := sessions.Run(gctx, cfg.SweepInterval)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err.Error())
		os.Exit(1)
	}
}
