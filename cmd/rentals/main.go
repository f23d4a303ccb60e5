package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	server "alfakhama_rentals/internal/adapters/http_server"
	"alfakhama_rentals/internal/adapters/observability"
	redisad "alfakhama_rentals/internal/adapters/redis"
	"alfakhama_rentals/internal/app"
	"alfakhama_rentals/internal/catalog"
	"alfakhama_rentals/internal/domain"
	"alfakhama_rentals/internal/i18n"
	"alfakhama_rentals/internal/shared"
)

func main() {
	cfg, err := shared.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	table, err := i18n.LoadTable()
	if err != nil {
		log.Fatal().Err(err).Msg("translation table incomplete")
	}

	// page cache is optional
	var cache domain.Cache
	if cfg.CacheEnabled() {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, pages render uncached until it recovers")
		} else {
			log.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.CacheTTL).Msg("page cache ok")
		}
		cache = rc
	}
	pages := app.NewPageService(catalog.New(), cache, cfg.CacheTTL)
	if err := pages.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("page cache invalidation failed")
	}

	// http
	srv := server.New(table, server.Options{
		Timeout:   cfg.RequestTimeout,
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
	})
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Pages: pages})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("listing page listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error { return observability.Serve(gctx, cfg.MetricsAddr, reg) })
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("shut down")
}
