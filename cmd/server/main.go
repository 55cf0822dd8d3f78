package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Carbyfah/magic-sub005/internal/config"
	"github.com/Carbyfah/magic-sub005/internal/infra"
	"github.com/Carbyfah/magic-sub005/internal/repository"
	"github.com/Carbyfah/magic-sub005/internal/router"
	"github.com/Carbyfah/magic-sub005/internal/service"
	"github.com/Carbyfah/magic-sub005/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	casaID, err := uuid.Parse(cfg.AgenciaCasaID)
	if err != nil {
		log.Fatal().Str("agencia_casa_id", cfg.AgenciaCasaID).
			Msg("AGENCIA_CASA_ID must be a valid UUID (run cmd/seed to create the house agency)")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Worker handlers are wired here (composition root) so that the pool, the
	// retry sweep, and the HTTP services share the same dispatcher and repos.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dispatcher := worker.NewDispatcher(rdb)
	reservaRepo := repository.NewReservaRepository(db)
	cajaRepo := repository.NewCajaRepository(db)
	cajaSvc := service.NewCajaService(cajaRepo, reservaRepo, casaID)

	handlers := worker.Handlers{
		EspejoCaja: worker.NewEspejoCajaWorker(cajaSvc, dispatcher),
	}
	worker.StartWorkerPool(ctx, rdb, cfg.WorkerPoolSize, handlers)
	worker.StartRetryCron(ctx, worker.RetryCronConfig{
		ReservaRepo: reservaRepo,
		Dispatcher:  dispatcher,
	})

	r := router.New(cfg, db, rdb, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("magic-travel backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
