package worker

// retry_cron.go
// Background goroutine that sweeps for reservations flagged for the cash
// ledger whose mirror row never landed (queue lost the job, worker crashed,
// Redis flushed) and re-enqueues them. Combined with the idempotent mirror
// write this guarantees the ledger converges.

import (
	"context"
	"time"

	"github.com/Carbyfah/magic-sub005/internal/repository"

	"github.com/rs/zerolog/log"
)

const (
	retryTickInterval = 60 * time.Second
	retryBatchSize    = 20
)

// RetryCronConfig holds the dependencies of the sweep goroutine.
type RetryCronConfig struct {
	ReservaRepo repository.ReservaRepository
	Dispatcher  *Dispatcher
}

// StartRetryCron launches the sweep. It respects the context for graceful
// shutdown.
func StartRetryCron(ctx context.Context, cfg RetryCronConfig) {
	go func() {
		ticker := time.NewTicker(retryTickInterval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				processPendientes(ctx, cfg)
			}
		}
	}()
}

func processPendientes(ctx context.Context, cfg RetryCronConfig) {
	reservas, err := cfg.ReservaRepo.ListEspejosPendientes(ctx, retryBatchSize)
	if err != nil {
		log.Error().Err(err).Msg("retry_cron: failed to query pending mirrors")
		return
	}
	if len(reservas) == 0 {
		return
	}

	log.Info().Int("count", len(reservas)).Msg("retry_cron: re-enqueueing pending mirrors")

	for i := range reservas {
		payload := EspejoCajaPayload{ReservaID: reservas[i].ID.String()}
		if err := cfg.Dispatcher.EnqueueEspejoCaja(ctx, payload); err != nil {
			log.Error().Err(err).Str("reserva_id", payload.ReservaID).
				Msg("retry_cron: failed to re-enqueue mirror job")
			// Next tick will find the reservation again; nothing else to do.
		}
	}
}
