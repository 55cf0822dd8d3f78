package worker

// espejo_worker.go
// Processes cash-ledger mirror jobs from QueueEspejoCaja: copies a qualifying
// reservation into the daily cash drawer. The mirror write is idempotent on
// the service side, so replays and retries are always safe.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const MaxEspejoRetries = 3

// EspejoCajaPayload is the job envelope sent to QueueEspejoCaja.
type EspejoCajaPayload struct {
	ReservaID string `json:"reserva_id"`
}

// Espejador is the piece of the cash-drawer service the worker needs.
// Declared here so the worker does not depend on the service package.
type Espejador interface {
	EspejarReserva(ctx context.Context, reservaID uuid.UUID) error
}

// EspejoCajaWorker mirrors reservations into the daily cash ledger.
type EspejoCajaWorker struct {
	espejador  Espejador
	dispatcher *Dispatcher
}

func NewEspejoCajaWorker(espejador Espejador, dispatcher *Dispatcher) *EspejoCajaWorker {
	return &EspejoCajaWorker{espejador: espejador, dispatcher: dispatcher}
}

// Process handles a single mirror job:
//  1. Parse EspejoCajaPayload from the job envelope
//  2. Mirror the reservation with exponential backoff (max 3 attempts)
//  3. On exhaustion, park the job in the DLQ; the retry cron will still pick
//     the reservation up later via its ledger flag
func (w *EspejoCajaWorker) Process(ctx context.Context, job Job) {
	var payload EspejoCajaPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		log.Error().Err(err).Msg("espejo_worker: invalid payload")
		return
	}

	reservaID, err := uuid.Parse(payload.ReservaID)
	if err != nil {
		log.Error().Str("reserva_id", payload.ReservaID).Msg("espejo_worker: invalid reserva_id")
		return
	}

	mirrorErr := withRetry(ctx, MaxEspejoRetries, func(attempt int) error {
		if err := w.espejador.EspejarReserva(ctx, reservaID); err != nil {
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Str("reserva_id", payload.ReservaID).
				Msg("espejo_worker: mirror attempt failed, retrying")
			return err
		}
		return nil
	})
	if mirrorErr != nil {
		log.Error().Err(mirrorErr).Str("reserva_id", payload.ReservaID).
			Msg("espejo_worker: mirror failed after all retries")
		SendToDLQ(ctx, w.dispatcher.rdb, QueueEspejoCaja, "espejo_caja", job.Payload,
			mirrorErr.Error(), job.Attempts+MaxEspejoRetries)
		return
	}

	log.Info().Str("reserva_id", payload.ReservaID).Msg("espejo_worker: reserva espejada")
}

// withRetry calls fn up to maxAttempts times with exponential backoff.
// Backoff schedule: attempt 1 = immediate, 2 = 1s, 3 = 2s.
// Returns nil if any attempt succeeds; last error otherwise.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			wait := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := fn(i); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
