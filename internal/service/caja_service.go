package service

import (
	"context"
	"time"

	"github.com/Carbyfah/magic-sub005/internal/dto"
	"github.com/Carbyfah/magic-sub005/internal/model"
	"github.com/Carbyfah/magic-sub005/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// CajaService maintains the daily cash ledger: an append-only mirror of paid,
// house-originated reservations, plus the payment-method derivation built on
// top of it.
type CajaService interface {
	// EspejarReserva appends the ledger row for a qualifying reservation.
	// Idempotent: re-running for an already-mirrored reservation is a no-op,
	// so failed mirror jobs can be retried blindly.
	EspejarReserva(ctx context.Context, reservaID uuid.UUID) error
	ResolverMetodoPago(ctx context.Context, reservaID uuid.UUID) (model.MetodoPago, error)
	ReporteDiario(ctx context.Context, fecha time.Time) (*dto.CajaDiariaResponse, error)
}

type cajaService struct {
	repo        repository.CajaRepository
	reservaRepo repository.ReservaRepository
	casaID      uuid.UUID
}

func NewCajaService(repo repository.CajaRepository, reservaRepo repository.ReservaRepository, casaID uuid.UUID) CajaService {
	return &cajaService{repo: repo, reservaRepo: reservaRepo, casaID: casaID}
}

// ── EspejarReserva ────────────────────────────────────────────────────────────
// The ledger row is a point-in-time snapshot: origin/destination, departure
// datetime, the unit price and charge as they were at creation. Later edits
// to the reservation never propagate here.

func (s *cajaService) EspejarReserva(ctx context.Context, reservaID uuid.UUID) error {
	// Check-then-insert: retries after partial failure must not duplicate.
	if _, err := s.repo.FindByReservaID(ctx, reservaID); err == nil {
		log.Debug().Str("reserva_id", reservaID.String()).Msg("caja: reserva ya espejada")
		return nil
	}

	reserva, err := s.reservaRepo.FindByID(ctx, reservaID)
	if err != nil {
		return &ErrReferencia{Entidad: "reserva", Causa: err}
	}
	if reserva.Servicio == nil {
		return &ErrReferencia{Entidad: "servicio"}
	}

	// Re-verify eligibility: the job queue may replay stale work.
	operadora, err := AgenciaOperadora(reserva.Servicio)
	if err != nil {
		return err
	}
	if operadora != s.casaID || reserva.AgenciaTransferidaID != nil || reserva.Estado != model.ReservaPagada {
		log.Debug().Str("reserva_id", reservaID.String()).Msg("caja: reserva no califica para espejo")
		return nil
	}

	origen, destino, fechaServicio := datosServicio(reserva)

	entrada := &model.CajaDiaria{
		ReservaID:      reserva.ID,
		Origen:         origen,
		Destino:        destino,
		FechaServicio:  fechaServicio,
		Adultos:        reserva.Adultos,
		Ninos:          reserva.Ninos,
		TotalPax:       reserva.TotalPax(),
		PrecioUnitario: reserva.Servicio.PrecioDescuento,
		PrecioTotal:    reserva.PrecioCobrar,
		Estado:         reserva.Estado,
	}
	if err := s.repo.Create(ctx, entrada); err != nil {
		return err
	}

	log.Info().
		Str("reserva_id", reserva.ID.String()).
		Str("total", entrada.PrecioTotal.String()).
		Msg("caja: entrada creada")
	return nil
}

// datosServicio resolves the descriptive snapshot fields from the departure.
// Tours have no origin/destination pair; they mirror as "Tour" → tour name.
func datosServicio(r *model.Reserva) (origen, destino string, fecha time.Time) {
	switch {
	case r.RutaProgramada != nil:
		fecha = r.RutaProgramada.FechaSalida
		if r.RutaProgramada.Ruta != nil {
			return r.RutaProgramada.Ruta.Origen, r.RutaProgramada.Ruta.Destino, fecha
		}
	case r.TourProgramado != nil:
		fecha = r.TourProgramado.FechaSalida
		if r.TourProgramado.Tour != nil {
			return "Tour", r.TourProgramado.Tour.Nombre, fecha
		}
		return "Tour", "", fecha
	}
	return origen, destino, fecha
}

// ── ResolverMetodoPago ────────────────────────────────────────────────────────
// A ledger row proves house-cash payment. Otherwise the typed reservation
// state decides; anything unrecognized stays pendiente (permissive default).

func (s *cajaService) ResolverMetodoPago(ctx context.Context, reservaID uuid.UUID) (model.MetodoPago, error) {
	if _, err := s.repo.FindByReservaID(ctx, reservaID); err == nil {
		return model.PagoCaja, nil
	}

	reserva, err := s.reservaRepo.FindByID(ctx, reservaID)
	if err != nil {
		return "", &ErrReferencia{Entidad: "reserva", Causa: err}
	}
	return metodoPorEstado(reserva.Estado), nil
}

func metodoPorEstado(estado model.EstadoReserva) model.MetodoPago {
	switch estado {
	case model.ReservaPorConfirmar, model.ReservaRecibida:
		return model.PagoConductor
	case model.ReservaPagada:
		return model.PagoOtro
	default:
		return model.PagoPendiente
	}
}

// ── ReporteDiario ─────────────────────────────────────────────────────────────

func (s *cajaService) ReporteDiario(ctx context.Context, fecha time.Time) (*dto.CajaDiariaResponse, error) {
	entradas, err := s.repo.ListByFecha(ctx, fecha)
	if err != nil {
		return nil, err
	}

	resp := &dto.CajaDiariaResponse{
		Fecha:    fecha.Format("2006-01-02"),
		Entradas: make([]dto.CajaDiariaEntrada, 0, len(entradas)),
		Total:    decimal.Zero,
	}
	for _, e := range entradas {
		resp.Entradas = append(resp.Entradas, dto.CajaDiariaEntrada{
			ID:             e.ID.String(),
			ReservaID:      e.ReservaID.String(),
			Origen:         e.Origen,
			Destino:        e.Destino,
			FechaServicio:  e.FechaServicio.Format(time.RFC3339),
			Adultos:        e.Adultos,
			Ninos:          e.Ninos,
			TotalPax:       e.TotalPax,
			PrecioUnitario: e.PrecioUnitario,
			PrecioTotal:    e.PrecioTotal,
			Estado:         string(e.Estado),
		})
		resp.TotalPax += e.TotalPax
		resp.Total = resp.Total.Add(e.PrecioTotal)
	}
	return resp, nil
}
