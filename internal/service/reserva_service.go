package service

import (
	"context"
	"time"

	"github.com/Carbyfah/magic-sub005/internal/dto"
	"github.com/Carbyfah/magic-sub005/internal/model"
	"github.com/Carbyfah/magic-sub005/internal/repository"
	"github.com/Carbyfah/magic-sub005/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ReservaService interface {
	Crear(ctx context.Context, req dto.CrearReservaRequest) (*dto.ReservaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarReservaRequest) (*dto.ReservaResponse, error)
	// Anular cancels a reservation (soft delete — the row survives for audit
	// but stops counting toward capacity and revenue).
	Anular(ctx context.Context, id uuid.UUID) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ReservaResponse, error)
	Escenario(ctx context.Context, id uuid.UUID) (model.Escenario, error)
}

type reservaService struct {
	repo         repository.ReservaRepository
	servicioRepo repository.ServicioRepository
	rutaRepo     repository.RutaRepository
	tourRepo     repository.TourRepository
	agenciaRepo  repository.AgenciaRepository
	caja         CajaService
	dispatcher   *worker.Dispatcher
	casaID       uuid.UUID
}

func NewReservaService(
	repo repository.ReservaRepository,
	servicioRepo repository.ServicioRepository,
	rutaRepo repository.RutaRepository,
	tourRepo repository.TourRepository,
	agenciaRepo repository.AgenciaRepository,
	caja CajaService,
	dispatcher *worker.Dispatcher,
	casaID uuid.UUID,
) ReservaService {
	return &reservaService{
		repo:         repo,
		servicioRepo: servicioRepo,
		rutaRepo:     rutaRepo,
		tourRepo:     tourRepo,
		agenciaRepo:  agenciaRepo,
		caja:         caja,
		dispatcher:   dispatcher,
		casaID:       casaID,
	}
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// Booking sequence:
//  1. Validate references (service, agencies, departure) — a broken reference
//     rejects the write, it never defaults to price 0.
//  2. Resolve the fare (pure, outside the transaction).
//  3. BEGIN TX: lock the departure row, sum occupancy, enforce capacity,
//     insert. The row lock serializes concurrent bookings against the same
//     departure — two racers cannot both read occupancy N and both fit.
//  4. COMMIT, then (async, best-effort) mirror to the daily cash ledger.

func (s *reservaService) Crear(ctx context.Context, req dto.CrearReservaRequest) (*dto.ReservaResponse, error) {
	if (req.RutaProgramadaID == nil) == (req.TourProgramadoID == nil) {
		return nil, ErrDestinoServicio
	}

	servicioID, err := uuid.Parse(req.ServicioID)
	if err != nil {
		return nil, &ErrReferencia{Entidad: "servicio", Causa: err}
	}
	servicio, err := s.servicioRepo.FindByID(ctx, servicioID)
	if err != nil {
		return nil, &ErrReferencia{Entidad: "servicio", Causa: err}
	}

	// The operating agency must be resolvable before anything else; an
	// unclassifiable reservation must never be written.
	operadora, err := AgenciaOperadora(servicio)
	if err != nil {
		return nil, err
	}

	var transferidaID *uuid.UUID
	if req.AgenciaTransferidaID != nil {
		id, err := uuid.Parse(*req.AgenciaTransferidaID)
		if err != nil {
			return nil, &ErrReferencia{Entidad: "agencia transferida", Causa: err}
		}
		if _, err := s.agenciaRepo.FindByID(ctx, id); err != nil {
			return nil, &ErrReferencia{Entidad: "agencia transferida", Causa: err}
		}
		transferidaID = &id
	}

	ninos := 0
	if req.Ninos != nil {
		ninos = *req.Ninos
	}
	estado := model.ReservaPendiente
	if req.Estado != nil {
		estado = model.EstadoReserva(*req.Estado)
	}

	precio, manual := ResolverTarifa(servicio, req.Adultos, ninos, req.CobroDirecto)

	reserva := &model.Reserva{
		ServicioID:           servicioID,
		NombreCliente:        req.NombreCliente,
		TelefonoCliente:      req.TelefonoCliente,
		Adultos:              req.Adultos,
		Ninos:                ninos,
		PrecioCobrar:         precio,
		CobroManual:          manual,
		DireccionAbordaje:    req.DireccionAbordaje,
		AgenciaTransferidaID: transferidaID,
		Estado:               estado,
	}

	// Cash-drawer eligibility is decided at creation time and frozen: only
	// house-operated, non-transferred, already-paid bookings hit the ledger.
	reserva.EspejoCaja = operadora == s.casaID && transferidaID == nil && estado == model.ReservaPagada

	if req.RutaProgramadaID != nil {
		rutaProgID, err := uuid.Parse(*req.RutaProgramadaID)
		if err != nil {
			return nil, &ErrReferencia{Entidad: "ruta programada", Causa: err}
		}
		reserva.RutaProgramadaID = &rutaProgID

		txErr := s.repo.Transaction(ctx, func(tx *gorm.DB) error {
			rp, err := s.rutaRepo.LockProgramadaTx(tx, rutaProgID)
			if err != nil {
				return &ErrReferencia{Entidad: "ruta programada", Causa: err}
			}
			// Capacity 0 / no vehicle = unconstrained, not "always full".
			if capacidad := rp.Capacidad(); capacidad > 0 {
				ocupados, err := s.repo.SumPaxTx(tx, rutaProgID, nil)
				if err != nil {
					return err
				}
				if ocupados+reserva.TotalPax() > capacidad {
					return &ErrCapacidadExcedida{
						Capacidad:   capacidad,
						Ocupados:    ocupados,
						Solicitados: reserva.TotalPax(),
					}
				}
			}
			return s.repo.CreateTx(ctx, tx, reserva)
		})
		if txErr != nil {
			return nil, txErr
		}
	} else {
		tourProgID, err := uuid.Parse(*req.TourProgramadoID)
		if err != nil {
			return nil, &ErrReferencia{Entidad: "tour programado", Causa: err}
		}
		if _, err := s.tourRepo.FindProgramadoByID(ctx, tourProgID); err != nil {
			return nil, &ErrReferencia{Entidad: "tour programado", Causa: err}
		}
		reserva.TourProgramadoID = &tourProgID

		// Tours have no seat limit; plain insert, no lock.
		txErr := s.repo.Transaction(ctx, func(tx *gorm.DB) error {
			return s.repo.CreateTx(ctx, tx, reserva)
		})
		if txErr != nil {
			return nil, txErr
		}
	}

	// The reservation is the source of truth and the ledger a derived mirror:
	// mirroring failures are logged and retried out-of-band, never bubbled up.
	if reserva.EspejoCaja {
		s.despacharEspejo(ctx, reserva.ID)
	}

	escenario := ClasificarEscenario(operadora, s.casaID, transferidaID)
	return reservaToResponse(reserva, escenario), nil
}

func (s *reservaService) despacharEspejo(ctx context.Context, reservaID uuid.UUID) {
	if s.dispatcher != nil {
		if err := s.dispatcher.EnqueueEspejoCaja(ctx, worker.EspejoCajaPayload{ReservaID: reservaID.String()}); err != nil {
			log.Error().Err(err).Str("reserva_id", reservaID.String()).
				Msg("no se pudo encolar el espejo de caja; lo recogerá el retry cron")
		}
		return
	}
	// No queue wired (tests, seed tooling): mirror synchronously.
	if err := s.caja.EspejarReserva(ctx, reservaID); err != nil {
		log.Error().Err(err).Str("reserva_id", reservaID.String()).Msg("espejo de caja falló")
	}
}

// ── Actualizar ────────────────────────────────────────────────────────────────
// The charge is recomputed when (and only when) the pax mix changes and no
// manual price is in force; unrelated field edits never touch it. Pax
// increases on a route re-run the capacity guard, excluding the reservation's
// own previous seats from the occupancy sum.

func (s *reservaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarReservaRequest) (*dto.ReservaResponse, error) {
	reserva, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &ErrReferencia{Entidad: "reserva", Causa: err}
	}
	if reserva.Servicio == nil {
		return nil, &ErrReferencia{Entidad: "servicio"}
	}

	if req.NombreCliente != nil {
		reserva.NombreCliente = *req.NombreCliente
	}
	if req.TelefonoCliente != nil {
		reserva.TelefonoCliente = req.TelefonoCliente
	}
	if req.DireccionAbordaje != nil {
		reserva.DireccionAbordaje = *req.DireccionAbordaje
	}
	if req.Estado != nil {
		reserva.Estado = model.EstadoReserva(*req.Estado)
	}
	if req.AgenciaTransferidaID != nil {
		if *req.AgenciaTransferidaID == "" {
			// Empty string undoes a mistaken transfer: the booking goes back
			// to the operator and classifies accordingly.
			reserva.AgenciaTransferidaID = nil
			reserva.AgenciaTransferida = nil
		} else {
			agID, err := uuid.Parse(*req.AgenciaTransferidaID)
			if err != nil {
				return nil, &ErrReferencia{Entidad: "agencia transferida", Causa: err}
			}
			if _, err := s.agenciaRepo.FindByID(ctx, agID); err != nil {
				return nil, &ErrReferencia{Entidad: "agencia transferida", Causa: err}
			}
			reserva.AgenciaTransferidaID = &agID
		}
	}

	paxCambio := false
	if req.Adultos != nil && *req.Adultos != reserva.Adultos {
		reserva.Adultos = *req.Adultos
		paxCambio = true
	}
	if req.Ninos != nil && *req.Ninos != reserva.Ninos {
		reserva.Ninos = *req.Ninos
		paxCambio = true
	}

	if req.CobroDirecto != nil {
		if req.CobroDirecto.IsZero() {
			// Explicit zero clears the manual override.
			reserva.CobroManual = false
		} else {
			reserva.PrecioCobrar = *req.CobroDirecto
			reserva.CobroManual = true
		}
	}

	if (paxCambio || (req.CobroDirecto != nil && req.CobroDirecto.IsZero())) && !reserva.CobroManual {
		precio, _ := ResolverTarifa(reserva.Servicio, reserva.Adultos, reserva.Ninos, nil)
		reserva.PrecioCobrar = precio
	}

	txErr := s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		if paxCambio && reserva.RutaProgramadaID != nil {
			rp, err := s.rutaRepo.LockProgramadaTx(tx, *reserva.RutaProgramadaID)
			if err != nil {
				return &ErrReferencia{Entidad: "ruta programada", Causa: err}
			}
			if capacidad := rp.Capacidad(); capacidad > 0 {
				propios := reserva.ID
				ocupados, err := s.repo.SumPaxTx(tx, *reserva.RutaProgramadaID, &propios)
				if err != nil {
					return err
				}
				if ocupados+reserva.TotalPax() > capacidad {
					return &ErrCapacidadExcedida{
						Capacidad:   capacidad,
						Ocupados:    ocupados,
						Solicitados: reserva.TotalPax(),
					}
				}
			}
		}
		return s.repo.UpdateTx(ctx, tx, reserva)
	})
	if txErr != nil {
		return nil, txErr
	}

	escenario, err := s.Escenario(ctx, reserva.ID)
	if err != nil {
		return nil, err
	}
	return reservaToResponse(reserva, escenario), nil
}

// ── Anular ────────────────────────────────────────────────────────────────────

func (s *reservaService) Anular(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return &ErrReferencia{Entidad: "reserva", Causa: err}
	}
	return s.repo.SoftDelete(ctx, id)
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func (s *reservaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ReservaResponse, error) {
	reserva, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &ErrReferencia{Entidad: "reserva", Causa: err}
	}
	escenario, err := s.escenarioDe(reserva)
	if err != nil {
		return nil, err
	}
	return reservaToResponse(reserva, escenario), nil
}

func (s *reservaService) Escenario(ctx context.Context, id uuid.UUID) (model.Escenario, error) {
	reserva, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", &ErrReferencia{Entidad: "reserva", Causa: err}
	}
	return s.escenarioDe(reserva)
}

func (s *reservaService) escenarioDe(reserva *model.Reserva) (model.Escenario, error) {
	if reserva.Servicio == nil {
		return "", &ErrReferencia{Entidad: "servicio"}
	}
	operadora, err := AgenciaOperadora(reserva.Servicio)
	if err != nil {
		return "", err
	}
	return ClasificarEscenario(operadora, s.casaID, reserva.AgenciaTransferidaID), nil
}

func reservaToResponse(m *model.Reserva, escenario model.Escenario) *dto.ReservaResponse {
	resp := &dto.ReservaResponse{
		ID:                m.ID.String(),
		ServicioID:        m.ServicioID.String(),
		NombreCliente:     m.NombreCliente,
		Adultos:           m.Adultos,
		Ninos:             m.Ninos,
		PrecioCobrar:      m.PrecioCobrar,
		CobroManual:       m.CobroManual,
		DireccionAbordaje: m.DireccionAbordaje,
		Estado:            string(m.Estado),
		Escenario:         string(escenario),
		CreatedAt:         m.CreatedAt.Format(time.RFC3339),
	}
	if m.RutaProgramadaID != nil {
		id := m.RutaProgramadaID.String()
		resp.RutaProgramadaID = &id
	}
	if m.TourProgramadoID != nil {
		id := m.TourProgramadoID.String()
		resp.TourProgramadoID = &id
	}
	if m.AgenciaTransferidaID != nil {
		id := m.AgenciaTransferidaID.String()
		resp.AgenciaTransferidaID = &id
	}
	return resp
}
