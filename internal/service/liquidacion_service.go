package service

import (
	"context"
	"time"

	"github.com/Carbyfah/magic-sub005/internal/dto"
	"github.com/Carbyfah/magic-sub005/internal/model"
	"github.com/Carbyfah/magic-sub005/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LiquidacionService derives the settlement state of scheduled routes and
// builds the settlement report (revenue vs. expenses vs. driver pay) that
// accounting consumes once the gate opens.
type LiquidacionService interface {
	// EstaLiquidada reports whether the departure reached the settlement
	// phase. Derived from the typed lifecycle state, never from label text.
	EstaLiquidada(ctx context.Context, rutaProgramadaID uuid.UUID) (bool, error)
	CambiarEstado(ctx context.Context, rutaProgramadaID uuid.UUID, destino model.EstadoRuta) error
	RegistrarGasto(ctx context.Context, rutaProgramadaID uuid.UUID, req dto.RegistrarGastoRequest) (*dto.GastoResponse, error)
	Reporte(ctx context.Context, rutaProgramadaID uuid.UUID) (*dto.LiquidacionResponse, error)
}

type liquidacionService struct {
	rutaRepo    repository.RutaRepository
	reservaRepo repository.ReservaRepository
	gastoRepo   repository.GastoRepository
}

func NewLiquidacionService(rutaRepo repository.RutaRepository, reservaRepo repository.ReservaRepository, gastoRepo repository.GastoRepository) LiquidacionService {
	return &liquidacionService{rutaRepo: rutaRepo, reservaRepo: reservaRepo, gastoRepo: gastoRepo}
}

func (s *liquidacionService) EstaLiquidada(ctx context.Context, rutaProgramadaID uuid.UUID) (bool, error) {
	rp, err := s.rutaRepo.FindProgramadaByID(ctx, rutaProgramadaID)
	if err != nil {
		return false, &ErrReferencia{Entidad: "ruta programada", Causa: err}
	}
	return rp.Estado.EnLiquidacion(), nil
}

func (s *liquidacionService) CambiarEstado(ctx context.Context, rutaProgramadaID uuid.UUID, destino model.EstadoRuta) error {
	rp, err := s.rutaRepo.FindProgramadaByID(ctx, rutaProgramadaID)
	if err != nil {
		return &ErrReferencia{Entidad: "ruta programada", Causa: err}
	}
	if !rp.Estado.PuedeTransicionar(destino) {
		return &ErrTransicionEstado{Desde: string(rp.Estado), Hacia: string(destino)}
	}
	rp.Estado = destino
	return s.rutaRepo.UpdateProgramada(ctx, rp)
}

func (s *liquidacionService) RegistrarGasto(ctx context.Context, rutaProgramadaID uuid.UUID, req dto.RegistrarGastoRequest) (*dto.GastoResponse, error) {
	if _, err := s.rutaRepo.FindProgramadaByID(ctx, rutaProgramadaID); err != nil {
		return nil, &ErrReferencia{Entidad: "ruta programada", Causa: err}
	}
	gasto := &model.GastoRuta{
		RutaProgramadaID: rutaProgramadaID,
		Monto:            req.Monto,
		Motivo:           req.Motivo,
		Descripcion:      req.Descripcion,
		CreadoPor:        req.CreadoPor,
	}
	if err := s.gastoRepo.Create(ctx, gasto); err != nil {
		return nil, err
	}
	return gastoToResponse(gasto), nil
}

// Reporte computes the settlement figures for one departure:
// ingresos (charges of non-cancelled reservations), gastos, driver pay, and
// the resulting balance.
func (s *liquidacionService) Reporte(ctx context.Context, rutaProgramadaID uuid.UUID) (*dto.LiquidacionResponse, error) {
	rp, err := s.rutaRepo.FindProgramadaByID(ctx, rutaProgramadaID)
	if err != nil {
		return nil, &ErrReferencia{Entidad: "ruta programada", Causa: err}
	}

	reservas, err := s.reservaRepo.ListByRutaProgramada(ctx, rutaProgramadaID)
	if err != nil {
		return nil, err
	}
	ingresos := decimal.Zero
	for _, r := range reservas {
		ingresos = ingresos.Add(r.PrecioCobrar)
	}

	gastos, err := s.gastoRepo.ListByRutaProgramada(ctx, rutaProgramadaID)
	if err != nil {
		return nil, err
	}
	totalGastos := decimal.Zero
	detalle := make([]dto.GastoResponse, 0, len(gastos))
	for i := range gastos {
		totalGastos = totalGastos.Add(gastos[i].Monto)
		detalle = append(detalle, *gastoToResponse(&gastos[i]))
	}

	pagoConductor := decimal.Zero
	if rp.Vehiculo != nil && rp.Vehiculo.PagoConductor != nil {
		pagoConductor = *rp.Vehiculo.PagoConductor
	}

	return &dto.LiquidacionResponse{
		RutaProgramadaID: rp.ID.String(),
		Estado:           string(rp.Estado),
		Liquidada:        rp.Estado.EnLiquidacion(),
		Ingresos:         ingresos,
		Gastos:           totalGastos,
		PagoConductor:    pagoConductor,
		Balance:          ingresos.Sub(totalGastos).Sub(pagoConductor),
		DetalleGastos:    detalle,
	}, nil
}

func gastoToResponse(g *model.GastoRuta) *dto.GastoResponse {
	return &dto.GastoResponse{
		ID:          g.ID.String(),
		Monto:       g.Monto,
		Motivo:      g.Motivo,
		Descripcion: g.Descripcion,
		CreadoPor:   g.CreadoPor,
		CreatedAt:   g.CreatedAt.Format(time.RFC3339),
	}
}
