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

// ReporteService builds the operational read models: seat occupancy per
// departure, the daily sales-control sheet, and the per-agency account
// breakdown used for inter-agency settlement.
type ReporteService interface {
	Ocupacion(ctx context.Context, rutaProgramadaID uuid.UUID) (*dto.OcupacionResponse, error)
	OcupacionPorFecha(ctx context.Context, fecha time.Time) ([]dto.OcupacionResponse, error)
	ControlVentas(ctx context.Context, fecha time.Time) (*dto.ControlVentasResponse, error)
	CuentasPorAgencia(ctx context.Context, desde, hasta time.Time) (*dto.CuentasPorAgenciaResponse, error)
}

type reporteService struct {
	rutaRepo    repository.RutaRepository
	reservaRepo repository.ReservaRepository
	caja        CajaService
	casaID      uuid.UUID
}

func NewReporteService(rutaRepo repository.RutaRepository, reservaRepo repository.ReservaRepository, caja CajaService, casaID uuid.UUID) ReporteService {
	return &reporteService{rutaRepo: rutaRepo, reservaRepo: reservaRepo, caja: caja, casaID: casaID}
}

func (s *reporteService) Ocupacion(ctx context.Context, rutaProgramadaID uuid.UUID) (*dto.OcupacionResponse, error) {
	rp, err := s.rutaRepo.FindProgramadaByID(ctx, rutaProgramadaID)
	if err != nil {
		return nil, &ErrReferencia{Entidad: "ruta programada", Causa: err}
	}
	return s.ocupacionDe(ctx, rp)
}

func (s *reporteService) OcupacionPorFecha(ctx context.Context, fecha time.Time) ([]dto.OcupacionResponse, error) {
	programadas, err := s.rutaRepo.ListProgramadas(ctx, &fecha)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OcupacionResponse, 0, len(programadas))
	for i := range programadas {
		o, err := s.ocupacionDe(ctx, &programadas[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, nil
}

func (s *reporteService) ocupacionDe(ctx context.Context, rp *model.RutaProgramada) (*dto.OcupacionResponse, error) {
	reservas, err := s.reservaRepo.ListByRutaProgramada(ctx, rp.ID)
	if err != nil {
		return nil, err
	}
	ocupados := 0
	for i := range reservas {
		ocupados += reservas[i].TotalPax()
	}

	resp := &dto.OcupacionResponse{
		RutaProgramadaID: rp.ID.String(),
		FechaSalida:      rp.FechaSalida.Format(time.RFC3339),
		Capacidad:        rp.Capacidad(),
		Ocupados:         ocupados,
	}
	if rp.Ruta != nil {
		resp.Origen = rp.Ruta.Origen
		resp.Destino = rp.Ruta.Destino
	}
	if resp.Capacidad > 0 {
		resp.Disponibles = resp.Capacidad - ocupados
		resp.PorcentajeUso = float64(ocupados) / float64(resp.Capacidad) * 100
	}
	return resp, nil
}

func (s *reporteService) ControlVentas(ctx context.Context, fecha time.Time) (*dto.ControlVentasResponse, error) {
	reservas, err := s.reservaRepo.ListByFecha(ctx, fecha)
	if err != nil {
		return nil, err
	}

	resp := &dto.ControlVentasResponse{
		Fecha:  fecha.Format("2006-01-02"),
		Ventas: make([]dto.VentaControlItem, 0, len(reservas)),
		Total:  decimal.Zero,
	}
	for i := range reservas {
		r := &reservas[i]
		item := dto.VentaControlItem{
			ReservaID:     r.ID.String(),
			NombreCliente: r.NombreCliente,
			Adultos:       r.Adultos,
			Ninos:         r.Ninos,
			PrecioCobrar:  r.PrecioCobrar,
			Estado:        string(r.Estado),
		}
		if r.Servicio != nil {
			item.Servicio = r.Servicio.Nombre
			if operadora, err := AgenciaOperadora(r.Servicio); err == nil {
				item.Escenario = string(ClasificarEscenario(operadora, s.casaID, r.AgenciaTransferidaID))
			}
		}
		metodo, err := s.caja.ResolverMetodoPago(ctx, r.ID)
		if err != nil {
			metodo = model.PagoPendiente
		}
		item.MetodoPago = string(metodo)

		resp.Ventas = append(resp.Ventas, item)
		resp.TotalPax += r.TotalPax()
		resp.Total = resp.Total.Add(r.PrecioCobrar)
	}
	return resp, nil
}

// CuentasPorAgencia groups the charges of a date range by operating agency,
// with a per-scenario subtotal inside each group.
func (s *reporteService) CuentasPorAgencia(ctx context.Context, desde, hasta time.Time) (*dto.CuentasPorAgenciaResponse, error) {
	reservas, err := s.reservaRepo.ListByRango(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}

	type cuenta struct {
		nombre       string
		reservas     int
		total        decimal.Decimal
		porEscenario map[string]decimal.Decimal
	}
	cuentas := make(map[uuid.UUID]*cuenta)
	orden := make([]uuid.UUID, 0)

	for i := range reservas {
		r := &reservas[i]
		if r.Servicio == nil {
			continue
		}
		operadora, err := AgenciaOperadora(r.Servicio)
		if err != nil {
			continue
		}
		c, ok := cuentas[operadora]
		if !ok {
			c = &cuenta{nombre: nombreAgencia(r.Servicio), total: decimal.Zero, porEscenario: make(map[string]decimal.Decimal)}
			cuentas[operadora] = c
			orden = append(orden, operadora)
		}
		escenario := string(ClasificarEscenario(operadora, s.casaID, r.AgenciaTransferidaID))
		c.reservas++
		c.total = c.total.Add(r.PrecioCobrar)
		c.porEscenario[escenario] = c.porEscenario[escenario].Add(r.PrecioCobrar)
	}

	resp := &dto.CuentasPorAgenciaResponse{
		Desde:   desde.Format("2006-01-02"),
		Hasta:   hasta.Format("2006-01-02"),
		Cuentas: make([]dto.CuentaAgencia, 0, len(orden)),
	}
	for _, id := range orden {
		c := cuentas[id]
		resp.Cuentas = append(resp.Cuentas, dto.CuentaAgencia{
			AgenciaID:    id.String(),
			Agencia:      c.nombre,
			Reservas:     c.reservas,
			Total:        c.total,
			PorEscenario: c.porEscenario,
		})
	}
	return resp, nil
}

func nombreAgencia(servicio *model.Servicio) string {
	switch {
	case servicio.Ruta != nil && servicio.Ruta.Agencia != nil:
		return servicio.Ruta.Agencia.Nombre
	case servicio.Tour != nil && servicio.Tour.Agencia != nil:
		return servicio.Tour.Agencia.Nombre
	}
	return ""
}
