package service

import (
	"context"
	"time"

	"github.com/Carbyfah/magic-sub005/internal/dto"
	"github.com/Carbyfah/magic-sub005/internal/model"
	"github.com/Carbyfah/magic-sub005/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RutaService manages route templates and their scheduled departures.
type RutaService interface {
	Crear(ctx context.Context, req dto.CrearRutaRequest) (*dto.RutaResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.RutaResponse, error)
	Listar(ctx context.Context) ([]dto.RutaResponse, error)

	Programar(ctx context.Context, req dto.ProgramarRutaRequest) (*dto.RutaProgramadaResponse, error)
	AsignarVehiculo(ctx context.Context, rutaProgramadaID, vehiculoID uuid.UUID) (*dto.RutaProgramadaResponse, error)
	ListarProgramadas(ctx context.Context, fecha *time.Time) ([]dto.RutaProgramadaResponse, error)
}

type rutaService struct {
	repo         repository.RutaRepository
	agenciaRepo  repository.AgenciaRepository
	vehiculoRepo repository.VehiculoRepository
	reservaRepo  repository.ReservaRepository
}

func NewRutaService(repo repository.RutaRepository, agenciaRepo repository.AgenciaRepository, vehiculoRepo repository.VehiculoRepository, reservaRepo repository.ReservaRepository) RutaService {
	return &rutaService{repo: repo, agenciaRepo: agenciaRepo, vehiculoRepo: vehiculoRepo, reservaRepo: reservaRepo}
}

func (s *rutaService) Crear(ctx context.Context, req dto.CrearRutaRequest) (*dto.RutaResponse, error) {
	agenciaID, err := uuid.Parse(req.AgenciaID)
	if err != nil {
		return nil, &ErrReferencia{Entidad: "agencia", Causa: err}
	}
	agencia, err := s.agenciaRepo.FindByID(ctx, agenciaID)
	if err != nil {
		return nil, &ErrReferencia{Entidad: "agencia", Causa: err}
	}
	ruta := &model.Ruta{
		AgenciaID: agencia.ID,
		Origen:    req.Origen,
		Destino:   req.Destino,
		Activo:    true,
	}
	if err := s.repo.Create(ctx, ruta); err != nil {
		return nil, err
	}
	ruta.Agencia = agencia
	return rutaToResponse(ruta), nil
}

func (s *rutaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.RutaResponse, error) {
	ruta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return rutaToResponse(ruta), nil
}

func (s *rutaService) Listar(ctx context.Context) ([]dto.RutaResponse, error) {
	rutas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RutaResponse, 0, len(rutas))
	for i := range rutas {
		out = append(out, *rutaToResponse(&rutas[i]))
	}
	return out, nil
}

func (s *rutaService) Programar(ctx context.Context, req dto.ProgramarRutaRequest) (*dto.RutaProgramadaResponse, error) {
	rutaID, err := uuid.Parse(req.RutaID)
	if err != nil {
		return nil, &ErrReferencia{Entidad: "ruta", Causa: err}
	}
	ruta, err := s.repo.FindByID(ctx, rutaID)
	if err != nil {
		return nil, &ErrReferencia{Entidad: "ruta", Causa: err}
	}
	fecha, err := time.Parse(time.RFC3339, req.FechaSalida)
	if err != nil {
		return nil, &ErrReferencia{Entidad: "fecha de salida", Causa: err}
	}

	rp := &model.RutaProgramada{
		RutaID:      ruta.ID,
		FechaSalida: fecha,
		Estado:      model.RutaActivada,
	}
	if req.VehiculoID != nil {
		vehiculoID, err := uuid.Parse(*req.VehiculoID)
		if err != nil {
			return nil, &ErrReferencia{Entidad: "vehiculo", Causa: err}
		}
		vehiculo, err := s.vehiculoRepo.FindByID(ctx, vehiculoID)
		if err != nil {
			return nil, &ErrReferencia{Entidad: "vehiculo", Causa: err}
		}
		rp.VehiculoID = &vehiculo.ID
		rp.Vehiculo = vehiculo
	}
	if err := s.repo.CreateProgramada(ctx, rp); err != nil {
		return nil, err
	}
	rp.Ruta = ruta
	return programadaToResponse(rp), nil
}

func (s *rutaService) AsignarVehiculo(ctx context.Context, rutaProgramadaID, vehiculoID uuid.UUID) (*dto.RutaProgramadaResponse, error) {
	vehiculo, err := s.vehiculoRepo.FindByID(ctx, vehiculoID)
	if err != nil {
		return nil, &ErrReferencia{Entidad: "vehiculo", Causa: err}
	}
	// The swap holds the same row lock the booking guard takes: a smaller
	// vehicle must not land on a departure that already sold more seats.
	txErr := s.reservaRepo.Transaction(ctx, func(tx *gorm.DB) error {
		rp, err := s.repo.LockProgramadaTx(tx, rutaProgramadaID)
		if err != nil {
			return &ErrReferencia{Entidad: "ruta programada", Causa: err}
		}
		if vehiculo.Capacidad > 0 {
			ocupados, err := s.reservaRepo.SumPaxTx(tx, rutaProgramadaID, nil)
			if err != nil {
				return err
			}
			if ocupados > vehiculo.Capacidad {
				return &ErrCapacidadExcedida{
					Capacidad:   vehiculo.Capacidad,
					Ocupados:    ocupados,
					Solicitados: 0,
				}
			}
		}
		rp.VehiculoID = &vehiculo.ID
		rp.Vehiculo = vehiculo
		return s.repo.UpdateProgramadaTx(tx, rp)
	})
	if txErr != nil {
		return nil, txErr
	}
	rp, err := s.repo.FindProgramadaByID(ctx, rutaProgramadaID)
	if err != nil {
		return nil, err
	}
	return programadaToResponse(rp), nil
}

func (s *rutaService) ListarProgramadas(ctx context.Context, fecha *time.Time) ([]dto.RutaProgramadaResponse, error) {
	programadas, err := s.repo.ListProgramadas(ctx, fecha)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RutaProgramadaResponse, 0, len(programadas))
	for i := range programadas {
		out = append(out, *programadaToResponse(&programadas[i]))
	}
	return out, nil
}

func rutaToResponse(r *model.Ruta) *dto.RutaResponse {
	resp := &dto.RutaResponse{
		ID:        r.ID.String(),
		AgenciaID: r.AgenciaID.String(),
		Origen:    r.Origen,
		Destino:   r.Destino,
		Activo:    r.Activo,
	}
	if r.Agencia != nil {
		resp.Agencia = r.Agencia.Nombre
	}
	return resp
}

func programadaToResponse(rp *model.RutaProgramada) *dto.RutaProgramadaResponse {
	resp := &dto.RutaProgramadaResponse{
		ID:          rp.ID.String(),
		RutaID:      rp.RutaID.String(),
		Capacidad:   rp.Capacidad(),
		FechaSalida: rp.FechaSalida.Format(time.RFC3339),
		Estado:      string(rp.Estado),
		Liquidada:   rp.Estado.EnLiquidacion(),
	}
	if rp.Ruta != nil {
		resp.Origen = rp.Ruta.Origen
		resp.Destino = rp.Ruta.Destino
	}
	if rp.VehiculoID != nil {
		id := rp.VehiculoID.String()
		resp.VehiculoID = &id
	}
	return resp
}
