package service

import (
	"context"
	"time"

	"github.com/Carbyfah/magic-sub005/internal/dto"
	"github.com/Carbyfah/magic-sub005/internal/model"
	"github.com/Carbyfah/magic-sub005/internal/repository"

	"github.com/google/uuid"
)

// TourService manages tour templates and their scheduled departures.
// Tours carry no vehicle, so the capacity guard never applies to them.
type TourService interface {
	Crear(ctx context.Context, req dto.CrearTourRequest) (*dto.TourResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.TourResponse, error)
	Listar(ctx context.Context) ([]dto.TourResponse, error)

	Programar(ctx context.Context, req dto.ProgramarTourRequest) (*dto.TourProgramadoResponse, error)
	ListarProgramados(ctx context.Context, fecha *time.Time) ([]dto.TourProgramadoResponse, error)
}

type tourService struct {
	repo        repository.TourRepository
	agenciaRepo repository.AgenciaRepository
}

func NewTourService(repo repository.TourRepository, agenciaRepo repository.AgenciaRepository) TourService {
	return &tourService{repo: repo, agenciaRepo: agenciaRepo}
}

func (s *tourService) Crear(ctx context.Context, req dto.CrearTourRequest) (*dto.TourResponse, error) {
	agenciaID, err := uuid.Parse(req.AgenciaID)
	if err != nil {
		return nil, &ErrReferencia{Entidad: "agencia", Causa: err}
	}
	agencia, err := s.agenciaRepo.FindByID(ctx, agenciaID)
	if err != nil {
		return nil, &ErrReferencia{Entidad: "agencia", Causa: err}
	}
	tour := &model.Tour{
		AgenciaID:   agencia.ID,
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Activo:      true,
	}
	if err := s.repo.Create(ctx, tour); err != nil {
		return nil, err
	}
	tour.Agencia = agencia
	return tourToResponse(tour), nil
}

func (s *tourService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.TourResponse, error) {
	tour, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return tourToResponse(tour), nil
}

func (s *tourService) Listar(ctx context.Context) ([]dto.TourResponse, error) {
	tours, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TourResponse, 0, len(tours))
	for i := range tours {
		out = append(out, *tourToResponse(&tours[i]))
	}
	return out, nil
}

func (s *tourService) Programar(ctx context.Context, req dto.ProgramarTourRequest) (*dto.TourProgramadoResponse, error) {
	tourID, err := uuid.Parse(req.TourID)
	if err != nil {
		return nil, &ErrReferencia{Entidad: "tour", Causa: err}
	}
	tour, err := s.repo.FindByID(ctx, tourID)
	if err != nil {
		return nil, &ErrReferencia{Entidad: "tour", Causa: err}
	}
	fecha, err := time.Parse(time.RFC3339, req.FechaSalida)
	if err != nil {
		return nil, &ErrReferencia{Entidad: "fecha de salida", Causa: err}
	}
	tp := &model.TourProgramado{
		TourID:      tour.ID,
		FechaSalida: fecha,
		Estado:      model.RutaActivada,
	}
	if err := s.repo.CreateProgramado(ctx, tp); err != nil {
		return nil, err
	}
	tp.Tour = tour
	return tourProgramadoToResponse(tp), nil
}

func (s *tourService) ListarProgramados(ctx context.Context, fecha *time.Time) ([]dto.TourProgramadoResponse, error) {
	programados, err := s.repo.ListProgramados(ctx, fecha)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TourProgramadoResponse, 0, len(programados))
	for i := range programados {
		out = append(out, *tourProgramadoToResponse(&programados[i]))
	}
	return out, nil
}

func tourToResponse(t *model.Tour) *dto.TourResponse {
	resp := &dto.TourResponse{
		ID:          t.ID.String(),
		AgenciaID:   t.AgenciaID.String(),
		Nombre:      t.Nombre,
		Descripcion: t.Descripcion,
		Activo:      t.Activo,
	}
	if t.Agencia != nil {
		resp.Agencia = t.Agencia.Nombre
	}
	return resp
}

func tourProgramadoToResponse(tp *model.TourProgramado) *dto.TourProgramadoResponse {
	resp := &dto.TourProgramadoResponse{
		ID:          tp.ID.String(),
		TourID:      tp.TourID.String(),
		FechaSalida: tp.FechaSalida.Format(time.RFC3339),
		Estado:      string(tp.Estado),
	}
	if tp.Tour != nil {
		resp.Nombre = tp.Tour.Nombre
	}
	return resp
}
