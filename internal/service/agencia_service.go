package service

import (
	"context"

	"github.com/Carbyfah/magic-sub005/internal/dto"
	"github.com/Carbyfah/magic-sub005/internal/model"
	"github.com/Carbyfah/magic-sub005/internal/repository"

	"github.com/google/uuid"
)

type AgenciaService interface {
	Crear(ctx context.Context, req dto.CrearAgenciaRequest) (*dto.AgenciaResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.AgenciaResponse, error)
	Listar(ctx context.Context) ([]dto.AgenciaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarAgenciaRequest) (*dto.AgenciaResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type agenciaService struct {
	repo   repository.AgenciaRepository
	casaID uuid.UUID
}

func NewAgenciaService(repo repository.AgenciaRepository, casaID uuid.UUID) AgenciaService {
	return &agenciaService{repo: repo, casaID: casaID}
}

func (s *agenciaService) Crear(ctx context.Context, req dto.CrearAgenciaRequest) (*dto.AgenciaResponse, error) {
	agencia := &model.Agencia{
		Nombre:    req.Nombre,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
		Activo:    true,
	}
	if err := s.repo.Create(ctx, agencia); err != nil {
		return nil, err
	}
	return s.toResponse(agencia), nil
}

func (s *agenciaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.AgenciaResponse, error) {
	agencia, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(agencia), nil
}

func (s *agenciaService) Listar(ctx context.Context) ([]dto.AgenciaResponse, error) {
	agencias, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AgenciaResponse, 0, len(agencias))
	for i := range agencias {
		out = append(out, *s.toResponse(&agencias[i]))
	}
	return out, nil
}

func (s *agenciaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarAgenciaRequest) (*dto.AgenciaResponse, error) {
	agencia, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nombre != nil {
		agencia.Nombre = *req.Nombre
	}
	if req.Telefono != nil {
		agencia.Telefono = req.Telefono
	}
	if req.Direccion != nil {
		agencia.Direccion = req.Direccion
	}
	if err := s.repo.Update(ctx, agencia); err != nil {
		return nil, err
	}
	return s.toResponse(agencia), nil
}

func (s *agenciaService) Desactivar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Desactivar(ctx, id)
}

func (s *agenciaService) toResponse(a *model.Agencia) *dto.AgenciaResponse {
	return &dto.AgenciaResponse{
		ID:        a.ID.String(),
		Nombre:    a.Nombre,
		Telefono:  a.Telefono,
		Direccion: a.Direccion,
		EsCasa:    a.ID == s.casaID,
		Activo:    a.Activo,
	}
}
