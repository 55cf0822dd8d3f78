package service

import (
	"context"
	"errors"

	"github.com/Carbyfah/magic-sub005/internal/dto"
	"github.com/Carbyfah/magic-sub005/internal/model"
	"github.com/Carbyfah/magic-sub005/internal/repository"

	"github.com/google/uuid"
)

// CatalogoService manages the sellable service catalog. Every write path runs
// the discounted-price derivation: precio_descuento is never accepted from
// the outside.
type CatalogoService interface {
	Crear(ctx context.Context, req dto.CrearServicioRequest) (*dto.ServicioResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarServicioRequest) (*dto.ServicioResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ServicioResponse, error)
	Listar(ctx context.Context) ([]dto.ServicioResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type catalogoService struct {
	repo     repository.ServicioRepository
	rutaRepo repository.RutaRepository
	tourRepo repository.TourRepository
}

func NewCatalogoService(repo repository.ServicioRepository, rutaRepo repository.RutaRepository, tourRepo repository.TourRepository) CatalogoService {
	return &catalogoService{repo: repo, rutaRepo: rutaRepo, tourRepo: tourRepo}
}

func (s *catalogoService) Crear(ctx context.Context, req dto.CrearServicioRequest) (*dto.ServicioResponse, error) {
	if (req.RutaID == nil) == (req.TourID == nil) {
		return nil, errors.New("el servicio debe pertenecer a exactamente una ruta o un tour")
	}

	servicio := &model.Servicio{
		Nombre:     req.Nombre,
		Tipo:       model.TipoServicio(req.Tipo),
		PrecioBase: req.PrecioBase,
		Activo:     true,
	}
	if req.DescuentoPct != nil && !req.DescuentoPct.IsZero() {
		pct := *req.DescuentoPct
		servicio.DescuentoPct = &pct
	}

	if req.RutaID != nil {
		rutaID, err := uuid.Parse(*req.RutaID)
		if err != nil {
			return nil, &ErrReferencia{Entidad: "ruta", Causa: err}
		}
		if _, err := s.rutaRepo.FindByID(ctx, rutaID); err != nil {
			return nil, &ErrReferencia{Entidad: "ruta", Causa: err}
		}
		servicio.RutaID = &rutaID
	} else {
		tourID, err := uuid.Parse(*req.TourID)
		if err != nil {
			return nil, &ErrReferencia{Entidad: "tour", Causa: err}
		}
		if _, err := s.tourRepo.FindByID(ctx, tourID); err != nil {
			return nil, &ErrReferencia{Entidad: "tour", Causa: err}
		}
		servicio.TourID = &tourID
	}

	servicio.PrecioDescuento = DerivarPrecioDescuento(servicio.PrecioBase, servicio.DescuentoPct)

	if err := s.repo.Create(ctx, servicio); err != nil {
		return nil, err
	}
	return servicioToResponse(servicio), nil
}

func (s *catalogoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarServicioRequest) (*dto.ServicioResponse, error) {
	servicio, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &ErrReferencia{Entidad: "servicio", Causa: err}
	}

	if req.Nombre != nil {
		servicio.Nombre = *req.Nombre
	}
	if req.Tipo != nil {
		servicio.Tipo = model.TipoServicio(*req.Tipo)
	}
	if req.PrecioBase != nil {
		servicio.PrecioBase = *req.PrecioBase
	}
	if req.DescuentoPct != nil {
		if req.DescuentoPct.IsZero() {
			servicio.DescuentoPct = nil
		} else {
			pct := *req.DescuentoPct
			servicio.DescuentoPct = &pct
		}
	}

	// Recompute whenever base price or discount may have changed
	servicio.PrecioDescuento = DerivarPrecioDescuento(servicio.PrecioBase, servicio.DescuentoPct)

	if err := s.repo.Update(ctx, servicio); err != nil {
		return nil, err
	}
	return servicioToResponse(servicio), nil
}

func (s *catalogoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ServicioResponse, error) {
	servicio, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &ErrReferencia{Entidad: "servicio", Causa: err}
	}
	return servicioToResponse(servicio), nil
}

func (s *catalogoService) Listar(ctx context.Context) ([]dto.ServicioResponse, error) {
	servicios, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServicioResponse, 0, len(servicios))
	for i := range servicios {
		out = append(out, *servicioToResponse(&servicios[i]))
	}
	return out, nil
}

func (s *catalogoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Desactivar(ctx, id)
}

func servicioToResponse(m *model.Servicio) *dto.ServicioResponse {
	resp := &dto.ServicioResponse{
		ID:              m.ID.String(),
		Nombre:          m.Nombre,
		Tipo:            string(m.Tipo),
		PrecioBase:      m.PrecioBase,
		DescuentoPct:    m.DescuentoPct,
		PrecioDescuento: m.PrecioDescuento,
		Activo:          m.Activo,
	}
	if m.RutaID != nil {
		id := m.RutaID.String()
		resp.RutaID = &id
	}
	if m.TourID != nil {
		id := m.TourID.String()
		resp.TourID = &id
	}
	return resp
}
