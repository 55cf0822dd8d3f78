package repository

import (
	"context"

	"github.com/Carbyfah/magic-sub005/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServicioRepository interface {
	Create(ctx context.Context, s *model.Servicio) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Servicio, error)
	List(ctx context.Context) ([]model.Servicio, error)
	Update(ctx context.Context, s *model.Servicio) error
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type servicioRepo struct{ db *gorm.DB }

func NewServicioRepository(db *gorm.DB) ServicioRepository { return &servicioRepo{db: db} }

func (r *servicioRepo) Create(ctx context.Context, s *model.Servicio) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *servicioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Servicio, error) {
	var s model.Servicio
	err := r.db.WithContext(ctx).
		Preload("Ruta.Agencia").Preload("Tour.Agencia").
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *servicioRepo) List(ctx context.Context) ([]model.Servicio, error) {
	var servicios []model.Servicio
	err := r.db.WithContext(ctx).
		Preload("Ruta").Preload("Tour").
		Where("activo = true").Order("nombre").Find(&servicios).Error
	return servicios, err
}

func (r *servicioRepo) Update(ctx context.Context, s *model.Servicio) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *servicioRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Servicio{}).Where("id = ?", id).Update("activo", false).Error
}
