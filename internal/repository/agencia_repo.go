package repository

import (
	"context"

	"github.com/Carbyfah/magic-sub005/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AgenciaRepository interface {
	Create(ctx context.Context, a *model.Agencia) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Agencia, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Agencia, error)
	List(ctx context.Context) ([]model.Agencia, error)
	Update(ctx context.Context, a *model.Agencia) error
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type agenciaRepo struct{ db *gorm.DB }

func NewAgenciaRepository(db *gorm.DB) AgenciaRepository { return &agenciaRepo{db: db} }

func (r *agenciaRepo) Create(ctx context.Context, a *model.Agencia) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *agenciaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Agencia, error) {
	var a model.Agencia
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *agenciaRepo) FindByNombre(ctx context.Context, nombre string) (*model.Agencia, error) {
	var a model.Agencia
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&a).Error
	return &a, err
}

func (r *agenciaRepo) List(ctx context.Context) ([]model.Agencia, error) {
	var agencias []model.Agencia
	err := r.db.WithContext(ctx).Where("activo = true").Order("nombre").Find(&agencias).Error
	return agencias, err
}

func (r *agenciaRepo) Update(ctx context.Context, a *model.Agencia) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *agenciaRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Agencia{}).Where("id = ?", id).Update("activo", false).Error
}
