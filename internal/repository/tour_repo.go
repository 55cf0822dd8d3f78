package repository

import (
	"context"
	"time"

	"github.com/Carbyfah/magic-sub005/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TourRepository interface {
	Create(ctx context.Context, tour *model.Tour) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Tour, error)
	List(ctx context.Context) ([]model.Tour, error)
	Update(ctx context.Context, tour *model.Tour) error

	CreateProgramado(ctx context.Context, tp *model.TourProgramado) error
	FindProgramadoByID(ctx context.Context, id uuid.UUID) (*model.TourProgramado, error)
	ListProgramados(ctx context.Context, fecha *time.Time) ([]model.TourProgramado, error)
	UpdateProgramado(ctx context.Context, tp *model.TourProgramado) error
}

type tourRepo struct{ db *gorm.DB }

func NewTourRepository(db *gorm.DB) TourRepository { return &tourRepo{db: db} }

func (r *tourRepo) Create(ctx context.Context, tour *model.Tour) error {
	return r.db.WithContext(ctx).Create(tour).Error
}

func (r *tourRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Tour, error) {
	var tour model.Tour
	err := r.db.WithContext(ctx).Preload("Agencia").First(&tour, "id = ?", id).Error
	return &tour, err
}

func (r *tourRepo) List(ctx context.Context) ([]model.Tour, error) {
	var tours []model.Tour
	err := r.db.WithContext(ctx).Preload("Agencia").Where("activo = true").Order("nombre").Find(&tours).Error
	return tours, err
}

func (r *tourRepo) Update(ctx context.Context, tour *model.Tour) error {
	return r.db.WithContext(ctx).Save(tour).Error
}

func (r *tourRepo) CreateProgramado(ctx context.Context, tp *model.TourProgramado) error {
	return r.db.WithContext(ctx).Create(tp).Error
}

func (r *tourRepo) FindProgramadoByID(ctx context.Context, id uuid.UUID) (*model.TourProgramado, error) {
	var tp model.TourProgramado
	err := r.db.WithContext(ctx).Preload("Tour.Agencia").First(&tp, "id = ?", id).Error
	return &tp, err
}

func (r *tourRepo) ListProgramados(ctx context.Context, fecha *time.Time) ([]model.TourProgramado, error) {
	var programados []model.TourProgramado
	q := r.db.WithContext(ctx).Preload("Tour.Agencia")
	if fecha != nil {
		q = q.Where("DATE(fecha_salida) = DATE(?)", *fecha)
	}
	err := q.Order("fecha_salida").Find(&programados).Error
	return programados, err
}

func (r *tourRepo) UpdateProgramado(ctx context.Context, tp *model.TourProgramado) error {
	return r.db.WithContext(ctx).Save(tp).Error
}
