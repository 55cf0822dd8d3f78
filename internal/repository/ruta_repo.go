package repository

import (
	"context"
	"time"

	"github.com/Carbyfah/magic-sub005/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RutaRepository interface {
	Create(ctx context.Context, ruta *model.Ruta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Ruta, error)
	List(ctx context.Context) ([]model.Ruta, error)
	Update(ctx context.Context, ruta *model.Ruta) error

	CreateProgramada(ctx context.Context, rp *model.RutaProgramada) error
	FindProgramadaByID(ctx context.Context, id uuid.UUID) (*model.RutaProgramada, error)
	// LockProgramadaTx loads the scheduled departure with a row lock
	// (SELECT ... FOR UPDATE). Concurrent bookings against the same departure
	// serialize on this lock, which is what keeps the capacity invariant.
	LockProgramadaTx(tx *gorm.DB, id uuid.UUID) (*model.RutaProgramada, error)
	ListProgramadas(ctx context.Context, fecha *time.Time) ([]model.RutaProgramada, error)
	UpdateProgramada(ctx context.Context, rp *model.RutaProgramada) error
	// UpdateProgramadaTx saves a departure inside an open transaction, for
	// writes that must happen under the row lock (vehicle reassignment).
	UpdateProgramadaTx(tx *gorm.DB, rp *model.RutaProgramada) error
}

type rutaRepo struct{ db *gorm.DB }

func NewRutaRepository(db *gorm.DB) RutaRepository { return &rutaRepo{db: db} }

func (r *rutaRepo) Create(ctx context.Context, ruta *model.Ruta) error {
	return r.db.WithContext(ctx).Create(ruta).Error
}

func (r *rutaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Ruta, error) {
	var ruta model.Ruta
	err := r.db.WithContext(ctx).Preload("Agencia").First(&ruta, "id = ?", id).Error
	return &ruta, err
}

func (r *rutaRepo) List(ctx context.Context) ([]model.Ruta, error) {
	var rutas []model.Ruta
	err := r.db.WithContext(ctx).Preload("Agencia").Where("activo = true").Order("origen").Find(&rutas).Error
	return rutas, err
}

func (r *rutaRepo) Update(ctx context.Context, ruta *model.Ruta) error {
	return r.db.WithContext(ctx).Save(ruta).Error
}

func (r *rutaRepo) CreateProgramada(ctx context.Context, rp *model.RutaProgramada) error {
	return r.db.WithContext(ctx).Create(rp).Error
}

func (r *rutaRepo) FindProgramadaByID(ctx context.Context, id uuid.UUID) (*model.RutaProgramada, error) {
	var rp model.RutaProgramada
	err := r.db.WithContext(ctx).
		Preload("Ruta.Agencia").Preload("Vehiculo").
		First(&rp, "id = ?", id).Error
	return &rp, err
}

func (r *rutaRepo) LockProgramadaTx(tx *gorm.DB, id uuid.UUID) (*model.RutaProgramada, error) {
	var rp model.RutaProgramada
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&rp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	// Vehicle is loaded after the lock is held; capacity cannot change under us
	// because vehicle reassignment also locks the departure row.
	if rp.VehiculoID != nil {
		var v model.Vehiculo
		if err := tx.First(&v, "id = ?", *rp.VehiculoID).Error; err == nil {
			rp.Vehiculo = &v
		}
	}
	return &rp, nil
}

func (r *rutaRepo) ListProgramadas(ctx context.Context, fecha *time.Time) ([]model.RutaProgramada, error) {
	var programadas []model.RutaProgramada
	q := r.db.WithContext(ctx).Preload("Ruta.Agencia").Preload("Vehiculo")
	if fecha != nil {
		q = q.Where("DATE(fecha_salida) = DATE(?)", *fecha)
	}
	err := q.Order("fecha_salida").Find(&programadas).Error
	return programadas, err
}

func (r *rutaRepo) UpdateProgramada(ctx context.Context, rp *model.RutaProgramada) error {
	return r.db.WithContext(ctx).Save(rp).Error
}

func (r *rutaRepo) UpdateProgramadaTx(tx *gorm.DB, rp *model.RutaProgramada) error {
	return tx.Omit(clause.Associations).Save(rp).Error
}
