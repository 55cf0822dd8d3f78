package repository

import (
	"context"
	"time"

	"github.com/Carbyfah/magic-sub005/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservaRepository interface {
	CreateTx(ctx context.Context, tx *gorm.DB, r *model.Reserva) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Reserva, error)
	UpdateTx(ctx context.Context, tx *gorm.DB, r *model.Reserva) error
	// SoftDelete cancels a reservation. The row is never hard-deleted: it stays
	// for audit but stops counting toward capacity and revenue.
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// SumPaxTx returns the occupancy (adults+children over non-deleted
	// reservations) of a scheduled route, optionally excluding one reservation
	// (used when re-checking capacity on a pax update).
	SumPaxTx(tx *gorm.DB, rutaProgramadaID uuid.UUID, excluir *uuid.UUID) (int, error)
	ListByRutaProgramada(ctx context.Context, rutaProgramadaID uuid.UUID) ([]model.Reserva, error)
	ListByFecha(ctx context.Context, fecha time.Time) ([]model.Reserva, error)
	ListByRango(ctx context.Context, desde, hasta time.Time) ([]model.Reserva, error)
	// ListEspejosPendientes finds reservations flagged for the cash ledger that
	// still lack their mirror row (mirror write failed or was never processed).
	ListEspejosPendientes(ctx context.Context, limit int) ([]model.Reserva, error)
	// Transaction runs fn inside one DB transaction. Row locks taken by fn are
	// held until commit/rollback — the capacity guard depends on this.
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type reservaRepo struct{ db *gorm.DB }

func NewReservaRepository(db *gorm.DB) ReservaRepository { return &reservaRepo{db: db} }

func (r *reservaRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *reservaRepo) CreateTx(ctx context.Context, tx *gorm.DB, res *model.Reserva) error {
	return tx.WithContext(ctx).Create(res).Error
}

func (r *reservaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Reserva, error) {
	var res model.Reserva
	err := r.db.WithContext(ctx).
		Preload("Servicio.Ruta.Agencia").
		Preload("Servicio.Tour.Agencia").
		Preload("RutaProgramada.Ruta").
		Preload("RutaProgramada.Vehiculo").
		Preload("TourProgramado.Tour").
		Preload("AgenciaTransferida").
		First(&res, "id = ?", id).Error
	return &res, err
}

func (r *reservaRepo) UpdateTx(ctx context.Context, tx *gorm.DB, res *model.Reserva) error {
	return tx.WithContext(ctx).Save(res).Error
}

func (r *reservaRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Reserva{}).Where("id = ?", id).
			Update("estado", model.ReservaCancelada).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Reserva{}, "id = ?", id).Error
	})
}

func (r *reservaRepo) SumPaxTx(tx *gorm.DB, rutaProgramadaID uuid.UUID, excluir *uuid.UUID) (int, error) {
	var total int64
	q := tx.Model(&model.Reserva{}).
		Select("COALESCE(SUM(adultos + ninos), 0)").
		Where("ruta_programada_id = ?", rutaProgramadaID)
	if excluir != nil {
		q = q.Where("id <> ?", *excluir)
	}
	// gorm.DeletedAt on the model already appends "deleted_at IS NULL"
	err := q.Scan(&total).Error
	return int(total), err
}

func (r *reservaRepo) ListByRutaProgramada(ctx context.Context, rutaProgramadaID uuid.UUID) ([]model.Reserva, error) {
	var reservas []model.Reserva
	err := r.db.WithContext(ctx).
		Preload("Servicio").
		Where("ruta_programada_id = ?", rutaProgramadaID).
		Order("created_at").Find(&reservas).Error
	return reservas, err
}

func (r *reservaRepo) ListByFecha(ctx context.Context, fecha time.Time) ([]model.Reserva, error) {
	var reservas []model.Reserva
	err := r.db.WithContext(ctx).
		Preload("Servicio.Ruta.Agencia").
		Preload("Servicio.Tour.Agencia").
		Preload("AgenciaTransferida").
		Where("DATE(created_at) = DATE(?)", fecha).
		Order("created_at").Find(&reservas).Error
	return reservas, err
}

func (r *reservaRepo) ListByRango(ctx context.Context, desde, hasta time.Time) ([]model.Reserva, error) {
	var reservas []model.Reserva
	err := r.db.WithContext(ctx).
		Preload("Servicio.Ruta.Agencia").
		Preload("Servicio.Tour.Agencia").
		Preload("AgenciaTransferida").
		Where("created_at >= ? AND created_at < ?", desde, hasta).
		Order("created_at").Find(&reservas).Error
	return reservas, err
}

func (r *reservaRepo) ListEspejosPendientes(ctx context.Context, limit int) ([]model.Reserva, error) {
	var reservas []model.Reserva
	err := r.db.WithContext(ctx).
		Preload("Servicio.Ruta.Agencia").
		Preload("Servicio.Tour.Agencia").
		Preload("RutaProgramada.Ruta").
		Preload("TourProgramado.Tour").
		Where("espejo_caja = true").
		Where("NOT EXISTS (SELECT 1 FROM caja_diaria cd WHERE cd.reserva_id = reservas.id)").
		Order("created_at").Limit(limit).Find(&reservas).Error
	return reservas, err
}
