package repository

import (
	"context"
	"time"

	"github.com/Carbyfah/magic-sub005/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CajaRepository persists daily cash ledger rows. The ledger is append-only:
// there is deliberately no Update or Delete.
type CajaRepository interface {
	Create(ctx context.Context, entrada *model.CajaDiaria) error
	FindByReservaID(ctx context.Context, reservaID uuid.UUID) (*model.CajaDiaria, error)
	ListByFecha(ctx context.Context, fecha time.Time) ([]model.CajaDiaria, error)
}

type cajaRepo struct{ db *gorm.DB }

func NewCajaRepository(db *gorm.DB) CajaRepository { return &cajaRepo{db: db} }

func (r *cajaRepo) Create(ctx context.Context, entrada *model.CajaDiaria) error {
	return r.db.WithContext(ctx).Create(entrada).Error
}

func (r *cajaRepo) FindByReservaID(ctx context.Context, reservaID uuid.UUID) (*model.CajaDiaria, error) {
	var entrada model.CajaDiaria
	err := r.db.WithContext(ctx).Where("reserva_id = ?", reservaID).First(&entrada).Error
	return &entrada, err
}

func (r *cajaRepo) ListByFecha(ctx context.Context, fecha time.Time) ([]model.CajaDiaria, error) {
	var entradas []model.CajaDiaria
	err := r.db.WithContext(ctx).
		Where("DATE(fecha_servicio) = DATE(?)", fecha).
		Order("created_at").Find(&entradas).Error
	return entradas, err
}
