package repository

import (
	"context"

	"github.com/Carbyfah/magic-sub005/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GastoRepository interface {
	Create(ctx context.Context, g *model.GastoRuta) error
	ListByRutaProgramada(ctx context.Context, rutaProgramadaID uuid.UUID) ([]model.GastoRuta, error)
	SumByRutaProgramada(ctx context.Context, rutaProgramadaID uuid.UUID) (decimal.Decimal, error)
}

type gastoRepo struct{ db *gorm.DB }

func NewGastoRepository(db *gorm.DB) GastoRepository { return &gastoRepo{db: db} }

func (r *gastoRepo) Create(ctx context.Context, g *model.GastoRuta) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *gastoRepo) ListByRutaProgramada(ctx context.Context, rutaProgramadaID uuid.UUID) ([]model.GastoRuta, error) {
	var gastos []model.GastoRuta
	err := r.db.WithContext(ctx).
		Where("ruta_programada_id = ?", rutaProgramadaID).
		Order("created_at").Find(&gastos).Error
	return gastos, err
}

func (r *gastoRepo) SumByRutaProgramada(ctx context.Context, rutaProgramadaID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.GastoRuta{}).
		Select("COALESCE(SUM(monto), 0)").
		Where("ruta_programada_id = ?", rutaProgramadaID).
		Scan(&total).Error
	return total, err
}
