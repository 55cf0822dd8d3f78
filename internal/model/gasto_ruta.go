package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GastoRuta registra un gasto operativo de una ruta programada (combustible,
// peajes, viáticos). Feeds the settlement report; never recomputed.
type GastoRuta struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RutaProgramadaID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Monto            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Motivo           string          `gorm:"not null"`
	Descripcion      *string
	CreadoPor        *string
	CreatedAt        time.Time

	RutaProgramada *RutaProgramada `gorm:"foreignKey:RutaProgramadaID"`
}

func (GastoRuta) TableName() string { return "gastos_ruta" }
