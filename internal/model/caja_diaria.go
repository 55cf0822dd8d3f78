package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CajaDiaria is one row of the daily cash ledger: a denormalized, immutable
// snapshot taken when a paid, house-originated reservation is created.
// Rows are NEVER updated or deleted — later edits to the source reservation
// do not propagate. The unique index on ReservaID makes mirroring idempotent:
// one reservation produces at most one ledger row, no matter how many times
// the mirror job runs.
type CajaDiaria struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReservaID      uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	Origen         string          `gorm:"not null"`
	Destino        string          `gorm:"not null"`
	FechaServicio  time.Time       `gorm:"not null;index"`
	Adultos        int             `gorm:"not null"`
	Ninos          int             `gorm:"not null"`
	TotalPax       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PrecioTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Estado         EstadoReserva   `gorm:"type:varchar(20);not null"`
	CreatedAt      time.Time

	Reserva *Reserva `gorm:"foreignKey:ReservaID"`
}

// TableName overrides GORM's default pluralization.
func (CajaDiaria) TableName() string { return "caja_diaria" }
