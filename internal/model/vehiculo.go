package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Vehiculo is a fleet unit. Capacidad drives the seat guard on scheduled
// routes; PagoConductor feeds the route settlement report.
type Vehiculo struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Placa         string    `gorm:"uniqueIndex;not null"`
	Marca         *string
	Capacidad     int              `gorm:"not null;default:0"`
	PagoConductor *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Activo        bool             `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
