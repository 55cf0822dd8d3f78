package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TipoServicio distinguishes how a sellable unit is priced.
type TipoServicio string

const (
	// ServicioColectivo is priced per head: adults at full fare, children at 75%.
	ServicioColectivo TipoServicio = "colectivo"
	// ServicioPrivado is a flat per-unit charge regardless of headcount.
	ServicioPrivado TipoServicio = "privado"
)

// Servicio is a sellable unit of the catalog, linked to exactly one route
// template or one tour template (the owning agency is resolved through it).
//
// PrecioDescuento is derived: precio_base when the discount is null/zero,
// otherwise precio_base*(1 - descuento/100). It is recomputed on every
// catalog write and never independently editable.
type Servicio struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre          string           `gorm:"not null"`
	Tipo            TipoServicio     `gorm:"type:varchar(20);not null;default:'colectivo'"`
	PrecioBase      decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	DescuentoPct    *decimal.Decimal `gorm:"type:decimal(5,2)"`
	PrecioDescuento decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	RutaID          *uuid.UUID       `gorm:"type:uuid;index"`
	TourID          *uuid.UUID       `gorm:"type:uuid;index"`
	Activo          bool             `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Ruta *Ruta `gorm:"foreignKey:RutaID"`
	Tour *Tour `gorm:"foreignKey:TourID"`
}
