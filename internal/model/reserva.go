package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Reserva is a booking against exactly one scheduled route departure OR one
// scheduled tour departure (never both, never neither — enforced at the
// service layer and by a CHECK constraint in the schema).
//
// PrecioCobrar is the resolved charge. CobroManual records that the operator
// supplied the price explicitly: manual prices are never silently overwritten
// by pax recomputation.
//
// Cancellations soft-delete (DeletedAt): cancelled reservations stop counting
// toward capacity and revenue but remain for audit.
type Reserva struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ServicioID           uuid.UUID `gorm:"type:uuid;not null;index"`
	NombreCliente        string    `gorm:"not null"`
	TelefonoCliente      *string
	Adultos              int             `gorm:"not null;default:0"`
	Ninos                int             `gorm:"not null;default:0"`
	PrecioCobrar         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CobroManual          bool            `gorm:"not null;default:false"`
	DireccionAbordaje    string
	RutaProgramadaID     *uuid.UUID    `gorm:"type:uuid;index"`
	TourProgramadoID     *uuid.UUID    `gorm:"type:uuid;index"`
	AgenciaTransferidaID *uuid.UUID    `gorm:"type:uuid;index"`
	Estado               EstadoReserva `gorm:"type:varchar(20);not null;default:'pendiente'"`
	// EspejoCaja marks that the reservation qualified for the daily cash
	// ledger at creation time; the retry cron only looks at flagged rows.
	EspejoCaja bool `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`

	Servicio           *Servicio       `gorm:"foreignKey:ServicioID"`
	RutaProgramada     *RutaProgramada `gorm:"foreignKey:RutaProgramadaID"`
	TourProgramado     *TourProgramado `gorm:"foreignKey:TourProgramadoID"`
	AgenciaTransferida *Agencia        `gorm:"foreignKey:AgenciaTransferidaID"`
}

// TotalPax is the seat count the reservation occupies.
func (r *Reserva) TotalPax() int { return r.Adultos + r.Ninos }
