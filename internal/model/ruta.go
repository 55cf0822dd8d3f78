package model

import (
	"time"

	"github.com/google/uuid"
)

// Ruta is a route template (origin → destination) owned by an agency.
type Ruta struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgenciaID uuid.UUID `gorm:"type:uuid;not null;index"`
	Origen    string    `gorm:"not null"`
	Destino   string    `gorm:"not null"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Agencia *Agencia `gorm:"foreignKey:AgenciaID"`
}

// RutaProgramada is one concrete departure of a route template, with an
// assigned vehicle. Seat capacity is derived transitively through the vehicle;
// no vehicle (or capacity 0) means the departure is unconstrained, not full.
type RutaProgramada struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RutaID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	VehiculoID  *uuid.UUID `gorm:"type:uuid;index"`
	FechaSalida time.Time  `gorm:"not null;index"`
	Estado      EstadoRuta `gorm:"type:varchar(20);not null;default:'activada'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Ruta     *Ruta     `gorm:"foreignKey:RutaID"`
	Vehiculo *Vehiculo `gorm:"foreignKey:VehiculoID"`
}

// TableName overrides GORM's default pluralization (ruta_programada).
func (RutaProgramada) TableName() string { return "rutas_programadas" }

// Capacidad returns the seat count of the assigned vehicle, or 0 when the
// departure has no vehicle yet (treated as unconstrained by the guard).
func (rp *RutaProgramada) Capacidad() int {
	if rp.Vehiculo == nil {
		return 0
	}
	return rp.Vehiculo.Capacidad
}
