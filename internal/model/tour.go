package model

import (
	"time"

	"github.com/google/uuid"
)

// Tour is a tour template owned by an agency. Tours have no seat capacity:
// reservations against them are never rejected by the capacity guard.
type Tour struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgenciaID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Nombre      string    `gorm:"not null"`
	Descripcion *string
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Agencia *Agencia `gorm:"foreignKey:AgenciaID"`
}

// TourProgramado is one concrete departure of a tour template.
type TourProgramado struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TourID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	FechaSalida time.Time  `gorm:"not null;index"`
	Estado      EstadoRuta `gorm:"type:varchar(20);not null;default:'activada'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Tour *Tour `gorm:"foreignKey:TourID"`
}

func (TourProgramado) TableName() string { return "tours_programados" }
