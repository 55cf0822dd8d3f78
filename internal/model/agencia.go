package model

import (
	"time"

	"github.com/google/uuid"
)

// Agencia is a sales/operating partner. One of them is the house agency
// (Magic Travel), designated by configuration — never by name matching.
type Agencia struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"uniqueIndex;not null"`
	Telefono  *string
	Direccion *string
	Activo    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
