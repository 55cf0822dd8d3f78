package service

import (
	"errors"
	"fmt"
)

// ErrCapacidadExcedida rejects a booking that would overbook a scheduled
// route. It always carries the exact numbers: the caller must be able to tell
// the client "solo quedan N asientos" — never a vague failure, and never a
// silently clamped reservation.
type ErrCapacidadExcedida struct {
	Capacidad   int
	Ocupados    int
	Solicitados int
}

func (e *ErrCapacidadExcedida) Error() string {
	return fmt.Sprintf("capacidad excedida: capacidad %d, ocupados %d, solicitados %d (disponibles %d)",
		e.Capacidad, e.Ocupados, e.Solicitados, e.Disponibles())
}

// Disponibles returns the remaining seats before this request.
func (e *ErrCapacidadExcedida) Disponibles() int { return e.Capacidad - e.Ocupados }

// ErrDestinoServicio: a reservation must reference exactly one scheduled route
// departure or one scheduled tour departure.
var ErrDestinoServicio = errors.New("la reserva debe referenciar exactamente una ruta programada o un tour programado")

// ErrReferencia wraps a missing service/agency/route/tour reference. The write
// is rejected outright — a broken reference must never default to price 0 or
// reach the scenario classifier.
type ErrReferencia struct {
	Entidad string
	Causa   error
}

func (e *ErrReferencia) Error() string {
	return fmt.Sprintf("%s no encontrado", e.Entidad)
}

func (e *ErrReferencia) Unwrap() error { return e.Causa }

// ErrTransicionEstado rejects an invalid lifecycle transition.
type ErrTransicionEstado struct {
	Desde, Hacia string
}

func (e *ErrTransicionEstado) Error() string {
	return fmt.Sprintf("transición de estado inválida: %s → %s", e.Desde, e.Hacia)
}
