package model

// Lifecycle states are explicit enumerations. The previous generation of this
// system derived business facts by substring-matching human-readable state
// labels ("contains 'liquidat-'", "contains 'pagada'"), which broke silently
// whenever a label was renamed. Here every derivation switches on a typed
// constant; unknown values degrade to the permissive defaults the old system
// had (payment → pendiente, route → not settled).

// EstadoReserva is the lifecycle state of a reservation.
type EstadoReserva string

const (
	ReservaPendiente  EstadoReserva = "pendiente"
	ReservaConfirmada EstadoReserva = "confirmada"
	// ReservaPorConfirmar: the driver collected in the field, pending office
	// confirmation.
	ReservaPorConfirmar EstadoReserva = "por_confirmar"
	// ReservaRecibida: field collection received by the office.
	ReservaRecibida  EstadoReserva = "recibida"
	ReservaPagada    EstadoReserva = "pagada"
	ReservaCancelada EstadoReserva = "cancelada"
)

// EstadoRuta is the lifecycle state of a scheduled route or tour departure.
type EstadoRuta string

const (
	RutaActivada    EstadoRuta = "activada"
	RutaCompleta    EstadoRuta = "completa"
	RutaEnEjecucion EstadoRuta = "en_ejecucion"
	RutaFinalizada  EstadoRuta = "finalizada"
	RutaPorLiquidar EstadoRuta = "por_liquidar"
	RutaLiquidada   EstadoRuta = "liquidada"
)

// EnLiquidacion reports whether the departure reached the settlement phase:
// its revenue and expenses are considered finalized for accounting.
func (e EstadoRuta) EnLiquidacion() bool {
	return e == RutaPorLiquidar || e == RutaLiquidada
}

// transicionesRuta holds the allowed lifecycle transitions.
// completa may be skipped (routes that never fill), and finalizada may be
// reached directly from en_ejecucion.
var transicionesRuta = map[EstadoRuta][]EstadoRuta{
	RutaActivada:    {RutaCompleta, RutaEnEjecucion},
	RutaCompleta:    {RutaEnEjecucion},
	RutaEnEjecucion: {RutaFinalizada},
	RutaFinalizada:  {RutaPorLiquidar},
	RutaPorLiquidar: {RutaLiquidada},
}

// PuedeTransicionar reports whether destino is a valid next state.
func (e EstadoRuta) PuedeTransicionar(destino EstadoRuta) bool {
	for _, permitido := range transicionesRuta[e] {
		if permitido == destino {
			return true
		}
	}
	return false
}
