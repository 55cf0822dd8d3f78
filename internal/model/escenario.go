package model

// Escenario classifies who sold / who operates / who gets paid for a
// reservation, relative to the house agency. The six values are exhaustive
// and mutually exclusive: every reservation with a resolvable operating
// agency maps to exactly one of them.
type Escenario string

const (
	// EscenarioVentaDirecta: the house operates and sold directly.
	EscenarioVentaDirecta Escenario = "venta_directa"
	// EscenarioReasignacionInterna: house-operated, "transferred" to the house
	// itself (internal reallocation between house departures).
	EscenarioReasignacionInterna Escenario = "reasignacion_interna"
	// EscenarioCasaTransfiere: house-operated but handed to a third-party
	// agency for fulfillment/collection.
	EscenarioCasaTransfiere Escenario = "casa_transfiere"
	// EscenarioCasaRecibeOpera: a third party operates; the house received the
	// sale and keeps it (no transfer target).
	EscenarioCasaRecibeOpera Escenario = "casa_recibe_opera"
	// EscenarioCasaPuente: a third party operates and the reservation was
	// transferred to another third party — the house only bridges.
	EscenarioCasaPuente Escenario = "casa_puente"
	// EscenarioCasoEspecial: a third party operates yet the transfer target is
	// the house itself.
	EscenarioCasoEspecial Escenario = "caso_especial"
)

// MetodoPago describes how a reservation's money was actually collected.
type MetodoPago string

const (
	// PagoCaja: paid at the house cash desk (a caja diaria row exists).
	PagoCaja MetodoPago = "caja"
	// PagoConductor: collected by the driver in the field.
	PagoConductor MetodoPago = "conductor"
	// PagoOtro: marked paid but not through the house cash drawer.
	PagoOtro      MetodoPago = "otro"
	PagoPendiente MetodoPago = "pendiente"
)
