package dto

import "github.com/shopspring/decimal"

type CrearReservaRequest struct {
	ServicioID      string  `json:"servicio_id" validate:"required,uuid"`
	NombreCliente   string  `json:"nombre_cliente" validate:"required,min=2"`
	TelefonoCliente *string `json:"telefono_cliente"`
	Adultos         int     `json:"adultos" validate:"min=0"`
	Ninos           *int    `json:"ninos" validate:"omitempty,min=0"`
	// CobroDirecto is an operator-supplied price. When present and non-zero it
	// wins over the resolved fare and is never recomputed.
	CobroDirecto         *decimal.Decimal `json:"cobro_directo"`
	DireccionAbordaje    string           `json:"direccion_abordaje"`
	RutaProgramadaID     *string          `json:"ruta_programada_id" validate:"omitempty,uuid"`
	TourProgramadoID     *string          `json:"tour_programado_id" validate:"omitempty,uuid"`
	AgenciaTransferidaID *string          `json:"agencia_transferida_id" validate:"omitempty,uuid"`
	Estado               *string          `json:"estado" validate:"omitempty,oneof=pendiente confirmada por_confirmar recibida pagada"`
}

type ActualizarReservaRequest struct {
	NombreCliente     *string          `json:"nombre_cliente" validate:"omitempty,min=2"`
	TelefonoCliente   *string          `json:"telefono_cliente"`
	Adultos           *int             `json:"adultos" validate:"omitempty,min=0"`
	Ninos             *int             `json:"ninos" validate:"omitempty,min=0"`
	CobroDirecto      *decimal.Decimal `json:"cobro_directo"`
	DireccionAbordaje *string          `json:"direccion_abordaje"`
	// AgenciaTransferidaID acepta "" para deshacer una transferencia.
	AgenciaTransferidaID *string `json:"agencia_transferida_id" validate:"omitempty,uuid"`
	Estado               *string `json:"estado" validate:"omitempty,oneof=pendiente confirmada por_confirmar recibida pagada"`
}

type ReservaResponse struct {
	ID                   string          `json:"id"`
	ServicioID           string          `json:"servicio_id"`
	NombreCliente        string          `json:"nombre_cliente"`
	Adultos              int             `json:"adultos"`
	Ninos                int             `json:"ninos"`
	PrecioCobrar         decimal.Decimal `json:"precio_cobrar"`
	CobroManual          bool            `json:"cobro_manual"`
	DireccionAbordaje    string          `json:"direccion_abordaje,omitempty"`
	RutaProgramadaID     *string         `json:"ruta_programada_id,omitempty"`
	TourProgramadoID     *string         `json:"tour_programado_id,omitempty"`
	AgenciaTransferidaID *string         `json:"agencia_transferida_id,omitempty"`
	Estado               string          `json:"estado"`
	Escenario            string          `json:"escenario"`
	CreatedAt            string          `json:"created_at"`
}
