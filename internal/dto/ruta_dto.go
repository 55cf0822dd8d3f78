package dto

import "github.com/shopspring/decimal"

type CrearRutaRequest struct {
	AgenciaID string `json:"agencia_id" validate:"required,uuid"`
	Origen    string `json:"origen" validate:"required,min=2"`
	Destino   string `json:"destino" validate:"required,min=2"`
}

type RutaResponse struct {
	ID        string `json:"id"`
	AgenciaID string `json:"agencia_id"`
	Agencia   string `json:"agencia,omitempty"`
	Origen    string `json:"origen"`
	Destino   string `json:"destino"`
	Activo    bool   `json:"activo"`
}

type ProgramarRutaRequest struct {
	RutaID      string  `json:"ruta_id" validate:"required,uuid"`
	VehiculoID  *string `json:"vehiculo_id" validate:"omitempty,uuid"`
	FechaSalida string  `json:"fecha_salida" validate:"required"` // RFC 3339
}

type AsignarVehiculoRequest struct {
	VehiculoID string `json:"vehiculo_id" validate:"required,uuid"`
}

type CambiarEstadoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=activada completa en_ejecucion finalizada por_liquidar liquidada"`
}

type RutaProgramadaResponse struct {
	ID          string  `json:"id"`
	RutaID      string  `json:"ruta_id"`
	Origen      string  `json:"origen,omitempty"`
	Destino     string  `json:"destino,omitempty"`
	VehiculoID  *string `json:"vehiculo_id,omitempty"`
	Capacidad   int     `json:"capacidad"`
	FechaSalida string  `json:"fecha_salida"`
	Estado      string  `json:"estado"`
	Liquidada   bool    `json:"liquidada"`
}

type RegistrarGastoRequest struct {
	Monto       decimal.Decimal `json:"monto" validate:"required,gt=0"`
	Motivo      string          `json:"motivo" validate:"required,min=2"`
	Descripcion *string         `json:"descripcion"`
	CreadoPor   *string         `json:"creado_por"`
}

type GastoResponse struct {
	ID          string          `json:"id"`
	Monto       decimal.Decimal `json:"monto"`
	Motivo      string          `json:"motivo"`
	Descripcion *string         `json:"descripcion,omitempty"`
	CreadoPor   *string         `json:"creado_por,omitempty"`
	CreatedAt   string          `json:"created_at"`
}
