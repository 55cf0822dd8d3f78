package dto

import "github.com/shopspring/decimal"

// ── Ocupación ────────────────────────────────────────────────────────────────

type OcupacionResponse struct {
	RutaProgramadaID string  `json:"ruta_programada_id"`
	Origen           string  `json:"origen"`
	Destino          string  `json:"destino"`
	FechaSalida      string  `json:"fecha_salida"`
	Capacidad        int     `json:"capacidad"`
	Ocupados         int     `json:"ocupados"`
	Disponibles      int     `json:"disponibles"`
	PorcentajeUso    float64 `json:"porcentaje_uso"`
}

// ── Control de ventas ────────────────────────────────────────────────────────

type VentaControlItem struct {
	ReservaID     string          `json:"reserva_id"`
	NombreCliente string          `json:"nombre_cliente"`
	Servicio      string          `json:"servicio"`
	Adultos       int             `json:"adultos"`
	Ninos         int             `json:"ninos"`
	PrecioCobrar  decimal.Decimal `json:"precio_cobrar"`
	Estado        string          `json:"estado"`
	MetodoPago    string          `json:"metodo_pago"`
	Escenario     string          `json:"escenario"`
}

type ControlVentasResponse struct {
	Fecha    string             `json:"fecha"`
	Ventas   []VentaControlItem `json:"ventas"`
	TotalPax int                `json:"total_pax"`
	Total    decimal.Decimal    `json:"total"`
}

// ── Cuentas por agencia ──────────────────────────────────────────────────────

type CuentaAgencia struct {
	AgenciaID    string                     `json:"agencia_id"`
	Agencia      string                     `json:"agencia"`
	Reservas     int                        `json:"reservas"`
	Total        decimal.Decimal            `json:"total"`
	PorEscenario map[string]decimal.Decimal `json:"por_escenario"`
}

type CuentasPorAgenciaResponse struct {
	Desde   string          `json:"desde"`
	Hasta   string          `json:"hasta"`
	Cuentas []CuentaAgencia `json:"cuentas"`
}

// ── Liquidación ──────────────────────────────────────────────────────────────

type LiquidacionResponse struct {
	RutaProgramadaID string          `json:"ruta_programada_id"`
	Estado           string          `json:"estado"`
	Liquidada        bool            `json:"liquidada"`
	Ingresos         decimal.Decimal `json:"ingresos"`
	Gastos           decimal.Decimal `json:"gastos"`
	PagoConductor    decimal.Decimal `json:"pago_conductor"`
	Balance          decimal.Decimal `json:"balance"`
	DetalleGastos    []GastoResponse `json:"detalle_gastos"`
}
