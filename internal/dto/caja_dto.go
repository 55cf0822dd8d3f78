package dto

import "github.com/shopspring/decimal"

type CajaDiariaEntrada struct {
	ID             string          `json:"id"`
	ReservaID      string          `json:"reserva_id"`
	Origen         string          `json:"origen"`
	Destino        string          `json:"destino"`
	FechaServicio  string          `json:"fecha_servicio"`
	Adultos        int             `json:"adultos"`
	Ninos          int             `json:"ninos"`
	TotalPax       int             `json:"total_pax"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	PrecioTotal    decimal.Decimal `json:"precio_total"`
	Estado         string          `json:"estado"`
}

type CajaDiariaResponse struct {
	Fecha    string              `json:"fecha"`
	Entradas []CajaDiariaEntrada `json:"entradas"`
	TotalPax int                 `json:"total_pax"`
	Total    decimal.Decimal     `json:"total"`
}
