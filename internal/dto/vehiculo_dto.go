package dto

import "github.com/shopspring/decimal"

type CrearVehiculoRequest struct {
	Placa         string           `json:"placa" validate:"required,min=3"`
	Marca         *string          `json:"marca"`
	Capacidad     int              `json:"capacidad" validate:"min=0"`
	PagoConductor *decimal.Decimal `json:"pago_conductor" validate:"omitempty,min=0"`
}

type ActualizarVehiculoRequest struct {
	Placa         *string          `json:"placa" validate:"omitempty,min=3"`
	Marca         *string          `json:"marca"`
	Capacidad     *int             `json:"capacidad" validate:"omitempty,min=0"`
	PagoConductor *decimal.Decimal `json:"pago_conductor" validate:"omitempty,min=0"`
}

type VehiculoResponse struct {
	ID            string           `json:"id"`
	Placa         string           `json:"placa"`
	Marca         *string          `json:"marca,omitempty"`
	Capacidad     int              `json:"capacidad"`
	PagoConductor *decimal.Decimal `json:"pago_conductor,omitempty"`
	Activo        bool             `json:"activo"`
}
