package dto

import "github.com/shopspring/decimal"

type CrearServicioRequest struct {
	Nombre       string           `json:"nombre" validate:"required,min=2"`
	Tipo         string           `json:"tipo" validate:"required,oneof=colectivo privado"`
	PrecioBase   decimal.Decimal  `json:"precio_base" validate:"required,gt=0"`
	DescuentoPct *decimal.Decimal `json:"descuento_pct" validate:"omitempty,min=0,max=100"`
	RutaID       *string          `json:"ruta_id" validate:"omitempty,uuid"`
	TourID       *string          `json:"tour_id" validate:"omitempty,uuid"`
}

type ActualizarServicioRequest struct {
	Nombre       *string          `json:"nombre" validate:"omitempty,min=2"`
	Tipo         *string          `json:"tipo" validate:"omitempty,oneof=colectivo privado"`
	PrecioBase   *decimal.Decimal `json:"precio_base" validate:"omitempty,gt=0"`
	DescuentoPct *decimal.Decimal `json:"descuento_pct" validate:"omitempty,min=0,max=100"`
}

type ServicioResponse struct {
	ID              string           `json:"id"`
	Nombre          string           `json:"nombre"`
	Tipo            string           `json:"tipo"`
	PrecioBase      decimal.Decimal  `json:"precio_base"`
	DescuentoPct    *decimal.Decimal `json:"descuento_pct,omitempty"`
	PrecioDescuento decimal.Decimal  `json:"precio_descuento"`
	RutaID          *string          `json:"ruta_id,omitempty"`
	TourID          *string          `json:"tour_id,omitempty"`
	Activo          bool             `json:"activo"`
}
