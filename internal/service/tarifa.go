package service

import (
	"github.com/Carbyfah/magic-sub005/internal/model"

	"github.com/shopspring/decimal"
)

// factorNino: children on collective services ride at a 25% discount.
// (25%, not 50% — the half-fare of the first season was corrected.)
var factorNino = decimal.NewFromFloat(0.75)

var cien = decimal.NewFromInt(100)

// DerivarPrecioDescuento computes the effective fare of a catalog entry:
// the base price when there is no discount, otherwise base*(1 - pct/100),
// rounded to 2 decimals. Always called on catalog writes — the discounted
// price is derived, never edited directly.
func DerivarPrecioDescuento(base decimal.Decimal, pct *decimal.Decimal) decimal.Decimal {
	if pct == nil || pct.IsZero() {
		return base.Round(2)
	}
	factor := decimal.NewFromInt(1).Sub(pct.Div(cien))
	return base.Mul(factor).Round(2)
}

// ResolverTarifa computes the amount owed by the passenger.
//
//   - An explicit non-zero operator price always wins and is returned as-is;
//     the system never silently overwrites a manually set price.
//   - Private services are per-unit: the discounted price, whatever the pax mix.
//   - Collective services are per-head: adults at full discounted price,
//     children at 75% of it.
//
// The second return reports whether the price is a manual override (and so
// exempt from recomputation when pax counts later change).
func ResolverTarifa(servicio *model.Servicio, adultos, ninos int, cobroDirecto *decimal.Decimal) (decimal.Decimal, bool) {
	if cobroDirecto != nil && !cobroDirecto.IsZero() {
		return *cobroDirecto, true
	}

	if servicio.Tipo == model.ServicioPrivado {
		return servicio.PrecioDescuento, false
	}

	precioNino := servicio.PrecioDescuento.Mul(factorNino)
	total := servicio.PrecioDescuento.Mul(decimal.NewFromInt(int64(adultos))).
		Add(precioNino.Mul(decimal.NewFromInt(int64(ninos))))
	return total.Round(2), false
}
