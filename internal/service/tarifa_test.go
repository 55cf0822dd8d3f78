package service_test

import (
	"testing"

	"github.com/Carbyfah/magic-sub005/internal/model"
	"github.com/Carbyfah/magic-sub005/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDerivarPrecioDescuento(t *testing.T) {
	tests := []struct {
		name string
		base string
		pct  *decimal.Decimal
		want string
	}{
		{"sin descuento", "200.00", nil, "200.00"},
		{"descuento cero equivale a nulo", "200.00", decptr(decimal.Zero), "200.00"},
		{"diez por ciento", "200.00", decptr(dec("10")), "180.00"},
		{"redondeo a dos decimales", "99.99", decptr(dec("12.5")), "87.49"},
		{"cien por ciento", "150.00", decptr(dec("100")), "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.DerivarPrecioDescuento(dec(tt.base), tt.pct)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestResolverTarifa_ColectivoPorCabeza(t *testing.T) {
	servicio := &model.Servicio{Tipo: model.ServicioColectivo, PrecioDescuento: dec("100.00")}

	// 2 adultos a 100 + 1 niño a 75.
	precio, manual := service.ResolverTarifa(servicio, 2, 1, nil)
	assert.True(t, precio.Equal(dec("275.00")), "got %s", precio)
	assert.False(t, manual)
}

func TestResolverTarifa_ColectivoSinPax(t *testing.T) {
	servicio := &model.Servicio{Tipo: model.ServicioColectivo, PrecioDescuento: dec("100.00")}

	precio, manual := service.ResolverTarifa(servicio, 0, 0, nil)
	assert.True(t, precio.IsZero())
	assert.False(t, manual)
}

func TestResolverTarifa_PrivadoTarifaPlana(t *testing.T) {
	servicio := &model.Servicio{Tipo: model.ServicioPrivado, PrecioDescuento: dec("450.00")}

	// El mix de pax no cambia el precio de un privado.
	for _, pax := range [][2]int{{1, 0}, {4, 3}, {0, 2}} {
		precio, manual := service.ResolverTarifa(servicio, pax[0], pax[1], nil)
		assert.True(t, precio.Equal(dec("450.00")), "pax %v: got %s", pax, precio)
		assert.False(t, manual)
	}
}

func TestResolverTarifa_CobroDirectoGana(t *testing.T) {
	servicio := &model.Servicio{Tipo: model.ServicioColectivo, PrecioDescuento: dec("100.00")}

	precio, manual := service.ResolverTarifa(servicio, 2, 1, decptr(dec("999.99")))
	assert.True(t, precio.Equal(dec("999.99")))
	assert.True(t, manual, "un cobro directo no nulo debe marcarse manual")
}

func TestResolverTarifa_CobroDirectoCeroNoEsManual(t *testing.T) {
	servicio := &model.Servicio{Tipo: model.ServicioColectivo, PrecioDescuento: dec("100.00")}

	precio, manual := service.ResolverTarifa(servicio, 1, 0, decptr(decimal.Zero))
	assert.True(t, precio.Equal(dec("100.00")), "got %s", precio)
	assert.False(t, manual, "cobro directo cero cae al cálculo normal")
}
