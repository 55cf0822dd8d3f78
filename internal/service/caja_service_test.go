package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Carbyfah/magic-sub005/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagada plants a paid, house-qualifying reservation.
func pagada(w *world, servicio *model.Servicio, rp *model.RutaProgramada, adultos, ninos int) *model.Reserva {
	r := w.seedReserva(servicio, rp, adultos, ninos)
	r.Estado = model.ReservaPagada
	return r
}

func TestEspejarReserva_Idempotente(t *testing.T) {
	w := newWorld()
	casa := w.seedAgencia("Magic Travel")
	servicio, rp := w.seedRuta(casa, nil, dec("100.00"), nil)
	r := pagada(w, servicio, rp, 2, 0)
	svc := buildCajaSvc(w, casa.ID)

	require.NoError(t, svc.EspejarReserva(context.Background(), r.ID))
	require.NoError(t, svc.EspejarReserva(context.Background(), r.ID))
	require.NoError(t, svc.EspejarReserva(context.Background(), r.ID))

	assert.Len(t, w.caja, 1, "reintentos no deben duplicar la entrada")
}

func TestEspejarReserva_NoCalificaEsNoOp(t *testing.T) {
	w := newWorld()
	casa := w.seedAgencia("Magic Travel")
	otra := w.seedAgencia("Viajes del Lago")
	servicioCasa, rpCasa := w.seedRuta(casa, nil, dec("100.00"), nil)
	servicioOtra, rpOtra := w.seedRuta(otra, nil, dec("100.00"), nil)
	svc := buildCajaSvc(w, casa.ID)

	// No pagada.
	pendiente := w.seedReserva(servicioCasa, rpCasa, 2, 0)
	require.NoError(t, svc.EspejarReserva(context.Background(), pendiente.ID))

	// Pagada pero transferida.
	transferida := pagada(w, servicioCasa, rpCasa, 2, 0)
	transferida.AgenciaTransferidaID = &otra.ID
	require.NoError(t, svc.EspejarReserva(context.Background(), transferida.ID))

	// Pagada pero operada por otra agencia.
	externa := pagada(w, servicioOtra, rpOtra, 2, 0)
	require.NoError(t, svc.EspejarReserva(context.Background(), externa.ID))

	assert.Empty(t, w.caja, "ninguna de las tres debe generar entrada")
}

func TestEspejarReserva_ReservaInexistente(t *testing.T) {
	w := newWorld()
	casa := w.seedAgencia("Magic Travel")
	svc := buildCajaSvc(w, casa.ID)

	err := svc.EspejarReserva(context.Background(), uuid.New())
	require.Error(t, err)
}

func TestEspejarReserva_SnapshotInmutable(t *testing.T) {
	w := newWorld()
	casa := w.seedAgencia("Magic Travel")
	servicio, rp := w.seedRuta(casa, nil, dec("100.00"), nil)
	r := pagada(w, servicio, rp, 2, 0)
	r.PrecioCobrar = dec("200.00")
	svc := buildCajaSvc(w, casa.ID)

	require.NoError(t, svc.EspejarReserva(context.Background(), r.ID))

	// Ediciones posteriores a la reserva no tocan la entrada ya escrita.
	r.Adultos = 9
	r.PrecioCobrar = dec("900.00")

	entrada := w.caja[r.ID]
	require.NotNil(t, entrada)
	assert.Equal(t, 2, entrada.Adultos)
	assert.True(t, entrada.PrecioTotal.Equal(dec("200.00")))
}

func TestEspejarReserva_TourComoDestino(t *testing.T) {
	w := newWorld()
	casa := w.seedAgencia("Magic Travel")
	servicio, tp := w.seedTour(casa, dec("300.00"))
	r := &model.Reserva{
		ID:               uuid.New(),
		ServicioID:       servicio.ID,
		NombreCliente:    "Fixture",
		Adultos:          1,
		PrecioCobrar:     dec("300.00"),
		TourProgramadoID: &tp.ID,
		Estado:           model.ReservaPagada,
		CreatedAt:        time.Now(),
	}
	w.reservas[r.ID] = r
	svc := buildCajaSvc(w, casa.ID)

	require.NoError(t, svc.EspejarReserva(context.Background(), r.ID))

	entrada := w.caja[r.ID]
	require.NotNil(t, entrada)
	assert.Equal(t, "Tour", entrada.Origen)
	assert.Equal(t, "Volcán Pacaya", entrada.Destino)
}

func TestResolverMetodoPago(t *testing.T) {
	w := newWorld()
	casa := w.seedAgencia("Magic Travel")
	servicio, rp := w.seedRuta(casa, nil, dec("100.00"), nil)
	svc := buildCajaSvc(w, casa.ID)

	// Con entrada de caja: caja, sin importar el estado.
	enCaja := pagada(w, servicio, rp, 1, 0)
	require.NoError(t, svc.EspejarReserva(context.Background(), enCaja.ID))

	porEstado := func(e model.EstadoReserva) *model.Reserva {
		r := w.seedReserva(servicio, rp, 1, 0)
		r.Estado = e
		return r
	}

	tests := []struct {
		name    string
		reserva *model.Reserva
		want    model.MetodoPago
	}{
		{"entrada en caja", enCaja, model.PagoCaja},
		{"por confirmar cobra el conductor", porEstado(model.ReservaPorConfirmar), model.PagoConductor},
		{"recibida cobra el conductor", porEstado(model.ReservaRecibida), model.PagoConductor},
		{"pagada sin caja es otro", porEstado(model.ReservaPagada), model.PagoOtro},
		{"pendiente queda pendiente", porEstado(model.ReservaPendiente), model.PagoPendiente},
		{"confirmada queda pendiente", porEstado(model.ReservaConfirmada), model.PagoPendiente},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ResolverMetodoPago(context.Background(), tt.reserva.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReporteDiario_Totales(t *testing.T) {
	w := newWorld()
	casa := w.seedAgencia("Magic Travel")
	servicio, rp := w.seedRuta(casa, nil, dec("100.00"), nil)
	svc := buildCajaSvc(w, casa.ID)

	a := pagada(w, servicio, rp, 2, 1)
	a.PrecioCobrar = dec("275.00")
	b := pagada(w, servicio, rp, 1, 0)
	b.PrecioCobrar = dec("100.00")
	require.NoError(t, svc.EspejarReserva(context.Background(), a.ID))
	require.NoError(t, svc.EspejarReserva(context.Background(), b.ID))

	resp, err := svc.ReporteDiario(context.Background(), time.Now())
	require.NoError(t, err)

	assert.Len(t, resp.Entradas, 2)
	assert.Equal(t, 4, resp.TotalPax)
	assert.True(t, resp.Total.Equal(dec("375.00")), "got %s", resp.Total)
}

func TestReporteDiario_DiaVacio(t *testing.T) {
	w := newWorld()
	casa := w.seedAgencia("Magic Travel")
	svc := buildCajaSvc(w, casa.ID)

	resp, err := svc.ReporteDiario(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, resp.Entradas)
	assert.True(t, resp.Total.IsZero())
}
