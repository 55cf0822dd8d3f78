//go:build integration

package e2e

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// Covered cycles:
//   - catálogo → ruta programada → reserva → sobrecupo 409 → anulación libera
//   - reserva pagada de la casa → espejo en caja diaria → método de pago
//   - ciclo de vida de la ruta hasta liquidación con gastos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Carbyfah/magic-sub005/internal/config"
	"github.com/Carbyfah/magic-sub005/internal/infra"
	"github.com/Carbyfah/magic-sub005/internal/model"
	"github.com/Carbyfah/magic-sub005/internal/router"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

type idResp struct {
	ID string `json:"id"`
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	casaID string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("magictravel_test"),
		tcPostgres.WithUsername("magic"),
		tcPostgres.WithPassword("magic"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	db, err := infra.NewDatabase(pgURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(rdURL)
	require.NoError(t, err)

	// The house agency must exist before the router can classify anything.
	casa := model.Agencia{ID: uuid.New(), Nombre: "Magic Travel", Activo: true}
	require.NoError(t, db.Create(&casa).Error)

	cfg := &config.Config{
		Port:              8000,
		Env:               "test",
		WorkerPoolSize:    1,
		DatabaseURL:       pgURL,
		RedisURL:          rdURL,
		AgenciaCasaID:     casa.ID.String(),
		NombreAgenciaCasa: "Magic Travel",
	}

	// Sin dispatcher el espejo de caja corre en línea, lo que hace las
	// aserciones deterministas.
	r := router.New(cfg, db, rdb, nil)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testEnv{server: srv, casaID: casa.ID.String()}
}

// setupRutaColectiva builds the whole sales chain over HTTP and returns
// (servicioID, rutaProgramadaID).
func setupRutaColectiva(t *testing.T, env *testEnv, capacidad int) (string, string) {
	t.Helper()

	vehResp := do(t, env.server, "POST", "/v1/vehiculos", jsonBody(t, map[string]any{
		"placa":          "P-" + uuid.NewString()[:8],
		"capacidad":      capacidad,
		"pago_conductor": "150.00",
	}))
	require.Equal(t, http.StatusCreated, vehResp.StatusCode)
	var veh idResp
	decodeJSON(t, vehResp, &veh)

	rutaResp := do(t, env.server, "POST", "/v1/rutas", jsonBody(t, map[string]any{
		"agencia_id": env.casaID,
		"origen":     "Antigua",
		"destino":    "Panajachel",
	}))
	require.Equal(t, http.StatusCreated, rutaResp.StatusCode)
	var ruta idResp
	decodeJSON(t, rutaResp, &ruta)

	progResp := do(t, env.server, "POST", "/v1/rutas/programadas", jsonBody(t, map[string]any{
		"ruta_id":      ruta.ID,
		"vehiculo_id":  veh.ID,
		"fecha_salida": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	}))
	require.Equal(t, http.StatusCreated, progResp.StatusCode)
	var prog idResp
	decodeJSON(t, progResp, &prog)

	servResp := do(t, env.server, "POST", "/v1/servicios", jsonBody(t, map[string]any{
		"nombre":        "Shuttle Antigua - Panajachel",
		"tipo":          "colectivo",
		"precio_base":   "125.00",
		"descuento_pct": "20",
		"ruta_id":       ruta.ID,
	}))
	require.Equal(t, http.StatusCreated, servResp.StatusCode)
	var serv idResp
	decodeJSON(t, servResp, &serv)

	return serv.ID, prog.ID
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_ReservaYCapacidad(t *testing.T) {
	env := setupTestEnv(t)
	servicioID, progID := setupRutaColectiva(t, env, 4)

	// 2 adultos + 1 niño sobre precio con descuento 100: 275.
	resResp := do(t, env.server, "POST", "/v1/reservas", jsonBody(t, map[string]any{
		"servicio_id":        servicioID,
		"nombre_cliente":     "Ana López",
		"adultos":            2,
		"ninos":              1,
		"ruta_programada_id": progID,
	}))
	require.Equal(t, http.StatusCreated, resResp.StatusCode)
	var reserva struct {
		ID           string `json:"id"`
		PrecioCobrar string `json:"precio_cobrar"`
		Escenario    string `json:"escenario"`
	}
	decodeJSON(t, resResp, &reserva)
	assert.Equal(t, "275", reserva.PrecioCobrar)
	assert.Equal(t, "venta_directa", reserva.Escenario)

	// Quedan 1 asiento: 2 pax más es sobrecupo, 409 con los números exactos.
	overResp := do(t, env.server, "POST", "/v1/reservas", jsonBody(t, map[string]any{
		"servicio_id":        servicioID,
		"nombre_cliente":     "Luis Paz",
		"adultos":            2,
		"ruta_programada_id": progID,
	}))
	require.Equal(t, http.StatusConflict, overResp.StatusCode)
	var capBody struct {
		Capacidad   int `json:"capacidad"`
		Ocupados    int `json:"ocupados"`
		Solicitados int `json:"solicitados"`
		Disponibles int `json:"disponibles"`
	}
	decodeJSON(t, overResp, &capBody)
	assert.Equal(t, 4, capBody.Capacidad)
	assert.Equal(t, 3, capBody.Ocupados)
	assert.Equal(t, 2, capBody.Solicitados)
	assert.Equal(t, 1, capBody.Disponibles)

	// Anular la primera libera los asientos.
	delResp := do(t, env.server, "DELETE", "/v1/reservas/"+reserva.ID, nil)
	require.Equal(t, http.StatusNoContent, delResp.StatusCode)
	delResp.Body.Close()

	againResp := do(t, env.server, "POST", "/v1/reservas", jsonBody(t, map[string]any{
		"servicio_id":        servicioID,
		"nombre_cliente":     "Luis Paz",
		"adultos":            4,
		"ruta_programada_id": progID,
	}))
	require.Equal(t, http.StatusCreated, againResp.StatusCode)
	againResp.Body.Close()
}

func TestE2E_EspejoCajaYMetodoPago(t *testing.T) {
	env := setupTestEnv(t)
	servicioID, progID := setupRutaColectiva(t, env, 12)

	resResp := do(t, env.server, "POST", "/v1/reservas", jsonBody(t, map[string]any{
		"servicio_id":        servicioID,
		"nombre_cliente":     "Carmen Díaz",
		"adultos":            2,
		"ruta_programada_id": progID,
		"estado":             "pagada",
	}))
	require.Equal(t, http.StatusCreated, resResp.StatusCode)
	var reserva idResp
	decodeJSON(t, resResp, &reserva)

	// La reserva pagada de la casa aparece en la caja del día.
	cajaResp := do(t, env.server, "GET", "/v1/caja/diaria", nil)
	require.Equal(t, http.StatusOK, cajaResp.StatusCode)
	var caja struct {
		Entradas []struct {
			ReservaID   string `json:"reserva_id"`
			Origen      string `json:"origen"`
			Destino     string `json:"destino"`
			PrecioTotal string `json:"precio_total"`
		} `json:"entradas"`
		TotalPax int    `json:"total_pax"`
		Total    string `json:"total"`
	}
	decodeJSON(t, cajaResp, &caja)
	require.Len(t, caja.Entradas, 1)
	assert.Equal(t, reserva.ID, caja.Entradas[0].ReservaID)
	assert.Equal(t, "Antigua", caja.Entradas[0].Origen)
	assert.Equal(t, "Panajachel", caja.Entradas[0].Destino)
	assert.Equal(t, 2, caja.TotalPax)
	assert.Equal(t, "200", caja.Total)

	// Con entrada en caja el método de pago es caja.
	mpResp := do(t, env.server, "GET", "/v1/caja/metodo-pago/"+reserva.ID, nil)
	require.Equal(t, http.StatusOK, mpResp.StatusCode)
	var mp struct {
		MetodoPago string `json:"metodo_pago"`
	}
	decodeJSON(t, mpResp, &mp)
	assert.Equal(t, "caja", mp.MetodoPago)
}

func TestE2E_CicloLiquidacion(t *testing.T) {
	env := setupTestEnv(t)
	servicioID, progID := setupRutaColectiva(t, env, 12)

	resResp := do(t, env.server, "POST", "/v1/reservas", jsonBody(t, map[string]any{
		"servicio_id":        servicioID,
		"nombre_cliente":     "Pedro Ruiz",
		"adultos":            3,
		"ruta_programada_id": progID,
	}))
	require.Equal(t, http.StatusCreated, resResp.StatusCode)
	resResp.Body.Close()

	// Un salto inválido del ciclo de vida responde 409.
	badResp := do(t, env.server, "PUT", "/v1/rutas/programadas/"+progID+"/estado",
		jsonBody(t, map[string]any{"estado": "liquidada"}))
	require.Equal(t, http.StatusConflict, badResp.StatusCode)
	badResp.Body.Close()

	for _, estado := range []string{"en_ejecucion", "finalizada", "por_liquidar"} {
		resp := do(t, env.server, "PUT", "/v1/rutas/programadas/"+progID+"/estado",
			jsonBody(t, map[string]any{"estado": estado}))
		require.Equal(t, http.StatusNoContent, resp.StatusCode, "transición a %s", estado)
		resp.Body.Close()
	}

	gastoResp := do(t, env.server, "POST", "/v1/rutas/programadas/"+progID+"/gastos",
		jsonBody(t, map[string]any{"monto": "60.00", "motivo": "combustible"}))
	require.Equal(t, http.StatusCreated, gastoResp.StatusCode)
	gastoResp.Body.Close()

	liqResp := do(t, env.server, "GET", fmt.Sprintf("/v1/rutas/programadas/%s/liquidacion", progID), nil)
	require.Equal(t, http.StatusOK, liqResp.StatusCode)
	var liq struct {
		Liquidada     bool   `json:"liquidada"`
		Ingresos      string `json:"ingresos"`
		Gastos        string `json:"gastos"`
		PagoConductor string `json:"pago_conductor"`
		Balance       string `json:"balance"`
	}
	decodeJSON(t, liqResp, &liq)
	assert.True(t, liq.Liquidada)
	// 3 adultos a 100 = 300; 300 - 60 - 150 = 90.
	assert.Equal(t, "300", liq.Ingresos)
	assert.Equal(t, "60", liq.Gastos)
	assert.Equal(t, "150", liq.PagoConductor)
	assert.Equal(t, "90", liq.Balance)
}
