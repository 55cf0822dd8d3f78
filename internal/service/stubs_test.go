package service_test

// In-memory repository stubs backed by one shared "world". The reserva stub's
// Transaction serializes on a mutex and passes a nil *gorm.DB through, the
// same contract the production code relies on (row lock held for the whole
// guard-and-insert sequence), so the concurrency tests exercise the real
// serialization behavior without a database.

import (
	"context"
	"sync"
	"time"

	"github.com/Carbyfah/magic-sub005/internal/model"
	"github.com/Carbyfah/magic-sub005/internal/repository"
	"github.com/Carbyfah/magic-sub005/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type world struct {
	txMu sync.Mutex

	agencias    map[uuid.UUID]*model.Agencia
	vehiculos   map[uuid.UUID]*model.Vehiculo
	rutas       map[uuid.UUID]*model.Ruta
	programadas map[uuid.UUID]*model.RutaProgramada
	tours       map[uuid.UUID]*model.Tour
	toursProg   map[uuid.UUID]*model.TourProgramado
	servicios   map[uuid.UUID]*model.Servicio
	reservas    map[uuid.UUID]*model.Reserva
	eliminadas  map[uuid.UUID]bool
	caja        map[uuid.UUID]*model.CajaDiaria // keyed by ReservaID
	gastos      []model.GastoRuta
}

func newWorld() *world {
	return &world{
		agencias:    make(map[uuid.UUID]*model.Agencia),
		vehiculos:   make(map[uuid.UUID]*model.Vehiculo),
		rutas:       make(map[uuid.UUID]*model.Ruta),
		programadas: make(map[uuid.UUID]*model.RutaProgramada),
		tours:       make(map[uuid.UUID]*model.Tour),
		toursProg:   make(map[uuid.UUID]*model.TourProgramado),
		servicios:   make(map[uuid.UUID]*model.Servicio),
		reservas:    make(map[uuid.UUID]*model.Reserva),
		eliminadas:  make(map[uuid.UUID]bool),
		caja:        make(map[uuid.UUID]*model.CajaDiaria),
	}
}

// ── Seed helpers ──────────────────────────────────────────────────────────────

func (w *world) seedAgencia(nombre string) *model.Agencia {
	a := &model.Agencia{ID: uuid.New(), Nombre: nombre, Activo: true}
	w.agencias[a.ID] = a
	return a
}

func (w *world) seedVehiculo(capacidad int, pagoConductor decimal.Decimal) *model.Vehiculo {
	v := &model.Vehiculo{ID: uuid.New(), Placa: "P-" + uuid.NewString()[:8], Capacidad: capacidad, PagoConductor: &pagoConductor, Activo: true}
	w.vehiculos[v.ID] = v
	return v
}

// seedRuta creates the whole route chain: template, scheduled departure with
// the given vehicle, and a collective catalog entry priced base/descuento.
func (w *world) seedRuta(agencia *model.Agencia, vehiculo *model.Vehiculo, base decimal.Decimal, descuento *decimal.Decimal) (*model.Servicio, *model.RutaProgramada) {
	ruta := &model.Ruta{ID: uuid.New(), AgenciaID: agencia.ID, Origen: "Antigua", Destino: "Panajachel", Activo: true, Agencia: agencia}
	w.rutas[ruta.ID] = ruta

	rp := &model.RutaProgramada{
		ID:          uuid.New(),
		RutaID:      ruta.ID,
		FechaSalida: time.Now().Add(24 * time.Hour),
		Estado:      model.RutaActivada,
		Ruta:        ruta,
	}
	if vehiculo != nil {
		rp.VehiculoID = &vehiculo.ID
		rp.Vehiculo = vehiculo
	}
	w.programadas[rp.ID] = rp

	s := &model.Servicio{
		ID:         uuid.New(),
		Nombre:     "Shuttle " + ruta.Origen,
		Tipo:       model.ServicioColectivo,
		PrecioBase: base,
		RutaID:     &ruta.ID,
		Ruta:       ruta,
		Activo:     true,
	}
	if descuento != nil && !descuento.IsZero() {
		s.DescuentoPct = descuento
	}
	s.PrecioDescuento = service.DerivarPrecioDescuento(s.PrecioBase, s.DescuentoPct)
	w.servicios[s.ID] = s
	return s, rp
}

func (w *world) seedTour(agencia *model.Agencia, base decimal.Decimal) (*model.Servicio, *model.TourProgramado) {
	tour := &model.Tour{ID: uuid.New(), AgenciaID: agencia.ID, Nombre: "Volcán Pacaya", Activo: true, Agencia: agencia}
	w.tours[tour.ID] = tour

	tp := &model.TourProgramado{ID: uuid.New(), TourID: tour.ID, FechaSalida: time.Now().Add(24 * time.Hour), Estado: model.RutaActivada, Tour: tour}
	w.toursProg[tp.ID] = tp

	s := &model.Servicio{
		ID:         uuid.New(),
		Nombre:     "Tour " + tour.Nombre,
		Tipo:       model.ServicioColectivo,
		PrecioBase: base,
		TourID:     &tour.ID,
		Tour:       tour,
		Activo:     true,
	}
	s.PrecioDescuento = service.DerivarPrecioDescuento(s.PrecioBase, nil)
	w.servicios[s.ID] = s
	return s, tp
}

// seedReserva plants an existing booking directly (occupancy fixtures).
func (w *world) seedReserva(servicio *model.Servicio, rp *model.RutaProgramada, adultos, ninos int) *model.Reserva {
	r := &model.Reserva{
		ID:               uuid.New(),
		ServicioID:       servicio.ID,
		NombreCliente:    "Fixture",
		Adultos:          adultos,
		Ninos:            ninos,
		PrecioCobrar:     servicio.PrecioDescuento,
		RutaProgramadaID: &rp.ID,
		Estado:           model.ReservaPendiente,
		CreatedAt:        time.Now(),
	}
	w.reservas[r.ID] = r
	return r
}

// hydrate returns a copy with the association pointers the production
// FindByID preloads. Copies keep concurrent readers off the map-held structs.
func (w *world) hydrate(r *model.Reserva) *model.Reserva {
	cp := *r
	cp.Servicio = w.servicios[cp.ServicioID]
	if cp.RutaProgramadaID != nil {
		cp.RutaProgramada = w.programadas[*cp.RutaProgramadaID]
	}
	if cp.TourProgramadoID != nil {
		cp.TourProgramado = w.toursProg[*cp.TourProgramadoID]
	}
	if cp.AgenciaTransferidaID != nil {
		cp.AgenciaTransferida = w.agencias[*cp.AgenciaTransferidaID]
	}
	return &cp
}

// ── ReservaRepository ─────────────────────────────────────────────────────────

type stubReservaRepo struct{ w *world }

func (r *stubReservaRepo) Transaction(_ context.Context, fn func(tx *gorm.DB) error) error {
	r.w.txMu.Lock()
	defer r.w.txMu.Unlock()
	return fn(nil)
}

func (r *stubReservaRepo) CreateTx(_ context.Context, _ *gorm.DB, res *model.Reserva) error {
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	res.CreatedAt = time.Now()
	r.w.reservas[res.ID] = res
	return nil
}

func (r *stubReservaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Reserva, error) {
	res, ok := r.w.reservas[id]
	if !ok || r.w.eliminadas[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return r.w.hydrate(res), nil
}

func (r *stubReservaRepo) UpdateTx(_ context.Context, _ *gorm.DB, res *model.Reserva) error {
	r.w.reservas[res.ID] = res
	return nil
}

func (r *stubReservaRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	res, ok := r.w.reservas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	res.Estado = model.ReservaCancelada
	r.w.eliminadas[id] = true
	return nil
}

func (r *stubReservaRepo) SumPaxTx(_ *gorm.DB, rutaProgramadaID uuid.UUID, excluir *uuid.UUID) (int, error) {
	total := 0
	for id, res := range r.w.reservas {
		if r.w.eliminadas[id] {
			continue
		}
		if excluir != nil && id == *excluir {
			continue
		}
		if res.RutaProgramadaID != nil && *res.RutaProgramadaID == rutaProgramadaID {
			total += res.TotalPax()
		}
	}
	return total, nil
}

func (r *stubReservaRepo) ListByRutaProgramada(_ context.Context, rutaProgramadaID uuid.UUID) ([]model.Reserva, error) {
	var out []model.Reserva
	for id, res := range r.w.reservas {
		if r.w.eliminadas[id] {
			continue
		}
		if res.RutaProgramadaID != nil && *res.RutaProgramadaID == rutaProgramadaID {
			out = append(out, *r.w.hydrate(res))
		}
	}
	return out, nil
}

func (r *stubReservaRepo) ListByFecha(_ context.Context, fecha time.Time) ([]model.Reserva, error) {
	var out []model.Reserva
	for id, res := range r.w.reservas {
		if r.w.eliminadas[id] {
			continue
		}
		y1, m1, d1 := res.CreatedAt.Date()
		y2, m2, d2 := fecha.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			out = append(out, *r.w.hydrate(res))
		}
	}
	return out, nil
}

func (r *stubReservaRepo) ListByRango(_ context.Context, desde, hasta time.Time) ([]model.Reserva, error) {
	var out []model.Reserva
	for id, res := range r.w.reservas {
		if r.w.eliminadas[id] {
			continue
		}
		if !res.CreatedAt.Before(desde) && res.CreatedAt.Before(hasta) {
			out = append(out, *r.w.hydrate(res))
		}
	}
	return out, nil
}

func (r *stubReservaRepo) ListEspejosPendientes(_ context.Context, limit int) ([]model.Reserva, error) {
	var out []model.Reserva
	for id, res := range r.w.reservas {
		if r.w.eliminadas[id] || !res.EspejoCaja {
			continue
		}
		if _, espejada := r.w.caja[id]; espejada {
			continue
		}
		out = append(out, *r.w.hydrate(res))
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

var _ repository.ReservaRepository = (*stubReservaRepo)(nil)

// ── ServicioRepository ────────────────────────────────────────────────────────

type stubServicioRepo struct{ w *world }

func (r *stubServicioRepo) Create(_ context.Context, s *model.Servicio) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.w.servicios[s.ID] = s
	return nil
}

func (r *stubServicioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Servicio, error) {
	s, ok := r.w.servicios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	if cp.RutaID != nil {
		cp.Ruta = r.w.rutas[*cp.RutaID]
	}
	if cp.TourID != nil {
		cp.Tour = r.w.tours[*cp.TourID]
	}
	return &cp, nil
}

func (r *stubServicioRepo) List(_ context.Context) ([]model.Servicio, error) {
	var out []model.Servicio
	for _, s := range r.w.servicios {
		if s.Activo {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubServicioRepo) Update(_ context.Context, s *model.Servicio) error {
	r.w.servicios[s.ID] = s
	return nil
}

func (r *stubServicioRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	if s, ok := r.w.servicios[id]; ok {
		s.Activo = false
	}
	return nil
}

var _ repository.ServicioRepository = (*stubServicioRepo)(nil)

// ── RutaRepository ────────────────────────────────────────────────────────────

type stubRutaRepo struct{ w *world }

func (r *stubRutaRepo) Create(_ context.Context, ruta *model.Ruta) error {
	if ruta.ID == uuid.Nil {
		ruta.ID = uuid.New()
	}
	r.w.rutas[ruta.ID] = ruta
	return nil
}

func (r *stubRutaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Ruta, error) {
	ruta, ok := r.w.rutas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ruta, nil
}

func (r *stubRutaRepo) List(_ context.Context) ([]model.Ruta, error) {
	var out []model.Ruta
	for _, ruta := range r.w.rutas {
		if ruta.Activo {
			out = append(out, *ruta)
		}
	}
	return out, nil
}

func (r *stubRutaRepo) Update(_ context.Context, ruta *model.Ruta) error {
	r.w.rutas[ruta.ID] = ruta
	return nil
}

func (r *stubRutaRepo) CreateProgramada(_ context.Context, rp *model.RutaProgramada) error {
	if rp.ID == uuid.Nil {
		rp.ID = uuid.New()
	}
	r.w.programadas[rp.ID] = rp
	return nil
}

func (r *stubRutaRepo) FindProgramadaByID(_ context.Context, id uuid.UUID) (*model.RutaProgramada, error) {
	rp, ok := r.w.programadas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rp, nil
}

func (r *stubRutaRepo) LockProgramadaTx(_ *gorm.DB, id uuid.UUID) (*model.RutaProgramada, error) {
	rp, ok := r.w.programadas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rp, nil
}

func (r *stubRutaRepo) ListProgramadas(_ context.Context, _ *time.Time) ([]model.RutaProgramada, error) {
	var out []model.RutaProgramada
	for _, rp := range r.w.programadas {
		out = append(out, *rp)
	}
	return out, nil
}

func (r *stubRutaRepo) UpdateProgramada(_ context.Context, rp *model.RutaProgramada) error {
	r.w.programadas[rp.ID] = rp
	return nil
}

func (r *stubRutaRepo) UpdateProgramadaTx(_ *gorm.DB, rp *model.RutaProgramada) error {
	r.w.programadas[rp.ID] = rp
	return nil
}

var _ repository.RutaRepository = (*stubRutaRepo)(nil)

// ── TourRepository ────────────────────────────────────────────────────────────

type stubTourRepo struct{ w *world }

func (r *stubTourRepo) Create(_ context.Context, tour *model.Tour) error {
	if tour.ID == uuid.Nil {
		tour.ID = uuid.New()
	}
	r.w.tours[tour.ID] = tour
	return nil
}

func (r *stubTourRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Tour, error) {
	tour, ok := r.w.tours[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tour, nil
}

func (r *stubTourRepo) List(_ context.Context) ([]model.Tour, error) { return nil, nil }

func (r *stubTourRepo) Update(_ context.Context, tour *model.Tour) error {
	r.w.tours[tour.ID] = tour
	return nil
}

func (r *stubTourRepo) CreateProgramado(_ context.Context, tp *model.TourProgramado) error {
	if tp.ID == uuid.Nil {
		tp.ID = uuid.New()
	}
	r.w.toursProg[tp.ID] = tp
	return nil
}

func (r *stubTourRepo) FindProgramadoByID(_ context.Context, id uuid.UUID) (*model.TourProgramado, error) {
	tp, ok := r.w.toursProg[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tp, nil
}

func (r *stubTourRepo) ListProgramados(_ context.Context, _ *time.Time) ([]model.TourProgramado, error) {
	return nil, nil
}

func (r *stubTourRepo) UpdateProgramado(_ context.Context, tp *model.TourProgramado) error {
	r.w.toursProg[tp.ID] = tp
	return nil
}

var _ repository.TourRepository = (*stubTourRepo)(nil)

// ── AgenciaRepository ─────────────────────────────────────────────────────────

type stubAgenciaRepo struct{ w *world }

func (r *stubAgenciaRepo) Create(_ context.Context, a *model.Agencia) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.w.agencias[a.ID] = a
	return nil
}

func (r *stubAgenciaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Agencia, error) {
	a, ok := r.w.agencias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *stubAgenciaRepo) FindByNombre(_ context.Context, nombre string) (*model.Agencia, error) {
	for _, a := range r.w.agencias {
		if a.Nombre == nombre {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAgenciaRepo) List(_ context.Context) ([]model.Agencia, error) {
	var out []model.Agencia
	for _, a := range r.w.agencias {
		if a.Activo {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAgenciaRepo) Update(_ context.Context, a *model.Agencia) error {
	r.w.agencias[a.ID] = a
	return nil
}

func (r *stubAgenciaRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	if a, ok := r.w.agencias[id]; ok {
		a.Activo = false
	}
	return nil
}

var _ repository.AgenciaRepository = (*stubAgenciaRepo)(nil)

// ── CajaRepository ────────────────────────────────────────────────────────────

type stubCajaRepo struct{ w *world }

func (r *stubCajaRepo) Create(_ context.Context, entrada *model.CajaDiaria) error {
	if entrada.ID == uuid.Nil {
		entrada.ID = uuid.New()
	}
	entrada.CreatedAt = time.Now()
	r.w.caja[entrada.ReservaID] = entrada
	return nil
}

func (r *stubCajaRepo) FindByReservaID(_ context.Context, reservaID uuid.UUID) (*model.CajaDiaria, error) {
	e, ok := r.w.caja[reservaID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubCajaRepo) ListByFecha(_ context.Context, fecha time.Time) ([]model.CajaDiaria, error) {
	var out []model.CajaDiaria
	for _, e := range r.w.caja {
		y1, m1, d1 := e.CreatedAt.Date()
		y2, m2, d2 := fecha.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			out = append(out, *e)
		}
	}
	return out, nil
}

var _ repository.CajaRepository = (*stubCajaRepo)(nil)

// ── VehiculoRepository ────────────────────────────────────────────────────────

type stubVehiculoRepo struct{ w *world }

func (r *stubVehiculoRepo) Create(_ context.Context, v *model.Vehiculo) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.w.vehiculos[v.ID] = v
	return nil
}

func (r *stubVehiculoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Vehiculo, error) {
	v, ok := r.w.vehiculos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVehiculoRepo) List(_ context.Context) ([]model.Vehiculo, error) {
	var out []model.Vehiculo
	for _, v := range r.w.vehiculos {
		if v.Activo {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVehiculoRepo) Update(_ context.Context, v *model.Vehiculo) error {
	r.w.vehiculos[v.ID] = v
	return nil
}

func (r *stubVehiculoRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	if v, ok := r.w.vehiculos[id]; ok {
		v.Activo = false
	}
	return nil
}

var _ repository.VehiculoRepository = (*stubVehiculoRepo)(nil)

// ── GastoRepository ───────────────────────────────────────────────────────────

type stubGastoRepo struct{ w *world }

func (r *stubGastoRepo) Create(_ context.Context, g *model.GastoRuta) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	g.CreatedAt = time.Now()
	r.w.gastos = append(r.w.gastos, *g)
	return nil
}

func (r *stubGastoRepo) ListByRutaProgramada(_ context.Context, rutaProgramadaID uuid.UUID) ([]model.GastoRuta, error) {
	var out []model.GastoRuta
	for _, g := range r.w.gastos {
		if g.RutaProgramadaID == rutaProgramadaID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *stubGastoRepo) SumByRutaProgramada(_ context.Context, rutaProgramadaID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, g := range r.w.gastos {
		if g.RutaProgramadaID == rutaProgramadaID {
			total = total.Add(g.Monto)
		}
	}
	return total, nil
}

var _ repository.GastoRepository = (*stubGastoRepo)(nil)

// ── Service factories ─────────────────────────────────────────────────────────

func buildCajaSvc(w *world, casaID uuid.UUID) service.CajaService {
	return service.NewCajaService(&stubCajaRepo{w}, &stubReservaRepo{w}, casaID)
}

// buildReservaSvc wires a ReservaService over the world with a nil dispatcher,
// so qualifying reservations mirror synchronously.
func buildReservaSvc(w *world, casaID uuid.UUID) service.ReservaService {
	return service.NewReservaService(
		&stubReservaRepo{w},
		&stubServicioRepo{w},
		&stubRutaRepo{w},
		&stubTourRepo{w},
		&stubAgenciaRepo{w},
		buildCajaSvc(w, casaID),
		nil,
		casaID,
	)
}

func buildLiquidacionSvc(w *world) service.LiquidacionService {
	return service.NewLiquidacionService(&stubRutaRepo{w}, &stubReservaRepo{w}, &stubGastoRepo{w})
}

func buildRutaSvc(w *world) service.RutaService {
	return service.NewRutaService(&stubRutaRepo{w}, &stubAgenciaRepo{w}, &stubVehiculoRepo{w}, &stubReservaRepo{w})
}

func buildAgenciaSvc(w *world, casaID uuid.UUID) service.AgenciaService {
	return service.NewAgenciaService(&stubAgenciaRepo{w}, casaID)
}

func buildReporteSvc(w *world, casaID uuid.UUID) service.ReporteService {
	return service.NewReporteService(&stubRutaRepo{w}, &stubReservaRepo{w}, buildCajaSvc(w, casaID), casaID)
}

func buildCatalogoSvc(w *world) service.CatalogoService {
	return service.NewCatalogoService(&stubServicioRepo{w}, &stubRutaRepo{w}, &stubTourRepo{w})
}

func strptr(s string) *string                   { return &s }
func intptr(i int) *int                         { return &i }
func decptr(d decimal.Decimal) *decimal.Decimal { return &d }
