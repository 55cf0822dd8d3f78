// cmd/seed/main.go — Crea/actualiza los datos base de demo: la agencia casa,
// agencias asociadas, flota, rutas, tours y servicios del catálogo.
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Carbyfah/magic-sub005/internal/config"
	"github.com/Carbyfah/magic-sub005/internal/infra"
	"github.com/Carbyfah/magic-sub005/internal/model"
	"github.com/Carbyfah/magic-sub005/internal/service"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect error")
	}

	ctx := context.Background()

	casa, err := upsertAgencia(ctx, db, cfg.NombreAgenciaCasa)
	if err != nil {
		log.Fatal().Err(err).Msg("seed: agencia casa")
	}
	asociada, err := upsertAgencia(ctx, db, "Viajes del Lago")
	if err != nil {
		log.Fatal().Err(err).Msg("seed: agencia asociada")
	}

	pago := decimal.NewFromInt(150)
	vehiculo := &model.Vehiculo{Placa: "P-001-MGT", Capacidad: 12, PagoConductor: &pago, Activo: true}
	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "placa"}}, DoNothing: true}).
		Create(vehiculo).Error; err != nil {
		log.Fatal().Err(err).Msg("seed: vehiculo")
	}

	ruta := &model.Ruta{AgenciaID: casa.ID, Origen: "Antigua", Destino: "Panajachel", Activo: true}
	if err := db.WithContext(ctx).
		Where("agencia_id = ? AND origen = ? AND destino = ?", casa.ID, ruta.Origen, ruta.Destino).
		FirstOrCreate(ruta).Error; err != nil {
		log.Fatal().Err(err).Msg("seed: ruta")
	}

	tour := &model.Tour{AgenciaID: asociada.ID, Nombre: "Volcán Pacaya", Activo: true}
	if err := db.WithContext(ctx).
		Where("agencia_id = ? AND nombre = ?", asociada.ID, tour.Nombre).
		FirstOrCreate(tour).Error; err != nil {
		log.Fatal().Err(err).Msg("seed: tour")
	}

	descuento := decimal.NewFromInt(10)
	servicios := []model.Servicio{
		{
			Nombre:       "Shuttle Antigua – Panajachel",
			Tipo:         model.ServicioColectivo,
			PrecioBase:   decimal.NewFromInt(125),
			DescuentoPct: &descuento,
			RutaID:       &ruta.ID,
			Activo:       true,
		},
		{
			Nombre:     "Tour Volcán Pacaya",
			Tipo:       model.ServicioColectivo,
			PrecioBase: decimal.NewFromInt(300),
			TourID:     &tour.ID,
			Activo:     true,
		},
	}
	for i := range servicios {
		s := &servicios[i]
		s.PrecioDescuento = service.DerivarPrecioDescuento(s.PrecioBase, s.DescuentoPct)
		if err := db.WithContext(ctx).
			Where("nombre = ?", s.Nombre).
			FirstOrCreate(s).Error; err != nil {
			log.Fatal().Err(err).Str("servicio", s.Nombre).Msg("seed: servicio")
		}
	}

	fmt.Printf("Agencia casa %q lista.\n", casa.Nombre)
	fmt.Printf("Exporta AGENCIA_CASA_ID=%s antes de arrancar el servidor.\n", casa.ID)
	os.Exit(0)
}

func upsertAgencia(ctx context.Context, db *gorm.DB, nombre string) (*model.Agencia, error) {
	agencia := &model.Agencia{Nombre: nombre, Activo: true}
	err := db.WithContext(ctx).Where("nombre = ?", nombre).FirstOrCreate(agencia).Error
	return agencia, err
}
