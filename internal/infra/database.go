package infra

import (
	"fmt"

	"github.com/Carbyfah/magic-sub005/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches GORM
// cannot express (CHECK constraints, partial indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations applies the schema. Also used by integration tests against a
// throwaway container.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Agencia{},
		&model.Vehiculo{},
		&model.Ruta{},
		&model.RutaProgramada{},
		&model.Tour{},
		&model.TourProgramado{},
		&model.Servicio{},
		&model.Reserva{},
		&model.CajaDiaria{},
		&model.GastoRuta{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// Each statement is guarded so re-running on an already-patched DB is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// A reservation targets exactly one departure: scheduled route XOR
		// scheduled tour. The service layer rejects violations first; the
		// constraint catches writes that bypass it.
		{"reservas destino XOR", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_reservas_destino_unico') THEN
    ALTER TABLE reservas ADD CONSTRAINT chk_reservas_destino_unico
      CHECK ((ruta_programada_id IS NULL) <> (tour_programado_id IS NULL));
  END IF;
END $$`},
		// Catalog entries link to exactly one template the same way.
		{"servicios destino XOR", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_servicios_destino_unico') THEN
    ALTER TABLE servicios ADD CONSTRAINT chk_servicios_destino_unico
      CHECK ((ruta_id IS NULL) <> (tour_id IS NULL));
  END IF;
END $$`},
		// Partial index backing the mirror retry sweep: flagged reservations
		// are few, scanning all rows per tick would not scale.
		{"espejo pendiente partial index", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_reservas_espejo_pendiente') THEN
    CREATE INDEX idx_reservas_espejo_pendiente
        ON reservas (created_at)
        WHERE espejo_caja = true AND deleted_at IS NULL;
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
