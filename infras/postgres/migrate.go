package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"hostel/config"
	"hostel/migrations"
	"net"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStepUp = "step-up"
	MigrateDrop   = "drop"
)

func migrationURL(cfg *config.Config) string {
	table := cfg.DB.Postgres.MigrationTable
	if table == "" {
		table = "schema_migrations"
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		cfg.DB.Postgres.Write.Username,
		cfg.DB.Postgres.Write.Password,
		net.JoinHostPort(cfg.DB.Postgres.Write.Host, cfg.DB.Postgres.Write.Port),
		getDBName(*cfg, cfg.DB.Postgres.Write.Name),
		cfg.DB.Postgres.Write.SSLMode,
		table,
	)
}

var steps = map[string]func(*migrate.Migrate) error{
	MigrateUp:     func(m *migrate.Migrate) error { return m.Up() },
	MigrateDown:   func(m *migrate.Migrate) error { return m.Steps(-1) },
	MigrateStepUp: func(m *migrate.Migrate) error { return m.Steps(1) },
	MigrateDrop:   func(m *migrate.Migrate) error { return m.Down() },
}

// Migrate applies the embedded schema against the write database.
func Migrate(cfg *config.Config, direction string) error {
	step, ok := steps[direction]
	if !ok {
		return fmt.Errorf("unknown migration direction %q", direction)
	}

	source, err := iofs.New(migrations.Postgres, "postgres")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, migrationURL(cfg))
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer mig.Close()

	if err = step(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate %s: %w", direction, err)
	}

	version, dirty, verr := mig.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", verr)
	}

	log.Info().Str("direction", direction).Uint("version", version).Bool("dirty", dirty).Msg("database migrated")

	return nil
}
