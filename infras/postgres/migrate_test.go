package postgres

import (
	"hostel/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "test_"
	cfg.DB.Postgres.Write.Username = "hostel"
	cfg.DB.Postgres.Write.Password = "secret"
	cfg.DB.Postgres.Write.Host = "db"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Name = "hostel"
	cfg.DB.Postgres.Write.SSLMode = "disable"

	assert.Equal(t, "postgres://hostel:secret@db:5432/test_hostel?sslmode=disable&x-migrations-table=schema_migrations", migrationURL(cfg))

	cfg.DB.Postgres.MigrationTable = "hostel_migrations"
	assert.Contains(t, migrationURL(cfg), "x-migrations-table=hostel_migrations")
}

func TestMigrate_UnknownDirection(t *testing.T) {
	assert.ErrorContains(t, Migrate(&config.Config{}, "sideways"), "unknown migration direction")
}
