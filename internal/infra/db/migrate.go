package db

import (
	"errors"
	"strings"

	"booking-checkout/internal/pkg/config"
	"booking-checkout/internal/pkg/errs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const DefaultMigrationsSource = "file://migrations"

type Migrator struct {
	m *migrate.Migrate
}

func NewMigrator(sourceURL string, cfg config.DBConfig) (*Migrator, error) {
	m, err := migrate.New(sourceURL, MigrationDSN(cfg.BuildDSN()))
	if err != nil {
		return nil, errs.Wrap(err, "failed to initialise migrations")
	}
	return &Migrator{m: m}, nil
}

// MigrationDSN rewrites a postgres URL to the scheme registered by the pgx v5 driver.
func MigrationDSN(dsn string) string {
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}

// Up applies all pending migrations. An up-to-date schema is not an error.
func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errs.Wrap(err, "migrate up")
	}
	return nil
}

func (m *Migrator) Down(steps int) error {
	if steps <= 0 {
		steps = 1
	}
	if err := m.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errs.Wrap(err, "migrate down")
	}
	return nil
}

func (m *Migrator) Version() (version uint, dirty bool, err error) {
	version, dirty, err = m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	if srcErr != nil {
		return srcErr
	}
	return dbErr
}
