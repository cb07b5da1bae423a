package postgres

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"book_tracker_tgbot/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MustRunMigrations applies every pending up migration.
func MustRunMigrations(cfg *config.Config) {
	if err := RunMigrations(cfg); err != nil {
		slog.Error("migrations failed", slog.String("err", err.Error()))
		panic(err)
	}
}

func RunMigrations(cfg *config.Config) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("open migrations source: %w", err)
	}

	// the pgx/v5 driver registers itself under the pgx5 scheme
	databaseURL := "pgx5" + strings.TrimPrefix(dsn(cfg), "postgres")

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()

	fromVer, _, _ := m.Version()

	start := time.Now()
	err = m.Up()
	took := time.Since(start)

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	toVer, _, _ := m.Version()
	slog.Info(
		"migrations summary",
		slog.Uint64("fromVer", uint64(fromVer)),
		slog.Uint64("toVer", uint64(toVer)),
		slog.Duration("took", took),
	)

	return nil
}
