package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"book_tracker_tgbot/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

func dsn(cfg *config.Config) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.DbName,
		cfg.Postgres.SSLMode,
	)
}

func NewPostgresClient(cfg *config.Config) *sqlx.DB {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn(cfg))
	if err != nil {
		slog.Error(
			"Error while connecting Postgres",
			slog.String("host", cfg.Postgres.Host),
			slog.Int("port", cfg.Postgres.Port),
			slog.String("db", cfg.Postgres.DbName),
			slog.String("err", err.Error()),
		)
		panic(err)
	}

	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second)
	db.SetConnMaxIdleTime(time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second)

	slog.Info(
		"Postgres connected",
		slog.String("host", cfg.Postgres.Host),
		slog.String("db", cfg.Postgres.DbName),
		slog.Int("maxOpenConns", cfg.Postgres.MaxOpenConns),
	)

	return db
}
