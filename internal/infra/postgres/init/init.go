package infra_pg_init

import (
	_ "embed"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/humanbelnik/cinemind/core/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

//go:embed schema.sql
var schema string

// MustEstablishConn opens the pool and applies the schema. The process
// exits when either step fails.
func MustEstablishConn(cfg config.Postgres, logger *slog.Logger) *sqlx.DB {
	db, err := sqlx.Connect("postgres", DSN(cfg))
	if err != nil {
		log.Fatalf("postgres at %s:%s unreachable: %v", cfg.Host, cfg.Port, err)
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}
	logger.Info("postgres connected",
		slog.String("host", cfg.Host),
		slog.String("db", cfg.DBName),
	)
	return db
}

func DSN(cfg config.Postgres) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)
}

// Migrate creates missing tables. Statements are idempotent.
func Migrate(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}
