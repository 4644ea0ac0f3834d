package integrationtest

import (
	"log/slog"
	"sync"

	"github.com/humanbelnik/cinemind/core/internal/config"
	infra_pg_init "github.com/humanbelnik/cinemind/core/internal/infra/postgres/init"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
)

var (
	db     *sqlx.DB
	dbOnce sync.Once
)

// getDB connects once per test binary using the same env as the service.
func getDB() *sqlx.DB {
	dbOnce.Do(func() {
		_ = godotenv.Load()
		db = infra_pg_init.MustEstablishConn(config.FromEnv().Postgres, slog.Default())
	})
	return db
}
