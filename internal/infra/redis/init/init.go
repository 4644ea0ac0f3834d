package infra_redis_init

import (
	"log"
	"log/slog"
	"net"
	"time"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/cinemind/core/internal/config"
)

const (
	pingAttempts = 5
	pingBackoff  = time.Second
)

// MustEstablishConn dials the session store, retrying the ping while the
// container is still starting.
func MustEstablishConn(cfg config.RedisCache, logger *slog.Logger) *redis.Client {
	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          0,
		DialTimeout: 5 * time.Second,
	})

	var err error
	for attempt := 1; attempt <= pingAttempts; attempt++ {
		if err = client.Ping().Err(); err == nil {
			logger.Info("redis connected", slog.String("addr", addr))
			return client
		}
		logger.Warn("redis ping failed",
			slog.String("addr", addr),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)
		time.Sleep(pingBackoff * time.Duration(attempt))
	}

	log.Fatalf("redis at %s unreachable after %d attempts: %v", addr, pingAttempts, err)
	return nil
}
