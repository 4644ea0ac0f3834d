package app

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/humanbelnik/cinemind/core/internal/config"
	http_auth "github.com/humanbelnik/cinemind/core/internal/delivery/http/auth"
	http_chat "github.com/humanbelnik/cinemind/core/internal/delivery/http/chat"
	http_init "github.com/humanbelnik/cinemind/core/internal/delivery/http/init"
	http_interaction "github.com/humanbelnik/cinemind/core/internal/delivery/http/interaction"
	http_access_middleware "github.com/humanbelnik/cinemind/core/internal/delivery/http/middleware/access"
	http_auth_middleware "github.com/humanbelnik/cinemind/core/internal/delivery/http/middleware/auth"
	http_movie "github.com/humanbelnik/cinemind/core/internal/delivery/http/movie"
	http_search "github.com/humanbelnik/cinemind/core/internal/delivery/http/search"
	http_swagger "github.com/humanbelnik/cinemind/core/internal/delivery/http/swagger"
	ws_chat "github.com/humanbelnik/cinemind/core/internal/delivery/ws/chat"
	infra_llm "github.com/humanbelnik/cinemind/core/internal/infra/llm"
	infra_pg_init "github.com/humanbelnik/cinemind/core/internal/infra/postgres/init"
	infra_postgres_interaction "github.com/humanbelnik/cinemind/core/internal/infra/postgres/interaction"
	infra_postgres_trending "github.com/humanbelnik/cinemind/core/internal/infra/postgres/trending"
	infra_postgres_user "github.com/humanbelnik/cinemind/core/internal/infra/postgres/user"
	infra_redis_init "github.com/humanbelnik/cinemind/core/internal/infra/redis/init"
	infra_session_cache "github.com/humanbelnik/cinemind/core/internal/infra/redis/session"
	infra_tmdb "github.com/humanbelnik/cinemind/core/internal/infra/tmdb"
	session_auth "github.com/humanbelnik/cinemind/core/internal/service/auth/session"
	"github.com/humanbelnik/cinemind/core/internal/service/router"
	"github.com/humanbelnik/cinemind/core/internal/service/titlecache"
	usecase_chat "github.com/humanbelnik/cinemind/core/internal/usecase/chat"
	usecase_interaction "github.com/humanbelnik/cinemind/core/internal/usecase/interaction"
	usecase_movie "github.com/humanbelnik/cinemind/core/internal/usecase/movie"
	usecase_trending "github.com/humanbelnik/cinemind/core/internal/usecase/trending"
)

const limiterIdle = time.Hour

func Go(ctx context.Context, cfg *config.Config, logger *slog.Logger) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis, logger)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres, logger)

	titles := titlecache.New()
	catalog := infra_tmdb.New(cfg.Catalog,
		infra_tmdb.WithLogger(logger),
		infra_tmdb.WithTitleCache(titles),
	)
	modelRouter := router.New(
		infra_llm.NewGroq(cfg.Groq, infra_llm.WithLogger(logger)),
		infra_llm.NewGitHubModels(cfg.GitHubModels, infra_llm.WithLogger(logger)),
		router.WithLogger(logger),
	)

	interactionRepository := infra_postgres_interaction.New(pgConn)
	userRepository := infra_postgres_user.New(pgConn)
	trendingRepository := infra_postgres_trending.New(pgConn)

	chatUC := usecase_chat.New(catalog, interactionRepository, modelRouter, usecase_chat.WithLogger(logger))
	movieUC := usecase_movie.New(catalog)
	interactionUC := usecase_interaction.New(interactionRepository)
	trendingUC := usecase_trending.New(trendingRepository)

	sessionCache := infra_session_cache.New(redisConn, "session")
	authService := session_auth.New(cfg.Session.TTL, userRepository, sessionCache)
	authMiddleware := http_auth_middleware.New(authService, http_auth_middleware.WithLogger(logger))

	loginLimiter := http_access_middleware.NewRateLimiter(5, time.Minute)
	registerLimiter := http_access_middleware.NewRateLimiter(3, time.Hour)
	passwordLimiter := http_access_middleware.NewRateLimiter(5, time.Hour)
	profileLimiter := http_access_middleware.NewRateLimiter(20, time.Hour)
	go cleanupLimiters(ctx, loginLimiter, registerLimiter, passwordLimiter, profileLimiter)

	hub := ws_chat.NewHub(chatUC, ws_chat.WithLogger(logger))

	controllerPool := http_init.NewControllerPool(cfg.HTTP)
	controllerPool.Add(http_swagger.New())
	controllerPool.Add(http_chat.New(chatUC, hub, authMiddleware.AuthOptional(),
		http_chat.WithLogger(logger),
		http_chat.WithAllowedOrigins(cfg.HTTP.CORSOrigins),
	))
	controllerPool.Add(http_movie.New(movieUC, http_movie.WithLogger(logger)))
	controllerPool.Add(http_interaction.New(interactionUC, authMiddleware.AuthRequired(), http_interaction.WithLogger(logger)))
	controllerPool.Add(http_search.New(trendingUC, http_search.WithLogger(logger)))
	controllerPool.Add(http_auth.New(authService, authMiddleware.AuthRequired(),
		http_auth.WithLogger(logger),
		http_auth.WithSecureCookie(cfg.Session.SecureCookie),
		http_auth.WithThrottles(http_auth.Throttles{
			Login:    http_access_middleware.Throttle(loginLimiter, http_access_middleware.ByClientIP),
			Register: http_access_middleware.Throttle(registerLimiter, http_access_middleware.ByClientIP),
			Password: http_access_middleware.Throttle(passwordLimiter, http_access_middleware.ByUser),
			Profile:  http_access_middleware.Throttle(profileLimiter, http_access_middleware.ByUser),
		}),
	))

	controllerPool.Register()

	go func() {
		<-ctx.Done()
		hub.CloseAll()
		_ = redisConn.Close()
		_ = pgConn.Close()
	}()

	logger.Info("starting HTTP server", slog.String("port", cfg.HTTP.Port))
	controllerPool.RunAll(ctx, net.JoinHostPort("", cfg.HTTP.Port))
}

func cleanupLimiters(ctx context.Context, limiters ...*http_access_middleware.RateLimiter) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, l := range limiters {
				l.Cleanup(limiterIdle)
			}
		}
	}
}
