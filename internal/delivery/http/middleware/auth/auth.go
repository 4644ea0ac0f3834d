package http_auth_middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/cinemind/core/internal/delivery/http/common"
	"github.com/humanbelnik/cinemind/core/internal/model"
	session_auth "github.com/humanbelnik/cinemind/core/internal/service/auth/session"
)

const (
	CookieName   = "authToken"
	headerName   = "Authorization"
	headerScheme = "Token "
)

//go:generate mockery --name=SessionResolver --output=./mocks --outpkg=mocks
type SessionResolver interface {
	Resolve(t string) (uuid.UUID, error)
}

type Middleware struct {
	resolver SessionResolver
	logger   *slog.Logger
}

type MiddlewareOption func(*Middleware)

func WithLogger(logger *slog.Logger) MiddlewareOption {
	return func(m *Middleware) {
		m.logger = logger
	}
}

func New(
	resolver SessionResolver,
	opts ...MiddlewareOption,
) *Middleware {
	m := &Middleware{
		resolver: resolver,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ExtractToken reads the session token from the cookie, then from an
// "Authorization: Token <t>" header.
func ExtractToken(ctx *gin.Context) string {
	if t, err := ctx.Cookie(CookieName); err == nil && t != "" {
		return t
	}
	h := ctx.GetHeader(headerName)
	if strings.HasPrefix(h, headerScheme) {
		return strings.TrimSpace(strings.TrimPrefix(h, headerScheme))
	}
	return ""
}

// AuthOptional never rejects: a missing or invalid token means an anonymous
// caller.
func (m *Middleware) AuthOptional() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		t := ExtractToken(ctx)
		if t == "" {
			http_common.SetAuth(ctx, model.Anonymous, "")
			ctx.Next()
			return
		}

		id, err := m.resolver.Resolve(t)
		if err != nil {
			if !errors.Is(err, session_auth.ErrUnauthorized) {
				m.logger.Warn("session lookup failed", slog.String("error", err.Error()))
			}
			http_common.SetAuth(ctx, model.Anonymous, "")
			ctx.Next()
			return
		}

		http_common.SetAuth(ctx, model.Authenticated(id), t)
		ctx.Next()
	}
}

func (m *Middleware) AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		t := ExtractToken(ctx)
		if t == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Error: "authentication credentials were not provided",
				Code:  http.StatusUnauthorized,
			})
			return
		}

		id, err := m.resolver.Resolve(t)
		if err != nil {
			if errors.Is(err, session_auth.ErrUnauthorized) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, http_common.ErrorResponse{
					Error: "invalid token",
					Code:  http.StatusUnauthorized,
				})
				return
			}
			m.logger.Error("internal error", slog.String("error", err.Error()))
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error: "internal error",
				Code:  http.StatusInternalServerError,
			})
			return
		}

		http_common.SetAuth(ctx, model.Authenticated(id), t)
		ctx.Next()
	}
}
