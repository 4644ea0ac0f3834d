package http_common

import (
	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/cinemind/core/internal/model"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

const (
	authContextKey = "auth_context"
	authTokenKey   = "auth_token"
)

func SetAuth(ctx *gin.Context, auth model.AuthContext, token string) {
	ctx.Set(authContextKey, auth)
	ctx.Set(authTokenKey, token)
}

// Auth returns the caller identity stored by the auth middleware, anonymous
// when none was stored.
func Auth(ctx *gin.Context) model.AuthContext {
	v, ok := ctx.Get(authContextKey)
	if !ok {
		return model.Anonymous
	}
	auth, ok := v.(model.AuthContext)
	if !ok {
		return model.Anonymous
	}
	return auth
}

func Token(ctx *gin.Context) string {
	return ctx.GetString(authTokenKey)
}
