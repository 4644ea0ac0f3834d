package http_chat

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	http_common "github.com/humanbelnik/cinemind/core/internal/delivery/http/common"
	ws_chat "github.com/humanbelnik/cinemind/core/internal/delivery/ws/chat"
	"github.com/humanbelnik/cinemind/core/internal/model"
	usecase_chat "github.com/humanbelnik/cinemind/core/internal/usecase/chat"
)

//go:generate mockery --name=Chatter --output=./mocks --outpkg=mocks
type Chatter interface {
	Chat(ctx context.Context, auth model.AuthContext, req usecase_chat.Request) (usecase_chat.Response, error)
}

// ChatRequestDTO представляет сообщение пользователя
type ChatRequestDTO struct {
	Message string                   `json:"message" example:"Recommend me some sci-fi movies"`
	History []model.ConversationTurn `json:"history,omitempty"`
}

// ChatResponseDTO представляет ответ ассистента
type ChatResponseDTO struct {
	ResponseText string             `json:"response_text" example:"Here are five sci-fi picks."`
	Movies       []model.FinalMovie `json:"movies"`
	Provider     string             `json:"provider,omitempty" example:"groq"`
	Model        string             `json:"model,omitempty" example:"llama-3.1-8b-instant"`
	Error        string             `json:"error,omitempty"`
}

func convertResponse(r usecase_chat.Response) ChatResponseDTO {
	movies := r.Movies
	if movies == nil {
		movies = []model.FinalMovie{}
	}
	return ChatResponseDTO{
		ResponseText: r.ResponseText,
		Movies:       movies,
		Provider:     r.Provider,
		Model:        r.Model,
		Error:        r.Error,
	}
}

type Controller struct {
	uc       Chatter
	hub      *ws_chat.Hub
	optional gin.HandlerFunc
	upgrader websocket.Upgrader

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithAllowedOrigins restricts websocket upgrades to the given origins.
func WithAllowedOrigins(origins []string) ControllerOption {
	return func(c *Controller) {
		allowed := make(map[string]struct{}, len(origins))
		for _, o := range origins {
			allowed[o] = struct{}{}
		}
		c.upgrader.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			_, ok := allowed[origin]
			return ok
		}
	}
}

func New(uc Chatter,
	hub *ws_chat.Hub,
	optionalAuth gin.HandlerFunc,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:       uc,
		hub:      hub,
		optional: optionalAuth,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	chat := router.Group("/chat", c.optional)
	chat.POST("", c.chat)
	chat.GET("/ws", c.chatWS)
}

// @Summary Сообщение ассистенту
// @Description Классифицирует запрос, собирает профиль вкусов и возвращает ответ с рекомендациями. При недоступности моделей возвращает 200 с текстом-извинением
// @Tags Chat operations
// @Accept json
// @Produce json
// @Param request body ChatRequestDTO true "Сообщение и история диалога"
// @Success 200 {object} ChatResponseDTO "Ответ ассистента"
// @Failure 400 {object} http_common.ErrorResponse "Пустое сообщение"
// @Failure 500 {object} http_common.ErrorResponse "Модели не настроены"
// @Router /chat [post]
func (c *Controller) chat(ctx *gin.Context) {
	var req ChatRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	resp, err := c.uc.Chat(ctx.Request.Context(), http_common.Auth(ctx), usecase_chat.Request{
		Message: req.Message,
		History: req.History,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase_chat.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Error: "Message is required",
				Code:  http.StatusBadRequest,
			})
		case errors.Is(err, usecase_chat.ErrNotConfigured):
			c.logger.Error("chat is not configured", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error:   "AI providers are not configured",
				Message: err.Error(),
				Code:    http.StatusInternalServerError,
			})
		default:
			c.logger.Error("chat failed", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error:   "Internal error",
				Message: err.Error(),
				Code:    http.StatusInternalServerError,
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, convertResponse(resp))
}

// @Summary Чат через WebSocket
// @Description Каждый текстовый фрейм обрабатывается как тело POST /chat, ответ приходит тем же JSON
// @Tags Chat operations
// @Success 101 "Соединение установлено"
// @Router /chat/ws [get]
func (c *Controller) chatWS(ctx *gin.Context) {
	auth := http_common.Auth(ctx)

	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("failed to upgrade to websocket",
			slog.String("error", err.Error()),
		)
		return
	}

	c.hub.Serve(conn, auth)
}
