package http_interaction

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/cinemind/core/internal/delivery/http/common"
	"github.com/humanbelnik/cinemind/core/internal/model"
	usecase_interaction "github.com/humanbelnik/cinemind/core/internal/usecase/interaction"
)

// RateRequestDTO оценка фильма, null снимает оценку
type RateRequestDTO struct {
	Rating *float64 `json:"rating" example:"4.5"`
}

// InteractionResponseDTO состояние фильма у пользователя
type InteractionResponseDTO struct {
	MovieID   int        `json:"movie_id" example:"550"`
	Rating    *float64   `json:"rating" example:"4.5"`
	IsSaved   bool       `json:"is_saved" example:"true"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// SavedMoviesResponseDTO идентификаторы сохраненных фильмов
type SavedMoviesResponseDTO struct {
	MovieIDs []int `json:"movie_ids"`
	Total    int   `json:"total"`
}

func convertRecord(r model.InteractionRecord) InteractionResponseDTO {
	dto := InteractionResponseDTO{
		MovieID: r.MovieID,
		Rating:  r.Rating,
		IsSaved: r.IsSaved,
	}
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		dto.UpdatedAt = &t
	}
	return dto
}

type Controller struct {
	uc       *usecase_interaction.Usecase
	required gin.HandlerFunc

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_interaction.Usecase,
	requiredAuth gin.HandlerFunc,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:       uc,
		required: requiredAuth,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/users/movies", c.required)
	movies.GET("/saved", c.getSaved)
	movies.POST("/:movie_id/rate", c.rate)
	movies.POST("/:movie_id/save", c.toggleSave)
	movies.GET("/:movie_id/interaction", c.getInteraction)
}

func (c *Controller) movieID(ctx *gin.Context) (int, bool) {
	idParam := ctx.Param("movie_id")
	id, err := strconv.Atoi(idParam)
	if err != nil || id <= 0 {
		c.logger.Warn("invalid movie ID", slog.String("id", idParam))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid movie ID",
			Code:  http.StatusBadRequest,
		})
		return 0, false
	}
	return id, true
}

func (c *Controller) fail(ctx *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, usecase_interaction.ErrInvalidRating):
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: err.Error(),
			Code:  http.StatusBadRequest,
		})
	case errors.Is(err, usecase_interaction.ErrInvalidMovieID):
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid movie ID",
			Code:  http.StatusBadRequest,
		})
	default:
		c.logger.Error(msg, slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "Internal error",
			Code:  http.StatusInternalServerError,
		})
	}
}

// @Summary Оценка фильма
// @Description Ставит оценку от 0 до 5 с шагом 0.5, null снимает оценку
// @Tags Interaction operations
// @Accept json
// @Produce json
// @Param movie_id path int true "Идентификатор фильма" example(550)
// @Param request body RateRequestDTO true "Оценка"
// @Success 200 {object} InteractionResponseDTO "Оценка сохранена"
// @Failure 400 {object} http_common.ErrorResponse "Некорректная оценка"
// @Failure 401 {object} http_common.ErrorResponse "Требуется авторизация"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /users/movies/{movie_id}/rate [post]
func (c *Controller) rate(ctx *gin.Context) {
	movieID, ok := c.movieID(ctx)
	if !ok {
		return
	}

	var req RateRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	auth := http_common.Auth(ctx)
	rec, err := c.uc.Rate(ctx.Request.Context(), auth.UserID, movieID, req.Rating)
	if err != nil {
		c.fail(ctx, "failed to rate movie", err)
		return
	}
	ctx.JSON(http.StatusOK, convertRecord(rec))
}

// @Summary Добавить или убрать из списка
// @Description Переключает флаг сохранения фильма
// @Tags Interaction operations
// @Produce json
// @Param movie_id path int true "Идентификатор фильма" example(550)
// @Success 200 {object} InteractionResponseDTO "Новое состояние"
// @Failure 401 {object} http_common.ErrorResponse "Требуется авторизация"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /users/movies/{movie_id}/save [post]
func (c *Controller) toggleSave(ctx *gin.Context) {
	movieID, ok := c.movieID(ctx)
	if !ok {
		return
	}

	auth := http_common.Auth(ctx)
	rec, err := c.uc.ToggleSave(ctx.Request.Context(), auth.UserID, movieID)
	if err != nil {
		c.fail(ctx, "failed to toggle save", err)
		return
	}
	ctx.JSON(http.StatusOK, convertRecord(rec))
}

// @Summary Состояние фильма
// @Tags Interaction operations
// @Produce json
// @Param movie_id path int true "Идентификатор фильма" example(550)
// @Success 200 {object} InteractionResponseDTO "Оценка и флаг сохранения"
// @Failure 401 {object} http_common.ErrorResponse "Требуется авторизация"
// @Router /users/movies/{movie_id}/interaction [get]
func (c *Controller) getInteraction(ctx *gin.Context) {
	movieID, ok := c.movieID(ctx)
	if !ok {
		return
	}

	auth := http_common.Auth(ctx)
	rec, err := c.uc.Interaction(ctx.Request.Context(), auth.UserID, movieID)
	if err != nil {
		c.fail(ctx, "failed to load interaction", err)
		return
	}
	ctx.JSON(http.StatusOK, convertRecord(rec))
}

// @Summary Сохраненные фильмы
// @Tags Interaction operations
// @Produce json
// @Success 200 {object} SavedMoviesResponseDTO "Идентификаторы сохраненных фильмов"
// @Failure 401 {object} http_common.ErrorResponse "Требуется авторизация"
// @Router /users/movies/saved [get]
func (c *Controller) getSaved(ctx *gin.Context) {
	auth := http_common.Auth(ctx)
	ids, err := c.uc.SavedIDs(ctx.Request.Context(), auth.UserID)
	if err != nil {
		c.fail(ctx, "failed to load saved movies", err)
		return
	}
	ctx.JSON(http.StatusOK, SavedMoviesResponseDTO{MovieIDs: ids, Total: len(ids)})
}
