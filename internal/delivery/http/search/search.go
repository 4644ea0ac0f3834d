package http_search

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/cinemind/core/internal/delivery/http/common"
	"github.com/humanbelnik/cinemind/core/internal/model"
	usecase_trending "github.com/humanbelnik/cinemind/core/internal/usecase/trending"
)

// SearchedMovieDTO фильм, выбранный в результатах поиска
type SearchedMovieDTO struct {
	ID         int    `json:"id" example:"550"`
	Title      string `json:"title" example:"Fight Club"`
	PosterPath string `json:"poster_path" example:"/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"`
}

// UpdateSearchRequestDTO запрос на учет поиска
type UpdateSearchRequestDTO struct {
	SearchTerm string           `json:"searchTerm" example:"fight"`
	Movie      SearchedMovieDTO `json:"movie"`
}

// TrendingCounterDTO счетчик после обновления
type TrendingCounterDTO struct {
	ID         int64  `json:"id"`
	SearchTerm string `json:"search_term"`
	Count      int    `json:"count"`
}

// UpdateSearchResponseDTO ответ на учет поиска
type UpdateSearchResponseDTO struct {
	Status   string             `json:"status" example:"ok"`
	Trending TrendingCounterDTO `json:"trending"`
}

// TrendingSearchDTO популярный поисковый запрос
type TrendingSearchDTO struct {
	ID         string `json:"$id"`
	SearchTerm string `json:"searchTerm"`
	Count      int    `json:"count"`
	MovieID    int    `json:"movie_id"`
	PosterURL  string `json:"poster_url"`
	Title      string `json:"title"`
}

func convertTrending(list []model.TrendingSearch) []TrendingSearchDTO {
	out := make([]TrendingSearchDTO, 0, len(list))
	for _, s := range list {
		out = append(out, TrendingSearchDTO{
			ID:         strconv.FormatInt(s.ID, 10),
			SearchTerm: s.SearchTerm,
			Count:      s.Count,
			MovieID:    s.MovieID,
			PosterURL:  s.PosterURL,
			Title:      s.Title,
		})
	}
	return out
}

type Controller struct {
	uc *usecase_trending.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_trending.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	search := router.Group("/search")
	search.POST("/update", c.update)
	search.GET("/trending", c.trending)
}

// @Summary Учет поискового запроса
// @Description Увеличивает счетчик пары запрос и фильм, создает ее при первом обращении
// @Tags Search operations
// @Accept json
// @Produce json
// @Param request body UpdateSearchRequestDTO true "Запрос и выбранный фильм"
// @Success 200 {object} UpdateSearchResponseDTO "Счетчик обновлен"
// @Failure 400 {object} http_common.ErrorResponse "Нет запроса или фильма"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /search/update [post]
func (c *Controller) update(ctx *gin.Context) {
	var req UpdateSearchRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Missing searchTerm or movie",
			Code:  http.StatusBadRequest,
		})
		return
	}

	out, err := c.uc.Record(ctx.Request.Context(), model.TrendingSearch{
		SearchTerm: req.SearchTerm,
		MovieID:    req.Movie.ID,
		Title:      req.Movie.Title,
		PosterURL:  req.Movie.PosterPath,
	})
	if err != nil {
		if errors.Is(err, usecase_trending.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Error: "Missing searchTerm or movie",
				Code:  http.StatusBadRequest,
			})
			return
		}
		c.logger.Error("failed to record search", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "Internal error",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, UpdateSearchResponseDTO{
		Status: "ok",
		Trending: TrendingCounterDTO{
			ID:         out.ID,
			SearchTerm: out.SearchTerm,
			Count:      out.Count,
		},
	})
}

// @Summary Популярные запросы
// @Description Возвращает 10 самых частых пар запрос и фильм
// @Tags Search operations
// @Produce json
// @Success 200 {array} TrendingSearchDTO "Популярные запросы"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /search/trending [get]
func (c *Controller) trending(ctx *gin.Context) {
	out, err := c.uc.Top(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to load trending searches", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "Internal error",
			Code:  http.StatusInternalServerError,
		})
		return
	}
	ctx.JSON(http.StatusOK, convertTrending(out))
}
