package http_movie

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/cinemind/core/internal/delivery/http/common"
	"github.com/humanbelnik/cinemind/core/internal/model"
	usecase_movie "github.com/humanbelnik/cinemind/core/internal/usecase/movie"
)

// MoviesPageResponseDTO страница результатов каталога
type MoviesPageResponseDTO struct {
	Page         int                  `json:"page" example:"1"`
	Results      []model.CatalogMovie `json:"results"`
	TotalPages   int                  `json:"total_pages" example:"500"`
	TotalResults int                  `json:"total_results" example:"10000"`
}

func convertPage(p model.MoviePage) MoviesPageResponseDTO {
	return MoviesPageResponseDTO{
		Page:         p.Page,
		Results:      p.Results,
		TotalPages:   p.TotalPages,
		TotalResults: p.TotalResults,
	}
}

type Controller struct {
	uc *usecase_movie.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_movie.Usecase,
	opts ...ControllerOption) *Controller {
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
	movies := router.Group("/movies")
	movies.GET("", c.getMovies)
	movies.GET("/trending", c.getTrending)
	movies.GET("/genres", c.getGenres)
	movies.GET("/languages", c.getLanguages)
	movies.GET("/:movie_id", c.getMovie)
}

func (c *Controller) upstreamError(ctx *gin.Context, msg string, err error) {
	c.logger.Error(msg, slog.String("error", err.Error()))
	ctx.JSON(http.StatusBadGateway, http_common.ErrorResponse{
		Error:   "Movie catalog is unavailable",
		Message: err.Error(),
		Code:    http.StatusBadGateway,
	})
}

// @Summary Поиск и список фильмов
// @Description Ищет фильмы по названию, без запроса возвращает популярные
// @Tags Movies operations
// @Produce json
// @Param q query string false "Название фильма"
// @Param page query int false "Номер страницы" default(1)
// @Success 200 {object} MoviesPageResponseDTO "Страница фильмов"
// @Failure 502 {object} http_common.ErrorResponse "Каталог недоступен"
// @Router /movies [get]
func (c *Controller) getMovies(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	out, err := c.uc.Browse(ctx.Request.Context(), ctx.Query("q"), page)
	if err != nil {
		c.upstreamError(ctx, "failed to load movies", err)
		return
	}

	ctx.JSON(http.StatusOK, convertPage(out))
}

// @Summary Информация о фильме
// @Description Возвращает детали фильма с актерами, рекомендациями, видео и площадками просмотра
// @Tags Movies operations
// @Produce json
// @Param movie_id path int true "Идентификатор фильма в каталоге" example(550)
// @Success 200 {object} object "Детали фильма"
// @Failure 400 {object} http_common.ErrorResponse "Некорректный идентификатор"
// @Failure 502 {object} http_common.ErrorResponse "Каталог недоступен"
// @Router /movies/{movie_id} [get]
func (c *Controller) getMovie(ctx *gin.Context) {
	idParam := ctx.Param("movie_id")
	movieID, err := strconv.Atoi(idParam)
	if err != nil {
		c.logger.Warn("invalid movie ID",
			slog.String("id", idParam),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid movie ID",
			Code:  http.StatusBadRequest,
		})
		return
	}

	out, err := c.uc.Details(ctx.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, usecase_movie.ErrInvalidMovieID) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Error: "Invalid movie ID",
				Code:  http.StatusBadRequest,
			})
			return
		}
		c.upstreamError(ctx, "failed to load movie", err)
		return
	}

	ctx.Data(http.StatusOK, "application/json; charset=utf-8", out)
}

// @Summary Фильмы в тренде
// @Description Возвращает фильмы в тренде за неделю
// @Tags Movies operations
// @Produce json
// @Success 200 {array} model.CatalogMovie "Фильмы в тренде"
// @Failure 502 {object} http_common.ErrorResponse "Каталог недоступен"
// @Router /movies/trending [get]
func (c *Controller) getTrending(ctx *gin.Context) {
	out, err := c.uc.Trending(ctx.Request.Context())
	if err != nil {
		c.upstreamError(ctx, "failed to load trending movies", err)
		return
	}
	ctx.JSON(http.StatusOK, out)
}

// @Summary Жанры
// @Tags Movies operations
// @Produce json
// @Success 200 {array} model.Genre "Список жанров"
// @Failure 502 {object} http_common.ErrorResponse "Каталог недоступен"
// @Router /movies/genres [get]
func (c *Controller) getGenres(ctx *gin.Context) {
	out, err := c.uc.Genres(ctx.Request.Context())
	if err != nil {
		c.upstreamError(ctx, "failed to load genres", err)
		return
	}
	ctx.JSON(http.StatusOK, out)
}

// @Summary Языки
// @Tags Movies operations
// @Produce json
// @Success 200 {array} model.Language "Список языков"
// @Failure 502 {object} http_common.ErrorResponse "Каталог недоступен"
// @Router /movies/languages [get]
func (c *Controller) getLanguages(ctx *gin.Context) {
	out, err := c.uc.Languages(ctx.Request.Context())
	if err != nil {
		c.upstreamError(ctx, "failed to load languages", err)
		return
	}
	ctx.JSON(http.StatusOK, out)
}
