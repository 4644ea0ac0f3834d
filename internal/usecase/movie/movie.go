package usecase_movie

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/humanbelnik/cinemind/core/internal/model"
)

var (
	ErrInvalidMovieID = errors.New("invalid movie id")
	ErrUpstream       = errors.New("catalog unavailable")
)

const maxPage = 500

//go:generate mockery --name=Catalog --output=./mocks/catalog --outpkg=catalog_mocks
type Catalog interface {
	Search(ctx context.Context, query string, page int) (model.MoviePage, error)
	Popular(ctx context.Context, page int) (model.MoviePage, error)
	FullDetails(ctx context.Context, movieID int) (json.RawMessage, error)
	Trending(ctx context.Context) ([]model.CatalogMovie, error)
	Genres(ctx context.Context) ([]model.Genre, error)
	Languages(ctx context.Context) ([]model.Language, error)
}

type Usecase struct {
	catalog Catalog
}

func New(c Catalog) *Usecase {
	return &Usecase{catalog: c}
}

// Browse searches by title when query is set, otherwise lists popular
// movies. Pages outside [1, 500] are clamped.
func (u *Usecase) Browse(ctx context.Context, query string, page int) (model.MoviePage, error) {
	page = max(1, min(page, maxPage))

	var (
		out model.MoviePage
		err error
	)
	if q := strings.TrimSpace(query); q != "" {
		out, err = u.catalog.Search(ctx, q, page)
	} else {
		out, err = u.catalog.Popular(ctx, page)
	}
	if err != nil {
		return model.MoviePage{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if out.Results == nil {
		out.Results = []model.CatalogMovie{}
	}
	return out, nil
}

func (u *Usecase) Details(ctx context.Context, movieID int) (json.RawMessage, error) {
	if movieID <= 0 {
		return nil, ErrInvalidMovieID
	}
	out, err := u.catalog.FullDetails(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return out, nil
}

func (u *Usecase) Trending(ctx context.Context) ([]model.CatalogMovie, error) {
	out, err := u.catalog.Trending(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if out == nil {
		out = []model.CatalogMovie{}
	}
	return out, nil
}

func (u *Usecase) Genres(ctx context.Context) ([]model.Genre, error) {
	out, err := u.catalog.Genres(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return out, nil
}

func (u *Usecase) Languages(ctx context.Context) ([]model.Language, error) {
	out, err := u.catalog.Languages(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return out, nil
}
