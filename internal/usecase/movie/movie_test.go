package usecase_movie

import (
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/humanbelnik/cinemind/core/internal/model"
	catalog_mocks "github.com/humanbelnik/cinemind/core/internal/usecase/movie/mocks/catalog"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type UsecaseMovieUnitSuite struct {
	suite.Suite
}

func TestUsecaseMovieUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseMovieUnitSuite))
}

type resources struct {
	usecase *Usecase
	catalog *catalog_mocks.Catalog
	ctx     context.Context
}

func initResources(t provider.T) *resources {
	catalog := catalog_mocks.NewCatalog(t)
	return &resources{
		usecase: New(catalog),
		catalog: catalog,
		ctx:     context.Background(),
	}
}

func (s *UsecaseMovieUnitSuite) TestBrowse(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		query      string
		page       int
		setupMocks func(r *resources)
		expectErr  error
	}{
		{
			name:  "Should search when query is set",
			query: " dune ",
			page:  2,
			setupMocks: func(r *resources) {
				r.catalog.On("Search", r.ctx, "dune", 2).Return(model.MoviePage{Page: 2}, nil).Once()
			},
		},
		{
			name: "Should list popular and clamp low page",
			page: 0,
			setupMocks: func(r *resources) {
				r.catalog.On("Popular", r.ctx, 1).Return(model.MoviePage{Page: 1}, nil).Once()
			},
		},
		{
			name: "Should clamp high page",
			page: 900,
			setupMocks: func(r *resources) {
				r.catalog.On("Popular", r.ctx, maxPage).Return(model.MoviePage{Page: maxPage}, nil).Once()
			},
		},
		{
			name: "Should wrap upstream failure",
			page: 1,
			setupMocks: func(r *resources) {
				r.catalog.On("Popular", r.ctx, 1).Return(model.MoviePage{}, errors.New("503")).Once()
			},
			expectErr: ErrUpstream,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			page, err := r.usecase.Browse(r.ctx, tc.query, tc.page)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, page.Results)
		})
	}
}

func (s *UsecaseMovieUnitSuite) TestDetails(t provider.T) {
	t.Parallel()

	t.Run("Should proxy raw details", func(t provider.T) {
		r := initResources(t)
		raw := json.RawMessage(`{"id":550,"title":"Fight Club"}`)
		r.catalog.On("FullDetails", r.ctx, 550).Return(raw, nil).Once()

		out, err := r.usecase.Details(r.ctx, 550)
		assert.NoError(t, err)
		assert.JSONEq(t, string(raw), string(out))
	})

	t.Run("Should reject invalid id", func(t provider.T) {
		r := initResources(t)
		_, err := r.usecase.Details(r.ctx, 0)
		assert.ErrorIs(t, err, ErrInvalidMovieID)
	})
}

func (s *UsecaseMovieUnitSuite) TestTrending(t provider.T) {
	t.Parallel()

	r := initResources(t)
	r.catalog.On("Trending", r.ctx).Return(nil, nil).Once()

	out, err := r.usecase.Trending(r.ctx)
	assert.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func (s *UsecaseMovieUnitSuite) TestGenres(t provider.T) {
	t.Parallel()

	r := initResources(t)
	r.catalog.On("Genres", r.ctx).Return(nil, errors.New("timeout")).Once()

	_, err := r.usecase.Genres(r.ctx)
	assert.ErrorIs(t, err, ErrUpstream)
}
