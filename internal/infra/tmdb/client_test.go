package infra_tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/humanbelnik/cinemind/core/internal/config"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TMDBInfraUnitSuite struct {
	suite.Suite
}

func TestTMDBInfraUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(TMDBInfraUnitSuite))
}

func newTestClient(t provider.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.Catalog{BaseURL: srv.URL + "/", Token: "secret", Timeout: time.Second})
}

func (s *TMDBInfraUnitSuite) TestSearchByTitle(t provider.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "false", r.URL.Query().Get("include_adult"))
		if r.URL.Query().Get("query") == "nothing" {
			_, _ = w.Write([]byte(`{"page":1,"results":[]}`))
			return
		}
		_, _ = w.Write([]byte(`{"page":1,"results":[
			{"id":348,"title":"Alien","poster_path":null,"release_date":"1979-05-25","genre_ids":[27,878]},
			{"id":679,"title":"Aliens","poster_path":"/a.jpg"}
		]}`))
	})

	m, err := c.SearchByTitle(context.Background(), "  Alien ")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, 348, m.ID)
	assert.Empty(t, m.PosterPath)
	assert.Equal(t, "1979", m.Year())

	cached, ok := c.Titles().Get(348)
	assert.True(t, ok)
	assert.Equal(t, "Alien", cached)

	m, err = c.SearchByTitle(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func (s *TMDBInfraUnitSuite) TestDiscoverByGenre(t provider.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/discover/movie", r.URL.Path)
		assert.Equal(t, "16", q.Get("with_genres"))
		assert.Equal(t, "ja", q.Get("with_original_language"))
		assert.Equal(t, "1000", q.Get("vote_count.gte"))
		assert.Equal(t, SortByRating, q.Get("sort_by"))
		assert.Equal(t, "1", q.Get("page"))
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":129,"title":"Spirited Away"}]}`))
	})

	movies, err := c.DiscoverByGenre(context.Background(), 16, "ja", 1000, SortByRating)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Spirited Away", movies[0].Title)
}

func (s *TMDBInfraUnitSuite) TestDetailsAndTitle(t provider.T) {
	t.Parallel()

	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/movie/550", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":550,"title":"Fight Club","original_language":"en","genres":[{"id":18,"name":"Drama"}]}`))
	})

	d, err := c.Details(context.Background(), 550)
	require.NoError(t, err)
	assert.True(t, d.HasGenre(18, ""))
	assert.True(t, d.HasGenre(18, "en"))
	assert.False(t, d.HasGenre(18, "ja"))

	title, err := c.Title(context.Background(), 550)
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", title)
	assert.Equal(t, int32(1), calls.Load())
}

func (s *TMDBInfraUnitSuite) TestFullDetails(t provider.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, detailsAppend, r.URL.Query().Get("append_to_response"))
		_, _ = w.Write([]byte(`{"id":550,"credits":{"cast":[]}}`))
	})

	raw, err := c.FullDetails(context.Background(), 550)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":550,"credits":{"cast":[]}}`, string(raw))
}

func (s *TMDBInfraUnitSuite) TestUpstreamErrors(t provider.T) {
	t.Parallel()

	t.Run("Should wrap non-2xx status", func(t provider.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status_message":"not found"}`))
		})
		_, err := c.Details(context.Background(), 1)
		assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	})

	t.Run("Should refuse without token", func(t provider.T) {
		c := New(config.Catalog{BaseURL: "http://127.0.0.1:1"})
		_, err := c.Genres(context.Background())
		assert.ErrorIs(t, err, ErrNotConfigured)
		assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	})

	t.Run("Should open breaker after repeated 5xx", func(t provider.T) {
		var calls atomic.Int32
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
		})
		for i := 0; i < 7; i++ {
			_, err := c.Trending(context.Background())
			assert.ErrorIs(t, err, ErrUpstreamUnavailable)
		}
		assert.Equal(t, int32(5), calls.Load())
	})
}
