package http_search

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/humanbelnik/cinemind/core/internal/model"
	usecase_trending "github.com/humanbelnik/cinemind/core/internal/usecase/trending"
	repo_mocks "github.com/humanbelnik/cinemind/core/internal/usecase/trending/mocks"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type SearchControllerUnitSuite struct {
	suite.Suite
}

func TestSearchControllerUnitSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.RunSuite(t, new(SearchControllerUnitSuite))
}

func initRouter(t provider.T) (*gin.Engine, *repo_mocks.Repository) {
	repo := repo_mocks.NewRepository(t)
	router := gin.New()
	New(usecase_trending.New(repo)).RegisterRoutes(router.Group("/api/v1"))
	return router, repo
}

func (s *SearchControllerUnitSuite) TestUpdate(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		body         string
		setupMocks   func(repo *repo_mocks.Repository)
		expectStatus int
		expectCount  int
	}{
		{
			name: "Should bump counter",
			body: `{"searchTerm":" fight ","movie":{"id":550,"title":"Fight Club","poster_path":"/p.jpg"}}`,
			setupMocks: func(repo *repo_mocks.Repository) {
				repo.On("Increment", mock.Anything, model.TrendingSearch{
					SearchTerm: "fight",
					MovieID:    550,
					Title:      "Fight Club",
					PosterURL:  "/p.jpg",
				}).Return(model.TrendingSearch{ID: 1, SearchTerm: "fight", MovieID: 550, Count: 3}, nil).Once()
			},
			expectStatus: http.StatusOK,
			expectCount:  3,
		},
		{
			name:         "Should reject missing movie",
			body:         `{"searchTerm":"fight"}`,
			setupMocks:   func(repo *repo_mocks.Repository) {},
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "Should reject malformed body",
			body:         `{"searchTerm":`,
			setupMocks:   func(repo *repo_mocks.Repository) {},
			expectStatus: http.StatusBadRequest,
		},
		{
			name: "Should hide storage failure",
			body: `{"searchTerm":"fight","movie":{"id":550}}`,
			setupMocks: func(repo *repo_mocks.Repository) {
				repo.On("Increment", mock.Anything, mock.Anything).
					Return(model.TrendingSearch{}, errors.New("deadlock")).Once()
			},
			expectStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			router, repo := initRouter(t)
			tc.setupMocks(repo)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/search/update", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectStatus, w.Code)
			if tc.expectStatus == http.StatusOK {
				var out UpdateSearchResponseDTO
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
				assert.Equal(t, "ok", out.Status)
				assert.Equal(t, tc.expectCount, out.Trending.Count)
			}
		})
	}
}

func (s *SearchControllerUnitSuite) TestTrending(t provider.T) {
	t.Parallel()

	router, repo := initRouter(t)
	repo.On("Top", mock.Anything, usecase_trending.TopLimit).Return([]model.TrendingSearch{
		{ID: 7, SearchTerm: "matrix", MovieID: 603, Title: "The Matrix", PosterURL: "/m.jpg", Count: 12},
	}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/search/trending", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var out []TrendingSearchDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "7", out[0].ID)
	assert.Equal(t, "matrix", out[0].SearchTerm)
	assert.Equal(t, 12, out[0].Count)
}
