//go:build integration
// +build integration

package integrationtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	infra_postgres_trending "github.com/humanbelnik/cinemind/core/internal/infra/postgres/trending"
	"github.com/humanbelnik/cinemind/core/internal/model"
	usecase_trending "github.com/humanbelnik/cinemind/core/internal/usecase/trending"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type UsecaseTrendingIntegrationSuite struct {
	suite.Suite
	uc   *usecase_trending.Usecase
	term string
}

func TestUsecaseTrendingIntegrationSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseTrendingIntegrationSuite))
}

func (s *UsecaseTrendingIntegrationSuite) BeforeAll(t provider.T) {
	s.uc = usecase_trending.New(infra_postgres_trending.New(getDB()))
	s.term = "it-" + uuid.NewString()[:8]
}

func (s *UsecaseTrendingIntegrationSuite) AfterAll(t provider.T) {
	_, err := getDB().Exec(`DELETE FROM trending_searches WHERE search_term = $1`, s.term)
	require.NoError(t, err)
}

func (s *UsecaseTrendingIntegrationSuite) TestIntegrationRecord(t provider.T) {
	ctx := context.Background()
	search := model.TrendingSearch{SearchTerm: s.term, MovieID: 603, Title: "The Matrix"}

	first, err := s.uc.Record(ctx, search)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Count)

	second, err := s.uc.Record(ctx, search)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Count)

	top, err := s.uc.Top(ctx)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(top), usecase_trending.TopLimit)
}
