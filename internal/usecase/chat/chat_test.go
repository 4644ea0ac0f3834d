package usecase_chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/humanbelnik/cinemind/core/internal/model"
	"github.com/humanbelnik/cinemind/core/internal/service/intent"
	"github.com/humanbelnik/cinemind/core/internal/service/router"
	catalog_mocks "github.com/humanbelnik/cinemind/core/internal/usecase/chat/mocks/catalog"
	interaction_mocks "github.com/humanbelnik/cinemind/core/internal/usecase/chat/mocks/interaction"
	router_mocks "github.com/humanbelnik/cinemind/core/internal/usecase/chat/mocks/router"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseChatUnitSuite struct {
	suite.Suite
}

func TestUsecaseChatUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseChatUnitSuite))
}

type resources struct {
	usecase      *Usecase
	catalog      *catalog_mocks.Catalog
	interactions *interaction_mocks.InteractionStore
	router       *router_mocks.ModelRouter
	userID       uuid.UUID
	ctx          context.Context
}

func initResources(t provider.T) *resources {
	catalog := catalog_mocks.NewCatalog(t)
	interactions := interaction_mocks.NewInteractionStore(t)
	r := router_mocks.NewModelRouter(t)
	return &resources{
		usecase:      New(catalog, interactions, r, WithConcurrency(2)),
		catalog:      catalog,
		interactions: interactions,
		router:       r,
		userID:       uuid.New(),
		ctx:          context.Background(),
	}
}

func rating(v float64) *float64 {
	return &v
}

func catalogMovie(id int, title string) model.CatalogMovie {
	return model.CatalogMovie{ID: id, Title: title, ReleaseDate: "2000-01-01"}
}

func (r *resources) withUser(all, saved, rated []model.InteractionRecord) {
	r.interactions.On("ListByUser", mock.Anything, r.userID).Return(all, nil).Once()
	r.interactions.On("ListSaved", mock.Anything, r.userID).Return(saved, nil).Once()
	r.interactions.On("ListRated", mock.Anything, r.userID).Return(rated, nil).Once()
}

func promptContains(parts ...string) any {
	return mock.MatchedBy(func(p string) bool {
		for _, part := range parts {
			if !strings.Contains(p, part) {
				return false
			}
		}
		return true
	})
}

func (s *UsecaseChatUnitSuite) TestChatValidation(t provider.T) {
	t.Parallel()

	r := initResources(t)
	_, err := r.usecase.Chat(r.ctx, model.Anonymous, Request{Message: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func (s *UsecaseChatUnitSuite) TestChatNotConfigured(t provider.T) {
	t.Parallel()

	r := initResources(t)
	r.router.On("Configured").Return(false).Once()

	_, err := r.usecase.Chat(r.ctx, model.Anonymous, Request{Message: "hello"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func (s *UsecaseChatUnitSuite) TestChatBestOfGenre(t provider.T) {
	t.Parallel()

	r := initResources(t)
	r.router.On("Configured").Return(true).Once()
	r.catalog.On("DiscoverByGenre", mock.Anything, 27, "", intent.BestOfMinVotes, intent.SortByRating).
		Return([]model.CatalogMovie{catalogMovie(1, "Alien"), catalogMovie(2, "The Thing")}, nil).Once()
	r.router.On("Complete", mock.Anything, "best horror movies", false, promptContains("- Alien (2000)", "User message: best horror movies")).
		Return(router.Completion{
			Text:     `{"response_text":"Two classics.","recommendations":[{"title":"Alien","year":"1979"},{"title":"Made Up","year":"2020"},{"title":"The Thing","year":"1982"}]}`,
			Provider: "groq",
			Model:    "llama",
		}, nil).Once()
	r.catalog.On("SearchByTitle", mock.Anything, "Alien").Return(&model.CatalogMovie{ID: 1, Title: "Alien"}, nil).Once()
	r.catalog.On("SearchByTitle", mock.Anything, "Made Up").Return(nil, nil).Once()
	r.catalog.On("SearchByTitle", mock.Anything, "The Thing").Return(&model.CatalogMovie{ID: 2, Title: "The Thing"}, nil).Once()

	resp, err := r.usecase.Chat(r.ctx, model.Anonymous, Request{Message: "best horror movies"})

	assert.NoError(t, err)
	assert.Equal(t, "Two classics.", resp.ResponseText)
	assert.Equal(t, "groq", resp.Provider)
	assert.Equal(t, "llama", resp.Model)
	if assert.Len(t, resp.Movies, 2) {
		assert.Equal(t, "Alien", resp.Movies[0].Title)
		assert.Equal(t, "The Thing", resp.Movies[1].Title)
	}
}

func (s *UsecaseChatUnitSuite) TestChatFallsThroughEmptyCandidates(t provider.T) {
	t.Parallel()

	r := initResources(t)
	r.router.On("Configured").Return(true).Once()
	r.catalog.On("DiscoverByGenre", mock.Anything, 35, "", intent.BestOfMinVotes, intent.SortByRating).
		Return(nil, errors.New("timeout")).Once()
	r.catalog.On("DiscoverByGenre", mock.Anything, 35, "", intent.DiscoveryMinVotes, intent.SortByPopularity).
		Return([]model.CatalogMovie{catalogMovie(3, "Airplane!")}, nil).Once()
	r.router.On("Complete", mock.Anything, mock.Anything, false, promptContains("- Airplane! (2000)")).
		Return(router.Completion{Text: `{"response_text":"Laugh!","recommendations":[]}`, Provider: "groq", Model: "llama"}, nil).Once()

	resp, err := r.usecase.Chat(r.ctx, model.Anonymous, Request{Message: "best comedy, suggest something"})

	assert.NoError(t, err)
	assert.Equal(t, "Laugh!", resp.ResponseText)
	assert.Empty(t, resp.Movies)
}

func (s *UsecaseChatUnitSuite) TestChatDegraded(t provider.T) {
	t.Parallel()

	r := initResources(t)
	r.router.On("Configured").Return(true).Once()
	r.router.On("Complete", mock.Anything, "hello", false, mock.AnythingOfType("string")).
		Return(router.Completion{Degraded: true, Err: errors.Join(router.ErrAllFailed, errors.New("groq: 500"))}, nil).Once()

	resp, err := r.usecase.Chat(r.ctx, model.Anonymous, Request{Message: "hello"})

	assert.NoError(t, err)
	assert.Equal(t, DegradedText, resp.ResponseText)
	assert.NotNil(t, resp.Movies)
	assert.Empty(t, resp.Movies)
	assert.Contains(t, resp.Error, "groq: 500")
}

func (s *UsecaseChatUnitSuite) TestChatSmallTalkDropsMovies(t provider.T) {
	t.Parallel()

	r := initResources(t)
	r.router.On("Configured").Return(true).Once()
	r.router.On("Complete", mock.Anything, "hello", false, mock.AnythingOfType("string")).
		Return(router.Completion{Text: `{"response_text":"Hi!","recommendations":[{"title":"Alien"}]}`, Provider: "groq", Model: "llama"}, nil).Once()

	resp, err := r.usecase.Chat(r.ctx, model.Anonymous, Request{Message: "hello"})

	assert.NoError(t, err)
	assert.Equal(t, "Hi!", resp.ResponseText)
	assert.Empty(t, resp.Movies)
}

func (s *UsecaseChatUnitSuite) TestChatGreetingWithRequestKeepsMovies(t provider.T) {
	t.Parallel()

	r := initResources(t)
	r.router.On("Configured").Return(true).Once()
	r.router.On("Complete", mock.Anything, "hey, any good films for tonight?", false, mock.AnythingOfType("string")).
		Return(router.Completion{
			Text:     `{"response_text":"Try these.","recommendations":[{"title":"Heat"},{"title":"Alien"}]}`,
			Provider: "groq",
			Model:    "llama",
		}, nil).Once()
	r.catalog.On("SearchByTitle", mock.Anything, "Heat").Return(&model.CatalogMovie{ID: 10, Title: "Heat"}, nil).Once()
	r.catalog.On("SearchByTitle", mock.Anything, "Alien").Return(&model.CatalogMovie{ID: 11, Title: "Alien"}, nil).Once()

	resp, err := r.usecase.Chat(r.ctx, model.Anonymous, Request{Message: "hey, any good films for tonight?"})

	assert.NoError(t, err)
	assert.Equal(t, "Try these.", resp.ResponseText)
	assert.Len(t, resp.Movies, 2)
}

func (s *UsecaseChatUnitSuite) TestChatPersonalized(t provider.T) {
	t.Parallel()

	r := initResources(t)
	loved := model.InteractionRecord{UserID: r.userID, MovieID: 10, Rating: rating(5)}
	hated := model.InteractionRecord{UserID: r.userID, MovieID: 11, Rating: rating(1)}
	savedRated := model.InteractionRecord{UserID: r.userID, MovieID: 12, Rating: rating(3), IsSaved: true}
	r.withUser(
		[]model.InteractionRecord{loved, hated, savedRated},
		[]model.InteractionRecord{savedRated},
		[]model.InteractionRecord{loved, hated, savedRated},
	)

	r.catalog.On("Title", mock.Anything, 10).Return("Heat", nil)
	r.catalog.On("Title", mock.Anything, 11).Return("Cats", nil)
	r.catalog.On("Title", mock.Anything, 12).Return("Ronin", nil)
	r.catalog.On("TopRated", mock.Anything, intent.TopRatedMinVotes).Return([]model.CatalogMovie{catalogMovie(20, "Collateral")}, nil).Once()

	r.router.On("Configured").Return(true).Once()
	r.router.On("Complete", mock.Anything, "recommend me something", true,
		promptContains("- LOVES (Strongest match): Heat", "SAVED MOVIES (watchlist", "- Ronin", "ALREADY RATED", "- Cats", "- Collateral (2000)")).
		Return(router.Completion{
			Text:     `{"response_text":"For you.","recommendations":[{"title":"Heat"},{"title":"Ronin"},{"title":"Collateral"}]}`,
			Provider: "github",
			Model:    "gpt-4o",
		}, nil).Once()
	r.catalog.On("SearchByTitle", mock.Anything, "Heat").Return(&model.CatalogMovie{ID: 10, Title: "Heat"}, nil).Once()
	r.catalog.On("SearchByTitle", mock.Anything, "Ronin").Return(&model.CatalogMovie{ID: 12, Title: "Ronin"}, nil).Once()
	r.catalog.On("SearchByTitle", mock.Anything, "Collateral").Return(&model.CatalogMovie{ID: 20, Title: "Collateral"}, nil).Once()

	resp, err := r.usecase.Chat(r.ctx, model.Authenticated(r.userID), Request{Message: "recommend me something"})

	assert.NoError(t, err)
	ids := make([]int, 0, len(resp.Movies))
	for _, m := range resp.Movies {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int{12, 20}, ids)
	assert.Equal(t, "github", resp.Provider)
}

func (s *UsecaseChatUnitSuite) TestChatWatchlist(t provider.T) {
	t.Parallel()

	t.Run("Should filter saved movies by genre", func(t provider.T) {
		r := initResources(t)
		saved := []model.InteractionRecord{
			{UserID: r.userID, MovieID: 1, IsSaved: true},
			{UserID: r.userID, MovieID: 2, IsSaved: true},
		}
		r.withUser(saved, saved, nil)
		r.catalog.On("Details", mock.Anything, 1).Return(model.MovieDetails{ID: 1, Title: "Hereditary", GenreIDs: []int{27, 53}}, nil).Once()
		r.catalog.On("Details", mock.Anything, 2).Return(model.MovieDetails{ID: 2, Title: "Airplane!", GenreIDs: []int{35}}, nil).Once()

		resp, err := r.usecase.Chat(r.ctx, model.Authenticated(r.userID), Request{Message: "my saved horror movies"})

		assert.NoError(t, err)
		assert.Equal(t, ProviderRuleBased, resp.Provider)
		assert.Equal(t, ModelWatchlist, resp.Model)
		if assert.Len(t, resp.Movies, 1) {
			assert.Equal(t, "Hereditary", resp.Movies[0].Title)
		}
		r.router.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should fall back to genre best-of when nothing matches", func(t provider.T) {
		r := initResources(t)
		saved := []model.InteractionRecord{{UserID: r.userID, MovieID: 2, IsSaved: true}}
		ratedOnly := model.InteractionRecord{UserID: r.userID, MovieID: 30, Rating: rating(4)}
		r.withUser(append(saved, ratedOnly), saved, []model.InteractionRecord{ratedOnly})
		r.catalog.On("Details", mock.Anything, 2).Return(model.MovieDetails{ID: 2, Title: "Airplane!", GenreIDs: []int{35}}, nil).Once()
		r.catalog.On("DiscoverByGenre", mock.Anything, 27, "", intent.BestOfMinVotes, intent.SortByRating).
			Return([]model.CatalogMovie{catalogMovie(30, "The Shining"), catalogMovie(31, "Alien")}, nil).Once()

		resp, err := r.usecase.Chat(r.ctx, model.Authenticated(r.userID), Request{Message: "my saved horror movies"})

		assert.NoError(t, err)
		assert.Equal(t, ModelSavedFallback, resp.Model)
		if assert.Len(t, resp.Movies, 1) {
			assert.Equal(t, 31, resp.Movies[0].ID)
		}
	})

	t.Run("Should suggest top rated for empty watchlist", func(t provider.T) {
		r := initResources(t)
		r.withUser(nil, nil, nil)
		top := make([]model.CatalogMovie, 0, 8)
		for i := 1; i <= 8; i++ {
			top = append(top, catalogMovie(100+i, "Top"))
		}
		r.catalog.On("TopRated", mock.Anything, intent.TopRatedMinVotes).Return(top, nil).Once()

		resp, err := r.usecase.Chat(r.ctx, model.Authenticated(r.userID), Request{Message: "show my watchlist"})

		assert.NoError(t, err)
		assert.Equal(t, ModelSavedEmpty, resp.Model)
		assert.Len(t, resp.Movies, MaxFallbackMovies)
	})
}

func (s *UsecaseChatUnitSuite) TestChatWatchlistAnonymous(t provider.T) {
	t.Parallel()

	r := initResources(t)
	top := []model.CatalogMovie{catalogMovie(101, "Parasite"), catalogMovie(102, "Heat")}
	r.catalog.On("TopRated", mock.Anything, intent.TopRatedMinVotes).Return(top, nil).Once()

	resp, err := r.usecase.Chat(r.ctx, model.Anonymous, Request{Message: "show my watchlist"})

	assert.NoError(t, err)
	assert.Equal(t, ProviderRuleBased, resp.Provider)
	assert.Equal(t, ModelSavedEmpty, resp.Model)
	assert.Len(t, resp.Movies, 2)
	r.interactions.AssertNotCalled(t, "ListSaved", mock.Anything, mock.Anything)
	r.router.AssertNotCalled(t, "Configured")
	r.router.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
