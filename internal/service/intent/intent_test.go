package intent

import (
	"testing"

	"github.com/humanbelnik/cinemind/core/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type IntentUnitSuite struct {
	suite.Suite
}

func TestIntentUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(IntentUnitSuite))
}

func (s *IntentUnitSuite) TestClassify(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		text  string
		check func(t provider.T, sig Signals)
	}{
		{
			name: "Should detect best-of with genre",
			text: "  Best HORROR movies ",
			check: func(t provider.T, sig Signals) {
				assert.True(t, sig.BestOf)
				if assert.NotNil(t, sig.Genre) {
					assert.Equal(t, 27, sig.Genre.GenreID)
				}
				assert.False(t, sig.Discovery)
				assert.False(t, sig.IsSmallTalk())
			},
		},
		{
			name: "Should prefer anime over animation and keep language",
			text: "Recommend me some anime",
			check: func(t provider.T, sig Signals) {
				assert.True(t, sig.NeedsPersonalization)
				assert.True(t, sig.Discovery)
				if assert.NotNil(t, sig.Genre) {
					assert.Equal(t, 16, sig.Genre.GenreID)
					assert.Equal(t, "ja", sig.Genre.Language)
				}
			},
		},
		{
			name: "Should detect watchlist with genre filter",
			text: "my saved horror",
			check: func(t provider.T, sig Signals) {
				assert.True(t, sig.Watchlist)
				if assert.NotNil(t, sig.WatchlistGenre) {
					assert.Equal(t, 27, sig.WatchlistGenre.GenreID)
				}
			},
		},
		{
			name: "Should match greetings as whole words only",
			text: "this movie",
			check: func(t provider.T, sig Signals) {
				assert.False(t, sig.Greeting)
				assert.False(t, sig.IsSmallTalk())
			},
		},
		{
			name: "Should treat plain greeting as small talk",
			text: "Hello there!",
			check: func(t provider.T, sig Signals) {
				assert.True(t, sig.Greeting)
				assert.True(t, sig.IsSmallTalk())
			},
		},
		{
			name: "Should not treat explanation without previous picks as small talk",
			text: "Why did you pick these?",
			check: func(t provider.T, sig Signals) {
				assert.True(t, sig.Explanation)
				assert.False(t, sig.Greeting)
				assert.False(t, sig.IsSmallTalk())
			},
		},
		{
			name: "Should not match explanation inside other words",
			text: "a reasonable thriller",
			check: func(t provider.T, sig Signals) {
				assert.False(t, sig.Explanation)
			},
		},
		{
			name: "Should not treat greeting with request as small talk",
			text: "hi, best action please",
			check: func(t provider.T, sig Signals) {
				assert.True(t, sig.Greeting)
				assert.True(t, sig.BestOf)
				assert.False(t, sig.IsSmallTalk())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			tc.check(t, Classify(Message{Text: tc.text}))
		})
	}
}

func (s *IntentUnitSuite) TestClassifyContext(t provider.T) {
	history := []model.ConversationTurn{
		{Role: model.RoleUser, Content: "best drama"},
		{Role: model.RoleAssistant, Content: "Here you go", Movies: []model.MovieSummary{{ID: 1, Title: "Whiplash"}}},
		{Role: model.RoleUser, Content: "thanks"},
	}

	sig := Classify(Message{Text: "why these?", History: history, Authenticated: true})
	assert.True(t, sig.Authenticated)
	assert.True(t, sig.HasLastRecommended)

	assert.True(t, sig.IsSmallTalk())

	sig = Classify(Message{Text: "why these?"})
	assert.False(t, sig.Authenticated)
	assert.False(t, sig.HasLastRecommended)
	assert.False(t, sig.IsSmallTalk())
}

func (s *IntentUnitSuite) TestSmallTalkKeepsRequests(t provider.T) {
	t.Parallel()

	history := []model.ConversationTurn{
		{Role: model.RoleAssistant, Content: "Try these", Movies: []model.MovieSummary{{ID: 1, Title: "Whiplash"}}},
	}
	testCases := []struct {
		name      string
		text      string
		smallTalk bool
	}{
		{"Greeting asking for films", "hey, any good films for tonight?", false},
		{"Thanks asking for more", "thanks! anything else like that?", false},
		{"Why asking for more picks", "why not give me a few more picks?", false},
		{"Bare thanks", "Thanks so much!", true},
		{"Bare greeting", "hey", true},
		{"Why about previous picks", "why did you choose Whiplash?", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			sig := Classify(Message{Text: tc.text, History: history})
			assert.Equal(t, tc.smallTalk, sig.IsSmallTalk())
		})
	}
}

func (s *IntentUnitSuite) TestCandidatePlan(t provider.T) {
	t.Parallel()

	horror := &GenreTable[4]

	testCases := []struct {
		name     string
		signals  Signals
		expected []CatalogQuery
	}{
		{
			name:    "Should discover genre by rating for best-of",
			signals: Signals{BestOf: true, Genre: horror},
			expected: []CatalogQuery{
				{Kind: QueryDiscoverGenre, GenreID: 27, MinVoteCount: BestOfMinVotes, SortBy: SortByRating},
			},
		},
		{
			name:    "Should list best-of first then discovery",
			signals: Signals{BestOf: true, Discovery: true, Genre: horror},
			expected: []CatalogQuery{
				{Kind: QueryDiscoverGenre, GenreID: 27, MinVoteCount: BestOfMinVotes, SortBy: SortByRating},
				{Kind: QueryDiscoverGenre, GenreID: 27, MinVoteCount: DiscoveryMinVotes, SortBy: SortByPopularity},
			},
		},
		{
			name:    "Should dedupe top rated",
			signals: Signals{BestOf: true, Discovery: true},
			expected: []CatalogQuery{
				{Kind: QueryTopRated, MinVoteCount: TopRatedMinVotes, SortBy: SortByRating},
			},
		},
		{
			name:     "Should be empty for plain chat",
			signals:  Signals{Greeting: true},
			expected: []CatalogQuery{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, CandidatePlan(tc.signals))
		})
	}
}

func (s *IntentUnitSuite) TestFallbackPlan(t provider.T) {
	t.Parallel()

	comedy := &GenreTable[2]

	plan := FallbackPlan(Signals{Watchlist: true, WatchlistGenre: comedy})
	assert.Equal(t, []CatalogQuery{
		{Kind: QueryDiscoverGenre, GenreID: 35, MinVoteCount: BestOfMinVotes, SortBy: SortByRating},
	}, plan)

	plan = FallbackPlan(Signals{Watchlist: true})
	assert.Equal(t, TopRatedPlan(), plan)

	plan = FallbackPlan(Signals{Watchlist: true, Discovery: true, Genre: comedy})
	assert.Equal(t, SortByPopularity, plan[0].SortBy)
}
