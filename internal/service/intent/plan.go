package intent

import "slices"

const (
	SortByPopularity = "popularity.desc"
	SortByRating     = "vote_average.desc"

	BestOfMinVotes    = 1000
	DiscoveryMinVotes = 300
	TopRatedMinVotes  = 1000
)

type QueryKind int

const (
	QueryDiscoverGenre QueryKind = iota + 1
	QueryTopRated
)

func (k QueryKind) String() string {
	switch k {
	case QueryDiscoverGenre:
		return "discover-genre"
	case QueryTopRated:
		return "top-rated"
	default:
		return "none"
	}
}

// CatalogQuery is one candidate lookup against the catalog.
type CatalogQuery struct {
	Kind         QueryKind
	GenreID      int
	Language     string
	MinVoteCount int
	SortBy       string
}

func discoverQuery(g *GenreFilter, minVotes int, sortBy string) CatalogQuery {
	return CatalogQuery{
		Kind:         QueryDiscoverGenre,
		GenreID:      g.GenreID,
		Language:     g.Language,
		MinVoteCount: minVotes,
		SortBy:       sortBy,
	}
}

func topRatedQuery() CatalogQuery {
	return CatalogQuery{
		Kind:         QueryTopRated,
		MinVoteCount: TopRatedMinVotes,
		SortBy:       SortByRating,
	}
}

// CandidatePlan lists the catalog queries to run in order. The caller runs
// them one by one and stops at the first that yields candidates. An empty
// plan means the model works from its own knowledge.
func CandidatePlan(s Signals) []CatalogQuery {
	plan := make([]CatalogQuery, 0, 2)
	add := func(q CatalogQuery) {
		if !slices.Contains(plan, q) {
			plan = append(plan, q)
		}
	}

	switch {
	case s.BestOf && s.Genre != nil:
		add(discoverQuery(s.Genre, BestOfMinVotes, SortByRating))
	case s.BestOf:
		add(topRatedQuery())
	}

	if s.Discovery {
		if s.Genre != nil {
			add(discoverQuery(s.Genre, DiscoveryMinVotes, SortByPopularity))
		} else {
			add(topRatedQuery())
		}
	}
	return plan
}

// FallbackPlan is the candidate lookup used when a genre filter empties the
// watchlist: the best-of list for that genre, or the top rated list.
func FallbackPlan(s Signals) []CatalogQuery {
	if plan := CandidatePlan(s); len(plan) > 0 {
		return plan
	}
	if s.WatchlistGenre != nil {
		return []CatalogQuery{discoverQuery(s.WatchlistGenre, BestOfMinVotes, SortByRating)}
	}
	return []CatalogQuery{topRatedQuery()}
}

// TopRatedPlan is the plain top rated lookup.
func TopRatedPlan() []CatalogQuery {
	return []CatalogQuery{topRatedQuery()}
}
