package intent

// Keyword tables matched as substrings of the lowercased message.
var (
	BestOfKeywords = []string{
		"best", "top", "highest rated", "most popular", "top rated", "highest scoring",
	}

	PersonalizationKeywords = []string{
		"for me", "my taste", "based on my", "recommend me", "i like", "i love",
		"i enjoy", "my favorite", "my favourite", "personal", "suited to me",
	}

	DiscoveryKeywords = []string{
		"recommend", "suggest", "what should i watch", "something to watch",
		"discover", "movies like", "similar to", "new", "find me", "show me",
	}

	WatchlistKeywords = []string{"saved", "watchlist"}

	// Word tables below are matched against whole words only.
	ExplanationWords = []string{"why", "explain", "explanation", "reason", "reasons"}

	GreetingWords = []string{
		"hi", "hello", "hey", "yo", "hiya", "greetings", "thanks", "thank",
	}

	// PleasantryWords may accompany a greeting without turning it into a
	// request.
	PleasantryWords = []string{
		"there", "you", "so", "much", "a", "lot", "all", "everyone", "good",
		"morning", "evening", "afternoon", "ok", "okay", "cool", "great", "bye",
	}

	// RequestWords mark a message that asks for titles even when it also
	// greets or asks why.
	RequestWords = []string{
		"more", "another", "else", "other", "others", "give", "any", "anything",
		"some", "something", "picks", "films", "film", "movies", "movie",
		"tonight", "list", "watch",
	}
)

// GenreFilter is a catalog genre id with an optional original language.
type GenreFilter struct {
	Keyword  string
	GenreID  int
	Language string
}

// GenreTable is scanned in order, the first keyword contained in the
// message wins.
var GenreTable = []GenreFilter{
	{Keyword: "anime", GenreID: 16, Language: "ja"},
	{Keyword: "action", GenreID: 28},
	{Keyword: "comedy", GenreID: 35},
	{Keyword: "drama", GenreID: 18},
	{Keyword: "horror", GenreID: 27},
	{Keyword: "sci-fi", GenreID: 878},
	{Keyword: "thriller", GenreID: 53},
	{Keyword: "romance", GenreID: 10749},
	{Keyword: "animation", GenreID: 16},
}
