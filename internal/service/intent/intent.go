package intent

import (
	"slices"
	"strings"
	"unicode"

	"github.com/humanbelnik/cinemind/core/internal/model"
)

// Signals is the intent bundle derived from one chat message.
type Signals struct {
	BestOf               bool
	Genre                *GenreFilter
	NeedsPersonalization bool
	Discovery            bool
	Watchlist            bool
	WatchlistGenre       *GenreFilter
	Greeting             bool
	GreetingOnly         bool
	Explanation          bool
	Request              bool
	Authenticated        bool
	HasLastRecommended   bool
}

// Message is the classifier input.
type Message struct {
	Text          string
	History       []model.ConversationTurn
	Authenticated bool
}

type rule struct {
	name  string
	match func(text string, words map[string]struct{}) bool
	apply func(s *Signals, text string)
}

// rules are evaluated in order over the normalized text. Later rules may
// read signals set by earlier ones.
var rules = []rule{
	{
		name:  "best-of",
		match: containsAnyOf(BestOfKeywords),
		apply: func(s *Signals, _ string) { s.BestOf = true },
	},
	{
		name:  "genre",
		match: func(text string, _ map[string]struct{}) bool { return DetectGenre(text) != nil },
		apply: func(s *Signals, text string) { s.Genre = DetectGenre(text) },
	},
	{
		name:  "personalization",
		match: containsAnyOf(PersonalizationKeywords),
		apply: func(s *Signals, _ string) { s.NeedsPersonalization = true },
	},
	{
		name: "discovery",
		match: func(text string, words map[string]struct{}) bool {
			return containsAny(text, PersonalizationKeywords) || containsAny(text, DiscoveryKeywords)
		},
		apply: func(s *Signals, _ string) { s.Discovery = true },
	},
	{
		name:  "watchlist",
		match: containsAnyOf(WatchlistKeywords),
		apply: func(s *Signals, text string) {
			s.Watchlist = true
			s.WatchlistGenre = DetectGenre(text)
		},
	},
	{
		name:  "greeting",
		match: hasAnyWord(GreetingWords),
		apply: func(s *Signals, _ string) { s.Greeting = true },
	},
	{
		name: "greeting-only",
		match: func(_ string, words map[string]struct{}) bool {
			return len(words) > 0 && onlyWords(words, GreetingWords, PleasantryWords)
		},
		apply: func(s *Signals, _ string) { s.GreetingOnly = true },
	},
	{
		name:  "explanation",
		match: hasAnyWord(ExplanationWords),
		apply: func(s *Signals, _ string) { s.Explanation = true },
	},
	{
		name:  "request",
		match: hasAnyWord(RequestWords),
		apply: func(s *Signals, _ string) { s.Request = true },
	},
}

// Classify derives the signal bundle for msg. It never calls upstreams.
func Classify(msg Message) Signals {
	text := Normalize(msg.Text)
	words := wordSet(text)

	s := Signals{
		Authenticated:      msg.Authenticated,
		HasLastRecommended: len(model.LastRecommended(msg.History)) > 0,
	}
	for _, r := range rules {
		if r.match(text, words) {
			r.apply(&s, text)
		}
	}
	return s
}

// Normalize lowercases and trims the message.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// DetectGenre returns the first GenreTable entry whose keyword occurs in
// text, or nil.
func DetectGenre(text string) *GenreFilter {
	text = Normalize(text)
	for i := range GenreTable {
		if strings.Contains(text, GenreTable[i].Keyword) {
			g := GenreTable[i]
			return &g
		}
	}
	return nil
}

// IsSmallTalk reports a message that expects no new recommendations: a
// bare greeting, or a "why" about the previous picks that asks for
// nothing else.
func (s Signals) IsSmallTalk() bool {
	if s.BestOf || s.Discovery || s.Watchlist || s.Genre != nil || s.Request {
		return false
	}
	return s.GreetingOnly || (s.Explanation && s.HasLastRecommended)
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func containsAnyOf(keywords []string) func(string, map[string]struct{}) bool {
	return func(text string, _ map[string]struct{}) bool {
		return containsAny(text, keywords)
	}
}

func hasAnyWord(vocabulary []string) func(string, map[string]struct{}) bool {
	return func(_ string, words map[string]struct{}) bool {
		for _, w := range vocabulary {
			if _, ok := words[w]; ok {
				return true
			}
		}
		return false
	}
}

// onlyWords reports whether every word belongs to one of the vocabularies.
func onlyWords(words map[string]struct{}, vocabularies ...[]string) bool {
	for w := range words {
		known := false
		for _, vocab := range vocabularies {
			if slices.Contains(vocab, w) {
				known = true
				break
			}
		}
		if !known {
			return false
		}
	}
	return true
}

func wordSet(text string) map[string]struct{} {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	words := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		words[f] = struct{}{}
	}
	return words
}
