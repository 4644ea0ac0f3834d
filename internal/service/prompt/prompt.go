package prompt

import (
	"fmt"
	"strings"

	"github.com/humanbelnik/cinemind/core/internal/model"
)

const (
	MaxWatchlist   = 20
	MaxExcluded    = 20
	MaxCandidates  = 20
	DiscoveryCount = 5
	MaxFromSaved   = 2
)

// Input carries everything the prompt may embed. Every field is optional
// except Message.
type Input struct {
	Message    string
	History    []model.ConversationTurn
	Profile    model.TasteProfile
	Watchlist  []string
	Excluded   []string
	Candidates []model.CatalogMovie
}

const roleBlock = `You are CineMind, a friendly movie recommendation assistant.
You help the user discover movies, talk about movies they mention and explain earlier picks.
Keep answers short and conversational.`

const rulebook = `INTENT RULES (pick exactly one, in this order):
1. GREETING - the user says hi, thanks or makes small talk.
   Action: reply briefly and offer help.
   Data source: none.
   Constraints: "recommendations" MUST be [].
2. WATCHLIST FETCH - the user asks about their saved movies or watchlist.
   Action: talk about the titles in the SAVED MOVIES block.
   Data source: SAVED MOVIES block only.
   Constraints: never invent titles that are not saved.
3. DISCOVERY - the user wants something new to watch.
   Action: recommend new movies that fit the taste profile and the request.
   Data source: CATALOG CANDIDATES when present, otherwise your own knowledge.
   Constraints: "recommendations" MUST contain exactly 5 entries, at most 2 from SAVED MOVIES, none from ALREADY RATED.
4. SPECIFIC INFO - the user asks about a particular movie, actor or fact.
   Action: answer the question.
   Data source: your own knowledge.
   Constraints: "recommendations" MUST be [].
5. EXPLANATION - the user asks why you suggested something.
   Action: explain the LAST RECOMMENDATIONS using the taste profile.
   Data source: LAST RECOMMENDATIONS block and the taste profile.
   Constraints: "recommendations" MUST be [].`

const schemaBlock = `OUTPUT FORMAT:
Reply with ONE JSON object and nothing else. No markdown, no code fences.
{
  "response_text": "string, aim for at most 300 characters",
  "recommendations": [
    {"title": "exact movie title", "year": "release year"}
  ]
}`

const examplesBlock = `EXAMPLES:
User: "hi there"
{"response_text": "Hey! Tell me what you are in the mood for and I will find you something to watch.", "recommendations": []}

User: "recommend me some sci-fi movies"
{"response_text": "Here are five sci-fi picks with big ideas and great visuals.", "recommendations": [{"title": "Interstellar", "year": "2014"}, {"title": "Arrival", "year": "2016"}, {"title": "Blade Runner 2049", "year": "2017"}, {"title": "Ex Machina", "year": "2015"}, {"title": "The Martian", "year": "2015"}]}

User: "who directed Inception?"
{"response_text": "Inception was written and directed by Christopher Nolan and came out in 2010.", "recommendations": []}

User: "why did you pick those?"
{"response_text": "You loved mind-bending stories, so I leaned into films with twisty plots and strong world building.", "recommendations": []}

User: "what's on my watchlist?"
{"response_text": "You have a few great ones saved, Parasite looks like a perfect pick for tonight.", "recommendations": []}`

// Compose builds the prompt. Optional blocks are left out when empty, the
// result is well formed for any input.
func Compose(in Input) string {
	var b strings.Builder
	block := func(s string) {
		b.WriteString(s)
		if !strings.HasSuffix(s, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	block(roleBlock)

	if history := model.RecentTurns(in.History); len(history) > 0 {
		block(historyBlock(history))
	}
	if last := model.LastRecommended(in.History); len(last) > 0 {
		block("LAST RECOMMENDATIONS (use these for explanation follow-ups):\n" + bulleted(last))
	}
	if !in.Profile.IsEmpty() {
		block(in.Profile.Text())
	}
	if len(in.Watchlist) > 0 {
		block(fmt.Sprintf("SAVED MOVIES (watchlist, recommend at most %d from here):\n%s",
			MaxFromSaved, bulleted(limit(in.Watchlist, MaxWatchlist))))
	}
	if len(in.Excluded) > 0 {
		block("ALREADY RATED (do not recommend any of these):\n" + bulleted(limit(in.Excluded, MaxExcluded)))
	}
	if len(in.Candidates) > 0 {
		block("CATALOG CANDIDATES (you must pick from this list, use the exact spelling):\n" + candidateBlock(in.Candidates))
	}

	block(rulebook)
	block(schemaBlock)
	block(examplesBlock)

	b.WriteString("User message: ")
	b.WriteString(strings.TrimSpace(in.Message))
	b.WriteString("\n")
	return b.String()
}

func historyBlock(history []model.ConversationTurn) string {
	var b strings.Builder
	b.WriteString("CONVERSATION HISTORY:\n")
	for _, turn := range history {
		role := "User"
		if turn.Role == model.RoleAssistant {
			role = "Assistant"
		}
		b.WriteString(role)
		b.WriteString(": ")
		b.WriteString(strings.TrimSpace(turn.Content))
		if titles := turn.Titles(); turn.Role == model.RoleAssistant && len(titles) > 0 {
			b.WriteString(" [recommended: ")
			b.WriteString(strings.Join(titles, ", "))
			b.WriteString("]")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func candidateBlock(movies []model.CatalogMovie) string {
	var b strings.Builder
	for _, m := range limit(movies, MaxCandidates) {
		b.WriteString("- ")
		b.WriteString(m.Title)
		if year := m.Year(); year != "" {
			b.WriteString(" (")
			b.WriteString(year)
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func bulleted(items []string) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString("- ")
		b.WriteString(it)
		b.WriteString("\n")
	}
	return b.String()
}

func limit[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
