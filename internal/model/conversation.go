package model

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// HistoryWindow is the number of most recent turns treated as context.
const HistoryWindow = 6

type MovieSummary struct {
	ID    int    `json:"id,omitempty"`
	Title string `json:"title"`
}

type ConversationTurn struct {
	Role    Role           `json:"role"`
	Content string         `json:"content"`
	Movies  []MovieSummary `json:"movies,omitempty"`
}

func (t ConversationTurn) Titles() []string {
	titles := make([]string, 0, len(t.Movies))
	for _, m := range t.Movies {
		if m.Title != "" {
			titles = append(titles, m.Title)
		}
	}
	return titles
}

// RecentTurns returns at most the last HistoryWindow turns.
func RecentTurns(history []ConversationTurn) []ConversationTurn {
	if len(history) <= HistoryWindow {
		return history
	}
	return history[len(history)-HistoryWindow:]
}

// LastRecommended returns the titles of the most recent assistant turn that
// carried recommendations.
func LastRecommended(history []ConversationTurn) []string {
	for i := len(history) - 1; i >= 0; i-- {
		turn := history[i]
		if turn.Role != RoleAssistant {
			continue
		}
		if titles := turn.Titles(); len(titles) > 0 {
			return titles
		}
	}
	return nil
}
