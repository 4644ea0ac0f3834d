package model

import "strings"

const (
	ProfileHeader   = "User's Taste Profile:\n"
	NoInteractions  = "(no interactions yet)"
	lovesPrefix     = "- LOVES (Strongest match): "
	watchlistPrefix = "- WATCHLIST (High interest): "
	likesPrefix     = "- LIKES (General interest): "
	hatesPrefix     = "- HATES (Avoid similar movies): "
)

// TasteProfile holds four disjoint, sorted and deduplicated title buckets.
type TasteProfile struct {
	Loved []string
	Saved []string
	Liked []string
	Hated []string
}

func (p TasteProfile) IsEmpty() bool {
	return len(p.Loved) == 0 && len(p.Saved) == 0 && len(p.Liked) == 0 && len(p.Hated) == 0
}

// Text renders the profile the way it is embedded into the prompt.
func (p TasteProfile) Text() string {
	var b strings.Builder
	b.WriteString(ProfileHeader)
	section := func(prefix string, titles []string) {
		if len(titles) == 0 {
			return
		}
		b.WriteString(prefix)
		b.WriteString(strings.Join(titles, ", "))
		b.WriteString("\n")
	}
	section(lovesPrefix, p.Loved)
	section(watchlistPrefix, p.Saved)
	section(likesPrefix, p.Liked)
	section(hatesPrefix, p.Hated)
	if p.IsEmpty() {
		b.WriteString(NoInteractions)
		b.WriteString("\n")
	}
	return b.String()
}
