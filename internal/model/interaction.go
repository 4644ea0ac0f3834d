package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating  = 0.0
	MaxRating  = 5.0
	RatingStep = 0.5
)

// InteractionRecord is the single (user, movie) row holding a rating and
// the saved flag.
type InteractionRecord struct {
	UserID    uuid.UUID
	MovieID   int
	Rating    *float64
	IsSaved   bool
	UpdatedAt time.Time
}

func (r InteractionRecord) IsRated() bool {
	return r.Rating != nil
}

// ValidRating reports whether v lies in [0, 5] on a 0.5 grid.
func ValidRating(v float64) bool {
	if v < MinRating || v > MaxRating {
		return false
	}
	steps := v / RatingStep
	return steps == float64(int(steps))
}
