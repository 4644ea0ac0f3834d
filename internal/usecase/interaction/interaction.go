package usecase_interaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/humanbelnik/cinemind/core/internal/model"
)

var (
	ErrInvalidRating    = errors.New("rating must be between 0 and 5 in 0.5 steps")
	ErrInvalidMovieID   = errors.New("invalid movie id")
	ErrResourceNotFound = errors.New("interaction not found")
	ErrInternal         = errors.New("internal error")
)

//go:generate mockery --name=Repository --output=./mocks --outpkg=mocks
type Repository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.InteractionRecord, error)
	ListSaved(ctx context.Context, userID uuid.UUID) ([]model.InteractionRecord, error)
	ListRated(ctx context.Context, userID uuid.UUID) ([]model.InteractionRecord, error)
	Get(ctx context.Context, userID uuid.UUID, movieID int) (model.InteractionRecord, error)
	SetRating(ctx context.Context, userID uuid.UUID, movieID int, rating *float64) (model.InteractionRecord, error)
	ToggleSave(ctx context.Context, userID uuid.UUID, movieID int) (model.InteractionRecord, error)
}

type Usecase struct {
	repository Repository
}

func New(r Repository) *Usecase {
	return &Usecase{repository: r}
}

// Rate sets or, for a nil rating, clears the user's rating of a movie.
func (u *Usecase) Rate(ctx context.Context, userID uuid.UUID, movieID int, rating *float64) (model.InteractionRecord, error) {
	if movieID <= 0 {
		return model.InteractionRecord{}, ErrInvalidMovieID
	}
	if rating != nil && !model.ValidRating(*rating) {
		return model.InteractionRecord{}, ErrInvalidRating
	}
	rec, err := u.repository.SetRating(ctx, userID, movieID, rating)
	if err != nil {
		return model.InteractionRecord{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return rec, nil
}

func (u *Usecase) ToggleSave(ctx context.Context, userID uuid.UUID, movieID int) (model.InteractionRecord, error) {
	if movieID <= 0 {
		return model.InteractionRecord{}, ErrInvalidMovieID
	}
	rec, err := u.repository.ToggleSave(ctx, userID, movieID)
	if err != nil {
		return model.InteractionRecord{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return rec, nil
}

// Interaction returns the record for (user, movie). A missing record is an
// empty one, not an error.
func (u *Usecase) Interaction(ctx context.Context, userID uuid.UUID, movieID int) (model.InteractionRecord, error) {
	if movieID <= 0 {
		return model.InteractionRecord{}, ErrInvalidMovieID
	}
	rec, err := u.repository.Get(ctx, userID, movieID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.InteractionRecord{UserID: userID, MovieID: movieID}, nil
		}
		return model.InteractionRecord{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return rec, nil
}

func (u *Usecase) SavedIDs(ctx context.Context, userID uuid.UUID) ([]int, error) {
	recs, err := u.repository.ListSaved(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	ids := make([]int, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.MovieID)
	}
	return ids, nil
}
