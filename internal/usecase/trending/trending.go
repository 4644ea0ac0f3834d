package usecase_trending

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/humanbelnik/cinemind/core/internal/model"
)

const TopLimit = 10

var (
	ErrInvalidInput = errors.New("search term and movie id are required")
	ErrInternal     = errors.New("internal error")
)

//go:generate mockery --name=Repository --output=./mocks --outpkg=mocks
type Repository interface {
	Increment(ctx context.Context, s model.TrendingSearch) (model.TrendingSearch, error)
	Top(ctx context.Context, limit int) ([]model.TrendingSearch, error)
}

type Usecase struct {
	repository Repository
}

func New(r Repository) *Usecase {
	return &Usecase{repository: r}
}

// Record bumps the counter of (term, movie), creating it on first use.
func (u *Usecase) Record(ctx context.Context, s model.TrendingSearch) (model.TrendingSearch, error) {
	s.SearchTerm = strings.TrimSpace(s.SearchTerm)
	if s.SearchTerm == "" || s.MovieID <= 0 {
		return model.TrendingSearch{}, ErrInvalidInput
	}
	out, err := u.repository.Increment(ctx, s)
	if err != nil {
		return model.TrendingSearch{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return out, nil
}

func (u *Usecase) Top(ctx context.Context) ([]model.TrendingSearch, error) {
	out, err := u.repository.Top(ctx, TopLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return out, nil
}
