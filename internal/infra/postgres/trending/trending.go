package infra_postgres_trending

import (
	"context"
	"time"

	"github.com/humanbelnik/cinemind/core/internal/model"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type trendingDTO struct {
	ID         int64     `db:"id"`
	SearchTerm string    `db:"search_term"`
	MovieID    int       `db:"movie_id"`
	Title      string    `db:"title"`
	PosterURL  string    `db:"poster_url"`
	Count      int       `db:"count"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (d trendingDTO) toDomain() model.TrendingSearch {
	return model.TrendingSearch{
		ID:         d.ID,
		SearchTerm: d.SearchTerm,
		MovieID:    d.MovieID,
		Title:      d.Title,
		PosterURL:  d.PosterURL,
		Count:      d.Count,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

const columns = `id, search_term, movie_id, title, poster_url, count, created_at, updated_at`

func (d *Driver) Increment(ctx context.Context, s model.TrendingSearch) (model.TrendingSearch, error) {
	var dto trendingDTO
	query := `
		INSERT INTO trending_searches (search_term, movie_id, title, poster_url, count)
		VALUES ($1, $2, $3, $4, 1)
		ON CONFLICT (search_term, movie_id)
		DO UPDATE SET count = trending_searches.count + 1, updated_at = now()
		RETURNING ` + columns

	if err := d.db.GetContext(ctx, &dto, query, s.SearchTerm, s.MovieID, s.Title, s.PosterURL); err != nil {
		return model.TrendingSearch{}, err
	}
	return dto.toDomain(), nil
}

func (d *Driver) Top(ctx context.Context, limit int) ([]model.TrendingSearch, error) {
	var dtos []trendingDTO
	query := `SELECT ` + columns + ` FROM trending_searches ORDER BY count DESC, updated_at DESC LIMIT $1`
	if err := d.db.SelectContext(ctx, &dtos, query, limit); err != nil {
		return nil, err
	}
	out := make([]model.TrendingSearch, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toDomain())
	}
	return out, nil
}
