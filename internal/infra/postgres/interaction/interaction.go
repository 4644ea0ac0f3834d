package infra_postgres_interaction

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/cinemind/core/internal/model"
	usecase_interaction "github.com/humanbelnik/cinemind/core/internal/usecase/interaction"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type interactionDTO struct {
	UserID    uuid.UUID       `db:"user_id"`
	MovieID   int             `db:"movie_id"`
	Rating    sql.NullFloat64 `db:"rating"`
	IsSaved   bool            `db:"is_saved"`
	UpdatedAt time.Time       `db:"updated_at"`
}

func (d interactionDTO) toDomain() model.InteractionRecord {
	rec := model.InteractionRecord{
		UserID:    d.UserID,
		MovieID:   d.MovieID,
		IsSaved:   d.IsSaved,
		UpdatedAt: d.UpdatedAt,
	}
	if d.Rating.Valid {
		v := d.Rating.Float64
		rec.Rating = &v
	}
	return rec
}

func toDomain(dtos []interactionDTO) []model.InteractionRecord {
	out := make([]model.InteractionRecord, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toDomain())
	}
	return out
}

const columns = `user_id, movie_id, rating, is_saved, updated_at`

func (d *Driver) list(ctx context.Context, query string, userID uuid.UUID) ([]model.InteractionRecord, error) {
	var dtos []interactionDTO
	if err := d.db.SelectContext(ctx, &dtos, query, userID); err != nil {
		return nil, err
	}
	return toDomain(dtos), nil
}

func (d *Driver) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.InteractionRecord, error) {
	query := `SELECT ` + columns + ` FROM movie_interactions WHERE user_id = $1 ORDER BY updated_at DESC`
	return d.list(ctx, query, userID)
}

func (d *Driver) ListSaved(ctx context.Context, userID uuid.UUID) ([]model.InteractionRecord, error) {
	query := `SELECT ` + columns + ` FROM movie_interactions WHERE user_id = $1 AND is_saved = true ORDER BY updated_at DESC`
	return d.list(ctx, query, userID)
}

func (d *Driver) ListRated(ctx context.Context, userID uuid.UUID) ([]model.InteractionRecord, error) {
	query := `SELECT ` + columns + ` FROM movie_interactions WHERE user_id = $1 AND rating IS NOT NULL ORDER BY updated_at DESC`
	return d.list(ctx, query, userID)
}

func (d *Driver) Get(ctx context.Context, userID uuid.UUID, movieID int) (model.InteractionRecord, error) {
	var dto interactionDTO
	query := `SELECT ` + columns + ` FROM movie_interactions WHERE user_id = $1 AND movie_id = $2`
	if err := d.db.GetContext(ctx, &dto, query, userID, movieID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.InteractionRecord{}, usecase_interaction.ErrResourceNotFound
		}
		return model.InteractionRecord{}, err
	}
	return dto.toDomain(), nil
}

func (d *Driver) SetRating(ctx context.Context, userID uuid.UUID, movieID int, rating *float64) (model.InteractionRecord, error) {
	var dto interactionDTO
	query := `
		INSERT INTO movie_interactions (user_id, movie_id, rating, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, movie_id)
		DO UPDATE SET rating = EXCLUDED.rating, updated_at = now()
		RETURNING ` + columns

	var value sql.NullFloat64
	if rating != nil {
		value = sql.NullFloat64{Float64: *rating, Valid: true}
	}
	if err := d.db.GetContext(ctx, &dto, query, userID, movieID, value); err != nil {
		return model.InteractionRecord{}, err
	}
	return dto.toDomain(), nil
}

func (d *Driver) ToggleSave(ctx context.Context, userID uuid.UUID, movieID int) (model.InteractionRecord, error) {
	var dto interactionDTO
	query := `
		INSERT INTO movie_interactions (user_id, movie_id, is_saved, updated_at)
		VALUES ($1, $2, true, now())
		ON CONFLICT (user_id, movie_id)
		DO UPDATE SET is_saved = NOT movie_interactions.is_saved, updated_at = now()
		RETURNING ` + columns

	if err := d.db.GetContext(ctx, &dto, query, userID, movieID); err != nil {
		return model.InteractionRecord{}, err
	}
	return dto.toDomain(), nil
}
