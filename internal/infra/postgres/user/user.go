package infra_postgres_user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/cinemind/core/internal/model"
	session_auth "github.com/humanbelnik/cinemind/core/internal/service/auth/session"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type userDTO struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Username  string    `db:"username"`
	Password  []byte    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (d userDTO) toDomain() model.User {
	return model.User{
		ID:        d.ID,
		Email:     d.Email,
		Username:  d.Username,
		Password:  d.Password,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

const columns = `id, email, username, password, created_at, updated_at`

func (d *Driver) Create(ctx context.Context, u model.User) (model.User, error) {
	var dto userDTO
	query := `
		INSERT INTO users (id, email, username, password)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + columns

	if err := d.db.GetContext(ctx, &dto, query, u.ID, u.Email, u.Username, u.Password); err != nil {
		return model.User{}, mapConflict(err)
	}
	return dto.toDomain(), nil
}

func (d *Driver) ByEmail(ctx context.Context, email string) (model.User, error) {
	return d.one(ctx, `SELECT `+columns+` FROM users WHERE lower(email) = lower($1)`, email)
}

func (d *Driver) ByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	return d.one(ctx, `SELECT `+columns+` FROM users WHERE id = $1`, id)
}

func (d *Driver) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`
	if err := d.db.GetContext(ctx, &exists, query, username); err != nil {
		return false, err
	}
	return exists, nil
}

func (d *Driver) UpdateUsername(ctx context.Context, id uuid.UUID, username string) (model.User, error) {
	query := `UPDATE users SET username = $2, updated_at = now() WHERE id = $1 RETURNING ` + columns
	u, err := d.one(ctx, query, id, username)
	if err != nil {
		return model.User{}, mapConflict(err)
	}
	return u, nil
}

func (d *Driver) UpdatePassword(ctx context.Context, id uuid.UUID, hash []byte) error {
	res, err := d.db.ExecContext(ctx, `UPDATE users SET password = $2, updated_at = now() WHERE id = $1`, id, hash)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return session_auth.ErrUserNotFound
	}
	return nil
}

func (d *Driver) one(ctx context.Context, query string, args ...any) (model.User, error) {
	var dto userDTO
	if err := d.db.GetContext(ctx, &dto, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, session_auth.ErrUserNotFound
		}
		return model.User{}, err
	}
	return dto.toDomain(), nil
}

func mapConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		if pqErr.Constraint == "users_email_key" {
			return session_auth.ErrEmailTaken
		}
		return session_auth.ErrUsernameTaken
	}
	return err
}
