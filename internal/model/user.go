package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	Email     string
	Username  string
	Password  []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuthContext describes who issued the current request.
type AuthContext struct {
	Authenticated bool
	UserID        uuid.UUID
}

var Anonymous = AuthContext{}

func Authenticated(userID uuid.UUID) AuthContext {
	return AuthContext{Authenticated: true, UserID: userID}
}
