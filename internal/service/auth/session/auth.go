package session_auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/cinemind/core/internal/model"
	"golang.org/x/crypto/bcrypt"
)

type Token = string

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPassword      = errors.New("old password is incorrect")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInternal           = errors.New("internal error")
)

const (
	MinPasswordLength = 8
	maxUsernameTries  = 100
)

//go:generate mockery --name=UserRepository --output=./mocks --outpkg=mocks
type UserRepository interface {
	Create(ctx context.Context, u model.User) (model.User, error)
	ByEmail(ctx context.Context, email string) (model.User, error)
	ByID(ctx context.Context, id uuid.UUID) (model.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	UpdateUsername(ctx context.Context, id uuid.UUID, username string) (model.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash []byte) error
}

//go:generate mockery --name=SessionCache --output=./mocks --outpkg=mocks
type SessionCache interface {
	Set(key string, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Delete(key string) error
}

type Service struct {
	sessionTTL   time.Duration
	users        UserRepository
	sessionCache SessionCache
	cost         int
}

type ServiceOption func(*Service)

// WithHashCost overrides the bcrypt cost, tests use bcrypt.MinCost.
func WithHashCost(cost int) ServiceOption {
	return func(s *Service) {
		s.cost = cost
	}
}

func New(
	sessionTTL time.Duration,
	users UserRepository,
	sessionCache SessionCache,
	opts ...ServiceOption,
) *Service {
	s := &Service{
		sessionTTL:   sessionTTL,
		users:        users,
		sessionCache: sessionCache,
		cost:         bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) SessionTTL() time.Duration {
	return s.sessionTTL
}

// Register creates the account and opens a session for it. An empty
// username is derived from the e-mail local part and suffixed until unique.
func (s *Service) Register(ctx context.Context, email, username, password string) (Token, model.User, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return "", model.User{}, fmt.Errorf("%w: email: %w", ErrInvalidInput, err)
	}
	email = strings.ToLower(addr.Address)
	if len(password) < MinPasswordLength {
		return "", model.User{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLength)
	}

	username = strings.TrimSpace(username)
	if username == "" {
		username = strings.SplitN(email, "@", 2)[0]
	}
	username, err = s.uniqueUsername(ctx, username)
	if err != nil {
		return "", model.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", model.User{}, errors.Join(ErrInternal, err)
	}

	u, err := s.users.Create(ctx, model.User{
		ID:       uuid.New(),
		Email:    email,
		Username: username,
		Password: hash,
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) || errors.Is(err, ErrUsernameTaken) {
			return "", model.User{}, err
		}
		return "", model.User{}, errors.Join(ErrInternal, err)
	}

	t, err := s.openSession(u.ID)
	if err != nil {
		return "", model.User{}, err
	}
	return t, u, nil
}

func (s *Service) uniqueUsername(ctx context.Context, base string) (string, error) {
	candidate := base
	for i := 1; i <= maxUsernameTries; i++ {
		exists, err := s.users.UsernameExists(ctx, candidate)
		if err != nil {
			return "", errors.Join(ErrInternal, err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = base + strconv.Itoa(i)
	}
	return "", ErrUsernameTaken
}

func (s *Service) Login(ctx context.Context, email, password string) (Token, model.User, error) {
	u, err := s.users.ByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", model.User{}, ErrInvalidCredentials
		}
		return "", model.User{}, errors.Join(ErrInternal, err)
	}
	if err := bcrypt.CompareHashAndPassword(u.Password, []byte(password)); err != nil {
		return "", model.User{}, ErrInvalidCredentials
	}

	t, err := s.openSession(u.ID)
	if err != nil {
		return "", model.User{}, err
	}
	return t, u, nil
}

func (s *Service) Logout(t Token) error {
	if err := s.sessionCache.Delete(t); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

// Resolve maps a session token to its user id. Unknown or expired tokens
// yield ErrUnauthorized.
func (s *Service) Resolve(t Token) (uuid.UUID, error) {
	if t == "" {
		return uuid.Nil, ErrUnauthorized
	}
	v, err := s.sessionCache.Get(t)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInternal, err)
	}
	if v == "" {
		return uuid.Nil, ErrUnauthorized
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return id, nil
}

func (s *Service) Profile(ctx context.Context, id uuid.UUID) (model.User, error) {
	u, err := s.users.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return model.User{}, err
		}
		return model.User{}, errors.Join(ErrInternal, err)
	}
	return u, nil
}

func (s *Service) UpdateUsername(ctx context.Context, id uuid.UUID, username string) (model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return model.User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	u, err := s.users.UpdateUsername(ctx, id, username)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrUserNotFound) {
			return model.User{}, err
		}
		return model.User{}, errors.Join(ErrInternal, err)
	}
	return u, nil
}

// ChangePassword replaces the password and rotates the session: current is
// dropped and a fresh token returned.
func (s *Service) ChangePassword(ctx context.Context, id uuid.UUID, current Token, oldPassword, newPassword string) (Token, error) {
	if len(newPassword) < MinPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLength)
	}
	u, err := s.Profile(ctx, id)
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword(u.Password, []byte(oldPassword)); err != nil {
		return "", ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cost)
	if err != nil {
		return "", errors.Join(ErrInternal, err)
	}
	if err := s.users.UpdatePassword(ctx, id, hash); err != nil {
		return "", errors.Join(ErrInternal, err)
	}

	if current != "" {
		if err := s.sessionCache.Delete(current); err != nil {
			return "", errors.Join(ErrInternal, err)
		}
	}
	return s.openSession(id)
}

func (s *Service) openSession(id uuid.UUID) (Token, error) {
	t := s.genToken()
	if err := s.sessionCache.Set(t, id.String(), s.sessionTTL); err != nil {
		return "", errors.Join(ErrInternal, err)
	}
	return t, nil
}

func (s *Service) genToken() string {
	return uuid.New().String()
}
