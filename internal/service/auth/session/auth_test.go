package session_auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/cinemind/core/internal/model"
	session_mocks "github.com/humanbelnik/cinemind/core/internal/service/auth/session/mocks"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type SessionAuthUnitSuite struct {
	suite.Suite
}

func TestSessionAuthUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(SessionAuthUnitSuite))
}

const ttl = time.Hour

type resources struct {
	service *Service
	users   *session_mocks.UserRepository
	cache   *session_mocks.SessionCache
	ctx     context.Context
}

func initResources(t provider.T) *resources {
	users := session_mocks.NewUserRepository(t)
	cache := session_mocks.NewSessionCache(t)
	return &resources{
		service: New(ttl, users, cache, WithHashCost(bcrypt.MinCost)),
		users:   users,
		cache:   cache,
		ctx:     context.Background(),
	}
}

func userWithPassword(t provider.T, password string) model.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	t.Require().NoError(err)
	return model.User{ID: uuid.New(), Email: "neo@matrix.io", Username: "neo", Password: hash}
}

func (s *SessionAuthUnitSuite) TestRegister(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		email      string
		username   string
		password   string
		setupMocks func(r *resources)
		expectErr  error
		expectName string
	}{
		{
			name:     "Should derive unique username from email",
			email:    " Neo@Matrix.io ",
			password: "redpill42",
			setupMocks: func(r *resources) {
				r.users.On("UsernameExists", r.ctx, "neo").Return(true, nil).Once()
				r.users.On("UsernameExists", r.ctx, "neo1").Return(false, nil).Once()
				r.users.On("Create", r.ctx, mock.MatchedBy(func(u model.User) bool {
					return u.Email == "neo@matrix.io" && u.Username == "neo1" &&
						bcrypt.CompareHashAndPassword(u.Password, []byte("redpill42")) == nil
				})).Return(func(_ context.Context, u model.User) (model.User, error) {
					return u, nil
				}).Once()
				r.cache.On("Set", mock.AnythingOfType("string"), mock.AnythingOfType("string"), ttl).Return(nil).Once()
			},
			expectName: "neo1",
		},
		{
			name:       "Should reject invalid email",
			email:      "not-an-email",
			password:   "redpill42",
			setupMocks: func(r *resources) {},
			expectErr:  ErrInvalidInput,
		},
		{
			name:       "Should reject short password",
			email:      "neo@matrix.io",
			password:   "short",
			setupMocks: func(r *resources) {},
			expectErr:  ErrInvalidInput,
		},
		{
			name:     "Should surface duplicate email",
			email:    "neo@matrix.io",
			username: "trinity",
			password: "redpill42",
			setupMocks: func(r *resources) {
				r.users.On("UsernameExists", r.ctx, "trinity").Return(false, nil).Once()
				r.users.On("Create", r.ctx, mock.AnythingOfType("model.User")).Return(model.User{}, ErrEmailTaken).Once()
			},
			expectErr: ErrEmailTaken,
		},
		{
			name:     "Should wrap repository failure as internal",
			email:    "neo@matrix.io",
			password: "redpill42",
			setupMocks: func(r *resources) {
				r.users.On("UsernameExists", r.ctx, "neo").Return(false, errors.New("db down")).Once()
			},
			expectErr: ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			token, u, err := r.service.Register(r.ctx, tc.email, tc.username, tc.password)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, tc.expectName, u.Username)
		})
	}
}

func (s *SessionAuthUnitSuite) TestLogin(t provider.T) {
	t.Parallel()

	t.Run("Should open session on valid credentials", func(t provider.T) {
		r := initResources(t)
		u := userWithPassword(t, "redpill42")
		r.users.On("ByEmail", r.ctx, "neo@matrix.io").Return(u, nil).Once()
		r.cache.On("Set", mock.AnythingOfType("string"), u.ID.String(), ttl).Return(nil).Once()

		token, got, err := r.service.Login(r.ctx, "neo@matrix.io", "redpill42")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, u.ID, got.ID)
	})

	t.Run("Should reject wrong password", func(t provider.T) {
		r := initResources(t)
		u := userWithPassword(t, "redpill42")
		r.users.On("ByEmail", r.ctx, "neo@matrix.io").Return(u, nil).Once()

		_, _, err := r.service.Login(r.ctx, "neo@matrix.io", "bluepill")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Should hide unknown email", func(t provider.T) {
		r := initResources(t)
		r.users.On("ByEmail", r.ctx, "ghost@matrix.io").Return(model.User{}, ErrUserNotFound).Once()

		_, _, err := r.service.Login(r.ctx, "ghost@matrix.io", "whatever1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func (s *SessionAuthUnitSuite) TestResolve(t provider.T) {
	t.Parallel()

	id := uuid.New()

	testCases := []struct {
		name       string
		token      string
		setupMocks func(r *resources)
		expectID   uuid.UUID
		expectErr  error
	}{
		{
			name:  "Should resolve known token",
			token: "tok",
			setupMocks: func(r *resources) {
				r.cache.On("Get", "tok").Return(id.String(), nil).Once()
			},
			expectID: id,
		},
		{
			name:       "Should reject empty token",
			setupMocks: func(r *resources) {},
			expectErr:  ErrUnauthorized,
		},
		{
			name:  "Should reject expired token",
			token: "tok",
			setupMocks: func(r *resources) {
				r.cache.On("Get", "tok").Return("", nil).Once()
			},
			expectErr: ErrUnauthorized,
		},
		{
			name:  "Should report cache failure",
			token: "tok",
			setupMocks: func(r *resources) {
				r.cache.On("Get", "tok").Return("", errors.New("redis down")).Once()
			},
			expectErr: ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			got, err := r.service.Resolve(tc.token)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				assert.Equal(t, uuid.Nil, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectID, got)
		})
	}
}

func (s *SessionAuthUnitSuite) TestChangePassword(t provider.T) {
	t.Parallel()

	t.Run("Should rotate session", func(t provider.T) {
		r := initResources(t)
		u := userWithPassword(t, "redpill42")
		r.users.On("ByID", r.ctx, u.ID).Return(u, nil).Once()
		r.users.On("UpdatePassword", r.ctx, u.ID, mock.MatchedBy(func(hash []byte) bool {
			return bcrypt.CompareHashAndPassword(hash, []byte("bluepill42")) == nil
		})).Return(nil).Once()
		r.cache.On("Delete", "old-token").Return(nil).Once()
		r.cache.On("Set", mock.AnythingOfType("string"), u.ID.String(), ttl).Return(nil).Once()

		token, err := r.service.ChangePassword(r.ctx, u.ID, "old-token", "redpill42", "bluepill42")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotEqual(t, "old-token", token)
	})

	t.Run("Should reject wrong old password", func(t provider.T) {
		r := initResources(t)
		u := userWithPassword(t, "redpill42")
		r.users.On("ByID", r.ctx, u.ID).Return(u, nil).Once()

		_, err := r.service.ChangePassword(r.ctx, u.ID, "old-token", "nope-nope", "bluepill42")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("Should reject short new password", func(t provider.T) {
		r := initResources(t)

		_, err := r.service.ChangePassword(r.ctx, uuid.New(), "old-token", "redpill42", "short")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func (s *SessionAuthUnitSuite) TestUpdateUsername(t provider.T) {
	t.Parallel()

	t.Run("Should pass through conflict", func(t provider.T) {
		r := initResources(t)
		id := uuid.New()
		r.users.On("UpdateUsername", r.ctx, id, "morpheus").Return(model.User{}, ErrUsernameTaken).Once()

		_, err := r.service.UpdateUsername(r.ctx, id, " morpheus ")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("Should reject blank username", func(t provider.T) {
		r := initResources(t)

		_, err := r.service.UpdateUsername(r.ctx, uuid.New(), "  ")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func (s *SessionAuthUnitSuite) TestLogout(t provider.T) {
	r := initResources(t)
	r.cache.On("Delete", "tok").Return(nil).Once()
	assert.NoError(t, r.service.Logout("tok"))
}
