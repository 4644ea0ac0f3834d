package router

import (
	"context"
	"errors"
	"strings"
	"testing"

	backend_mocks "github.com/humanbelnik/cinemind/core/internal/service/router/mocks"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type RouterUnitSuite struct {
	suite.Suite
}

func TestRouterUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(RouterUnitSuite))
}

type resources struct {
	router *Router
	fast   *backend_mocks.Backend
	smart  *backend_mocks.Backend
	ctx    context.Context
}

func initResources(t provider.T, fastOn, smartOn bool) *resources {
	fast := backend_mocks.NewBackend(t)
	smart := backend_mocks.NewBackend(t)
	fast.On("Configured").Return(fastOn).Maybe()
	fast.On("Name").Return("groq").Maybe()
	fast.On("Model").Return("llama").Maybe()
	smart.On("Configured").Return(smartOn).Maybe()
	smart.On("Name").Return("github").Maybe()
	smart.On("Model").Return("gpt-4o").Maybe()

	return &resources{
		router: New(fast, smart),
		fast:   fast,
		smart:  smart,
		ctx:    context.Background(),
	}
}

func (s *RouterUnitSuite) TestChoose(t provider.T) {
	t.Parallel()

	assert.Equal(t, TierFast, Choose("best horror", false))
	assert.Equal(t, TierSmart, Choose("best horror", true))
	assert.Equal(t, TierSmart, Choose("Can you EXPLAIN this pick?", false))
	assert.Equal(t, TierSmart, Choose(strings.Repeat("a", LongMessage+1), false))
	assert.Equal(t, TierFast, Choose(strings.Repeat("a", LongMessage), false))
}

func (s *RouterUnitSuite) TestComplete(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		message      string
		fastOn       bool
		smartOn      bool
		setupMocks   func(r *resources)
		expectErr    error
		expectText   string
		expectModel  string
		expectDegrad bool
	}{
		{
			name:    "Should use fast backend for simple message",
			message: "best comedy",
			fastOn:  true,
			smartOn: true,
			setupMocks: func(r *resources) {
				r.fast.On("Complete", r.ctx, "prompt").Return("ok", nil).Once()
			},
			expectText:  "ok",
			expectModel: "llama",
		},
		{
			name:    "Should fail over to fast backend when smart fails",
			message: "why this one?",
			fastOn:  true,
			smartOn: true,
			setupMocks: func(r *resources) {
				r.smart.On("Complete", r.ctx, "prompt").Return("", errors.New("timeout")).Once()
				r.fast.On("Complete", r.ctx, "prompt").Return("fallback", nil).Once()
			},
			expectText:  "fallback",
			expectModel: "llama",
		},
		{
			name:    "Should skip unconfigured primary",
			message: "why this one?",
			fastOn:  true,
			smartOn: false,
			setupMocks: func(r *resources) {
				r.fast.On("Complete", r.ctx, "prompt").Return("ok", nil).Once()
			},
			expectText:  "ok",
			expectModel: "llama",
		},
		{
			name:    "Should degrade when every backend fails",
			message: "best comedy",
			fastOn:  true,
			smartOn: true,
			setupMocks: func(r *resources) {
				r.fast.On("Complete", r.ctx, "prompt").Return("", errors.New("500")).Once()
				r.smart.On("Complete", r.ctx, "prompt").Return("", errors.New("429")).Once()
			},
			expectDegrad: true,
		},
		{
			name:       "Should report missing configuration",
			message:    "best comedy",
			setupMocks: func(r *resources) {},
			expectErr:  ErrNotConfigured,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t, tc.fastOn, tc.smartOn)
			tc.setupMocks(r)

			c, err := r.router.Complete(r.ctx, tc.message, false, "prompt")

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectDegrad, c.Degraded)
			if tc.expectDegrad {
				assert.ErrorIs(t, c.Err, ErrAllFailed)
				assert.Contains(t, c.Err.Error(), "groq")
				assert.Contains(t, c.Err.Error(), "github")
				return
			}
			assert.Equal(t, tc.expectText, c.Text)
			assert.Equal(t, tc.expectModel, c.Model)
			r.smart.AssertNotCalled(t, "Complete", mock.Anything, "unused")
		})
	}
}
