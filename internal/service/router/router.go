package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var (
	ErrNotConfigured = errors.New("no model backend configured")
	ErrAllFailed     = errors.New("all model backends failed")
)

// HardKeywords push a message to the higher capability backend.
var HardKeywords = []string{
	"why", "explain", "analyze", "comparison", "compare", "plan", "strategy",
	"step by step", "reason", "justify", "tradeoff", "evaluate", "how to design",
}

// LongMessage is the length above which a message counts as hard.
const LongMessage = 220

//go:generate mockery --name=Backend --output=./mocks --outpkg=mocks
type Backend interface {
	Name() string
	Model() string
	Configured() bool
	Complete(ctx context.Context, prompt string) (string, error)
}

type Tier int

const (
	// TierFast is the cheaper backend used for simple messages.
	TierFast Tier = iota
	// TierSmart handles personalization and hard questions.
	TierSmart
)

func (t Tier) String() string {
	if t == TierSmart {
		return "smart"
	}
	return "fast"
}

// Choose picks a tier for the message.
func Choose(message string, needsPersonalization bool) Tier {
	q := strings.ToLower(message)
	if needsPersonalization {
		return TierSmart
	}
	for _, k := range HardKeywords {
		if strings.Contains(q, k) {
			return TierSmart
		}
	}
	if len(q) > LongMessage {
		return TierSmart
	}
	return TierFast
}

// Completion is the outcome of a routed call. Degraded is set when every
// configured backend failed, Err then carries the diagnostics.
type Completion struct {
	Text     string
	Provider string
	Model    string
	Degraded bool
	Err      error
}

type Router struct {
	fast   Backend
	smart  Backend
	logger *slog.Logger
}

type RouterOption func(*Router)

func WithLogger(logger *slog.Logger) RouterOption {
	return func(r *Router) {
		r.logger = logger
	}
}

func New(fast, smart Backend, opts ...RouterOption) *Router {
	r := &Router{
		fast:   fast,
		smart:  smart,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Configured reports whether at least one backend has credentials.
func (r *Router) Configured() bool {
	return configured(r.fast) || configured(r.smart)
}

func configured(b Backend) bool {
	return b != nil && b.Configured()
}

func (r *Router) order(tier Tier) (Backend, Backend) {
	if tier == TierSmart {
		return r.smart, r.fast
	}
	return r.fast, r.smart
}

// Complete sends prompt to the backend chosen for message and fails over
// once to the other backend. Only a missing configuration is returned as an
// error, upstream failures come back as a degraded Completion.
func (r *Router) Complete(ctx context.Context, message string, needsPersonalization bool, prompt string) (Completion, error) {
	if !r.Configured() {
		return Completion{}, ErrNotConfigured
	}

	tier := Choose(message, needsPersonalization)
	primary, secondary := r.order(tier)

	var errs []error
	for _, b := range []Backend{primary, secondary} {
		if !configured(b) {
			continue
		}
		text, err := b.Complete(ctx, prompt)
		if err == nil {
			return Completion{Text: text, Provider: b.Name(), Model: b.Model()}, nil
		}
		r.logger.Warn("model backend failed",
			slog.String("provider", b.Name()),
			slog.String("tier", tier.String()),
			slog.String("error", err.Error()),
		)
		errs = append(errs, fmt.Errorf("%s: %w", b.Name(), err))
	}

	return Completion{
		Degraded: true,
		Err:      fmt.Errorf("%w: %w", ErrAllFailed, errors.Join(errs...)),
	}, nil
}
