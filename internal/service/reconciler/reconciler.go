package reconciler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/humanbelnik/cinemind/core/internal/model"
	"golang.org/x/sync/errgroup"
)

// MaxRecommendations bounds the model-driven result list.
const MaxRecommendations = 5

//go:generate mockery --name=TitleSearcher --output=./mocks --outpkg=mocks
type TitleSearcher interface {
	SearchByTitle(ctx context.Context, title string) (*model.CatalogMovie, error)
}

// Policy is the per-request filter applied to resolved movies.
type Policy struct {
	Excluded  map[int]struct{}
	Watchlist map[int]struct{}
	Limit     int
	// SmallTalk drops every recommendation, the reply is text only.
	SmallTalk bool
}

// Allowed reports whether id survives the rated-exclusion rule.
func (p Policy) Allowed(id int) bool {
	if _, excluded := p.Excluded[id]; !excluded {
		return true
	}
	_, saved := p.Watchlist[id]
	return saved
}

func (p Policy) limit() int {
	if p.Limit <= 0 || p.Limit > MaxRecommendations {
		return MaxRecommendations
	}
	return p.Limit
}

type Reconciler struct {
	catalog     TitleSearcher
	concurrency int
	logger      *slog.Logger
}

type ReconcilerOption func(*Reconciler)

func WithLogger(logger *slog.Logger) ReconcilerOption {
	return func(r *Reconciler) {
		r.logger = logger
	}
}

func WithConcurrency(n int) ReconcilerOption {
	return func(r *Reconciler) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

func New(catalog TitleSearcher, opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{
		catalog:     catalog,
		concurrency: MaxRecommendations,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile turns raw model text into the reply text and the catalog
// confirmed movies, in model order.
func (r *Reconciler) Reconcile(ctx context.Context, raw string, policy Policy) (string, []model.FinalMovie) {
	result := Parse(raw)
	if !result.Ok() {
		r.logger.Warn("model output is not JSON, using raw text", slog.Int("length", len(raw)))
	}
	parsed := result.Model()
	if policy.SmallTalk {
		return parsed.ResponseText, []model.FinalMovie{}
	}
	return parsed.ResponseText, r.Resolve(ctx, parsed.Recommendations, policy)
}

// Resolve validates candidates against the catalog and applies policy.
func (r *Reconciler) Resolve(ctx context.Context, candidates []model.RecommendationCandidate, policy Policy) []model.FinalMovie {
	resolved := make([]*model.CatalogMovie, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, c := range candidates {
		title := strings.TrimSpace(c.Title)
		if title == "" {
			continue
		}
		g.Go(func() error {
			movie, err := r.catalog.SearchByTitle(gctx, title)
			if err != nil {
				r.logger.Debug("title validation failed",
					slog.String("title", title),
					slog.String("error", err.Error()),
				)
				return nil
			}
			resolved[i] = movie
			return nil
		})
	}
	_ = g.Wait()

	out := make([]model.FinalMovie, 0, policy.limit())
	seen := make(map[int]struct{}, len(candidates))
	for i, movie := range resolved {
		if movie == nil {
			continue
		}
		if !policy.Allowed(movie.ID) {
			r.logger.Debug("dropping excluded movie",
				slog.String("title", candidates[i].Title),
				slog.Int("movie_id", movie.ID),
			)
			continue
		}
		if _, dup := seen[movie.ID]; dup {
			continue
		}
		seen[movie.ID] = struct{}{}
		out = append(out, model.FinalFromCatalog(*movie))
		if len(out) == policy.limit() {
			break
		}
	}
	return out
}
