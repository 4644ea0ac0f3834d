package usecase_chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/humanbelnik/cinemind/core/internal/model"
	"github.com/humanbelnik/cinemind/core/internal/service/intent"
	"github.com/humanbelnik/cinemind/core/internal/service/prompt"
	"github.com/humanbelnik/cinemind/core/internal/service/reconciler"
	"github.com/humanbelnik/cinemind/core/internal/service/router"
	"github.com/humanbelnik/cinemind/core/internal/service/tasteprofile"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInput  = errors.New("message is required")
	ErrNotConfigured = errors.New("no model backend configured")
)

const (
	DegradedText = "Sorry, I'm having trouble reaching the recommendation engine right now. Please try again in a moment."

	ProviderRuleBased  = "rule-based"
	ModelWatchlist     = "watchlist"
	ModelSavedFallback = "saved-fallback"
	ModelSavedEmpty    = "saved-empty"

	MaxWatchlistMovies = 10
	MaxFallbackMovies  = 5
)

//go:generate mockery --name=Catalog --output=./mocks/catalog --outpkg=catalog_mocks
type Catalog interface {
	SearchByTitle(ctx context.Context, title string) (*model.CatalogMovie, error)
	DiscoverByGenre(ctx context.Context, genreID int, language string, minVoteCount int, sortBy string) ([]model.CatalogMovie, error)
	TopRated(ctx context.Context, minVoteCount int) ([]model.CatalogMovie, error)
	Details(ctx context.Context, movieID int) (model.MovieDetails, error)
	Title(ctx context.Context, movieID int) (string, error)
}

//go:generate mockery --name=InteractionStore --output=./mocks/interaction --outpkg=interaction_mocks
type InteractionStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.InteractionRecord, error)
	ListSaved(ctx context.Context, userID uuid.UUID) ([]model.InteractionRecord, error)
	ListRated(ctx context.Context, userID uuid.UUID) ([]model.InteractionRecord, error)
}

//go:generate mockery --name=ModelRouter --output=./mocks/router --outpkg=router_mocks
type ModelRouter interface {
	Configured() bool
	Complete(ctx context.Context, message string, needsPersonalization bool, prompt string) (router.Completion, error)
}

type Request struct {
	Message string                   `json:"message"`
	History []model.ConversationTurn `json:"history,omitempty"`
}

type Response struct {
	ResponseText string             `json:"response_text"`
	Movies       []model.FinalMovie `json:"movies"`
	Provider     string             `json:"provider,omitempty"`
	Model        string             `json:"model,omitempty"`
	Error        string             `json:"error,omitempty"`
}

type Usecase struct {
	catalog      Catalog
	interactions InteractionStore
	router       ModelRouter
	profiles     *tasteprofile.Builder
	reconciler   *reconciler.Reconciler
	concurrency  int
	logger       *slog.Logger
}

type UsecaseOption func(*Usecase)

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

// WithConcurrency bounds parallel catalog lookups per request.
func WithConcurrency(n int) UsecaseOption {
	return func(u *Usecase) {
		if n > 0 {
			u.concurrency = n
		}
	}
}

func New(
	catalog Catalog,
	interactions InteractionStore,
	r ModelRouter,
	opts ...UsecaseOption,
) *Usecase {
	u := &Usecase{
		catalog:      catalog,
		interactions: interactions,
		router:       r,
		concurrency:  8,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	u.profiles = tasteprofile.New(catalog,
		tasteprofile.WithLogger(u.logger),
		tasteprofile.WithConcurrency(u.concurrency),
	)
	u.reconciler = reconciler.New(catalog, reconciler.WithLogger(u.logger))
	return u
}

// userState is what the pipeline knows about the caller.
type userState struct {
	records []model.InteractionRecord
	saved   []model.InteractionRecord
	// excluded holds ids rated but not saved, most recent first.
	excluded []int
}

func (s userState) savedIDs() map[int]struct{} {
	out := make(map[int]struct{}, len(s.saved))
	for _, r := range s.saved {
		out[r.MovieID] = struct{}{}
	}
	return out
}

func (s userState) excludedIDs() map[int]struct{} {
	out := make(map[int]struct{}, len(s.excluded))
	for _, id := range s.excluded {
		out[id] = struct{}{}
	}
	return out
}

func (u *Usecase) Chat(ctx context.Context, auth model.AuthContext, req Request) (Response, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return Response{}, ErrInvalidInput
	}

	signals := intent.Classify(intent.Message{
		Text:          message,
		History:       req.History,
		Authenticated: auth.Authenticated,
	})
	u.logger.Debug("intent classified",
		slog.Bool("best_of", signals.BestOf),
		slog.Bool("discovery", signals.Discovery),
		slog.Bool("personalization", signals.NeedsPersonalization),
		slog.Bool("watchlist", signals.Watchlist),
		slog.Bool("authenticated", auth.Authenticated),
	)

	var state userState
	if auth.Authenticated {
		state = u.loadUser(ctx, auth.UserID)
	}

	if signals.Watchlist {
		return u.watchlist(ctx, signals, state), nil
	}

	if !u.router.Configured() {
		return Response{}, ErrNotConfigured
	}

	candidates := u.candidates(ctx, intent.CandidatePlan(signals))

	in := prompt.Input{
		Message:    message,
		History:    req.History,
		Candidates: candidates,
	}
	if auth.Authenticated {
		in.Profile = u.profiles.Build(ctx, state.records)
		in.Watchlist = u.profiles.Titles(ctx, idsOf(state.saved, prompt.MaxWatchlist))
		in.Excluded = u.profiles.Titles(ctx, limit(state.excluded, prompt.MaxExcluded))
	}

	completion, err := u.router.Complete(ctx, message, signals.NeedsPersonalization, prompt.Compose(in))
	if err != nil {
		if errors.Is(err, router.ErrNotConfigured) {
			return Response{}, fmt.Errorf("%w: %w", ErrNotConfigured, err)
		}
		return Response{}, err
	}
	if completion.Degraded {
		u.logger.Error("all model backends failed", slog.String("error", completion.Err.Error()))
		return Response{
			ResponseText: DegradedText,
			Movies:       []model.FinalMovie{},
			Error:        completion.Err.Error(),
		}, nil
	}

	text, movies := u.reconciler.Reconcile(ctx, completion.Text, reconciler.Policy{
		Excluded:  state.excludedIDs(),
		Watchlist: state.savedIDs(),
		Limit:     reconciler.MaxRecommendations,
		SmallTalk: signals.IsSmallTalk(),
	})
	return Response{
		ResponseText: text,
		Movies:       movies,
		Provider:     completion.Provider,
		Model:        completion.Model,
	}, nil
}

// loadUser reads the caller's interactions. Store failures leave the
// affected part empty, the request goes on unpersonalized.
func (u *Usecase) loadUser(ctx context.Context, userID uuid.UUID) userState {
	var (
		state userState
		rated []model.InteractionRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	load := func(name string, dst *[]model.InteractionRecord, fn func(context.Context, uuid.UUID) ([]model.InteractionRecord, error)) {
		g.Go(func() error {
			recs, err := fn(gctx, userID)
			if err != nil {
				u.logger.Warn("failed to load interactions",
					slog.String("list", name),
					slog.String("user_id", userID.String()),
					slog.String("error", err.Error()),
				)
				return nil
			}
			*dst = recs
			return nil
		})
	}
	load("all", &state.records, u.interactions.ListByUser)
	load("saved", &state.saved, u.interactions.ListSaved)
	load("rated", &rated, u.interactions.ListRated)
	_ = g.Wait()

	for _, r := range rated {
		if r.IsRated() && !r.IsSaved {
			state.excluded = append(state.excluded, r.MovieID)
		}
	}
	return state
}

// candidates runs the plan until a query yields movies.
func (u *Usecase) candidates(ctx context.Context, plan []intent.CatalogQuery) []model.CatalogMovie {
	for _, q := range plan {
		movies, err := u.runQuery(ctx, q)
		if err != nil {
			u.logger.Warn("candidate lookup failed",
				slog.String("query", q.Kind.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		if len(movies) > 0 {
			return movies
		}
	}
	return nil
}

func (u *Usecase) runQuery(ctx context.Context, q intent.CatalogQuery) ([]model.CatalogMovie, error) {
	switch q.Kind {
	case intent.QueryDiscoverGenre:
		return u.catalog.DiscoverByGenre(ctx, q.GenreID, q.Language, q.MinVoteCount, q.SortBy)
	case intent.QueryTopRated:
		return u.catalog.TopRated(ctx, q.MinVoteCount)
	default:
		return nil, nil
	}
}

func idsOf(recs []model.InteractionRecord, n int) []int {
	ids := make([]int, 0, min(len(recs), n))
	for _, r := range recs {
		if len(ids) == n {
			break
		}
		ids = append(ids, r.MovieID)
	}
	return ids
}

func limit[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
