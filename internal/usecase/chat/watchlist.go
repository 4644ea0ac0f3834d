package usecase_chat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/humanbelnik/cinemind/core/internal/model"
	"github.com/humanbelnik/cinemind/core/internal/service/intent"
	"golang.org/x/sync/errgroup"
)

// watchlist answers saved-movie requests without a model call.
func (u *Usecase) watchlist(ctx context.Context, signals intent.Signals, state userState) Response {
	if len(state.saved) == 0 {
		movies := u.topPicks(ctx, intent.TopRatedPlan(), state)
		return Response{
			ResponseText: "Your watchlist is empty. Here are some top rated movies to get you started.",
			Movies:       movies,
			Provider:     ProviderRuleBased,
			Model:        ModelSavedEmpty,
		}
	}

	details := u.savedDetails(ctx, state.saved)
	filtered := make([]model.FinalMovie, 0, len(details))
	for _, d := range details {
		if signals.WatchlistGenre != nil && !d.HasGenre(signals.WatchlistGenre.GenreID, signals.WatchlistGenre.Language) {
			continue
		}
		filtered = append(filtered, model.FinalFromDetails(d))
		if len(filtered) == MaxWatchlistMovies {
			break
		}
	}

	if len(filtered) > 0 {
		text := "Here are the movies from your watchlist."
		if signals.WatchlistGenre != nil {
			text = fmt.Sprintf("Here are the %s movies from your watchlist.", signals.WatchlistGenre.Keyword)
		}
		return Response{
			ResponseText: text,
			Movies:       filtered,
			Provider:     ProviderRuleBased,
			Model:        ModelWatchlist,
		}
	}

	text := "I couldn't find matching movies in your watchlist. Here are some top picks instead."
	if signals.WatchlistGenre != nil {
		text = fmt.Sprintf("You don't have any %s movies saved yet. Here are some top picks instead.", signals.WatchlistGenre.Keyword)
	}
	return Response{
		ResponseText: text,
		Movies:       u.topPicks(ctx, intent.FallbackPlan(signals), state),
		Provider:     ProviderRuleBased,
		Model:        ModelSavedFallback,
	}
}

// savedDetails fetches details for every saved movie in parallel, keeping
// the saved order. Failed lookups are dropped.
func (u *Usecase) savedDetails(ctx context.Context, saved []model.InteractionRecord) []model.MovieDetails {
	results := make([]*model.MovieDetails, len(saved))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)
	for i, r := range saved {
		g.Go(func() error {
			d, err := u.catalog.Details(gctx, r.MovieID)
			if err != nil {
				u.logger.Debug("saved movie lookup failed",
					slog.Int("movie_id", r.MovieID),
					slog.String("error", err.Error()),
				)
				return nil
			}
			results[i] = &d
			return nil
		})
	}
	_ = g.Wait()

	out := make([]model.MovieDetails, 0, len(results))
	for _, d := range results {
		if d != nil {
			out = append(out, *d)
		}
	}
	return out
}

// topPicks runs plan and returns up to MaxFallbackMovies movies the user
// has not already rated.
func (u *Usecase) topPicks(ctx context.Context, plan []intent.CatalogQuery, state userState) []model.FinalMovie {
	excluded := state.excludedIDs()
	out := make([]model.FinalMovie, 0, MaxFallbackMovies)
	for _, m := range u.candidates(ctx, plan) {
		if _, skip := excluded[m.ID]; skip {
			continue
		}
		out = append(out, model.FinalFromCatalog(m))
		if len(out) == MaxFallbackMovies {
			break
		}
	}
	return out
}
