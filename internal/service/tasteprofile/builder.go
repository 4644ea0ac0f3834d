package tasteprofile

import (
	"context"
	"log/slog"
	"slices"

	"github.com/humanbelnik/cinemind/core/internal/model"
	"golang.org/x/sync/errgroup"
)

const (
	HatedMax = 2.0
	LovedAt  = 5.0
	LikedMin = 3.0
)

type Bucket int

const (
	BucketNone Bucket = iota
	BucketHated
	BucketLoved
	BucketSaved
	BucketLiked
)

func (b Bucket) String() string {
	switch b {
	case BucketHated:
		return "hated"
	case BucketLoved:
		return "loved"
	case BucketSaved:
		return "saved"
	case BucketLiked:
		return "liked"
	default:
		return "none"
	}
}

// Classify assigns a record to at most one bucket with priority
// HATED > LOVED > SAVED > LIKED.
func Classify(r model.InteractionRecord) Bucket {
	switch {
	case r.Rating != nil && *r.Rating <= HatedMax:
		return BucketHated
	case r.Rating != nil && *r.Rating == LovedAt:
		return BucketLoved
	case r.IsSaved:
		return BucketSaved
	case r.Rating != nil && *r.Rating >= LikedMin:
		return BucketLiked
	default:
		return BucketNone
	}
}

//go:generate mockery --name=TitleResolver --output=./mocks --outpkg=mocks
type TitleResolver interface {
	Title(ctx context.Context, movieID int) (string, error)
}

type Builder struct {
	titles      TitleResolver
	concurrency int
	logger      *slog.Logger
}

type BuilderOption func(*Builder)

func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

func WithConcurrency(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

func New(titles TitleResolver, opts ...BuilderOption) *Builder {
	b := &Builder{
		titles:      titles,
		concurrency: 8,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build resolves titles for every record and buckets them. Records whose
// title cannot be resolved are skipped.
func (b *Builder) Build(ctx context.Context, records []model.InteractionRecord) model.TasteProfile {
	titles := b.resolveTitles(ctx, records)

	buckets := map[Bucket][]string{}
	for i, r := range records {
		if titles[i] == "" {
			continue
		}
		bucket := Classify(r)
		if bucket == BucketNone {
			continue
		}
		buckets[bucket] = append(buckets[bucket], titles[i])
	}

	profile := model.TasteProfile{
		Loved: sortedUnique(buckets[BucketLoved]),
		Saved: sortedUnique(buckets[BucketSaved]),
		Liked: sortedUnique(buckets[BucketLiked]),
		Hated: sortedUnique(buckets[BucketHated]),
	}
	b.logger.Debug("taste profile built",
		slog.Int("interactions", len(records)),
		slog.Int("loved", len(profile.Loved)),
		slog.Int("saved", len(profile.Saved)),
		slog.Int("liked", len(profile.Liked)),
		slog.Int("hated", len(profile.Hated)),
	)
	return profile
}

// Titles resolves titles for ids in order, dropping unresolved ones.
func (b *Builder) Titles(ctx context.Context, ids []int) []string {
	records := make([]model.InteractionRecord, len(ids))
	for i, id := range ids {
		records[i].MovieID = id
	}
	resolved := b.resolveTitles(ctx, records)
	out := make([]string, 0, len(resolved))
	for _, t := range resolved {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (b *Builder) resolveTitles(ctx context.Context, records []model.InteractionRecord) []string {
	titles := make([]string, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i, r := range records {
		g.Go(func() error {
			title, err := b.titles.Title(gctx, r.MovieID)
			if err != nil {
				b.logger.Debug("title lookup failed",
					slog.Int("movie_id", r.MovieID),
					slog.String("error", err.Error()),
				)
				return nil
			}
			titles[i] = title
			return nil
		})
	}
	_ = g.Wait()
	return titles
}

func sortedUnique(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := slices.Clone(in)
	slices.Sort(out)
	return slices.Compact(out)
}
