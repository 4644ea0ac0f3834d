package infra_tmdb

import (
	"context"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"github.com/humanbelnik/cinemind/core/internal/model"
)

type movieDTO struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	PosterPath       *string `json:"poster_path"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	OriginalLanguage string  `json:"original_language"`
	GenreIDs         []int   `json:"genre_ids"`
}

func (m movieDTO) toDomain() model.CatalogMovie {
	var poster string
	if m.PosterPath != nil {
		poster = *m.PosterPath
	}
	return model.CatalogMovie{
		ID:               m.ID,
		Title:            m.Title,
		PosterPath:       poster,
		Overview:         m.Overview,
		ReleaseDate:      m.ReleaseDate,
		VoteAverage:      m.VoteAverage,
		VoteCount:        m.VoteCount,
		OriginalLanguage: m.OriginalLanguage,
		GenreIDs:         m.GenreIDs,
	}
}

type pageDTO struct {
	Page         int        `json:"page"`
	Results      []movieDTO `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

func (p pageDTO) toDomain() model.MoviePage {
	return model.MoviePage{
		Page:         p.Page,
		Results:      moviesToDomain(p.Results),
		TotalPages:   p.TotalPages,
		TotalResults: p.TotalResults,
	}
}

type detailsDTO struct {
	ID               int           `json:"id"`
	Title            string        `json:"title"`
	PosterPath       *string       `json:"poster_path"`
	Overview         string        `json:"overview"`
	ReleaseDate      string        `json:"release_date"`
	Runtime          int           `json:"runtime"`
	VoteAverage      float64       `json:"vote_average"`
	OriginalLanguage string        `json:"original_language"`
	Genres           []model.Genre `json:"genres"`
}

func (d detailsDTO) toDomain() model.MovieDetails {
	var poster string
	if d.PosterPath != nil {
		poster = *d.PosterPath
	}
	ids := make([]int, 0, len(d.Genres))
	for _, g := range d.Genres {
		ids = append(ids, g.ID)
	}
	return model.MovieDetails{
		ID:               d.ID,
		Title:            d.Title,
		PosterPath:       poster,
		Overview:         d.Overview,
		ReleaseDate:      d.ReleaseDate,
		Runtime:          d.Runtime,
		VoteAverage:      d.VoteAverage,
		OriginalLanguage: d.OriginalLanguage,
		GenreIDs:         ids,
	}
}

func moviesToDomain(in []movieDTO) []model.CatalogMovie {
	out := make([]model.CatalogMovie, 0, len(in))
	for _, m := range in {
		out = append(out, m.toDomain())
	}
	return out
}

// DiscoverQuery narrows /discover/movie. Zero values are omitted.
type DiscoverQuery struct {
	GenreID      int
	Language     string
	MinVoteCount int
	SortBy       string
	Page         int
}

func (q DiscoverQuery) values() url.Values {
	params := url.Values{}
	if q.GenreID != 0 {
		params.Set("with_genres", itoa(q.GenreID))
	}
	if q.Language != "" {
		params.Set("with_original_language", q.Language)
	}
	if q.MinVoteCount > 0 {
		params.Set("vote_count.gte", itoa(q.MinVoteCount))
	}
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = SortByPopularity
	}
	params.Set("sort_by", sortBy)
	page := q.Page
	if page <= 0 {
		page = 1
	}
	params.Set("page", itoa(page))
	params.Set("include_adult", "false")
	return params
}

// SearchByTitle returns the first search hit or nil when nothing matches.
func (c *Client) SearchByTitle(ctx context.Context, title string) (*model.CatalogMovie, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, nil
	}
	page, err := c.Search(ctx, title, 1)
	if err != nil {
		return nil, err
	}
	if len(page.Results) == 0 {
		return nil, nil
	}
	first := page.Results[0]
	c.titles.Put(first.ID, first.Title)
	return &first, nil
}

func (c *Client) Search(ctx context.Context, query string, page int) (model.MoviePage, error) {
	if page <= 0 {
		page = 1
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", itoa(page))
	params.Set("include_adult", "false")

	var out pageDTO
	if err := c.getJSON(ctx, "/search/movie", params, &out); err != nil {
		return model.MoviePage{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) Discover(ctx context.Context, q DiscoverQuery) ([]model.CatalogMovie, error) {
	page, err := c.DiscoverPage(ctx, q)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (c *Client) DiscoverPage(ctx context.Context, q DiscoverQuery) (model.MoviePage, error) {
	var out pageDTO
	if err := c.getJSON(ctx, "/discover/movie", q.values(), &out); err != nil {
		return model.MoviePage{}, err
	}
	return out.toDomain(), nil
}

// DiscoverByGenre is Discover restricted to one genre and optional language.
func (c *Client) DiscoverByGenre(ctx context.Context, genreID int, language string, minVoteCount int, sortBy string) ([]model.CatalogMovie, error) {
	return c.Discover(ctx, DiscoverQuery{
		GenreID:      genreID,
		Language:     language,
		MinVoteCount: minVoteCount,
		SortBy:       sortBy,
	})
}

func (c *Client) TopRated(ctx context.Context, minVoteCount int) ([]model.CatalogMovie, error) {
	return c.Discover(ctx, DiscoverQuery{
		MinVoteCount: minVoteCount,
		SortBy:       SortByRating,
	})
}

func (c *Client) Popular(ctx context.Context, page int) (model.MoviePage, error) {
	return c.DiscoverPage(ctx, DiscoverQuery{SortBy: SortByPopularity, Page: page})
}

func (c *Client) Trending(ctx context.Context) ([]model.CatalogMovie, error) {
	var out pageDTO
	if err := c.getJSON(ctx, "/trending/movie/week", nil, &out); err != nil {
		return nil, err
	}
	return moviesToDomain(out.Results), nil
}

func (c *Client) Details(ctx context.Context, movieID int) (model.MovieDetails, error) {
	var out detailsDTO
	if err := c.getJSON(ctx, "/movie/"+itoa(movieID), nil, &out); err != nil {
		return model.MovieDetails{}, err
	}
	d := out.toDomain()
	if d.Title != "" {
		c.titles.Put(d.ID, d.Title)
	}
	return d, nil
}

// FullDetails returns details with credits, recommendations, videos and
// watch providers appended, undecoded.
func (c *Client) FullDetails(ctx context.Context, movieID int) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("append_to_response", detailsAppend)
	return c.Raw(ctx, "/movie/"+itoa(movieID), params)
}

// Title resolves a movie title, consulting the title cache first.
func (c *Client) Title(ctx context.Context, movieID int) (string, error) {
	return c.titles.Resolve(ctx, movieID, func(ctx context.Context, id int) (string, error) {
		var out detailsDTO
		if err := c.getJSON(ctx, "/movie/"+itoa(id), nil, &out); err != nil {
			return "", err
		}
		return out.Title, nil
	})
}

func (c *Client) Genres(ctx context.Context) ([]model.Genre, error) {
	var out struct {
		Genres []model.Genre `json:"genres"`
	}
	if err := c.getJSON(ctx, "/genre/movie/list", nil, &out); err != nil {
		return nil, err
	}
	return out.Genres, nil
}

func (c *Client) Languages(ctx context.Context) ([]model.Language, error) {
	var out []model.Language
	if err := c.getJSON(ctx, "/configuration/languages", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
