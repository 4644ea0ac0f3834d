package model

// CatalogMovie is a movie as returned by the catalog search/discover endpoints.
type CatalogMovie struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	PosterPath       string  `json:"poster_path"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	OriginalLanguage string  `json:"original_language"`
	GenreIDs         []int   `json:"genre_ids"`
}

// Year is the release year or empty when the date is unknown.
func (m CatalogMovie) Year() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}

type MoviePage struct {
	Page         int            `json:"page"`
	Results      []CatalogMovie `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

type MovieDetails struct {
	ID               int
	Title            string
	PosterPath       string
	Overview         string
	ReleaseDate      string
	Runtime          int
	VoteAverage      float64
	OriginalLanguage string
	GenreIDs         []int
}

// HasGenre reports whether the movie is tagged with genreID and, when
// language is set, was originally produced in that language.
func (d MovieDetails) HasGenre(genreID int, language string) bool {
	if language != "" && d.OriginalLanguage != language {
		return false
	}
	for _, id := range d.GenreIDs {
		if id == genreID {
			return true
		}
	}
	return false
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Language struct {
	Code        string `json:"iso_639_1"`
	EnglishName string `json:"english_name"`
	Name        string `json:"name"`
}

// RecommendationCandidate is a single entry of the model output, not yet
// checked against the catalog.
type RecommendationCandidate struct {
	Title string
	Year  string
}

// FinalMovie is a catalog-confirmed recommendation.
type FinalMovie struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
	Overview   string `json:"overview"`
}

func FinalFromCatalog(m CatalogMovie) FinalMovie {
	return FinalMovie{
		ID:         m.ID,
		Title:      m.Title,
		PosterPath: m.PosterPath,
		Overview:   m.Overview,
	}
}

func FinalFromDetails(d MovieDetails) FinalMovie {
	return FinalMovie{
		ID:         d.ID,
		Title:      d.Title,
		PosterPath: d.PosterPath,
		Overview:   d.Overview,
	}
}
