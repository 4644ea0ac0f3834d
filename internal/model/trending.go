package model

import "time"

type TrendingSearch struct {
	ID         int64
	SearchTerm string
	MovieID    int
	PosterURL  string
	Title      string
	Count      int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
