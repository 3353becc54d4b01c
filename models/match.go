package models

import (
	"time"

	"github.com/google/uuid"
)

type Match struct {
	ID          uuid.UUID  `json:"id"`
	FeedID      int        `json:"feedId"`
	Keyword     string     `json:"keyword"`
	Title       string     `json:"title"`
	Snippet     string     `json:"snippet"`
	Link        string     `json:"link"`
	Language    string     `json:"language"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type GetMatchesResponse struct {
	Matches []Match `json:"matches"`
	Total   int     `json:"total"`
	Page    int     `json:"page"`
	PerPage int     `json:"perPage"`
}
