package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bkovac/feedwatch.api/data/repos"
	"github.com/bkovac/feedwatch.api/models"
)

type MatchHandler struct {
	repo *repos.MatchRepo
}

func NewMatchHandler(repo *repos.MatchRepo) *MatchHandler {
	return &MatchHandler{repo}
}

func (h *MatchHandler) GetMatches(w http.ResponseWriter, r *http.Request) Result {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	perPage := 20
	offset := (page - 1) * perPage

	filter := repos.MatchFilter{
		Keyword: r.URL.Query().Get("keyword"),
	}
	if v := r.URL.Query().Get("feed_id"); v != "" {
		feedID, err := strconv.Atoi(v)
		if err != nil {
			return BadRequest("Invalid feed_id.")
		}
		filter.FeedID = feedID
	}
	if v := r.URL.Query().Get("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return BadRequest("Invalid 'from' timestamp, expected RFC 3339.")
		}
		filter.From = &from
	}
	if v := r.URL.Query().Get("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return BadRequest("Invalid 'to' timestamp, expected RFC 3339.")
		}
		filter.To = &to
	}

	matches, total, err := h.repo.GetMatches(filter, perPage, offset)
	if err != nil {
		return InternalError(err, "get matches: ")
	}

	res := models.GetMatchesResponse{
		Matches: make([]models.Match, 0, len(matches)),
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}

	for _, m := range matches {
		res.Matches = append(res.Matches, models.Match{
			ID:          m.PublicID,
			FeedID:      m.FeedID,
			Keyword:     m.Keyword,
			Title:       m.Title,
			Snippet:     m.Snippet,
			Link:        m.Link,
			Language:    m.Language,
			PublishedAt: m.PublishedAt,
			CreatedAt:   m.CreatedAt,
		})
	}

	return Ok(res)
}
