package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/bkovac/feedwatch.api/data"
	"github.com/bkovac/feedwatch.api/data/repos"
	"github.com/bkovac/feedwatch.api/models"
)

type FeedHandler struct {
	repo *repos.FeedRepo
}

func NewFeedHandler(repo *repos.FeedRepo) *FeedHandler {
	return &FeedHandler{repo}
}

func (h *FeedHandler) CreateFeed(w http.ResponseWriter, r *http.Request) Result {
	var req models.CreateFeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return BadRequest("Name is required.")
	}
	// The URL is not validated beyond non-emptiness; a bad URL simply fails
	// to fetch.
	url := strings.TrimSpace(req.URL)
	if url == "" {
		return BadRequest("URL is required.")
	}

	feed := data.Feed{
		Name:   name,
		URL:    url,
		Active: true,
	}

	id, err := h.repo.CreateFeed(feed)
	if err != nil {
		return InternalError(err, "create feed: ")
	}

	return Created(id)
}

func (h *FeedHandler) GetFeeds(w http.ResponseWriter, r *http.Request) Result {
	feeds, err := h.repo.GetFeeds()
	if err != nil {
		return InternalError(err, "get feeds: ")
	}

	res := &models.GetFeedsResponse{Feeds: make([]models.Feed, 0)}
	for _, f := range feeds {
		res.Feeds = append(res.Feeds, models.Feed{
			ID:           f.ID,
			Name:         f.Name,
			URL:          f.URL,
			Active:       f.Active,
			LastPolledAt: f.LastPolledAt,
			CreatedAt:    f.CreatedAt,
		})
	}

	return Ok(res)
}

func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) Result {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid feed ID.")
	}

	feed, err := h.repo.GetFeedByID(id)
	if err != nil {
		return InternalError(err, "get feed: ")
	}
	if feed == nil {
		return NotFound("Feed not found.")
	}

	return Ok(models.Feed{
		ID:           feed.ID,
		Name:         feed.Name,
		URL:          feed.URL,
		Active:       feed.Active,
		LastPolledAt: feed.LastPolledAt,
		CreatedAt:    feed.CreatedAt,
	})
}

// UpdateFeed renames and activates/deactivates a feed. Feeds are never hard
// deleted; matches keep referencing them.
func (h *FeedHandler) UpdateFeed(w http.ResponseWriter, r *http.Request) Result {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid feed ID.")
	}

	var req models.UpdateFeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return BadRequest("Name is required.")
	}

	existing, err := h.repo.GetFeedByID(id)
	if err != nil {
		return InternalError(err, "get feed: ")
	}
	if existing == nil {
		return NotFound("Feed not found.")
	}

	existing.Name = name
	existing.Active = req.Active
	if err := h.repo.UpdateFeed(*existing); err != nil {
		return InternalError(err, "update feed: ")
	}

	return Ok(nil)
}
