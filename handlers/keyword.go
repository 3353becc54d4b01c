package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/bkovac/feedwatch.api/data"
	"github.com/bkovac/feedwatch.api/data/repos"
	"github.com/bkovac/feedwatch.api/enums"
	"github.com/bkovac/feedwatch.api/models"
)

type KeywordHandler struct {
	repo *repos.KeywordRepo
}

func NewKeywordHandler(repo *repos.KeywordRepo) *KeywordHandler {
	return &KeywordHandler{repo}
}

func (h *KeywordHandler) CreateKeyword(w http.ResponseWriter, r *http.Request) Result {
	var req models.CreateKeywordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	value := strings.TrimSpace(req.Keyword)
	if value == "" {
		return BadRequest("Keyword is required.")
	}
	if len(value) > 100 {
		return BadRequest("Keyword must be at most 100 characters.")
	}

	mode := enums.MatchModeBroad
	if req.MatchMode != "" {
		mode = enums.ParseMatchMode(req.MatchMode)
		if mode == enums.MatchModeInvalid {
			return BadRequest("Match mode must be 'broad' or 'exact'.")
		}
	}

	keyword := data.Keyword{
		Keyword:   value,
		MatchMode: mode,
		Active:    true,
	}

	id, err := h.repo.CreateKeyword(keyword)
	if err != nil {
		if errors.Is(err, data.ErrEmptyKeyword) {
			return BadRequest("Keyword is required.")
		}
		return InternalError(err, "create keyword: ")
	}

	return Created(id)
}

func (h *KeywordHandler) GetKeywords(w http.ResponseWriter, r *http.Request) Result {
	keywords, err := h.repo.GetKeywords()
	if err != nil {
		return InternalError(err, "get keywords: ")
	}

	res := &models.GetKeywordsResponse{Keywords: make([]models.Keyword, 0)}
	for _, k := range keywords {
		res.Keywords = append(res.Keywords, models.Keyword{
			ID:        k.ID,
			Keyword:   k.Keyword,
			MatchMode: string(k.MatchMode),
			Active:    k.Active,
		})
	}

	return Ok(res)
}

func (h *KeywordHandler) GetKeyword(w http.ResponseWriter, r *http.Request) Result {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid keyword ID.")
	}

	keyword, err := h.repo.GetKeywordByID(id)
	if err != nil {
		return InternalError(err, "get keyword: ")
	}
	if keyword == nil {
		return NotFound("Keyword not found.")
	}

	return Ok(models.Keyword{
		ID:        keyword.ID,
		Keyword:   keyword.Keyword,
		MatchMode: string(keyword.MatchMode),
		Active:    keyword.Active,
	})
}

func (h *KeywordHandler) UpdateKeyword(w http.ResponseWriter, r *http.Request) Result {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid keyword ID.")
	}

	var req models.UpdateKeywordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	value := strings.TrimSpace(req.Keyword)
	if value == "" {
		return BadRequest("Keyword is required.")
	}

	mode := enums.ParseMatchMode(req.MatchMode)
	if mode == enums.MatchModeInvalid {
		return BadRequest("Match mode must be 'broad' or 'exact'.")
	}

	keyword := data.Keyword{
		ID:        id,
		Keyword:   value,
		MatchMode: mode,
		Active:    req.Active,
	}

	if err := h.repo.UpdateKeyword(keyword); err != nil {
		if errors.Is(err, data.ErrEmptyKeyword) {
			return BadRequest("Keyword is required.")
		}
		return InternalError(err, "update keyword: ")
	}

	return Ok(nil)
}
