package handlers

import (
	"net/http"

	"github.com/bkovac/feedwatch.api/models"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) Result {
	return Ok(models.HealthResponse{Status: "ok"})
}
