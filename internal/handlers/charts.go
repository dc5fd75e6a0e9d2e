package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cs2hub/stats-api/internal/logic"
	"github.com/cs2hub/stats-api/internal/store"
)

// GetPlayerCharts returns the chart-ready monthly series for a player
// @Summary Get Player Charts
// @Description Fetch K/D, win rate and matches-played series plus profile totals, ready for rendering
// @Tags Player
// @Produce json
// @Param steamID path string true "Steam ID"
// @Success 200 {object} models.ProfileCharts "Chart series"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /players/{steamID}/charts [get]
func (h *Handler) GetPlayerCharts(w http.ResponseWriter, r *http.Request) {
	steamID := chi.URLParam(r, "steamID")
	ctx := r.Context()

	player, err := h.store.GetPlayerBySteamID(ctx, steamID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Player not found")
			return
		}
		h.logger.Errorw("Player lookup failed", "steam_id", steamID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to look up player")
		return
	}

	monthly, err := h.store.ListMonthlyStats(ctx, player.ID)
	if err != nil {
		h.logger.Errorw("Failed to list monthly stats", "steam_id", steamID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to load monthly stats")
		return
	}

	h.jsonResponse(w, http.StatusOK, logic.BuildProfileCharts(monthly))
}
