package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cs2hub/stats-api/internal/models"
	"github.com/cs2hub/stats-api/internal/store"
)

// SearchPlayer looks a player up by Steam ID, creating the record on first
// sight
// @Summary Search Player
// @Description Look up a player by Steam ID; unknown IDs create a new profile and trigger a Steam sync
// @Tags Player
// @Accept json
// @Produce json
// @Param request body models.SearchPlayerRequest true "Steam ID"
// @Success 200 {object} models.PlayerProfile "Existing player"
// @Success 201 {object} models.PlayerProfile "Newly created player"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /players/search [post]
func (h *Handler) SearchPlayer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.SearchPlayerRequest
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "steam_id is required")
		return
	}

	_, err := h.store.GetPlayerBySteamID(ctx, req.SteamID)
	if err == nil {
		profile, err := h.profile.GetProfile(ctx, req.SteamID)
		if err != nil {
			h.logger.Errorw("Failed to build profile", "steam_id", req.SteamID, "error", err)
			h.errorResponse(w, http.StatusInternalServerError, "Failed to load profile")
			return
		}
		h.jsonResponse(w, http.StatusOK, profile)
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		h.logger.Errorw("Player lookup failed", "steam_id", req.SteamID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to look up player")
		return
	}

	if _, err := h.store.CreatePlayer(ctx, req.SteamID); err != nil {
		h.logger.Errorw("Failed to create player", "steam_id", req.SteamID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to create player")
		return
	}

	// Best-effort: a failed sync still returns the bare profile.
	h.sync.Sync(ctx, req.SteamID)

	profile, err := h.profile.GetProfile(ctx, req.SteamID)
	if err != nil {
		h.logger.Errorw("Failed to build profile", "steam_id", req.SteamID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	h.jsonResponse(w, http.StatusCreated, profile)
}

// GetPlayerProfile returns the full profile page payload
// @Summary Get Player Profile
// @Description Fetch the player with overall stats, monthly history, weapon and map rollups, teammates and chart series
// @Tags Player
// @Produce json
// @Param steamID path string true "Steam ID"
// @Success 200 {object} models.PlayerProfile "Player Profile"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /players/{steamID} [get]
func (h *Handler) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	steamID := chi.URLParam(r, "steamID")
	ctx := r.Context()

	profile, err := h.profile.GetProfile(ctx, steamID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Player not found")
			return
		}
		h.logger.Errorw("Failed to build profile", "steam_id", steamID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	h.jsonResponse(w, http.StatusOK, profile)
}

// SyncPlayer refreshes a player's Steam profile on demand
// @Summary Sync Player
// @Description Refresh nickname, avatar and playtime from the Steam Web API
// @Tags Player
// @Produce json
// @Param steamID path string true "Steam ID"
// @Success 200 {object} models.SyncResponse "Sync result"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /players/{steamID}/sync [post]
func (h *Handler) SyncPlayer(w http.ResponseWriter, r *http.Request) {
	steamID := chi.URLParam(r, "steamID")
	ctx := r.Context()

	if _, err := h.store.GetPlayerBySteamID(ctx, steamID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Player not found")
			return
		}
		h.logger.Errorw("Player lookup failed", "steam_id", steamID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to look up player")
		return
	}

	synced := h.sync.Sync(ctx, steamID)
	h.jsonResponse(w, http.StatusOK, models.SyncResponse{Synced: synced})
}

// DeletePlayer removes a player and all their stats
// @Summary Delete Player
// @Description Delete a player; monthly, weapon, map and teammate records cascade
// @Tags Admin
// @Produce json
// @Param steamID path string true "Steam ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /admin/players/{steamID} [delete]
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	steamID := chi.URLParam(r, "steamID")

	if err := h.store.DeletePlayer(r.Context(), steamID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Player not found")
			return
		}
		h.logger.Errorw("Failed to delete player", "steam_id", steamID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to delete player")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
