package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cs2hub/stats-api/internal/logic"
	"github.com/cs2hub/stats-api/internal/models"
	"github.com/cs2hub/stats-api/internal/store"
)

// decodeBody decodes and validates a size-capped JSON request body.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	if err := h.validator.Struct(dst); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Counters must be non-negative")
		return false
	}
	return true
}

// monthParams parses and bounds-checks the {year}/{month} URL segments.
func (h *Handler) monthParams(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 2000 || year > 2100 {
		h.errorResponse(w, http.StatusBadRequest, "Invalid year")
		return 0, 0, false
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		h.errorResponse(w, http.StatusBadRequest, "Invalid month")
		return 0, 0, false
	}
	return year, month, true
}

// lookupPlayer resolves the {steamID} URL segment to a stored player, writing
// the error response itself on failure.
func (h *Handler) lookupPlayer(w http.ResponseWriter, r *http.Request) (*models.Player, bool) {
	steamID := chi.URLParam(r, "steamID")

	player, err := h.store.GetPlayerBySteamID(r.Context(), steamID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Player not found")
			return nil, false
		}
		h.logger.Errorw("Player lookup failed", "steam_id", steamID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to look up player")
		return nil, false
	}
	return player, true
}

// lookupMonthly resolves {steamID}/{year}/{month} to a monthly record.
func (h *Handler) lookupMonthly(w http.ResponseWriter, r *http.Request) (*models.MonthlyStat, bool) {
	player, ok := h.lookupPlayer(w, r)
	if !ok {
		return nil, false
	}
	year, month, ok := h.monthParams(w, r)
	if !ok {
		return nil, false
	}

	monthly, err := h.store.GetMonthlyStat(r.Context(), player.ID, year, month)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Monthly record not found")
			return nil, false
		}
		h.logger.Errorw("Monthly lookup failed", "player_id", player.ID, "year", year, "month", month, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to look up monthly record")
		return nil, false
	}
	return monthly, true
}

// UpsertMonthlyStat creates or replaces one month of stats for a player
// @Summary Upsert Monthly Stats
// @Description Create or overwrite the stat counters for one (player, year, month)
// @Tags Admin
// @Accept json
// @Produce json
// @Param steamID path string true "Steam ID"
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param request body models.UpsertMonthlyStatRequest true "Counters"
// @Success 200 {object} models.MonthlyStat "Stored record with derived ratios"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /admin/players/{steamID}/monthly/{year}/{month} [put]
func (h *Handler) UpsertMonthlyStat(w http.ResponseWriter, r *http.Request) {
	player, ok := h.lookupPlayer(w, r)
	if !ok {
		return
	}
	year, month, ok := h.monthParams(w, r)
	if !ok {
		return
	}

	var req models.UpsertMonthlyStatRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	record := &models.MonthlyStat{
		PlayerID:       player.ID,
		Year:           year,
		Month:          month,
		MatchesPlayed:  req.MatchesPlayed,
		Kills:          req.Kills,
		Deaths:         req.Deaths,
		Assists:        req.Assists,
		Headshots:      req.Headshots,
		Wins:           req.Wins,
		MVPs:           req.MVPs,
		DamagePerRound: req.DamagePerRound,
		UtilityDamage:  req.UtilityDamage,
		ClutchesWon:    req.ClutchesWon,
		Plants:         req.Plants,
		Defuses:        req.Defuses,
		Notes:          req.Notes,
	}

	stored, err := h.store.UpsertMonthlyStat(r.Context(), record)
	if err != nil {
		h.logger.Errorw("Failed to upsert monthly stat", "player_id", player.ID, "year", year, "month", month, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to store monthly record")
		return
	}

	logic.DeriveMonthly(stored)
	h.jsonResponse(w, http.StatusOK, stored)
}

// DeleteMonthlyStat removes one month of stats
// @Summary Delete Monthly Stats
// @Tags Admin
// @Produce json
// @Param steamID path string true "Steam ID"
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /admin/players/{steamID}/monthly/{year}/{month} [delete]
func (h *Handler) DeleteMonthlyStat(w http.ResponseWriter, r *http.Request) {
	player, ok := h.lookupPlayer(w, r)
	if !ok {
		return
	}
	year, month, ok := h.monthParams(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteMonthlyStat(r.Context(), player.ID, year, month); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Monthly record not found")
			return
		}
		h.logger.Errorw("Failed to delete monthly stat", "player_id", player.ID, "year", year, "month", month, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to delete monthly record")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpsertWeaponStat creates or replaces a weapon breakdown inside one month
// @Summary Upsert Weapon Stats
// @Tags Admin
// @Accept json
// @Produce json
// @Param steamID path string true "Steam ID"
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param weapon path string true "Weapon name"
// @Param request body models.UpsertWeaponStatRequest true "Counters"
// @Success 200 {object} models.WeaponStat "Stored record with derived ratios"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /admin/players/{steamID}/monthly/{year}/{month}/weapons/{weapon} [put]
func (h *Handler) UpsertWeaponStat(w http.ResponseWriter, r *http.Request) {
	monthly, ok := h.lookupMonthly(w, r)
	if !ok {
		return
	}

	var req models.UpsertWeaponStatRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	record := &models.WeaponStat{
		MonthlyStatID: monthly.ID,
		Weapon:        chi.URLParam(r, "weapon"),
		CustomName:    req.CustomName,
		Kills:         req.Kills,
		Headshots:     req.Headshots,
		ShotsFired:    req.ShotsFired,
		Hits:          req.Hits,
	}

	stored, err := h.store.UpsertWeaponStat(r.Context(), record)
	if err != nil {
		h.logger.Errorw("Failed to upsert weapon stat", "monthly_stat_id", monthly.ID, "weapon", record.Weapon, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to store weapon record")
		return
	}

	logic.DeriveWeapon(stored)
	h.jsonResponse(w, http.StatusOK, stored)
}

// DeleteWeaponStat removes a weapon breakdown from one month
// @Summary Delete Weapon Stats
// @Tags Admin
// @Produce json
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /admin/players/{steamID}/monthly/{year}/{month}/weapons/{weapon} [delete]
func (h *Handler) DeleteWeaponStat(w http.ResponseWriter, r *http.Request) {
	monthly, ok := h.lookupMonthly(w, r)
	if !ok {
		return
	}

	weapon := chi.URLParam(r, "weapon")
	if err := h.store.DeleteWeaponStat(r.Context(), monthly.ID, weapon); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Weapon record not found")
			return
		}
		h.logger.Errorw("Failed to delete weapon stat", "monthly_stat_id", monthly.ID, "weapon", weapon, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to delete weapon record")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpsertMapStat creates or replaces a map breakdown inside one month
// @Summary Upsert Map Stats
// @Tags Admin
// @Accept json
// @Produce json
// @Param steamID path string true "Steam ID"
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param mapName path string true "Map name"
// @Param request body models.UpsertMapStatRequest true "Counters"
// @Success 200 {object} models.MapStat "Stored record with derived ratios"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /admin/players/{steamID}/monthly/{year}/{month}/maps/{mapName} [put]
func (h *Handler) UpsertMapStat(w http.ResponseWriter, r *http.Request) {
	monthly, ok := h.lookupMonthly(w, r)
	if !ok {
		return
	}

	var req models.UpsertMapStatRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	record := &models.MapStat{
		MonthlyStatID: monthly.ID,
		MapName:       chi.URLParam(r, "mapName"),
		MatchesPlayed: req.MatchesPlayed,
		Wins:          req.Wins,
		Kills:         req.Kills,
		Deaths:        req.Deaths,
		Plants:        req.Plants,
		Defuses:       req.Defuses,
		Notes:         req.Notes,
	}

	stored, err := h.store.UpsertMapStat(r.Context(), record)
	if err != nil {
		h.logger.Errorw("Failed to upsert map stat", "monthly_stat_id", monthly.ID, "map", record.MapName, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to store map record")
		return
	}

	logic.DeriveMap(stored)
	h.jsonResponse(w, http.StatusOK, stored)
}

// DeleteMapStat removes a map breakdown from one month
// @Summary Delete Map Stats
// @Tags Admin
// @Produce json
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /admin/players/{steamID}/monthly/{year}/{month}/maps/{mapName} [delete]
func (h *Handler) DeleteMapStat(w http.ResponseWriter, r *http.Request) {
	monthly, ok := h.lookupMonthly(w, r)
	if !ok {
		return
	}

	mapName := chi.URLParam(r, "mapName")
	if err := h.store.DeleteMapStat(r.Context(), monthly.ID, mapName); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Map record not found")
			return
		}
		h.logger.Errorw("Failed to delete map stat", "monthly_stat_id", monthly.ID, "map", mapName, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to delete map record")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpsertTeammateStat creates or replaces a teammate record for a player
// @Summary Upsert Teammate Stats
// @Tags Admin
// @Accept json
// @Produce json
// @Param steamID path string true "Steam ID"
// @Param teammateSteamID path string true "Teammate Steam ID"
// @Param request body models.UpsertTeammateStatRequest true "Counters"
// @Success 200 {object} models.TeammateStat "Stored record with derived ratio"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /admin/players/{steamID}/teammates/{teammateSteamID} [put]
func (h *Handler) UpsertTeammateStat(w http.ResponseWriter, r *http.Request) {
	player, ok := h.lookupPlayer(w, r)
	if !ok {
		return
	}

	var req models.UpsertTeammateStatRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	record := &models.TeammateStat{
		PlayerID:         player.ID,
		TeammateSteamID:  chi.URLParam(r, "teammateSteamID"),
		TeammateNickname: req.TeammateNickname,
		MatchesTogether:  req.MatchesTogether,
		WinsTogether:     req.WinsTogether,
	}

	stored, err := h.store.UpsertTeammateStat(r.Context(), record)
	if err != nil {
		h.logger.Errorw("Failed to upsert teammate stat", "player_id", player.ID, "teammate", record.TeammateSteamID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to store teammate record")
		return
	}

	logic.DeriveTeammate(stored)
	h.jsonResponse(w, http.StatusOK, stored)
}

// DeleteTeammateStat removes a teammate record
// @Summary Delete Teammate Stats
// @Tags Admin
// @Produce json
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /admin/players/{steamID}/teammates/{teammateSteamID} [delete]
func (h *Handler) DeleteTeammateStat(w http.ResponseWriter, r *http.Request) {
	player, ok := h.lookupPlayer(w, r)
	if !ok {
		return
	}

	teammateSteamID := chi.URLParam(r, "teammateSteamID")
	if err := h.store.DeleteTeammateStat(r.Context(), player.ID, teammateSteamID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Teammate record not found")
			return
		}
		h.logger.Errorw("Failed to delete teammate stat", "player_id", player.ID, "teammate", teammateSteamID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to delete teammate record")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
