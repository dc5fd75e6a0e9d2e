package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cs2hub/stats-api/internal/models"
	"github.com/cs2hub/stats-api/internal/store"
)

func adminRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(h.AdminAuthMiddleware)
		r.Put("/players/{steamID}/monthly/{year}/{month}", h.UpsertMonthlyStat)
		r.Delete("/players/{steamID}/monthly/{year}/{month}", h.DeleteMonthlyStat)
		r.Put("/players/{steamID}/monthly/{year}/{month}/weapons/{weapon}", h.UpsertWeaponStat)
		r.Delete("/players/{steamID}/monthly/{year}/{month}/weapons/{weapon}", h.DeleteWeaponStat)
		r.Put("/players/{steamID}/monthly/{year}/{month}/maps/{mapName}", h.UpsertMapStat)
		r.Put("/players/{steamID}/teammates/{teammateSteamID}", h.UpsertTeammateStat)
		r.Delete("/players/{steamID}/teammates/{teammateSteamID}", h.DeleteTeammateStat)
	})
	return r
}

func adminRequest(method, path, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("X-Admin-Token", "test-token")
	return req
}

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"wrong token", "wrong", http.StatusUnauthorized},
		{"valid token", "test-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&mockStatsStore{}, &mockProfileService{}, &mockSyncer{})
			r := adminRouter(h)

			req := httptest.NewRequest("PUT", "/api/v1/admin/players/76561198000000001/monthly/2025/6",
				strings.NewReader(`{"matches_played":10,"kills":50,"deaths":25}`))
			if tt.token != "" {
				req.Header.Set("X-Admin-Token", tt.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestUpsertMonthlyStatDerivesRatios(t *testing.T) {
	h := newTestHandler(&mockStatsStore{}, &mockProfileService{}, &mockSyncer{})
	r := adminRouter(h)

	body := `{"matches_played":20,"kills":50,"deaths":25,"headshots":20,"wins":11,"damage_per_round":85.67}`
	req := adminRequest("PUT", "/api/v1/admin/players/76561198000000001/monthly/2025/6", body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	got := w.Body.String()
	for _, want := range []string{`"kd_ratio":2`, `"win_rate":55`, `"headshot_percent":40`, `"adr":85.7`} {
		if !strings.Contains(got, want) {
			t.Errorf("body missing %s: %s", want, got)
		}
	}
}

func TestUpsertMonthlyStatBadParams(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{"month zero", "/api/v1/admin/players/x/monthly/2025/0", `{}`},
		{"month thirteen", "/api/v1/admin/players/x/monthly/2025/13", `{}`},
		{"year junk", "/api/v1/admin/players/x/monthly/abcd/6", `{}`},
		{"negative counter", "/api/v1/admin/players/x/monthly/2025/6", `{"kills":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&mockStatsStore{}, &mockProfileService{}, &mockSyncer{})
			r := adminRouter(h)

			req := adminRequest("PUT", tt.path, tt.body)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestUpsertMonthlyStatPlayerNotFound(t *testing.T) {
	st := &mockStatsStore{
		GetPlayerBySteamIDFunc: func(ctx context.Context, steamID string) (*models.Player, error) {
			return nil, store.ErrNotFound
		},
	}
	h := newTestHandler(st, &mockProfileService{}, &mockSyncer{})
	r := adminRouter(h)

	req := adminRequest("PUT", "/api/v1/admin/players/unknown/monthly/2025/6", `{"kills":1}`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDeleteMonthlyStat(t *testing.T) {
	h := newTestHandler(&mockStatsStore{}, &mockProfileService{}, &mockSyncer{})
	r := adminRouter(h)

	req := adminRequest("DELETE", "/api/v1/admin/players/76561198000000001/monthly/2025/6", "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
}

func TestUpsertWeaponStat(t *testing.T) {
	monthlyID := uuid.New()
	var gotRecord *models.WeaponStat
	st := &mockStatsStore{
		GetMonthlyStatFunc: func(ctx context.Context, playerID uuid.UUID, year, month int) (*models.MonthlyStat, error) {
			return &models.MonthlyStat{ID: monthlyID, PlayerID: playerID, Year: year, Month: month}, nil
		},
		UpsertWeaponStatFunc: func(ctx context.Context, w *models.WeaponStat) (*models.WeaponStat, error) {
			gotRecord = w
			out := *w
			out.ID = uuid.New()
			return &out, nil
		},
	}
	h := newTestHandler(st, &mockProfileService{}, &mockSyncer{})
	r := adminRouter(h)

	body := `{"kills":40,"headshots":24,"shots_fired":1000,"hits":230}`
	req := adminRequest("PUT", "/api/v1/admin/players/76561198000000001/monthly/2025/6/weapons/ak47", body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if gotRecord == nil || gotRecord.Weapon != "ak47" || gotRecord.MonthlyStatID != monthlyID {
		t.Errorf("stored record = %+v", gotRecord)
	}
	got := w.Body.String()
	if !strings.Contains(got, `"headshot_percent":60`) || !strings.Contains(got, `"accuracy":23`) {
		t.Errorf("body = %s", got)
	}
}

func TestUpsertWeaponStatMonthlyNotFound(t *testing.T) {
	st := &mockStatsStore{
		GetMonthlyStatFunc: func(ctx context.Context, playerID uuid.UUID, year, month int) (*models.MonthlyStat, error) {
			return nil, store.ErrNotFound
		},
	}
	h := newTestHandler(st, &mockProfileService{}, &mockSyncer{})
	r := adminRouter(h)

	req := adminRequest("PUT", "/api/v1/admin/players/x/monthly/2025/6/weapons/ak47", `{"kills":1}`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDeleteWeaponStatNotFound(t *testing.T) {
	st := &mockStatsStore{
		DeleteWeaponStatFunc: func(ctx context.Context, monthlyStatID uuid.UUID, weapon string) error {
			return store.ErrNotFound
		},
	}
	h := newTestHandler(st, &mockProfileService{}, &mockSyncer{})
	r := adminRouter(h)

	req := adminRequest("DELETE", "/api/v1/admin/players/x/monthly/2025/6/weapons/awp", "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestUpsertMapStat(t *testing.T) {
	h := newTestHandler(&mockStatsStore{}, &mockProfileService{}, &mockSyncer{})
	r := adminRouter(h)

	body := `{"matches_played":10,"wins":6,"kills":180,"deaths":150}`
	req := adminRequest("PUT", "/api/v1/admin/players/76561198000000001/monthly/2025/6/maps/de_mirage", body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	got := w.Body.String()
	if !strings.Contains(got, `"map_name":"de_mirage"`) || !strings.Contains(got, `"win_rate":60`) {
		t.Errorf("body = %s", got)
	}
}

func TestUpsertTeammateStat(t *testing.T) {
	h := newTestHandler(&mockStatsStore{}, &mockProfileService{}, &mockSyncer{})
	r := adminRouter(h)

	body := `{"teammate_nickname":"mate","matches_together":40,"wins_together":18}`
	req := adminRequest("PUT", "/api/v1/admin/players/76561198000000001/teammates/76561198000000099", body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	got := w.Body.String()
	if !strings.Contains(got, `"teammate_steam_id":"76561198000000099"`) || !strings.Contains(got, `"win_rate_together":45`) {
		t.Errorf("body = %s", got)
	}
}

func TestDeleteTeammateStatNotFound(t *testing.T) {
	st := &mockStatsStore{
		DeleteTeammateStatFunc: func(ctx context.Context, playerID uuid.UUID, teammateSteamID string) error {
			return store.ErrNotFound
		},
	}
	h := newTestHandler(st, &mockProfileService{}, &mockSyncer{})
	r := adminRouter(h)

	req := adminRequest("DELETE", "/api/v1/admin/players/x/teammates/y", "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
