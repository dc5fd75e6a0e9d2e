package steam

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetProfileSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ISteamUser/GetPlayerSummaries/v2/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("steamids"); got != "76561198000000001" {
			t.Errorf("steamids = %s", got)
		}
		fmt.Fprint(w, `{"response":{"players":[{
			"personaname":"s1mple",
			"avatarfull":"https://avatars.example/full.jpg",
			"profileurl":"https://steamcommunity.com/id/s1mple/",
			"loccountrycode":"UA"
		}]}}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL, time.Second)
	summary, err := c.GetProfileSummary(context.Background(), "76561198000000001")
	if err != nil {
		t.Fatalf("GetProfileSummary() error = %v", err)
	}
	if summary.Nickname != "s1mple" {
		t.Errorf("Nickname = %s, want s1mple", summary.Nickname)
	}
	if summary.CountryCode != "UA" {
		t.Errorf("CountryCode = %s, want UA", summary.CountryCode)
	}
}

func TestGetProfileSummaryNoPlayers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"response":{"players":[]}}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL, time.Second)
	if _, err := c.GetProfileSummary(context.Background(), "badid"); err == nil {
		t.Error("expected error for empty player list")
	}
}

func TestGetProfileSummaryServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("bad-key", srv.URL, time.Second)
	if _, err := c.GetProfileSummary(context.Background(), "76561198000000001"); err == nil {
		t.Error("expected error for non-200 status")
	}
}

func TestGetCS2Hours(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantHours float64
		wantFound bool
	}{
		{
			name:      "owns cs2",
			body:      `{"response":{"games":[{"appid":440,"playtime_forever":12000},{"appid":730,"playtime_forever":90330}]}}`,
			wantHours: 1505.5,
			wantFound: true,
		},
		{
			name:      "rounds to one decimal",
			body:      `{"response":{"games":[{"appid":730,"playtime_forever":61}]}}`,
			wantHours: 1.0,
			wantFound: true,
		},
		{
			name:      "does not own cs2",
			body:      `{"response":{"games":[{"appid":440,"playtime_forever":500}]}}`,
			wantHours: 0,
			wantFound: false,
		},
		{
			name:      "private game list",
			body:      `{"response":{}}`,
			wantHours: 0,
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/IPlayerService/GetOwnedGames/v1/" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			c := NewClientWithBaseURL("test-key", srv.URL, time.Second)
			hours, found, err := c.GetCS2Hours(context.Background(), "76561198000000001")
			if err != nil {
				t.Fatalf("GetCS2Hours() error = %v", err)
			}
			if hours != tt.wantHours {
				t.Errorf("hours = %v, want %v", hours, tt.wantHours)
			}
			if found != tt.wantFound {
				t.Errorf("found = %v, want %v", found, tt.wantFound)
			}
		})
	}
}
