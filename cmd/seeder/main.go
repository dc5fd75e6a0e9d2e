package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

// Config
const (
	API_URL     = "http://localhost:8080/api/v1"
	ADMIN_TOKEN = "seed-secret-123"
	STEAM_ID    = "76561198000000001"
)

type monthlyStats struct {
	MatchesPlayed  int64   `json:"matches_played"`
	Kills          int64   `json:"kills"`
	Deaths         int64   `json:"deaths"`
	Assists        int64   `json:"assists"`
	Headshots      int64   `json:"headshots"`
	Wins           int64   `json:"wins"`
	MVPs           int64   `json:"mvps"`
	DamagePerRound float64 `json:"damage_per_round"`
	Notes          string  `json:"notes"`
}

type weaponStats struct {
	Kills      int64 `json:"kills"`
	Headshots  int64 `json:"headshots"`
	ShotsFired int64 `json:"shots_fired"`
	Hits       int64 `json:"hits"`
}

func main() {
	// 1. Create the player via search (creates on first sight)
	post("/players/search", map[string]string{"steam_id": STEAM_ID}, false)

	// 2. Seed a few months of stats
	months := map[string]monthlyStats{
		"2025/4": {MatchesPlayed: 18, Kills: 310, Deaths: 280, Assists: 90, Headshots: 140, Wins: 9, MVPs: 12, DamagePerRound: 78.4},
		"2025/5": {MatchesPlayed: 25, Kills: 470, Deaths: 390, Assists: 120, Headshots: 210, Wins: 14, MVPs: 20, DamagePerRound: 84.1, Notes: "rank up"},
		"2025/6": {MatchesPlayed: 12, Kills: 200, Deaths: 205, Assists: 55, Headshots: 88, Wins: 5, MVPs: 7, DamagePerRound: 71.9},
	}
	for path, stats := range months {
		put("/admin/players/"+STEAM_ID+"/monthly/"+path, stats)
	}

	// 3. Weapon breakdown for the best month
	put("/admin/players/"+STEAM_ID+"/monthly/2025/5/weapons/ak47",
		weaponStats{Kills: 180, Headshots: 95, ShotsFired: 4200, Hits: 980})
	put("/admin/players/"+STEAM_ID+"/monthly/2025/5/weapons/awp",
		weaponStats{Kills: 60, Headshots: 12, ShotsFired: 300, Hits: 110})

	// 4. Verify the profile renders
	resp, err := http.Get(API_URL + "/players/" + STEAM_ID)
	if err != nil {
		log.Fatalf("Failed to fetch profile: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("Profile (%d):\n%s\n", resp.StatusCode, string(body))
}

func post(path string, payload any, admin bool) {
	send("POST", path, payload, admin)
}

func put(path string, payload any) {
	send("PUT", path, payload, true)
}

func send(method, path string, payload any, admin bool) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("Failed to marshal JSON: %v", err)
	}

	req, err := http.NewRequest(method, API_URL+path, bytes.NewReader(data))
	if err != nil {
		log.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if admin {
		req.Header.Set("X-Admin-Token", ADMIN_TOKEN)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("%s %s -> %d %s\n", method, path, resp.StatusCode, string(body))
}
