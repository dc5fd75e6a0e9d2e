// Package steam talks to the Steam Web API and syncs the fetched profile
// fields onto stored players. Everything here is best-effort: the rest of the
// service works fine with an unsynced profile.
package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://api.steampowered.com"

	// CS2AppID is the Steam application ID for Counter-Strike 2.
	CS2AppID = 730
)

// ProfileSummary is the subset of GetPlayerSummaries this service cares about.
type ProfileSummary struct {
	Nickname    string
	AvatarURL   string
	ProfileURL  string
	CountryCode string
}

// Client is a thin Steam Web API client with a hard request timeout.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a fake server.
func NewClientWithBaseURL(apiKey, baseURL string, timeout time.Duration) *Client {
	c := NewClient(apiKey, timeout)
	c.baseURL = baseURL
	return c
}

type playerSummariesResponse struct {
	Response struct {
		Players []struct {
			PersonaName    string `json:"personaname"`
			AvatarFull     string `json:"avatarfull"`
			ProfileURL     string `json:"profileurl"`
			LocCountryCode string `json:"loccountrycode"`
		} `json:"players"`
	} `json:"response"`
}

// GetProfileSummary fetches display name, avatar, profile URL and country for
// a Steam ID via ISteamUser/GetPlayerSummaries v2.
func (c *Client) GetProfileSummary(ctx context.Context, steamID string) (*ProfileSummary, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("steamids", steamID)

	var data playerSummariesResponse
	if err := c.get(ctx, "/ISteamUser/GetPlayerSummaries/v2/", q, &data); err != nil {
		return nil, err
	}

	if len(data.Response.Players) == 0 {
		return nil, fmt.Errorf("no player found for steam id %s", steamID)
	}

	p := data.Response.Players[0]
	return &ProfileSummary{
		Nickname:    p.PersonaName,
		AvatarURL:   p.AvatarFull,
		ProfileURL:  p.ProfileURL,
		CountryCode: p.LocCountryCode,
	}, nil
}

type ownedGamesResponse struct {
	Response struct {
		Games []struct {
			AppID           int   `json:"appid"`
			PlaytimeForever int64 `json:"playtime_forever"`
		} `json:"games"`
	} `json:"response"`
}

// GetCS2Hours fetches the account's CS2 playtime via
// IPlayerService/GetOwnedGames v1 and converts minutes to hours, rounded to
// one decimal. The second return is false when the account does not own CS2
// (or hides its game list).
func (c *Client) GetCS2Hours(ctx context.Context, steamID string) (float64, bool, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("steamid", steamID)
	q.Set("include_appinfo", "0")

	var data ownedGamesResponse
	if err := c.get(ctx, "/IPlayerService/GetOwnedGames/v1/", q, &data); err != nil {
		return 0, false, err
	}

	for _, g := range data.Response.Games {
		if g.AppID == CS2AppID {
			hours := math.Round(float64(g.PlaytimeForever)/60*10) / 10
			return hours, true, nil
		}
	}
	return 0, false, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("steam api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("steam api status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding steam response: %w", err)
	}
	return nil
}
