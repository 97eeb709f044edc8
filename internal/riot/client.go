// Package riot provides a minimal client for the Riot Games API
// (account-v1, summoner-v4, league-v4, champion-mastery-v4, match-v5).
package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// MatchCache is a read-through store for raw match-v5 bodies. Match
// details are immutable once the game has ended, so cached bodies never
// expire.
type MatchCache interface {
	GetMatch(matchID string) ([]byte, bool, error)
	PutMatch(matchID string, body []byte) error
}

// Client is a Riot API client bound to one platform (e.g. na1) and its
// regional routing value. Requests are throttled to the development-key
// budget client-side so bursts of match fetches don't trip the API's 429s.
type Client struct {
	apiKey   string
	platform string
	routing  string
	http     *http.Client
	limiter  *rate.Limiter

	// Cache, when set, is consulted before any match-detail request and
	// populated after a successful one.
	Cache MatchCache
}

// NewClient returns a client for the given platform authenticated with
// the given API key.
func NewClient(apiKey, platform string) *Client {
	return &Client{
		apiKey:   apiKey,
		platform: platform,
		routing:  Routing(platform),
		http:     &http.Client{Timeout: 15 * time.Second},
		// Development keys allow 20 requests each second.
		limiter: rate.NewLimiter(rate.Limit(20), 20),
	}
}

// Platform returns the platform this client is bound to.
func (c *Client) Platform() string { return c.platform }

// get performs an authenticated GET and JSON-decodes the response into out.
func (c *Client) get(ctx context.Context, rawurl string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", rawurl, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP %d", rawurl, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// getRaw is like get but returns the undecoded body, for cacheable payloads.
func (c *Client) getRaw(ctx context.Context, rawurl string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", rawurl, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: HTTP %d", rawurl, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: read body: %w", rawurl, err)
	}
	return body, nil
}

// AccountByRiotID resolves a gameName#tagLine pair to a PUUID.
func (c *Client) AccountByRiotID(ctx context.Context, gameName, tagLine string) (*Account, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.routing, url.PathEscape(gameName), url.PathEscape(tagLine))
	var a Account
	if err := c.get(ctx, u, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// SummonerByPUUID fetches the summoner profile (level, profile icon).
func (c *Client) SummonerByPUUID(ctx context.Context, puuid string) (*Summoner, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/summoner/v4/summoners/by-puuid/%s",
		c.platform, puuid)
	var s Summoner
	if err := c.get(ctx, u, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// LeagueEntries returns the player's rank entries, zero or more, one per
// ranked queue type. An empty slice is the genuinely-unranked state, not
// an error.
func (c *Client) LeagueEntries(ctx context.Context, puuid string) ([]LeagueEntry, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/league/v4/entries/by-puuid/%s",
		c.platform, puuid)
	var entries []LeagueEntry
	if err := c.get(ctx, u, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ChampionMasteries returns the player's sparse mastery list.
func (c *Client) ChampionMasteries(ctx context.Context, puuid string) ([]Mastery, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/champion-mastery/v4/champion-masteries/by-puuid/%s",
		c.platform, puuid)
	var masteries []Mastery
	if err := c.get(ctx, u, &masteries); err != nil {
		return nil, err
	}
	return masteries, nil
}

// MatchIDs returns up to count recent match ids, newest first.
func (c *Client) MatchIDs(ctx context.Context, puuid string, count int) ([]string, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids?start=0&count=%d",
		c.routing, puuid, count)
	var ids []string
	if err := c.get(ctx, u, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// MatchByID fetches one match detail, consulting the cache first when one
// is attached. Cache read/write failures fall through to the network and
// are never surfaced to the caller.
func (c *Client) MatchByID(ctx context.Context, matchID string) (*Match, error) {
	if c.Cache != nil {
		if body, ok, err := c.Cache.GetMatch(matchID); err == nil && ok {
			var m Match
			if err := json.Unmarshal(body, &m); err == nil {
				return &m, nil
			}
		}
	}

	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s", c.routing, matchID)
	body, err := c.getRaw(ctx, u)
	if err != nil {
		return nil, err
	}

	var m Match
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf("decode match %s: %w", matchID, err)
	}
	if c.Cache != nil {
		_ = c.Cache.PutMatch(matchID, body)
	}
	return &m, nil
}
