package analyzer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/npastorale/lolscout/internal/model"
	"github.com/npastorale/lolscout/internal/riot"
)

const testPUUID = "puuid-target"

// fakeAPI is a canned-data API with per-endpoint failure switches.
type fakeAPI struct {
	account  *riot.Account
	summoner *riot.Summoner
	entries  []riot.LeagueEntry
	mastery  []riot.Mastery
	matchIDs []string
	matches  map[string]*riot.Match

	failAccount  bool
	failSummoner bool
	failRank     bool
	failMastery  bool
	failList     bool
	failMatches  map[string]bool
}

func (f *fakeAPI) AccountByRiotID(_ context.Context, name, tag string) (*riot.Account, error) {
	if f.failAccount {
		return nil, errors.New("upstream 404")
	}
	return f.account, nil
}

func (f *fakeAPI) SummonerByPUUID(_ context.Context, _ string) (*riot.Summoner, error) {
	if f.failSummoner {
		return nil, errors.New("upstream 500")
	}
	return f.summoner, nil
}

func (f *fakeAPI) LeagueEntries(_ context.Context, _ string) ([]riot.LeagueEntry, error) {
	if f.failRank {
		return nil, errors.New("upstream 503")
	}
	return f.entries, nil
}

func (f *fakeAPI) ChampionMasteries(_ context.Context, _ string) ([]riot.Mastery, error) {
	if f.failMastery {
		return nil, errors.New("upstream 503")
	}
	return f.mastery, nil
}

func (f *fakeAPI) MatchIDs(_ context.Context, _ string, count int) ([]string, error) {
	if f.failList {
		return nil, errors.New("upstream 503")
	}
	if count < len(f.matchIDs) {
		return f.matchIDs[:count], nil
	}
	return f.matchIDs, nil
}

func (f *fakeAPI) MatchByID(_ context.Context, id string) (*riot.Match, error) {
	if f.failMatches[id] {
		return nil, errors.New("upstream 503")
	}
	m, ok := f.matches[id]
	if !ok {
		return nil, fmt.Errorf("no such match %s", id)
	}
	return m, nil
}

func (f *fakeAPI) Platform() string { return "na1" }

type fakeCatalog struct {
	champs map[int64]string
	fail   bool
}

func (f *fakeCatalog) Champions(_ context.Context) (map[int64]string, error) {
	if f.fail {
		return nil, errors.New("cdn unreachable")
	}
	return f.champs, nil
}

func testMatch(id string, queueID int, win bool) *riot.Match {
	m := &riot.Match{}
	m.Metadata.MatchID = id
	v := 30.0
	m.Info = riot.MatchInfo{
		GameDuration: 1800,
		QueueID:      queueID,
		Participants: []riot.Participant{{
			PUUID:                       testPUUID,
			TeamID:                      100,
			Win:                         win,
			ChampionName:                "Ahri",
			Kills:                       5,
			Deaths:                      5,
			Assists:                     5,
			Summoner2ID:                 4,
			TotalDamageDealtToChampions: 15000,
			TotalMinionsKilled:          200,
			VisionScore:                 &v,
		}},
	}
	team := riot.Team{TeamID: 100}
	team.Objectives.Champion.Kills = 20
	m.Info.Teams = []riot.Team{team}
	return m
}

func healthyAPI() *fakeAPI {
	return &fakeAPI{
		account:  &riot.Account{PUUID: testPUUID, GameName: "Target", TagLine: "NA1"},
		summoner: &riot.Summoner{ID: "enc", ProfileIconID: 4321, SummonerLevel: 150},
		entries: []riot.LeagueEntry{
			{QueueType: "RANKED_SOLO_5x5", Tier: "GOLD", Rank: "II", Wins: 60, Losses: 40},
		},
		mastery:  []riot.Mastery{{ChampionID: 103, ChampionLevel: 7, ChampionPoints: 250000}},
		matchIDs: []string{"m1", "m2", "m3"},
		matches: map[string]*riot.Match{
			"m1": testMatch("m1", 420, true),
			"m2": testMatch("m2", 430, false),
			"m3": testMatch("m3", 420, true),
		},
	}
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{champs: map[int64]string{103: "Ahri", 238: "Zed"}}
}

func TestAnalyze_MissingIdentity(t *testing.T) {
	a := New(healthyAPI(), testCatalog(), DefaultConfig())

	for _, tc := range []struct{ name, tag string }{
		{"", "NA1"},
		{"Target", ""},
	} {
		if _, err := a.Analyze(context.Background(), tc.name, tc.tag); !errors.Is(err, ErrMissingIdentity) {
			t.Errorf("Analyze(%q, %q) err = %v, want ErrMissingIdentity", tc.name, tc.tag, err)
		}
	}
}

func TestAnalyze_FatalLookups(t *testing.T) {
	cases := []struct {
		stage string
		mod   func(*fakeAPI)
	}{
		{"account", func(f *fakeAPI) { f.failAccount = true }},
		{"summoner", func(f *fakeAPI) { f.failSummoner = true }},
		{"match list", func(f *fakeAPI) { f.failList = true }},
	}
	for _, tc := range cases {
		api := healthyAPI()
		tc.mod(api)
		a := New(api, testCatalog(), DefaultConfig())

		_, err := a.Analyze(context.Background(), "Target", "NA1")
		var lookup *LookupError
		if !errors.As(err, &lookup) {
			t.Errorf("%s failure: err = %v, want *LookupError", tc.stage, err)
			continue
		}
		if lookup.Stage != tc.stage {
			t.Errorf("Stage = %q, want %q", lookup.Stage, tc.stage)
		}
	}
}

func TestAnalyze_RankFetchFailureDegrades(t *testing.T) {
	api := healthyAPI()
	api.failRank = true
	a := New(api, testCatalog(), DefaultConfig())

	rep, err := a.Analyze(context.Background(), "Target", "NA1")
	if err != nil {
		t.Fatalf("rank failure must not abort: %v", err)
	}
	if rep.Rank.State != model.RankStateFetchFailed {
		t.Errorf("Rank.State = %v, want fetch-failed", rep.Rank.State)
	}
	if rep.SeasonGames != 0 {
		t.Errorf("SeasonGames = %d, want 0 without a rank entry", rep.SeasonGames)
	}
}

func TestAnalyze_MasteryAndCatalogFailuresDegrade(t *testing.T) {
	api := healthyAPI()
	api.failMastery = true
	a := New(api, testCatalog(), DefaultConfig())

	rep, err := a.Analyze(context.Background(), "Target", "NA1")
	if err != nil {
		t.Fatalf("mastery failure must not abort: %v", err)
	}
	// Catalog still merges; the owned list is just empty.
	if len(rep.Masteries) != 2 {
		t.Fatalf("Masteries rows = %d, want full catalog", len(rep.Masteries))
	}
	for _, row := range rep.Masteries {
		if row.Points != 0 {
			t.Errorf("champion %s has %d points with no mastery data", row.Name, row.Points)
		}
	}

	a = New(healthyAPI(), &fakeCatalog{fail: true}, DefaultConfig())
	rep, err = a.Analyze(context.Background(), "Target", "NA1")
	if err != nil {
		t.Fatalf("catalog failure must not abort: %v", err)
	}
	if len(rep.Masteries) != 0 {
		t.Errorf("no catalog means no mastery rows, got %d", len(rep.Masteries))
	}
}

func TestAnalyze_FailedMatchIsSkipped(t *testing.T) {
	api := healthyAPI()
	api.failMatches = map[string]bool{"m2": true}
	a := New(api, testCatalog(), DefaultConfig())

	rep, err := a.Analyze(context.Background(), "Target", "NA1")
	if err != nil {
		t.Fatalf("per-match failure must not abort: %v", err)
	}
	if rep.Recent.Games != 2 {
		t.Errorf("Recent.Games = %d, want 2 (m2 skipped)", rep.Recent.Games)
	}
	if len(rep.History) != 2 {
		t.Errorf("History rows = %d, want 2", len(rep.History))
	}
}

func TestAnalyze_HappyPath(t *testing.T) {
	a := New(healthyAPI(), testCatalog(), DefaultConfig())

	rep, err := a.Analyze(context.Background(), "Target", "NA1")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if rep.RiotID != "Target#NA1" || rep.Region != "na1" || rep.Level != 150 {
		t.Errorf("profile header wrong: %+v", rep)
	}
	if rep.Rank.State != model.RankStateRanked || rep.Rank.Entry.Tier != "GOLD" {
		t.Errorf("rank = %+v, want ranked GOLD", rep.Rank)
	}
	if rep.SeasonGames != 100 || rep.SeasonWins != 60 || rep.SeasonLoss != 40 {
		t.Errorf("season totals = %d/%d/%d, want 100/60/40",
			rep.SeasonGames, rep.SeasonWins, rep.SeasonLoss)
	}
	if rep.Recent.Games != 3 || rep.Ranked.Games != 2 {
		t.Errorf("windows = %d/%d, want 3 all / 2 ranked", rep.Recent.Games, rep.Ranked.Games)
	}
	if rep.DefaultIcon {
		t.Error("icon 4321 is not in the default set")
	}
	// History preserves the id-list order.
	if len(rep.History) != 3 || rep.History[0].MatchID != "m1" || rep.History[2].MatchID != "m3" {
		t.Errorf("history order wrong: %+v", rep.History)
	}
}

func TestAnalyze_ZeroValidGames(t *testing.T) {
	api := healthyAPI()
	api.matchIDs = nil
	a := New(api, testCatalog(), DefaultConfig())

	rep, err := a.Analyze(context.Background(), "Target", "NA1")
	if err != nil {
		t.Fatalf("empty match list is a valid state: %v", err)
	}
	if rep.Recent.Games != 0 || rep.Recent.FlashKey != "None" {
		t.Errorf("empty window = %+v, want zeroes with FlashKey None", rep.Recent)
	}
}
