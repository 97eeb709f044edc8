// Package analyzer orchestrates the upstream fetches and feeds the pure
// aggregation core, producing the final report.
package analyzer

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/npastorale/lolscout/internal/aggregator"
	"github.com/npastorale/lolscout/internal/highlight"
	"github.com/npastorale/lolscout/internal/model"
	"github.com/npastorale/lolscout/internal/riot"
)

// API is the slice of the Riot client the analyzer consumes; tests
// substitute a fake.
type API interface {
	AccountByRiotID(ctx context.Context, gameName, tagLine string) (*riot.Account, error)
	SummonerByPUUID(ctx context.Context, puuid string) (*riot.Summoner, error)
	LeagueEntries(ctx context.Context, puuid string) ([]riot.LeagueEntry, error)
	ChampionMasteries(ctx context.Context, puuid string) ([]riot.Mastery, error)
	MatchIDs(ctx context.Context, puuid string, count int) ([]string, error)
	MatchByID(ctx context.Context, matchID string) (*riot.Match, error)
	Platform() string
}

// ChampionCatalog resolves the static championID→name catalog.
type ChampionCatalog interface {
	Champions(ctx context.Context) (map[int64]string, error)
}

// Config bounds the fetch fan-out and carries the aggregation variants.
type Config struct {
	// MatchCount is the recent-match window size (observed 5–100).
	MatchCount int
	// FetchWorkers bounds concurrent match-detail fetches.
	FetchWorkers int
	// Aggregation holds the ranked-queue set and duo minimum.
	Aggregation aggregator.Config
}

// DefaultConfig returns a 20-match window fetched 4 matches at a time.
func DefaultConfig() Config {
	return Config{
		MatchCount:   20,
		FetchWorkers: 4,
		Aggregation:  aggregator.DefaultConfig(),
	}
}

// Analyzer runs the full pipeline for one player.
type Analyzer struct {
	api     API
	catalog ChampionCatalog
	cfg     Config
}

// New wires an analyzer from its collaborators.
func New(api API, catalog ChampionCatalog, cfg Config) *Analyzer {
	if cfg.MatchCount <= 0 {
		cfg.MatchCount = 20
	}
	if cfg.FetchWorkers <= 0 {
		cfg.FetchWorkers = 4
	}
	if cfg.Aggregation.RankedQueues == nil {
		cfg.Aggregation = aggregator.DefaultConfig()
	}
	return &Analyzer{api: api, catalog: catalog, cfg: cfg}
}

// Analyze fetches everything for gameName#tagLine and reduces it to a
// report. Only identity validation and the account/summoner/match-list
// lookups can fail; every other upstream problem degrades into the
// report's data.
func (a *Analyzer) Analyze(ctx context.Context, gameName, tagLine string) (*model.Report, error) {
	if gameName == "" || tagLine == "" || !riot.ValidPlatform(a.api.Platform()) {
		return nil, ErrMissingIdentity
	}

	account, err := a.api.AccountByRiotID(ctx, gameName, tagLine)
	if err != nil {
		return nil, &LookupError{Stage: "account", Err: err}
	}
	summoner, err := a.api.SummonerByPUUID(ctx, account.PUUID)
	if err != nil {
		return nil, &LookupError{Stage: "summoner", Err: err}
	}

	// Rank, mastery, catalog, and the match-id list are independent of
	// each other — fetch them concurrently. Only the match-id list is
	// required; the rest degrade.
	var (
		rank      model.RankResult
		owned     []model.MasteryEntry
		catalog   map[int64]string
		matchIDs  []string
		listError error
	)
	var g errgroup.Group
	g.Go(func() error {
		entries, err := a.api.LeagueEntries(ctx, account.PUUID)
		if err != nil {
			log.Printf("rank fetch failed for %s, continuing unranked: %v", account.PUUID, err)
			rank = model.RankResult{State: model.RankStateFetchFailed}
			return nil
		}
		domain := make([]model.RankEntry, len(entries))
		for i, e := range entries {
			domain[i] = e.Domain()
		}
		rank = aggregator.SelectRank(domain)
		return nil
	})
	g.Go(func() error {
		masteries, err := a.api.ChampionMasteries(ctx, account.PUUID)
		if err != nil {
			log.Printf("mastery fetch failed for %s, continuing with empty list: %v", account.PUUID, err)
			return nil
		}
		owned = make([]model.MasteryEntry, len(masteries))
		for i, m := range masteries {
			owned[i] = model.MasteryEntry{ChampionID: m.ChampionID, Level: m.ChampionLevel, Points: m.ChampionPoints}
		}
		return nil
	})
	g.Go(func() error {
		champs, err := a.catalog.Champions(ctx)
		if err != nil {
			log.Printf("champion catalog fetch failed, mastery table will be empty: %v", err)
			return nil
		}
		catalog = champs
		return nil
	})
	g.Go(func() error {
		ids, err := a.api.MatchIDs(ctx, account.PUUID, a.cfg.MatchCount)
		if err != nil {
			listError = err
		}
		matchIDs = ids
		return nil
	})
	_ = g.Wait()
	if listError != nil {
		return nil, &LookupError{Stage: "match list", Err: listError}
	}

	matches := a.fetchMatches(ctx, matchIDs)

	all, ranked, history := aggregator.AggregateWindows(matches, account.PUUID, a.cfg.Aggregation)
	duos := aggregator.DuoTally(matches, account.PUUID, a.cfg.Aggregation.DuoMinGames)
	merged := aggregator.MergeMasteries(catalog, owned)

	// The classifier reads the ranked window when it has games, otherwise
	// the all-modes window.
	statsWindow := ranked
	if statsWindow.Games == 0 {
		statsWindow = all
	}
	seasonGames, seasonWinRate := 0, 0.0
	if rank.State == model.RankStateRanked {
		seasonGames = rank.Entry.Games()
		seasonWinRate = rank.Entry.WinRate()
	}
	highlights := highlight.Classify(highlight.Input{
		RankOrdinal:      rank.Ordinal(),
		SeasonGames:      seasonGames,
		SeasonWinRate:    seasonWinRate,
		RankedGames:      ranked.Games,
		RankedWinRate:    ranked.WinRate,
		ProfileIconID:    summoner.ProfileIconID,
		FlashKey:         statsWindow.FlashKey,
		MultiKills:       statsWindow.MultiKills,
		AvgDPM:           statsWindow.AvgDamagePerMin,
		AvgCSPM:          statsWindow.AvgCSPerMin,
		AvgKP:            statsWindow.AvgKillParticipation,
		AvgVision:        statsWindow.AvgVisionScore,
		UniqueChampions:  statsWindow.UniqueChampions,
		TotalRankedGames: seasonGames,
	})

	report := &model.Report{
		RiotID:        account.GameName + "#" + account.TagLine,
		Region:        a.api.Platform(),
		Level:         summoner.SummonerLevel,
		ProfileIconID: summoner.ProfileIconID,
		DefaultIcon:   highlights.ProfileIcon == model.SeverityRed,
		Rank:          rank,
		SeasonGames:   seasonGames,
		Recent:        all,
		Ranked:        ranked,
		DuoPartners:   duos,
		Masteries:     merged,
		Highlights:    highlights,
		History:       history,
	}
	if rank.State == model.RankStateRanked {
		report.SeasonWins = rank.Entry.Wins
		report.SeasonLoss = rank.Entry.Losses
	}
	return report, nil
}

// fetchMatches fans out the per-match detail fetches with a bounded
// worker count. Results land by index so downstream folds see the
// original id order regardless of completion order; a failed fetch
// leaves a nil slot, which the folds skip.
func (a *Analyzer) fetchMatches(ctx context.Context, ids []string) []*riot.Match {
	matches := make([]*riot.Match, len(ids))

	var g errgroup.Group
	g.SetLimit(a.cfg.FetchWorkers)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			m, err := a.api.MatchByID(ctx, id)
			if err != nil {
				log.Printf("match %s fetch failed, skipping: %v", id, err)
				return nil
			}
			matches[i] = m
			return nil
		})
	}
	_ = g.Wait()
	return matches
}
