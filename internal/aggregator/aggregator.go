// Package aggregator holds the pure folds over fetched match, rank, and
// mastery data: window aggregation, rank selection, duo tallying, and the
// catalog/mastery merge.
package aggregator

import (
	"github.com/npastorale/lolscout/internal/model"
	"github.com/npastorale/lolscout/internal/riot"
)

const (
	// minGameDuration rejects remakes and dodged games, in seconds.
	minGameDuration = 300
	// flashSpellID is the summoner spell id for Flash.
	flashSpellID = 4
)

// Config carries the variant choices observed across versions of the tool.
type Config struct {
	// RankedQueues is the set of queue ids counted into the ranked-only
	// window. 420 is solo/duo, 440 is flex.
	RankedQueues map[int]bool
	// DuoMinGames is the minimum co-occurrence count for a teammate to be
	// listed as a duo partner.
	DuoMinGames int
}

// DefaultConfig returns the defaults: both ranked queues, duo minimum 2.
func DefaultConfig() Config {
	return Config{
		RankedQueues: map[int]bool{420: true, 440: true},
		DuoMinGames:  2,
	}
}

// findParticipant locates the target player in a match and reports whether
// the match is valid for aggregation (player present, duration at least
// the minimum). Invalid matches contribute to no aggregate.
func findParticipant(m *riot.Match, puuid string) (*riot.Participant, bool) {
	if m == nil {
		return nil, false
	}
	if m.Info.GameDuration < minGameDuration {
		return nil, false
	}
	for i := range m.Info.Participants {
		if m.Info.Participants[i].PUUID == puuid {
			return &m.Info.Participants[i], true
		}
	}
	return nil, false
}

// teamKills returns the champion kills credited to the player's team,
// 0 when the team objective block is absent.
func teamKills(m *riot.Match, teamID int) int {
	for _, t := range m.Info.Teams {
		if t.TeamID == teamID {
			return t.Objectives.Champion.Kills
		}
	}
	return 0
}

// killParticipation computes the capped participation percentage for one
// match. A zero team-kill count with player credit counts as full
// participation (team-kill undercount quirk in upstream data).
func killParticipation(playerKP, team int) float64 {
	if team == 0 {
		if playerKP > 0 {
			return 100
		}
		return 0
	}
	kp := float64(playerKP) / float64(team) * 100
	if kp > 100 {
		return 100
	}
	return kp
}

// windowAccum accumulates per-match quantities for one window.
type windowAccum struct {
	games, wins            int
	kills, deaths, assists int

	dpmSum, cspmSum float64
	kpSum           float64
	visionSum       float64

	multiKills int
	champions  map[string]struct{}

	flashSlot1, flashSlot2 int
}

func newWindowAccum() *windowAccum {
	return &windowAccum{champions: make(map[string]struct{})}
}

func (w *windowAccum) add(p *riot.Participant, info *riot.MatchInfo, team int) {
	w.games++
	if p.Win {
		w.wins++
	}
	w.kills += p.Kills
	w.deaths += p.Deaths
	w.assists += p.Assists

	mins := float64(info.GameDuration) / 60
	w.dpmSum += float64(p.TotalDamageDealtToChampions) / mins
	w.cspmSum += float64(p.TotalMinionsKilled) / mins
	w.kpSum += killParticipation(p.Kills+p.Assists, team)
	if p.VisionScore != nil {
		w.visionSum += *p.VisionScore
	}

	w.multiKills += p.PentaKills + p.QuadraKills
	w.champions[p.ChampionName] = struct{}{}

	if p.Summoner1ID == flashSpellID {
		w.flashSlot1++
	}
	if p.Summoner2ID == flashSpellID {
		w.flashSlot2++
	}
}

// flashKey collapses the slot counters into the display label.
func (w *windowAccum) flashKey() string {
	switch {
	case w.flashSlot1 > 0 && w.flashSlot2 > 0:
		return "D & F"
	case w.flashSlot1 > 0:
		return "D"
	case w.flashSlot2 > 0:
		return "F"
	default:
		return "None"
	}
}

// finalize reduces the sums into WindowStats. A zero-game window yields
// all-zero stats with FlashKey "None" — never NaN, never an error.
func (w *windowAccum) finalize() model.WindowStats {
	stats := model.WindowStats{
		Games:    w.games,
		Wins:     w.wins,
		Losses:   w.games - w.wins,
		FlashKey: w.flashKey(),
	}
	if w.games == 0 {
		return stats
	}

	n := float64(w.games)
	stats.WinRate = float64(w.wins) / n * 100
	stats.AvgKills = float64(w.kills) / n
	stats.AvgDeaths = float64(w.deaths) / n
	stats.AvgAssists = float64(w.assists) / n

	deaths := w.deaths
	if deaths == 0 {
		deaths = 1
	}
	stats.KDA = float64(w.kills+w.assists) / float64(deaths)

	stats.AvgDamagePerMin = w.dpmSum / n
	stats.AvgCSPerMin = w.cspmSum / n
	stats.AvgKillParticipation = w.kpSum / n
	stats.AvgVisionScore = w.visionSum / n

	stats.MultiKills = w.multiKills
	stats.UniqueChampions = len(w.champions)
	return stats
}

// AggregateWindows folds the fetched match details into the two
// overlapping windows (all valid games, ranked-queue-only games) and
// produces the per-match history rows. Nil entries in matches (failed
// fetches) are skipped. Input order is preserved in the history list.
func AggregateWindows(matches []*riot.Match, puuid string, cfg Config) (all, ranked model.WindowStats, history []model.MatchSummary) {
	allAcc := newWindowAccum()
	rankedAcc := newWindowAccum()

	for _, m := range matches {
		p, ok := findParticipant(m, puuid)
		if !ok {
			continue
		}

		team := teamKills(m, p.TeamID)
		allAcc.add(p, &m.Info, team)
		if cfg.RankedQueues[m.Info.QueueID] {
			rankedAcc.add(p, &m.Info, team)
		}

		deaths := p.Deaths
		if deaths == 0 {
			deaths = 1
		}
		history = append(history, model.MatchSummary{
			MatchID:      m.Metadata.MatchID,
			Win:          p.Win,
			QueueID:      m.Info.QueueID,
			Champion:     p.ChampionName,
			Kills:        p.Kills,
			Deaths:       p.Deaths,
			Assists:      p.Assists,
			KDA:          float64(p.Kills+p.Assists) / float64(deaths),
			DurationMins: int(m.Info.GameDuration / 60),
		})
	}

	return allAcc.finalize(), rankedAcc.finalize(), history
}
