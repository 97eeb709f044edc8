// Package highlight applies the fixed threshold table that flags
// statistically unusual profiles. The constants are the contract: they
// come from the final revision of the rule set and changing any of them
// changes which profiles get flagged.
package highlight

import "github.com/npastorale/lolscout/internal/model"

// defaultIconMaxID is the highest profile icon id in the default/starter
// icon set.
const defaultIconMaxID = 28

// Input is the flat record the classifier reads. All rate fields are
// percentages; RankOrdinal is the selected tier's position on the ladder
// (unranked and unknown both arrive as 0).
type Input struct {
	RankOrdinal model.Tier

	// Season totals from the selected rank entry.
	SeasonGames   int
	SeasonWinRate float64

	// Recent ranked-window totals.
	RankedGames   int
	RankedWinRate float64

	ProfileIconID int
	FlashKey      string
	MultiKills    int

	AvgDPM    float64
	AvgCSPM   float64
	AvgKP     float64
	AvgVision float64

	UniqueChampions  int
	TotalRankedGames int // season ranked games played (wins + losses)
}

// Classify evaluates every category independently and returns the
// severity map. Categories default to neutral; only kp has a two-tier
// precedence (red checked before green).
func Classify(in Input) model.Highlights {
	var h model.Highlights
	ord := in.RankOrdinal

	if (in.SeasonGames >= 30 && in.SeasonWinRate > 70 && ord < 7) ||
		(in.SeasonGames >= 50 && in.SeasonWinRate > 60 && ord < 5) {
		h.TotalWinRate = model.SeverityRed
	}

	if (in.RankedGames >= 10 && in.RankedWinRate > 70 && ord < 7) ||
		(in.RankedGames >= 20 && in.RankedWinRate > 65 && ord < 5) {
		h.RankedWinRate = model.SeverityRed
	}

	if in.ProfileIconID <= defaultIconMaxID {
		h.ProfileIcon = model.SeverityRed
	}

	if in.FlashKey == "D & F" {
		h.Flash = model.SeverityRed
	}

	if in.MultiKills > 0 && ord < 6 {
		h.MultiKills = model.SeverityRed
	}

	if (ord < 3 && in.AvgDPM > 650) ||
		(ord >= 3 && ord < 6 && in.AvgDPM > 850) {
		h.DPM = model.SeverityRed
	}

	if (ord < 3 && in.AvgCSPM > 7) ||
		(ord >= 3 && ord < 6 && in.AvgCSPM > 8) {
		h.CSPM = model.SeverityRed
	}

	switch {
	case in.AvgKP > 75:
		h.KP = model.SeverityRed
	case in.AvgKP > 65:
		h.KP = model.SeverityGreen
	}

	if (ord < 4 && in.AvgVision > 50) ||
		(ord < 6 && in.AvgVision > 60) {
		h.VisionScore = model.SeverityRed
	}

	if (in.TotalRankedGames < 50 && ord >= 5) ||
		(in.TotalRankedGames < 100 && ord >= 7) {
		h.RankedGamesPlayed = model.SeverityRed
	}

	if in.UniqueChampions <= 5 && in.TotalRankedGames >= 20 {
		h.ChampionPool = model.SeverityRed
	}

	return h
}
