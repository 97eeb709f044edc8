package model

// Tier is the competitive rank ladder in ascending order.
type Tier int

const (
	TierUnranked    Tier = 0 // unknown tier strings also map here
	TierIron        Tier = 0
	TierBronze      Tier = 1
	TierSilver      Tier = 2
	TierGold        Tier = 3
	TierPlatinum    Tier = 4
	TierEmerald     Tier = 5
	TierDiamond     Tier = 6
	TierMaster      Tier = 7
	TierGrandmaster Tier = 8
	TierChallenger  Tier = 9
)

var tierNames = map[string]Tier{
	"IRON":        TierIron,
	"BRONZE":      TierBronze,
	"SILVER":      TierSilver,
	"GOLD":        TierGold,
	"PLATINUM":    TierPlatinum,
	"EMERALD":     TierEmerald,
	"DIAMOND":     TierDiamond,
	"MASTER":      TierMaster,
	"GRANDMASTER": TierGrandmaster,
	"CHALLENGER":  TierChallenger,
}

// TierFromString maps an upstream tier string to its ordinal. Unknown or
// empty strings map to the lowest ordinal, which makes "unranked"
// indistinguishable from IRON for threshold purposes.
func TierFromString(s string) Tier {
	if t, ok := tierNames[s]; ok {
		return t
	}
	return TierUnranked
}

// RankEntry is an immutable snapshot of one queue's rank at fetch time.
type RankEntry struct {
	QueueType    string `json:"queueType"` // e.g. RANKED_SOLO_5x5, RANKED_FLEX_SR
	Tier         string `json:"tier"`
	Division     string `json:"division"` // I..IV
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

// Games returns the season game count recorded on the entry.
func (r *RankEntry) Games() int { return r.Wins + r.Losses }

// WinRate returns the season win rate in percent, 0 when no games.
func (r *RankEntry) WinRate() float64 {
	if r.Games() == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Games()) * 100
}

// RankState distinguishes a genuinely unranked player from a failed rank
// fetch. The classifier treats both as ordinal 0, but the report keeps the
// distinction so the rendering layer can say which one it was.
type RankState int

const (
	RankStateUnranked RankState = iota
	RankStateRanked
	RankStateFetchFailed
)

func (s RankState) String() string {
	switch s {
	case RankStateRanked:
		return "ranked"
	case RankStateFetchFailed:
		return "fetch-failed"
	default:
		return "unranked"
	}
}

// MarshalText encodes the state as its lowercase name for JSON output.
func (s RankState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// RankResult is the Rank Selector output: the representative entry (nil
// unless State is RankStateRanked) plus a label naming the queue it came
// from ("Solo/Duo" or "Flex").
type RankResult struct {
	State RankState  `json:"state"`
	Entry *RankEntry `json:"entry,omitempty"`
	Queue string     `json:"queue,omitempty"`
}

// Ordinal returns the tier ordinal the classifier compares against.
func (r RankResult) Ordinal() Tier {
	if r.State == RankStateRanked && r.Entry != nil {
		return TierFromString(r.Entry.Tier)
	}
	return TierUnranked
}

// Display returns a short human-readable rank label.
func (r RankResult) Display() string {
	switch r.State {
	case RankStateRanked:
		return r.Entry.Tier + " " + r.Entry.Division + " (" + r.Queue + ")"
	case RankStateFetchFailed:
		return "UNRANKED (rank unavailable)"
	default:
		return "UNRANKED"
	}
}

// MasteryEntry is one champion from the player's sparse mastery list.
type MasteryEntry struct {
	ChampionID int64 `json:"championId"`
	Level      int   `json:"championLevel"`
	Points     int   `json:"championPoints"`
}

// MasteryRow is one merged catalog row: every catalog champion appears
// exactly once, untouched champions at level 0 / points 0.
type MasteryRow struct {
	ChampionID int64  `json:"championId"`
	Name       string `json:"name"`
	Level      int    `json:"level"`
	Points     int    `json:"points"`
}

// WindowStats holds the per-window aggregates. Every average and rate is
// defined as 0 when Games is 0.
type WindowStats struct {
	Games  int `json:"games"`
	Wins   int `json:"wins"`
	Losses int `json:"losses"`

	WinRate    float64 `json:"winRate"` // percent
	AvgKills   float64 `json:"avgKills"`
	AvgDeaths  float64 `json:"avgDeaths"`
	AvgAssists float64 `json:"avgAssists"`
	KDA        float64 `json:"kda"`

	AvgDamagePerMin      float64 `json:"avgDamagePerMin"`
	AvgCSPerMin          float64 `json:"avgCSPerMin"`
	AvgKillParticipation float64 `json:"avgKillParticipation"` // percent, capped per match
	AvgVisionScore       float64 `json:"avgVisionScore"`

	MultiKills      int `json:"multiKills"` // penta + quadra events
	UniqueChampions int `json:"uniqueChampions"`

	// FlashKey is "None", "D", "F", or "D & F" depending on which summoner
	// spell slot held Flash across the window.
	FlashKey string `json:"flashKey"`
}

// DuoPartner is one entry of the duo-partner frequency table.
type DuoPartner struct {
	RiotID string `json:"riotId"` // "name#tag"
	Games  int    `json:"games"`
}

// MatchSummary is a per-match history row for display.
type MatchSummary struct {
	MatchID      string  `json:"matchId"`
	Win          bool    `json:"win"`
	QueueID      int     `json:"queueId"`
	Champion     string  `json:"champion"`
	Kills        int     `json:"kills"`
	Deaths       int     `json:"deaths"`
	Assists      int     `json:"assists"`
	KDA          float64 `json:"kda"`
	DurationMins int     `json:"durationMins"`
}

// Severity is the three-valued highlight classification.
type Severity int

const (
	SeverityNeutral Severity = iota
	SeverityGreen
	SeverityRed
)

func (s Severity) String() string {
	switch s {
	case SeverityGreen:
		return "green"
	case SeverityRed:
		return "red"
	default:
		return "neutral"
	}
}

// MarshalText encodes the severity as its lowercase name for JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Highlights is the fixed-shape category→severity mapping produced by the
// classifier. Field order matches the rendered table.
type Highlights struct {
	TotalWinRate      Severity `json:"totalWinRate"`
	RankedWinRate     Severity `json:"rankedWinRate"`
	ProfileIcon       Severity `json:"profileIcon"`
	Flash             Severity `json:"flash"`
	MultiKills        Severity `json:"multiKills"`
	DPM               Severity `json:"dpm"`
	CSPM              Severity `json:"cspm"`
	KP                Severity `json:"kp"`
	VisionScore       Severity `json:"visionScore"`
	RankedGamesPlayed Severity `json:"rankedGamesPlayed"`
	ChampionPool      Severity `json:"championPool"`
}

// Report is the flat object handed to the rendering layer and the HTTP
// server. Its JSON shape is the tool's only wire contract.
type Report struct {
	RiotID        string `json:"riotId"`
	Region        string `json:"region"`
	Level         int64  `json:"level"`
	ProfileIconID int    `json:"profileIconId"`
	DefaultIcon   bool   `json:"defaultIcon"`

	Rank        RankResult `json:"rank"`
	SeasonGames int        `json:"seasonGames"`
	SeasonWins  int        `json:"seasonWins"`
	SeasonLoss  int        `json:"seasonLosses"`

	Recent WindowStats `json:"recent"` // all valid recent games
	Ranked WindowStats `json:"ranked"` // ranked-queue subset

	DuoPartners []DuoPartner   `json:"duoPartners"`
	Masteries   []MasteryRow   `json:"masteries"`
	Highlights  Highlights     `json:"highlights"`
	History     []MatchSummary `json:"history"`
}
