package riot

import "github.com/npastorale/lolscout/internal/model"

// Account is the account-v1 lookup result: the PUUID is the permanent
// identity used as the join key across every other endpoint.
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Summoner holds the fields we need from summoner-v4.
type Summoner struct {
	ID            string `json:"id"` // encrypted summoner id
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int64  `json:"summonerLevel"`
}

// LeagueEntry is one queue's rank entry from league-v4. The wire field for
// the division is "rank"; the domain type calls it Division.
type LeagueEntry struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

// Domain converts the wire entry to the model type.
func (e LeagueEntry) Domain() model.RankEntry {
	return model.RankEntry{
		QueueType:    e.QueueType,
		Tier:         e.Tier,
		Division:     e.Rank,
		LeaguePoints: e.LeaguePoints,
		Wins:         e.Wins,
		Losses:       e.Losses,
	}
}

// Mastery is one entry from champion-mastery-v4.
type Mastery struct {
	ChampionID     int64 `json:"championId"`
	ChampionLevel  int   `json:"championLevel"`
	ChampionPoints int   `json:"championPoints"`
}

// Match is a match-v5 detail record, trimmed to the fields the
// aggregation core consumes.
type Match struct {
	Metadata struct {
		MatchID string `json:"matchId"`
	} `json:"metadata"`
	Info MatchInfo `json:"info"`
}

// MatchInfo carries the per-game fields plus all ten participants and
// both team objective summaries.
type MatchInfo struct {
	GameDuration int64         `json:"gameDuration"` // seconds
	QueueID      int           `json:"queueId"`
	Participants []Participant `json:"participants"`
	Teams        []Team        `json:"teams"`
}

// Participant is one of the ten players in a match. VisionScore is a
// pointer because older records omit it; absent means 0 at the
// aggregation boundary, never at the point of arithmetic.
type Participant struct {
	PUUID          string `json:"puuid"`
	RiotIDGameName string `json:"riotIdGameName"`
	RiotIDTagline  string `json:"riotIdTagline"`
	TeamID         int    `json:"teamId"`
	Win            bool   `json:"win"`

	ChampionID   int    `json:"championId"`
	ChampionName string `json:"championName"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	Summoner1ID int `json:"summoner1Id"`
	Summoner2ID int `json:"summoner2Id"`

	TotalDamageDealtToChampions int      `json:"totalDamageDealtToChampions"`
	TotalMinionsKilled          int      `json:"totalMinionsKilled"`
	VisionScore                 *float64 `json:"visionScore,omitempty"`

	PentaKills  int `json:"pentaKills"`
	QuadraKills int `json:"quadraKills"`
}

// Team holds one side's objective summary; ChampionKills is the
// denominator for kill participation.
type Team struct {
	TeamID     int `json:"teamId"`
	Objectives struct {
		Champion struct {
			Kills int `json:"kills"`
		} `json:"champion"`
	} `json:"objectives"`
}
