package aggregator

import (
	"sort"

	"github.com/npastorale/lolscout/internal/model"
	"github.com/npastorale/lolscout/internal/riot"
)

// identitySentinel is the literal the upstream uses when a participant's
// naming data was never populated.
const identitySentinel = "undefined"

// knownIdentity reports whether both halves of a riot id are usable.
// A sentinel or empty value in either field disqualifies the teammate.
func knownIdentity(gameName, tagLine string) bool {
	if gameName == "" || gameName == identitySentinel {
		return false
	}
	if tagLine == "" || tagLine == identitySentinel {
		return false
	}
	return true
}

// DuoTally counts how often each teammate shared the player's team across
// the valid matches, drops entries below minGames, and sorts the rest
// descending by count. Ties keep first-appearance order, so the result is
// deterministic for a given input order.
func DuoTally(matches []*riot.Match, puuid string, minGames int) []model.DuoPartner {
	counts := make(map[string]int)
	var order []string

	for _, m := range matches {
		player, ok := findParticipant(m, puuid)
		if !ok {
			continue
		}
		for i := range m.Info.Participants {
			mate := &m.Info.Participants[i]
			if mate.PUUID == puuid || mate.TeamID != player.TeamID {
				continue
			}
			if !knownIdentity(mate.RiotIDGameName, mate.RiotIDTagline) {
				continue
			}
			key := mate.RiotIDGameName + "#" + mate.RiotIDTagline
			if _, seen := counts[key]; !seen {
				order = append(order, key)
			}
			counts[key]++
		}
	}

	var partners []model.DuoPartner
	for _, key := range order {
		if counts[key] >= minGames {
			partners = append(partners, model.DuoPartner{RiotID: key, Games: counts[key]})
		}
	}
	sort.SliceStable(partners, func(i, j int) bool {
		return partners[i].Games > partners[j].Games
	})
	return partners
}
