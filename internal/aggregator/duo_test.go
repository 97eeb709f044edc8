package aggregator

import (
	"testing"

	"github.com/npastorale/lolscout/internal/riot"
)

func mate(puuid, name, tag string, teamID int) riot.Participant {
	return riot.Participant{
		PUUID:          puuid,
		RiotIDGameName: name,
		RiotIDTagline:  tag,
		TeamID:         teamID,
	}
}

// duoMatch builds a valid match with the target player on team 100 plus
// the given teammates.
func duoMatch(id string, mates ...riot.Participant) *riot.Match {
	parts := append([]riot.Participant{me(1, 1, 1, true)}, mates...)
	return makeMatch(id, 420, 1800, parts, map[int]int{100: 10})
}

func TestDuoTally_CountsAndThreshold(t *testing.T) {
	alice := mate("p-alice", "Alice", "NA1", 100)
	bob := mate("p-bob", "Bob", "NA1", 100)

	matches := []*riot.Match{
		duoMatch("m1", alice, bob),
		duoMatch("m2", alice),
		duoMatch("m3", alice),
	}

	duos := DuoTally(matches, targetPUUID, 2)

	if len(duos) != 1 {
		t.Fatalf("expected only Alice above the threshold, got %+v", duos)
	}
	if duos[0].RiotID != "Alice#NA1" || duos[0].Games != 3 {
		t.Errorf("got %+v, want Alice#NA1 with 3 games", duos[0])
	}
}

func TestDuoTally_ExcludesSentinelAndEnemies(t *testing.T) {
	ghostName := mate("p-g1", "undefined", "NA1", 100)
	ghostTag := mate("p-g2", "Carl", "undefined", 100)
	emptyName := mate("p-g3", "", "NA1", 100)
	enemy := mate("p-enemy", "Enemy", "NA1", 200)
	self := me(1, 1, 1, true)

	matches := []*riot.Match{
		duoMatch("m1", ghostName, ghostTag, emptyName, enemy, self),
		duoMatch("m2", ghostName, ghostTag, emptyName, enemy, self),
	}

	if duos := DuoTally(matches, targetPUUID, 2); len(duos) != 0 {
		t.Errorf("sentinel identities, enemies, and self must not be tallied: %+v", duos)
	}
}

func TestDuoTally_SortDescendingTiesKeepFirstSeen(t *testing.T) {
	alice := mate("p-alice", "Alice", "NA1", 100)
	bob := mate("p-bob", "Bob", "NA1", 100)
	cara := mate("p-cara", "Cara", "NA1", 100)

	// Bob appears first but Cara ends up with more games; Alice ties Bob.
	matches := []*riot.Match{
		duoMatch("m1", bob, alice),
		duoMatch("m2", bob, alice, cara),
		duoMatch("m3", cara),
		duoMatch("m4", cara),
	}

	duos := DuoTally(matches, targetPUUID, 2)

	want := []string{"Cara#NA1", "Bob#NA1", "Alice#NA1"}
	if len(duos) != len(want) {
		t.Fatalf("got %d partners, want %d: %+v", len(duos), len(want), duos)
	}
	for i, id := range want {
		if duos[i].RiotID != id {
			t.Errorf("position %d = %s, want %s (desc by games, ties first-seen)", i, duos[i].RiotID, id)
		}
	}
}

func TestDuoTally_SkipsInvalidMatches(t *testing.T) {
	alice := mate("p-alice", "Alice", "NA1", 100)
	short := makeMatch("m1", 420, 60, []riot.Participant{me(1, 1, 1, true), alice}, nil)

	matches := []*riot.Match{short, nil, duoMatch("m2", alice)}

	if duos := DuoTally(matches, targetPUUID, 2); len(duos) != 0 {
		t.Errorf("remakes and nil matches must not count: %+v", duos)
	}
}
