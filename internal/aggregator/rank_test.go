package aggregator

import (
	"testing"

	"github.com/npastorale/lolscout/internal/model"
)

func TestSelectRank_EmptyIsUnranked(t *testing.T) {
	got := SelectRank(nil)
	if got.State != model.RankStateUnranked {
		t.Errorf("State = %v, want unranked", got.State)
	}
	if got.Entry != nil {
		t.Errorf("Entry = %+v, want nil", got.Entry)
	}
	if got.Ordinal() != model.TierUnranked {
		t.Errorf("Ordinal = %d, want 0", got.Ordinal())
	}
}

func TestSelectRank_HigherTierWins(t *testing.T) {
	entries := []model.RankEntry{
		{QueueType: "RANKED_SOLO_5x5", Tier: "GOLD", Division: "II", Wins: 40, Losses: 30},
		{QueueType: "RANKED_FLEX_SR", Tier: "EMERALD", Division: "IV", Wins: 20, Losses: 15},
	}

	got := SelectRank(entries)

	if got.State != model.RankStateRanked {
		t.Fatalf("State = %v, want ranked", got.State)
	}
	if got.Entry.Tier != "EMERALD" || got.Queue != "Flex" {
		t.Errorf("selected %s (%s), want EMERALD (Flex)", got.Entry.Tier, got.Queue)
	}
	if got.Ordinal() != model.TierEmerald {
		t.Errorf("Ordinal = %d, want %d", got.Ordinal(), model.TierEmerald)
	}
}

func TestSelectRank_TieKeepsFirstSeen(t *testing.T) {
	entries := []model.RankEntry{
		{QueueType: "RANKED_FLEX_SR", Tier: "PLATINUM", Division: "I"},
		{QueueType: "RANKED_SOLO_5x5", Tier: "PLATINUM", Division: "III"},
	}

	got := SelectRank(entries)

	if got.Entry.QueueType != "RANKED_FLEX_SR" || got.Queue != "Flex" {
		t.Errorf("tie must keep the first entry, got %s", got.Entry.QueueType)
	}
}

func TestSelectRank_UnknownQueueTypeLabel(t *testing.T) {
	got := SelectRank([]model.RankEntry{{QueueType: "RANKED_TFT", Tier: "SILVER", Division: "I"}})
	if got.Queue != "RANKED_TFT" {
		t.Errorf("unknown queue types pass through verbatim, got %q", got.Queue)
	}
}
