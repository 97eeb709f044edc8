package aggregator

import "github.com/npastorale/lolscout/internal/model"

// queueLabel gives the short display name for a ranked queue type.
func queueLabel(queueType string) string {
	switch queueType {
	case "RANKED_SOLO_5x5":
		return "Solo/Duo"
	case "RANKED_FLEX_SR":
		return "Flex"
	default:
		return queueType
	}
}

// SelectRank picks the representative rank from the player's queue
// entries: the strictly higher tier wins, a tie keeps the first-seen
// entry. An empty input is the unranked state, not an error — a failed
// rank fetch is the caller's to mark as RankStateFetchFailed instead.
func SelectRank(entries []model.RankEntry) model.RankResult {
	if len(entries) == 0 {
		return model.RankResult{State: model.RankStateUnranked}
	}

	best := 0
	for i := 1; i < len(entries); i++ {
		if model.TierFromString(entries[i].Tier) > model.TierFromString(entries[best].Tier) {
			best = i
		}
	}

	entry := entries[best]
	return model.RankResult{
		State: model.RankStateRanked,
		Entry: &entry,
		Queue: queueLabel(entry.QueueType),
	}
}
