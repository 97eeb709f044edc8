package aggregator

import (
	"fmt"
	"sort"

	"github.com/npastorale/lolscout/internal/model"
)

// MasterySort is the four-state ordering cycle for the mastery table.
type MasterySort int

const (
	ByPointsDesc MasterySort = iota
	ByPointsAsc
	ByNameAsc
	ByNameDesc
)

// Next advances the cycle: points desc → points asc → name asc → name desc.
func (s MasterySort) Next() MasterySort {
	return (s + 1) % 4
}

func (s MasterySort) String() string {
	switch s {
	case ByPointsAsc:
		return "points-asc"
	case ByNameAsc:
		return "name-asc"
	case ByNameDesc:
		return "name-desc"
	default:
		return "points-desc"
	}
}

// ParseMasterySort maps a flag value to its sort order.
func ParseMasterySort(s string) (MasterySort, error) {
	switch s {
	case "points-desc":
		return ByPointsDesc, nil
	case "points-asc":
		return ByPointsAsc, nil
	case "name-asc":
		return ByNameAsc, nil
	case "name-desc":
		return ByNameDesc, nil
	}
	return ByPointsDesc, fmt.Errorf("unknown sort order %q", s)
}

// MergeMasteries left-joins the full champion catalog against the
// player's sparse mastery list. The merge is total over the catalog:
// every champion appears exactly once, untouched champions at level 0,
// points 0. The result carries the default order (points descending,
// name ascending on ties).
func MergeMasteries(catalog map[int64]string, owned []model.MasteryEntry) []model.MasteryRow {
	byID := make(map[int64]model.MasteryEntry, len(owned))
	for _, e := range owned {
		byID[e.ChampionID] = e
	}

	rows := make([]model.MasteryRow, 0, len(catalog))
	for id, name := range catalog {
		row := model.MasteryRow{ChampionID: id, Name: name}
		if e, ok := byID[id]; ok {
			row.Level = e.Level
			row.Points = e.Points
		}
		rows = append(rows, row)
	}

	SortMasteries(rows, ByPointsDesc)
	return rows
}

// SortMasteries orders the merged rows in place by the given state.
func SortMasteries(rows []model.MasteryRow, order MasterySort) {
	sort.SliceStable(rows, func(i, j int) bool {
		switch order {
		case ByPointsAsc:
			if rows[i].Points != rows[j].Points {
				return rows[i].Points < rows[j].Points
			}
			return rows[i].Name < rows[j].Name
		case ByNameAsc:
			return rows[i].Name < rows[j].Name
		case ByNameDesc:
			return rows[i].Name > rows[j].Name
		default: // ByPointsDesc
			if rows[i].Points != rows[j].Points {
				return rows[i].Points > rows[j].Points
			}
			return rows[i].Name < rows[j].Name
		}
	})
}
