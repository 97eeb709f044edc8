// Package report renders the analysis report as terminal tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/npastorale/lolscout/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// queueName maps a queue id to its display label.
func queueName(queueID int) string {
	switch queueID {
	case 420:
		return "Ranked Solo/Duo"
	case 440:
		return "Ranked Flex"
	case 450:
		return "ARAM"
	default:
		return fmt.Sprintf("Queue %d", queueID)
	}
}

// PrintProfile prints the one-line profile header.
func PrintProfile(w io.Writer, r *model.Report) {
	icon := ""
	if r.DefaultIcon {
		icon = "  |  default icon"
	}
	fmt.Fprintf(w, "\n%s  |  Level %d  |  %s  |  %s%s\n\n",
		r.RiotID, r.Level, r.Region, r.Rank.Display(), icon)
}

// PrintWindowTable prints the per-window aggregates side by side.
func PrintWindowTable(w io.Writer, recent, ranked model.WindowStats) {
	table := newTable(w)
	table.Header("STAT", "ALL MODES", "RANKED ONLY")

	rows := []struct {
		name     string
		all, sub string
	}{
		{"Games", strconv.Itoa(recent.Games), strconv.Itoa(ranked.Games)},
		{"W - L", fmt.Sprintf("%dW / %dL", recent.Wins, recent.Losses), fmt.Sprintf("%dW / %dL", ranked.Wins, ranked.Losses)},
		{"Win rate", fmt.Sprintf("%.0f%%", recent.WinRate), fmt.Sprintf("%.0f%%", ranked.WinRate)},
		{"Avg K / D / A", fmt.Sprintf("%.1f / %.1f / %.1f", recent.AvgKills, recent.AvgDeaths, recent.AvgAssists),
			fmt.Sprintf("%.1f / %.1f / %.1f", ranked.AvgKills, ranked.AvgDeaths, ranked.AvgAssists)},
		{"KDA", fmt.Sprintf("%.2f", recent.KDA), fmt.Sprintf("%.2f", ranked.KDA)},
		{"DPM", fmt.Sprintf("%.0f", recent.AvgDamagePerMin), fmt.Sprintf("%.0f", ranked.AvgDamagePerMin)},
		{"CS/min", fmt.Sprintf("%.1f", recent.AvgCSPerMin), fmt.Sprintf("%.1f", ranked.AvgCSPerMin)},
		{"Kill participation", fmt.Sprintf("%.0f%%", recent.AvgKillParticipation), fmt.Sprintf("%.0f%%", ranked.AvgKillParticipation)},
		{"Vision score", fmt.Sprintf("%.1f", recent.AvgVisionScore), fmt.Sprintf("%.1f", ranked.AvgVisionScore)},
		{"Multi-kills", strconv.Itoa(recent.MultiKills), strconv.Itoa(ranked.MultiKills)},
		{"Unique champions", strconv.Itoa(recent.UniqueChampions), strconv.Itoa(ranked.UniqueChampions)},
		{"Flash key", recent.FlashKey, ranked.FlashKey},
	}
	for _, r := range rows {
		table.Append(r.name, r.all, r.sub)
	}
	table.Render()
}

// PrintHighlightTable prints the category→severity map; flagged rows are
// marked so they stand out in a monochrome terminal.
func PrintHighlightTable(w io.Writer, h model.Highlights) {
	table := newTable(w)
	table.Header(" ", "CATEGORY", "SEVERITY")

	rows := []struct {
		name string
		sev  model.Severity
	}{
		{"totalWinRate", h.TotalWinRate},
		{"rankedWinRate", h.RankedWinRate},
		{"profileIcon", h.ProfileIcon},
		{"flash", h.Flash},
		{"multiKills", h.MultiKills},
		{"dpm", h.DPM},
		{"cspm", h.CSPM},
		{"kp", h.KP},
		{"visionScore", h.VisionScore},
		{"rankedGamesPlayed", h.RankedGamesPlayed},
		{"championPool", h.ChampionPool},
	}
	for _, r := range rows {
		marker := " "
		if r.sev == model.SeverityRed {
			marker = "!"
		}
		table.Append(marker, r.name, r.sev.String())
	}
	table.Render()
}

// PrintDuoTable prints the duo-partner frequency table.
func PrintDuoTable(w io.Writer, duos []model.DuoPartner) {
	if len(duos) == 0 {
		fmt.Fprintln(w, "No recurring duo partners.")
		return
	}
	table := newTable(w)
	table.Header("PARTNER", "GAMES")
	for _, d := range duos {
		table.Append(d.RiotID, strconv.Itoa(d.Games))
	}
	table.Render()
}

// PrintMasteryTable prints up to limit merged mastery rows (0 = all).
func PrintMasteryTable(w io.Writer, rows []model.MasteryRow, limit int) {
	table := newTable(w)
	table.Header("CHAMPION", "LEVEL", "POINTS")
	for i, r := range rows {
		if limit > 0 && i >= limit {
			break
		}
		table.Append(r.Name, strconv.Itoa(r.Level), strconv.Itoa(r.Points))
	}
	table.Render()
}

// PrintHistoryTable prints the per-match history rows.
func PrintHistoryTable(w io.Writer, history []model.MatchSummary) {
	if len(history) == 0 {
		fmt.Fprintln(w, "No valid recent games.")
		return
	}
	table := newTable(w)
	table.Header("RESULT", "QUEUE", "CHAMPION", "K / D / A", "KDA", "MINS")
	for _, m := range history {
		result := "DEFEAT"
		if m.Win {
			result = "VICTORY"
		}
		table.Append(
			result,
			queueName(m.QueueID),
			m.Champion,
			fmt.Sprintf("%d / %d / %d", m.Kills, m.Deaths, m.Assists),
			fmt.Sprintf("%.2f", m.KDA),
			strconv.Itoa(m.DurationMins),
		)
	}
	table.Render()
}
