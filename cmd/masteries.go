package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/npastorale/lolscout/internal/aggregator"
	"github.com/npastorale/lolscout/internal/ddragon"
	"github.com/npastorale/lolscout/internal/model"
	"github.com/npastorale/lolscout/internal/report"
	"github.com/npastorale/lolscout/internal/riot"
)

var (
	masteriesSort string
	masteriesTop  int
)

var masteriesCmd = &cobra.Command{
	Use:   "masteries <GameName#TagLine>",
	Short: "Show a player's champion masteries",
	Long: `Fetches the player's champion masteries and merges them against the
full champion catalog, so never-played champions appear with zero
points.

Examples:
  lolscout masteries "Faker#KR1" --region kr --top 20
  lolscout masteries "Some Player#NA1" --sort name-asc`,
	Args: cobra.ExactArgs(1),
	RunE: runMasteries,
}

func init() {
	masteriesCmd.Flags().StringVar(&masteriesSort, "sort", "points-desc",
		"sort order: points-desc, points-asc, name-asc, name-desc")
	masteriesCmd.Flags().IntVar(&masteriesTop, "top", 0, "show only the first N rows (0 = all)")
}

func runMasteries(cmd *cobra.Command, args []string) error {
	name, tag, err := splitRiotID(args[0])
	if err != nil {
		return err
	}
	order, err := aggregator.ParseMasterySort(masteriesSort)
	if err != nil {
		return err
	}

	apiKey, err := loadRiotAPIKey()
	if err != nil {
		return err
	}
	client := riot.NewClient(apiKey, region)
	ctx := context.Background()

	account, err := client.AccountByRiotID(ctx, name, tag)
	if err != nil {
		return fmt.Errorf("lookup %s#%s: %w", name, tag, err)
	}
	masteries, err := client.ChampionMasteries(ctx, account.PUUID)
	if err != nil {
		return fmt.Errorf("masteries: %w", err)
	}
	catalog, err := ddragon.NewCatalog().Champions(ctx)
	if err != nil {
		return fmt.Errorf("champion catalog: %w", err)
	}

	owned := make([]model.MasteryEntry, len(masteries))
	for i, m := range masteries {
		owned[i] = model.MasteryEntry{ChampionID: m.ChampionID, Level: m.ChampionLevel, Points: m.ChampionPoints}
	}
	rows := aggregator.MergeMasteries(catalog, owned)
	aggregator.SortMasteries(rows, order)

	fmt.Printf("\n%s#%s  |  %d champions\n\n", account.GameName, account.TagLine, len(rows))
	report.PrintMasteryTable(os.Stdout, rows, masteriesTop)
	return nil
}
