package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/npastorale/lolscout/internal/analyzer"
	"github.com/npastorale/lolscout/internal/ddragon"
	"github.com/npastorale/lolscout/internal/report"
	"github.com/npastorale/lolscout/internal/riot"
	"github.com/npastorale/lolscout/internal/storage"
)

var (
	analyzeCount int
	analyzeJSON  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <GameName#TagLine>",
	Short: "Analyze a player's recent matches",
	Long: `Fetches the player's account, rank, masteries, and recent match
history, then prints aggregate statistics, duo partners, and anomaly
highlights.

Examples:
  lolscout analyze "Faker#KR1" --region kr
  lolscout analyze "Some Player#NA1" --count 40 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeCount, "count", 20, "number of recent matches to analyze (1-100)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "emit the raw report as JSON instead of tables")
}

// newRiotClient builds a platform-bound client with the SQLite match
// cache attached. A cache that fails to open is logged and skipped; the
// client works without one.
func newRiotClient(apiKey, platform string) (*riot.Client, func()) {
	client := riot.NewClient(apiKey, platform)
	closer := func() {}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "[warn] create cache dir: %v\n", err)
		return client, closer
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[warn] open match cache: %v\n", err)
		return client, closer
	}
	client.Cache = db
	return client, func() { db.Close() }
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	name, tag, err := splitRiotID(args[0])
	if err != nil {
		return err
	}
	if analyzeCount < 1 || analyzeCount > 100 {
		return fmt.Errorf("--count must be between 1 and 100")
	}

	apiKey, err := loadRiotAPIKey()
	if err != nil {
		return err
	}

	client, closeCache := newRiotClient(apiKey, region)
	defer closeCache()

	cfg := analyzer.DefaultConfig()
	cfg.MatchCount = analyzeCount
	a := analyzer.New(client, ddragon.NewCatalog(), cfg)

	rep, err := a.Analyze(context.Background(), name, tag)
	if err != nil {
		return err
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	out := os.Stdout
	report.PrintProfile(out, rep)
	report.PrintWindowTable(out, rep.Recent, rep.Ranked)
	fmt.Fprintln(out, "\nHighlights:")
	report.PrintHighlightTable(out, rep.Highlights)
	fmt.Fprintln(out, "\nDuo partners:")
	report.PrintDuoTable(out, rep.DuoPartners)
	fmt.Fprintln(out, "\nTop masteries:")
	report.PrintMasteryTable(out, rep.Masteries, 10)
	fmt.Fprintln(out, "\nRecent games:")
	report.PrintHistoryTable(out, rep.History)
	return nil
}
