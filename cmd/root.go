package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	dbPath string
	region string
)

var rootCmd = &cobra.Command{
	Use:   "lolscout",
	Short: "League of Legends player scouting tool",
	Long: `Fetches a player's recent matches, rank, and champion masteries from
the Riot API and reduces them to aggregate statistics with anomaly
highlights.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".lolscout", "cache.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite match cache")
	rootCmd.PersistentFlags().StringVar(&region, "region", "na1", "platform region (na1, euw1, kr, ...)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(masteriesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(cacheCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// loadRiotAPIKey returns the Riot API key from the RIOT_API_KEY
// environment variable (a .env file in the working directory is loaded
// first) or ~/.lolscout/riot_api_key.
func loadRiotAPIKey() (string, error) {
	_ = godotenv.Load()
	if key := os.Getenv("RIOT_API_KEY"); key != "" {
		return key, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(home, ".lolscout", "riot_api_key"))
	if err != nil {
		return "", fmt.Errorf("Riot API key not found: set RIOT_API_KEY or create ~/.lolscout/riot_api_key")
	}
	return strings.TrimSpace(string(data)), nil
}

// splitRiotID splits a "GameName#TagLine" argument into its halves.
func splitRiotID(arg string) (string, string, error) {
	name, tag, ok := strings.Cut(arg, "#")
	if !ok || name == "" || tag == "" {
		return "", "", fmt.Errorf("expected GameName#TagLine, got %q", arg)
	}
	return name, tag, nil
}
