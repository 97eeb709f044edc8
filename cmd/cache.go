package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/npastorale/lolscout/internal/storage"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the local match cache",
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show how many matches are cached",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := storage.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := db.Count()
		if err != nil {
			return err
		}
		fmt.Printf("%d cached matches in %s\n", n, dbPath)
		return nil
	},
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete every cached match",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := storage.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := db.Purge()
		if err != nil {
			return err
		}
		fmt.Printf("purged %d cached matches\n", n)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheInfoCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
}
