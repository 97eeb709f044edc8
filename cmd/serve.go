package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/npastorale/lolscout/internal/analyzer"
	"github.com/npastorale/lolscout/internal/ddragon"
	"github.com/npastorale/lolscout/internal/model"
	"github.com/npastorale/lolscout/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis API over HTTP",
	Long: `Runs an HTTP server exposing GET /api/analyze for browser frontends.

Example:
  lolscout serve --addr :8080
  curl 'localhost:8080/api/analyze?name=Faker&tag=KR1&region=kr'`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	apiKey, err := loadRiotAPIKey()
	if err != nil {
		return err
	}
	catalog := ddragon.NewCatalog()

	// Clients are platform-bound, so one is built per request; they all
	// share the catalog and the match cache.
	analyze := func(ctx context.Context, platform, name, tag string, count int) (*model.Report, error) {
		client, closeCache := newRiotClient(apiKey, platform)
		defer closeCache()

		cfg := analyzer.DefaultConfig()
		if count > 0 {
			cfg.MatchCount = count
		}
		return analyzer.New(client, catalog, cfg).Analyze(ctx, name, tag)
	}

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           server.New(analyze).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	fmt.Printf("listening on %s\n", serveAddr)
	return srv.ListenAndServe()
}
