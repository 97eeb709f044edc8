// Package main is the entry point for the lolscout CLI, which fetches a
// League of Legends player's recent history from the Riot API and
// reduces it to aggregate statistics and anomaly highlights.
package main

import "github.com/npastorale/lolscout/cmd"

func main() {
	cmd.Execute()
}
