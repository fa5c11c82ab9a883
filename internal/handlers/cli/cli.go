// Package cli exposes the wallet activity engine as a command-line
// application: transaction history, aggregate statistics, and the
// current balance snapshot, each printed as JSON for a UI layer or a
// test harness to consume.
package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/la-castro-web/solanapix/internal/holdings"
	"github.com/la-castro-web/solanapix/internal/txhistory"
	"github.com/la-castro-web/solanapix/internal/txstats"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the solanapix CLI application.
//
// It registers all available commands:
//
//   - `history`: Builds the classified activity feed for an address.
//   - `stats`: Computes aggregate statistics for an address.
//   - `balance`: Produces the current balance snapshot for an address.
func Run(ctx context.Context, history txhistory.Service, stats txstats.Service, portfolio holdings.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "solanapix",
		Description:           "Command-line interface for the Solanapix wallet activity engine.",
		Usage:                 "solanapix [command] [flags]",
		Commands: []*cli.Command{
			historyCommand(history),
			statsCommand(stats),
			balanceCommand(portfolio),
		},
	}

	return app.Run(ctx, os.Args)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
