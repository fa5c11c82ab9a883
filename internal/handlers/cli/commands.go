package cli

import (
	"context"

	"github.com/la-castro-web/solanapix/internal/holdings"
	"github.com/la-castro-web/solanapix/internal/txhistory"
	"github.com/la-castro-web/solanapix/internal/txstats"

	"github.com/urfave/cli/v3"
)

// historyCommand returns the CLI command that builds and prints the
// classified activity feed of a wallet.
//
// Usage example:
//
//	solanapix history --address 7rPvX... --all
func historyCommand(history txhistory.Service) *cli.Command {
	return &cli.Command{
		Name:        "history",
		Description: "Fetch the recent transactions of a wallet and print the classified activity feed as JSON.",
		Usage:       "Builds the activity feed for a wallet address. Shows the first entries unless --all is set.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to build the history for",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Print the full fetched window instead of the default display slice",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			feed, err := history.Build(ctx, c.String("address"))
			if err != nil {
				return err
			}

			if c.Bool("all") {
				feed.ShowAll()
			}

			return printJSON(feed.Visible())
		},
	}
}

// statsCommand returns the CLI command that computes and prints the
// aggregate statistics of a wallet.
//
// Usage example:
//
//	solanapix stats --address 7rPvX...
func statsCommand(stats txstats.Service) *cli.Command {
	return &cli.Command{
		Name:        "stats",
		Description: "Compute totals, count, and average transaction value for a wallet, in the reporting currency.",
		Usage:       "Computes aggregate statistics for a wallet address and prints them as JSON.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to compute statistics for",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			snapshot, err := stats.Compute(ctx, c.String("address"))
			if err != nil {
				return err
			}

			return printJSON(snapshot)
		},
	}
}

// balanceCommand returns the CLI command that prints the current valued
// balance snapshot of a wallet.
//
// Usage example:
//
//	solanapix balance --address 7rPvX...
func balanceCommand(portfolio holdings.Service) *cli.Command {
	return &cli.Command{
		Name:        "balance",
		Description: "Fetch the current native and token balances of a wallet, valued in the reporting currency.",
		Usage:       "Produces the balance snapshot for a wallet address and prints it as JSON.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to fetch balances for",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			snapshot, err := portfolio.Snapshot(ctx, c.String("address"))
			if err != nil {
				return err
			}

			return printJSON(snapshot)
		},
	}
}
