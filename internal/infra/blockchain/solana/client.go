// Package solana reads finalized transaction and balance data from a
// Solana node through the generic JSON-RPC client. It implements the
// ledger and chain-reader ports of the history, stats, and holdings
// services, converting raw RPC payloads to domain types at this boundary
// so malformed external data never reaches the core's pure functions.
package solana

import (
	"github.com/la-castro-web/solanapix/internal/holdings"
	"github.com/la-castro-web/solanapix/internal/pkg/transport/jsonrpc"
	"github.com/la-castro-web/solanapix/internal/txhistory"
	"github.com/la-castro-web/solanapix/internal/txstats"
)

// client talks to a Solana RPC node via a JSON-RPC connection.
type client struct {
	conn jsonrpc.Client
}

var (
	_ txhistory.Ledger     = (*client)(nil)
	_ txstats.Ledger       = (*client)(nil)
	_ holdings.ChainReader = (*client)(nil)
)

// NewClient creates a Solana chain client using the provided JSON-RPC
// connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
