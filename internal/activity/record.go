// Package activity reconstructs wallet activity from raw ledger
// transaction snapshots. It diffs before/after account state to infer the
// direction and magnitude of value transfers for one observed address,
// and reduces each transaction to at most one activity record.
package activity

import (
	"time"

	"github.com/la-castro-web/solanapix/internal/assetbook"
)

const (
	// LamportsPerSOL is the native unit scale: lamports per whole SOL.
	LamportsPerSOL = 1_000_000_000

	// DustThreshold is the minimum absolute balance change treated as a
	// real transfer. Smaller deltas are fee or rent noise and are
	// suppressed so fee-only transactions never classify as transfers.
	DustThreshold = 1e-6

	// UnknownCounterparty fills the from/to side that cannot be
	// reconstructed from balance snapshots alone.
	UnknownCounterparty = "Unknown"
)

// Direction indicates whether value moved toward or away from the
// observed address.
type Direction string

const (
	DirectionReceived Direction = "received"
	DirectionSent     Direction = "sent"
)

// Status is the settlement state of an activity record.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusFailed    Status = "failed"
)

// AccountKey is one participant of a transaction.
type AccountKey struct {
	Pubkey   string
	Signer   bool
	Writable bool
}

// TokenBalance is one token-account balance entry from a pre- or
// post-transaction snapshot. UIAmount is already decimal-adjusted.
type TokenBalance struct {
	AccountIndex int
	Mint         string
	Owner        string
	UIAmount     float64
}

// TransactionRecord is an immutable snapshot of one finalized ledger
// transaction: the participant list, the native balance arrays indexed
// parallel to it, and the token balance collections before and after.
type TransactionRecord struct {
	Signature         string
	BlockTime         int64 // seconds since epoch; zero when the ledger omitted it
	Failed            bool
	AccountKeys       []AccountKey
	PreBalances       []int64 // lamports, parallel to AccountKeys
	PostBalances      []int64 // lamports, parallel to AccountKeys
	PreTokenBalances  []TokenBalance
	PostTokenBalances []TokenBalance
}

// BalanceDelta is one per-asset value change attributed to the observed
// address across a transaction. Amount > 0 means holdings increased.
type BalanceDelta struct {
	Asset  assetbook.Asset
	Amount float64
}

// Record is one classified entry of the activity feed. Records are
// created once and never updated; a refresh replaces the whole feed.
type Record struct {
	Signature string          `json:"signature"`
	Direction Direction       `json:"direction"`
	Asset     assetbook.Asset `json:"asset"`
	Symbol    string          `json:"symbol"`
	Amount    float64         `json:"amount"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Timestamp time.Time       `json:"timestamp"`
	Status    Status          `json:"status"`
}
