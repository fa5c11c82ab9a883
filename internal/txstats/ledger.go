package txstats

import (
	"context"
	"errors"

	"github.com/la-castro-web/solanapix/internal/activity"
	"github.com/la-castro-web/solanapix/internal/assetbook"
)

// ErrRateUnavailable signals that the rate source has no conversion rate
// for an asset. Rate sources return it (possibly wrapped) so aggregation
// can degrade that asset's contribution to zero instead of failing.
var ErrRateUnavailable = errors.New("conversion rate unavailable")

// Ledger reads finalized transaction data for one address from the chain.
type Ledger interface {
	// ListRecentSignatures returns up to limit signatures of the most
	// recent transactions involving address, newest first.
	ListRecentSignatures(ctx context.Context, address string, limit int) ([]string, error)

	// GetTransaction resolves one signature to its full transaction
	// record.
	GetTransaction(ctx context.Context, signature string) (activity.TransactionRecord, error)
}

// RateSource converts asset amounts into the reporting currency. An
// unknown asset yields ErrRateUnavailable rather than a zero rate, so
// callers can distinguish "worth nothing" from "price unknown".
type RateSource interface {
	RateFor(ctx context.Context, asset assetbook.Asset, currency string) (float64, error)
}
