package txhistory

import (
	"context"

	"github.com/la-castro-web/solanapix/internal/activity"
)

// Ledger reads finalized transaction data for one address from the chain.
type Ledger interface {
	// ListRecentSignatures returns up to limit signatures of the most
	// recent transactions involving address, newest first.
	ListRecentSignatures(ctx context.Context, address string, limit int) ([]string, error)

	// GetTransaction resolves one signature to its full transaction
	// record.
	GetTransaction(ctx context.Context, signature string) (activity.TransactionRecord, error)
}

// RecordCache optionally stores resolved transaction records by
// signature. Records are immutable once finalized, so cached entries
// never go stale; the cache only bounds their lifetime.
type RecordCache interface {
	// GetRecord returns the cached record for signature. The boolean is
	// false on a miss.
	GetRecord(ctx context.Context, signature string) (activity.TransactionRecord, bool, error)

	// PutRecord stores the record under its signature.
	PutRecord(ctx context.Context, signature string, rec activity.TransactionRecord) error
}

// nopRecordCache is the default cache: it never hits and never stores.
type nopRecordCache struct{}

var _ RecordCache = nopRecordCache{}

func (nopRecordCache) GetRecord(context.Context, string) (activity.TransactionRecord, bool, error) {
	return activity.TransactionRecord{}, false, nil
}

func (nopRecordCache) PutRecord(context.Context, string, activity.TransactionRecord) error {
	return nil
}
