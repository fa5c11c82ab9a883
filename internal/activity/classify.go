package activity

import (
	"math"
	"time"

	"github.com/la-castro-web/solanapix/internal/assetbook"
)

// lastDeltaWins is the composite-transaction policy: when one transaction
// moves several assets (e.g., a swap touches both the native asset and a
// token), the delta emitted last determines the record's asset, direction,
// and amount. This reproduces the behavior the production system has
// always shown; emitting multiple records per transaction would change
// every downstream consumer and needs a product decision first.
const lastDeltaWins = true

// Classifier reduces the delta sequence of one transaction to at most one
// activity record, resolving asset symbols through the registry.
type Classifier struct {
	book *assetbook.Book
}

// NewClassifier returns a Classifier backed by the given asset registry.
func NewClassifier(book *assetbook.Book) *Classifier {
	return &Classifier{book: book}
}

// Classify converts the deltas extracted for one transaction into an
// activity record. The boolean is false when the transaction produces no
// record: failed transactions and empty delta sequences are discarded.
//
// Only finalized, successful transactions reach a record, so the status
// is always completed. The counterparty is not reconstructable from
// balance snapshots, so the opposite side of the transfer is reported as
// Unknown.
func (c *Classifier) Classify(rec TransactionRecord, address string, deltas []BalanceDelta) (Record, bool) {
	if rec.Failed || len(deltas) == 0 {
		return Record{}, false
	}

	winner := deltas[len(deltas)-1]

	direction := DirectionReceived
	if winner.Amount < 0 {
		direction = DirectionSent
	}

	from, to := UnknownCounterparty, address
	if direction == DirectionSent {
		from, to = address, UnknownCounterparty
	}

	// A missing block time only affects sort stability, never display:
	// the feed is rebuilt from scratch on every refresh.
	timestamp := time.Now().UTC()
	if rec.BlockTime > 0 {
		timestamp = time.Unix(rec.BlockTime, 0).UTC()
	}

	return Record{
		Signature: rec.Signature,
		Direction: direction,
		Asset:     winner.Asset,
		Symbol:    c.book.Resolve(winner.Asset).Symbol,
		Amount:    math.Abs(winner.Amount),
		From:      from,
		To:        to,
		Timestamp: timestamp,
		Status:    StatusCompleted,
	}, true
}
