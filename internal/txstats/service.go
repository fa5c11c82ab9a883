// Package txstats folds the recent activity of an address into aggregate
// statistics expressed in a reporting currency. It runs the same
// extraction and classification pipeline as the history feed, over a
// larger window for better statistical signal, and recomputes the whole
// snapshot on every call.
package txstats

import (
	"context"
	"errors"
	"fmt"

	"github.com/la-castro-web/solanapix/internal/activity"
	"github.com/la-castro-web/solanapix/internal/pkg/logger"
	"github.com/la-castro-web/solanapix/internal/pkg/resilience/retry"
	"github.com/la-castro-web/solanapix/internal/pkg/validator"
	"github.com/la-castro-web/solanapix/internal/pkg/x/fanout"
)

// ErrStatsUnavailable is returned when no statistics can be computed at
// all: the signature listing failed, or every record fetch failed. The
// caller may simply invoke Compute again.
var ErrStatsUnavailable = errors.New("transaction statistics unavailable")

const (
	// defaultWindow is larger than the history window on purpose: the
	// averages get steadier with more samples.
	defaultWindow      = 50
	defaultConcurrency = 8

	// DefaultCurrency is the reporting currency of the original
	// deployment.
	DefaultCurrency = "brl"
)

// Snapshot is one wholesale recomputation of the aggregate statistics.
// Totals are expressed in the reporting currency; assets without a known
// rate contribute zero but still count toward TransactionCount.
type Snapshot struct {
	TotalReceived         float64 `json:"totalReceived"`
	TotalSent             float64 `json:"totalSent"`
	TransactionCount      int     `json:"transactionCount"`
	AveragePerTransaction float64 `json:"averagePerTransaction"`
	Currency              string  `json:"currency"`
}

// Service computes aggregate statistics for an address on demand.
type Service interface {
	Compute(ctx context.Context, address string) (Snapshot, error)
}

type service struct {
	ledger     Ledger
	rates      RateSource
	classifier *activity.Classifier

	window      int
	concurrency int
	currency    string
	retry       retry.Retry
}

var _ Service = (*service)(nil)

type config struct {
	window      int
	concurrency int
	currency    string
	retry       retry.Retry
}

// Option configures the stats service.
type Option func(*config)

// WithWindow sets how many recent transactions one Compute call inspects.
func WithWindow(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.window = n
		}
	}
}

// WithConcurrency bounds the number of record resolutions in flight.
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithCurrency sets the reporting currency (e.g., "brl", "usd").
func WithCurrency(currency string) Option {
	return func(c *config) {
		if currency != "" {
			c.currency = currency
		}
	}
}

// WithRetry wraps the signature listing call with the given retry policy.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// New creates a stats service reading from ledger, converting through
// rates, and classifying through classifier.
func New(ledger Ledger, rates RateSource, classifier *activity.Classifier, opts ...Option) *service {
	cfg := config{
		window:      defaultWindow,
		concurrency: defaultConcurrency,
		currency:    DefaultCurrency,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		ledger:      ledger,
		rates:       rates,
		classifier:  classifier,
		window:      cfg.window,
		concurrency: cfg.concurrency,
		currency:    cfg.currency,
		retry:       cfg.retry,
	}
}

// computeQuery carries the validated input of one Compute call.
type computeQuery struct {
	Address string `validate:"required"`
}

func (s *service) Compute(ctx context.Context, address string) (Snapshot, error) {
	if err := validator.Validate(computeQuery{Address: address}); err != nil {
		return Snapshot{}, err
	}

	signatures, err := s.listSignatures(ctx, address)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrStatsUnavailable, err)
	}

	records, err := s.resolveRecords(ctx, signatures)
	if err != nil {
		return Snapshot{}, err
	}

	snapshot := Snapshot{Currency: s.currency}
	for _, rec := range records {
		deltas := activity.ExtractDeltas(rec, address)
		entry, ok := s.classifier.Classify(rec, address, deltas)
		if !ok {
			continue
		}

		value := entry.Amount * s.rateFor(ctx, entry)

		switch entry.Direction {
		case activity.DirectionReceived:
			snapshot.TotalReceived += value
		case activity.DirectionSent:
			snapshot.TotalSent += value
		}
		snapshot.TransactionCount++
	}

	// Guard the division: an empty window must report a zero average,
	// not NaN.
	if snapshot.TransactionCount > 0 {
		snapshot.AveragePerTransaction = (snapshot.TotalReceived + snapshot.TotalSent) / float64(snapshot.TransactionCount)
	}

	return snapshot, nil
}

// rateFor converts one record's asset into the reporting currency. An
// unavailable rate degrades the contribution to zero; the record still
// counts toward the transaction count.
func (s *service) rateFor(ctx context.Context, entry activity.Record) float64 {
	rate, err := s.rates.RateFor(ctx, entry.Asset, s.currency)
	if err != nil {
		if !errors.Is(err, ErrRateUnavailable) {
			logger.Warn(ctx, "rate lookup failed, counting transaction at zero value",
				"asset", entry.Asset,
				"currency", s.currency,
				"error", err,
			)
		}
		return 0
	}
	return rate
}

// listSignatures fetches the signature window, retrying when a policy is
// configured.
func (s *service) listSignatures(ctx context.Context, address string) ([]string, error) {
	if s.retry == nil {
		return s.ledger.ListRecentSignatures(ctx, address, s.window)
	}

	var signatures []string
	err := s.retry.Execute(ctx, func() error {
		var listErr error
		signatures, listErr = s.ledger.ListRecentSignatures(ctx, address, s.window)
		return listErr
	})
	return signatures, err
}

// resolveRecords fans out one fetch per signature and joins the results
// in signature order. Per-item failures are dropped; only a fully failed
// batch is an error.
func (s *service) resolveRecords(ctx context.Context, signatures []string) ([]activity.TransactionRecord, error) {
	if len(signatures) == 0 {
		return nil, nil
	}

	results := fanout.Run(ctx, s.concurrency, signatures, func(ctx context.Context, _ int, signature string) (activity.TransactionRecord, error) {
		return s.ledger.GetTransaction(ctx, signature)
	})

	var (
		records = make([]activity.TransactionRecord, 0, len(results))
		lastErr error
	)
	for i, result := range results {
		if result.Err != nil {
			lastErr = result.Err
			logger.Debug(ctx, "dropping unresolvable transaction",
				"signature", signatures[i],
				"error", result.Err,
			)
			continue
		}
		records = append(records, result.Value)
	}

	if len(records) == 0 && lastErr != nil {
		return nil, fmt.Errorf("%w: all %d record fetches failed: %w", ErrStatsUnavailable, len(signatures), lastErr)
	}

	return records, nil
}
