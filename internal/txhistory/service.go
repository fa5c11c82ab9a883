package txhistory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/la-castro-web/solanapix/internal/activity"
	"github.com/la-castro-web/solanapix/internal/pkg/logger"
	"github.com/la-castro-web/solanapix/internal/pkg/resilience/retry"
	"github.com/la-castro-web/solanapix/internal/pkg/validator"
	"github.com/la-castro-web/solanapix/internal/pkg/x/fanout"
)

// ErrHistoryUnavailable is returned when the history cannot be built at
// all: the signature listing failed, or every single record resolution
// failed. The caller may simply invoke Build again; the service keeps no
// state between calls.
var ErrHistoryUnavailable = errors.New("transaction history unavailable")

const (
	defaultWindow      = 20
	defaultConcurrency = 8
)

// ProgressFunc observes the resolution progress of one Build call as a
// 0-100 value, monotonic non-decreasing within the call. It is purely
// informational.
type ProgressFunc func(percent float64)

// Service builds the classified activity feed for an address on demand.
// Each call is independent; it is safe to call concurrently.
type Service interface {
	// Build fetches the most recent transactions for address, classifies
	// them, and returns the resulting feed, newest first. Individual
	// record fetch failures are dropped silently; Build only fails when
	// nothing could be fetched.
	Build(ctx context.Context, address string) (*Feed, error)
}

type service struct {
	ledger     Ledger
	cache      RecordCache
	classifier *activity.Classifier

	window      int
	concurrency int
	progress    ProgressFunc
	retry       retry.Retry
}

var _ Service = (*service)(nil)

type config struct {
	cache       RecordCache
	window      int
	concurrency int
	progress    ProgressFunc
	retry       retry.Retry
}

// Option configures the history service.
type Option func(*config)

// WithWindow sets how many recent transactions one Build call inspects.
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

// WithRecordCache installs a cache for resolved transaction records.
func WithRecordCache(cache RecordCache) Option {
	return func(c *config) {
		c.cache = cache
	}
}

// WithProgressObserver registers a callback receiving resolution progress.
func WithProgressObserver(f ProgressFunc) Option {
	return func(c *config) {
		c.progress = f
	}
}

// WithRetry wraps the signature listing call with the given retry policy.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// New creates a history service reading from ledger and classifying
// through classifier.
func New(ledger Ledger, classifier *activity.Classifier, opts ...Option) *service {
	cfg := config{
		cache:       nopRecordCache{},
		window:      defaultWindow,
		concurrency: defaultConcurrency,
		progress:    func(float64) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		ledger:      ledger,
		cache:       cfg.cache,
		classifier:  classifier,
		window:      cfg.window,
		concurrency: cfg.concurrency,
		progress:    cfg.progress,
		retry:       cfg.retry,
	}
}

// buildQuery carries the validated input of one Build call.
type buildQuery struct {
	Address string `validate:"required"`
}

func (s *service) Build(ctx context.Context, address string) (*Feed, error) {
	if err := validator.Validate(buildQuery{Address: address}); err != nil {
		return nil, err
	}

	s.progress(0)

	signatures, err := s.listSignatures(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHistoryUnavailable, err)
	}
	if len(signatures) == 0 {
		return newFeed(nil), nil
	}

	records, err := s.resolveRecords(ctx, signatures)
	if err != nil {
		return nil, err
	}

	feed := make([]activity.Record, 0, len(records))
	for _, rec := range records {
		deltas := activity.ExtractDeltas(rec, address)
		if entry, ok := s.classifier.Classify(rec, address, deltas); ok {
			feed = append(feed, entry)
		}
	}

	return newFeed(feed), nil
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

// progressTracker serializes progress callbacks so the reported value
// stays monotonic non-decreasing within one Build call, regardless of
// the order in which concurrent resolutions complete.
type progressTracker struct {
	mu       sync.Mutex
	reported float64
	resolved atomic.Int64
	total    int
	fn       ProgressFunc
}

func (p *progressTracker) bump() {
	percent := float64(p.resolved.Add(1)) / float64(p.total) * 100

	p.mu.Lock()
	defer p.mu.Unlock()
	if percent <= p.reported {
		return
	}
	p.reported = percent
	p.fn(percent)
}

// resolveRecords fans out one fetch per signature, bounded by the
// configured concurrency, and joins the results in signature order so
// the feed stays newest first. Per-item failures are dropped; only a
// fully failed batch is an error.
func (s *service) resolveRecords(ctx context.Context, signatures []string) ([]activity.TransactionRecord, error) {
	tracker := &progressTracker{total: len(signatures), fn: s.progress}

	results := fanout.Run(ctx, s.concurrency, signatures, func(ctx context.Context, _ int, signature string) (activity.TransactionRecord, error) {
		rec, err := s.getRecord(ctx, signature)
		tracker.bump()
		return rec, err
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

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: all %d record fetches failed: %w", ErrHistoryUnavailable, len(signatures), lastErr)
	}

	return records, nil
}

// getRecord resolves one signature, consulting the cache first. Cache
// failures fall through to the ledger; they never fail the fetch.
func (s *service) getRecord(ctx context.Context, signature string) (activity.TransactionRecord, error) {
	if rec, ok, err := s.cache.GetRecord(ctx, signature); err == nil && ok {
		return rec, nil
	} else if err != nil {
		logger.Debug(ctx, "record cache read failed", "signature", signature, "error", err)
	}

	rec, err := s.ledger.GetTransaction(ctx, signature)
	if err != nil {
		return activity.TransactionRecord{}, err
	}

	if err := s.cache.PutRecord(ctx, signature, rec); err != nil {
		logger.Debug(ctx, "record cache write failed", "signature", signature, "error", err)
	}

	return rec, nil
}
