// Package holdings produces the current balance snapshot of an address:
// the native balance plus one entry per registered token mint, each
// valued in the reporting currency. A snapshot is recomputed from scratch
// on every call.
package holdings

import (
	"context"
	"errors"
	"fmt"

	"github.com/la-castro-web/solanapix/internal/assetbook"
	"github.com/la-castro-web/solanapix/internal/pkg/logger"
	"github.com/la-castro-web/solanapix/internal/pkg/validator"
	"github.com/la-castro-web/solanapix/internal/pkg/x/fanout"
)

// ErrHoldingsUnavailable is returned when the native balance cannot be
// read. Token-account and rate lookups degrade instead of failing.
var ErrHoldingsUnavailable = errors.New("holdings unavailable")

const defaultConcurrency = 4

// ChainReader reads current account balances from the chain.
type ChainReader interface {
	// GetNativeBalance returns the address's native balance in whole
	// native units (not lamports).
	GetNativeBalance(ctx context.Context, address string) (float64, error)

	// GetTokenBalance returns the address's decimal-adjusted balance for
	// one mint, zero when the address holds no such token account.
	GetTokenBalance(ctx context.Context, address string, mint assetbook.Asset) (float64, error)
}

// RateSource converts asset amounts into the reporting currency.
type RateSource interface {
	RateFor(ctx context.Context, asset assetbook.Asset, currency string) (float64, error)
}

// Balance is one valued asset position.
type Balance struct {
	Asset  assetbook.Asset `json:"asset"`
	Symbol string          `json:"symbol"`
	Amount float64         `json:"amount"`
	Value  float64         `json:"value"`
}

// Portfolio is the full balance snapshot of one address.
type Portfolio struct {
	Balances   []Balance `json:"balances"`
	TotalValue float64   `json:"totalValue"`
	Currency   string    `json:"currency"`
}

// Service produces balance snapshots on demand.
type Service interface {
	Snapshot(ctx context.Context, address string) (Portfolio, error)
}

type service struct {
	chain ChainReader
	rates RateSource
	book  *assetbook.Book

	currency    string
	concurrency int
}

var _ Service = (*service)(nil)

type config struct {
	currency    string
	concurrency int
}

// Option configures the holdings service.
type Option func(*config)

// WithCurrency sets the reporting currency (e.g., "brl", "usd").
func WithCurrency(currency string) Option {
	return func(c *config) {
		if currency != "" {
			c.currency = currency
		}
	}
}

// WithConcurrency bounds the number of balance lookups in flight.
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// New creates a holdings service reading balances from chain, valuing
// them through rates, and enumerating assets from book.
func New(chain ChainReader, rates RateSource, book *assetbook.Book, opts ...Option) *service {
	cfg := config{
		currency:    "brl",
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		chain:       chain,
		rates:       rates,
		book:        book,
		currency:    cfg.currency,
		concurrency: cfg.concurrency,
	}
}

// snapshotQuery carries the validated input of one Snapshot call.
type snapshotQuery struct {
	Address string `validate:"required"`
}

// Snapshot reads every registered balance concurrently. A failed token
// lookup degrades to a zero balance so one broken token account never
// hides the rest of the portfolio; only a failed native balance read
// fails the snapshot.
func (s *service) Snapshot(ctx context.Context, address string) (Portfolio, error) {
	if err := validator.Validate(snapshotQuery{Address: address}); err != nil {
		return Portfolio{}, err
	}

	assets := append([]assetbook.Asset{assetbook.AssetNative}, s.book.Mints()...)

	amounts := fanout.Run(ctx, s.concurrency, assets, func(ctx context.Context, _ int, asset assetbook.Asset) (float64, error) {
		if asset == assetbook.AssetNative {
			return s.chain.GetNativeBalance(ctx, address)
		}
		return s.chain.GetTokenBalance(ctx, address, asset)
	})

	portfolio := Portfolio{
		Balances: make([]Balance, 0, len(assets)),
		Currency: s.currency,
	}

	for i, asset := range assets {
		amount := amounts[i].Value
		if err := amounts[i].Err; err != nil {
			if asset == assetbook.AssetNative {
				return Portfolio{}, fmt.Errorf("%w: %w", ErrHoldingsUnavailable, err)
			}
			logger.Warn(ctx, "token balance lookup failed, reporting zero",
				"asset", asset,
				"error", err,
			)
			amount = 0
		}

		balance := Balance{
			Asset:  asset,
			Symbol: s.book.Resolve(asset).Symbol,
			Amount: amount,
		}

		// Rate unavailable: the balance is still reported, just unvalued.
		if rate, err := s.rates.RateFor(ctx, asset, s.currency); err == nil {
			balance.Value = amount * rate
		}

		portfolio.Balances = append(portfolio.Balances, balance)
		portfolio.TotalValue += balance.Value
	}

	return portfolio, nil
}
