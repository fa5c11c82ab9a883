// Package coingecko implements the rate source ports against the
// CoinGecko simple-price endpoint, the same oracle the original
// deployment used. Assets map to CoinGecko coin ids; anything outside
// that mapping has no rate and degrades at the consumer.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/la-castro-web/solanapix/internal/assetbook"
	"github.com/la-castro-web/solanapix/internal/holdings"
	"github.com/la-castro-web/solanapix/internal/txstats"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultBaseURL is the public CoinGecko API root.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// defaultCoinIDs maps the registered assets to their CoinGecko coin ids.
var defaultCoinIDs = map[assetbook.Asset]string{
	assetbook.AssetNative:    "solana",
	assetbook.MintWrappedSOL: "solana",
	assetbook.MintUSDC:       "usd-coin",
	assetbook.MintBONK:       "bonk",
}

// client fetches conversion rates from CoinGecko.
type client struct {
	httpClient *retryablehttp.Client
	baseURL    string
	coinIDs    map[assetbook.Asset]string
}

var (
	_ txstats.RateSource  = (*client)(nil)
	_ holdings.RateSource = (*client)(nil)
)

// Option configures the CoinGecko client.
type Option func(*client)

// WithBaseURL points the client at a different API root, mainly for
// tests.
func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithCoinID maps an additional asset to a CoinGecko coin id.
func WithCoinID(asset assetbook.Asset, coinID string) Option {
	return func(c *client) {
		c.coinIDs[asset] = coinID
	}
}

// NewClient creates a CoinGecko rate source using the given HTTP client.
func NewClient(httpClient *retryablehttp.Client, opts ...Option) *client {
	coinIDs := make(map[assetbook.Asset]string, len(defaultCoinIDs))
	for asset, id := range defaultCoinIDs {
		coinIDs[asset] = id
	}

	c := &client{
		httpClient: httpClient,
		baseURL:    DefaultBaseURL,
		coinIDs:    coinIDs,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// RateFor returns the conversion rate from one unit of asset to the given
// currency. Unmapped assets and missing price entries yield
// txstats.ErrRateUnavailable.
func (c *client) RateFor(ctx context.Context, asset assetbook.Asset, currency string) (float64, error) {
	coinID, ok := c.coinIDs[asset]
	if !ok {
		return 0, fmt.Errorf("%w: no coin id for asset %q", txstats.ErrRateUnavailable, asset)
	}

	endpoint := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=%s",
		c.baseURL,
		url.QueryEscape(coinID),
		url.QueryEscape(strings.ToLower(currency)),
	)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: unexpected status %d", txstats.ErrRateUnavailable, res.StatusCode)
	}

	// Shape: {"solana": {"brl": 812.34}}
	var prices map[string]map[string]float64
	if err := json.NewDecoder(res.Body).Decode(&prices); err != nil {
		return 0, err
	}

	rate, ok := prices[coinID][strings.ToLower(currency)]
	if !ok {
		return 0, fmt.Errorf("%w: no %s price for %s", txstats.ErrRateUnavailable, currency, coinID)
	}

	return rate, nil
}
