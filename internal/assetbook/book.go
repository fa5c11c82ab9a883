// Package assetbook holds the static registry that maps fungible asset
// identifiers (token mints) to display metadata. The book is fixed at
// construction: supporting a new asset means shipping a new build, not a
// runtime operation.
package assetbook

// Asset identifies a fungible asset on the ledger. Every value is a mint
// address except the distinguished AssetNative, which denotes the chain's
// native asset and is not backed by a mint record.
type Asset string

// AssetNative is the distinguished identifier for the chain's native asset.
const AssetNative Asset = "NATIVE"

// UnknownSymbol is the sentinel symbol reported for mints the book does
// not know about.
const UnknownSymbol = "Unknown"

// Well-known mainnet mints carried over from the original deployment.
const (
	MintWrappedSOL Asset = "So11111111111111111111111111111111111111112"
	MintUSDC       Asset = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	MintBONK       Asset = "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"
)

// Info describes one registered asset.
type Info struct {
	Symbol   string // display symbol (e.g., "USDC")
	Decimals int    // decimal places of the smallest unit
	Known    bool   // false only for the Unknown sentinel
}

// Book is a read-only mint registry. The zero value is not usable; build
// one with New.
type Book struct {
	entries map[Asset]Info
}

// Option adds entries to the book at construction time.
type Option func(map[Asset]Info)

// WithAsset registers an additional mint with its display metadata.
func WithAsset(asset Asset, symbol string, decimals int) Option {
	return func(entries map[Asset]Info) {
		entries[asset] = Info{Symbol: symbol, Decimals: decimals, Known: true}
	}
}

// New builds a Book preloaded with the native asset and the mints the
// original deployment supported, plus any extra entries from opts.
func New(opts ...Option) *Book {
	entries := map[Asset]Info{
		AssetNative:    {Symbol: "SOL", Decimals: 9, Known: true},
		MintWrappedSOL: {Symbol: "SOL", Decimals: 9, Known: true},
		MintUSDC:       {Symbol: "USDC", Decimals: 6, Known: true},
		MintBONK:       {Symbol: "BONK", Decimals: 5, Known: true},
	}
	for _, opt := range opts {
		opt(entries)
	}

	return &Book{entries: entries}
}

// Resolve looks up the metadata for the given asset. It is total: an
// unregistered mint yields the Unknown sentinel with zero decimals,
// never an error.
func (b *Book) Resolve(asset Asset) Info {
	if info, ok := b.entries[asset]; ok {
		return info
	}

	return Info{Symbol: UnknownSymbol, Decimals: 0, Known: false}
}

// Mints returns the registered mint identifiers, excluding the native
// asset, in an unspecified order.
func (b *Book) Mints() []Asset {
	mints := make([]Asset, 0, len(b.entries))
	for asset := range b.entries {
		if asset != AssetNative {
			mints = append(mints, asset)
		}
	}
	return mints
}
