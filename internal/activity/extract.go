package activity

import (
	"math"

	"github.com/la-castro-web/solanapix/internal/assetbook"
	"github.com/la-castro-web/solanapix/internal/pkg/types"
)

// ExtractDeltas computes the per-asset value deltas attributable to the
// observed address across one transaction.
//
// The native delta comes first, then one delta per token mint owned by
// the address, in the order each mint is first encountered in the
// post-balance collection (pre-only mints follow, in pre order). That
// ordering is deterministic so classification and tests are reproducible.
//
// A record that does not involve the address, or a malformed record with
// missing balance arrays, yields zero deltas rather than an error: a
// single bad record must never block the caller's batch.
func ExtractDeltas(rec TransactionRecord, address string) []BalanceDelta {
	accountIndex := -1
	for i, key := range rec.AccountKeys {
		if key.Pubkey == address {
			accountIndex = i
			break
		}
	}
	if accountIndex < 0 {
		return nil
	}

	deltas := make([]BalanceDelta, 0, 1)

	if accountIndex < len(rec.PreBalances) && accountIndex < len(rec.PostBalances) {
		change := float64(rec.PostBalances[accountIndex]-rec.PreBalances[accountIndex]) / LamportsPerSOL
		if math.Abs(change) > DustThreshold {
			deltas = append(deltas, BalanceDelta{Asset: assetbook.AssetNative, Amount: change})
		}
	}

	var (
		seen  = types.NewSet[string]()
		mints = make([]string, 0, len(rec.PostTokenBalances))
	)
	for _, balance := range rec.PostTokenBalances {
		if balance.Owner == address && !seen.Has(balance.Mint) {
			seen.Add(balance.Mint)
			mints = append(mints, balance.Mint)
		}
	}
	for _, balance := range rec.PreTokenBalances {
		if balance.Owner == address && !seen.Has(balance.Mint) {
			seen.Add(balance.Mint)
			mints = append(mints, balance.Mint)
		}
	}

	for _, mint := range mints {
		// A missing side reads as zero, which covers both newly created
		// and closed token accounts.
		pre := tokenAmount(rec.PreTokenBalances, address, mint)
		post := tokenAmount(rec.PostTokenBalances, address, mint)

		change := post - pre
		if math.Abs(change) > DustThreshold {
			deltas = append(deltas, BalanceDelta{Asset: assetbook.Asset(mint), Amount: change})
		}
	}

	return deltas
}

// tokenAmount returns the decimal-adjusted balance held by owner for mint
// in the given snapshot, or zero when no entry matches.
func tokenAmount(balances []TokenBalance, owner, mint string) float64 {
	for _, balance := range balances {
		if balance.Owner == owner && balance.Mint == mint {
			return balance.UIAmount
		}
	}
	return 0
}
