package solana

import (
	"context"
	"encoding/json"

	"github.com/la-castro-web/solanapix/internal/activity"
	"github.com/la-castro-web/solanapix/internal/assetbook"
)

type (
	// balanceResponse is the getBalance result: the native balance in
	// lamports under an RPC context envelope.
	balanceResponse struct {
		Value uint64 `json:"value"`
	}

	// tokenAccountsResponse is the jsonParsed getTokenAccountsByOwner
	// result, narrowed to the token amount of each account.
	tokenAccountsResponse struct {
		Value []struct {
			Account struct {
				Data struct {
					Parsed struct {
						Info struct {
							TokenAmount uiTokenAmount `json:"tokenAmount"`
						} `json:"info"`
					} `json:"parsed"`
				} `json:"data"`
			} `json:"account"`
		} `json:"value"`
	}
)

// GetNativeBalance returns the current native balance of address in whole
// SOL.
func (c *client) GetNativeBalance(ctx context.Context, address string) (float64, error) {
	data, err := c.conn.Fetch(ctx, "getBalance", address)
	if err != nil {
		return 0, err
	}

	var response balanceResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return 0, err
	}

	return float64(response.Value) / activity.LamportsPerSOL, nil
}

// GetTokenBalance returns the decimal-adjusted balance address holds for
// mint, summed across its token accounts. No token account reads as zero.
func (c *client) GetTokenBalance(ctx context.Context, address string, mint assetbook.Asset) (float64, error) {
	data, err := c.conn.Fetch(ctx, "getTokenAccountsByOwner",
		address,
		map[string]any{"mint": string(mint)},
		map[string]any{"encoding": "jsonParsed"},
	)
	if err != nil {
		return 0, err
	}

	var response tokenAccountsResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return 0, err
	}

	var total float64
	for _, account := range response.Value {
		if amount := account.Account.Data.Parsed.Info.TokenAmount.UIAmount; amount != nil {
			total += *amount
		}
	}

	return total, nil
}
