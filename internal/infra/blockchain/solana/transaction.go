package solana

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/la-castro-web/solanapix/internal/activity"
)

// ErrTransactionNotFound indicates that the node has no record for the
// requested signature (a null getTransaction result).
var ErrTransactionNotFound = errors.New("transaction not found")

type (
	// signatureInfo is one entry of a getSignaturesForAddress result.
	signatureInfo struct {
		Signature string `json:"signature"`
		Slot      uint64 `json:"slot"`
		Err       any    `json:"err"`
		Memo      string `json:"memo"`
		BlockTime int64  `json:"blockTime"`
	}

	// uiTokenAmount is a decimal-adjusted token amount as reported by the
	// node. UIAmount is null for zero-initialized accounts.
	uiTokenAmount struct {
		Amount         string   `json:"amount"`
		Decimals       int      `json:"decimals"`
		UIAmount       *float64 `json:"uiAmount"`
		UIAmountString string   `json:"uiAmountString"`
	}

	// tokenBalanceResponse is one pre/post token balance entry.
	tokenBalanceResponse struct {
		AccountIndex  int           `json:"accountIndex"`
		Mint          string        `json:"mint"`
		Owner         string        `json:"owner"`
		UITokenAmount uiTokenAmount `json:"uiTokenAmount"`
	}

	// accountKeyResponse is one participant of the transaction message.
	accountKeyResponse struct {
		Pubkey   string `json:"pubkey"`
		Signer   bool   `json:"signer"`
		Writable bool   `json:"writable"`
	}

	// transactionResponse is the jsonParsed getTransaction result.
	transactionResponse struct {
		BlockTime int64 `json:"blockTime"`
		Slot      uint64 `json:"slot"`
		Meta      struct {
			Err               any                    `json:"err"`
			Fee               uint64                 `json:"fee"`
			PreBalances       []int64                `json:"preBalances"`
			PostBalances      []int64                `json:"postBalances"`
			PreTokenBalances  []tokenBalanceResponse `json:"preTokenBalances"`
			PostTokenBalances []tokenBalanceResponse `json:"postTokenBalances"`
		} `json:"meta"`
		Transaction struct {
			Message struct {
				AccountKeys []accountKeyResponse `json:"accountKeys"`
			} `json:"message"`
		} `json:"transaction"`
	}
)

// toActivityTokenBalance converts one token balance entry, reading a null
// uiAmount as zero.
func (t tokenBalanceResponse) toActivityTokenBalance() activity.TokenBalance {
	var amount float64
	if t.UITokenAmount.UIAmount != nil {
		amount = *t.UITokenAmount.UIAmount
	}

	return activity.TokenBalance{
		AccountIndex: t.AccountIndex,
		Mint:         t.Mint,
		Owner:        t.Owner,
		UIAmount:     amount,
	}
}

// toActivityRecord converts the raw RPC payload to the domain transaction
// record keyed by the signature it was fetched with.
func (t transactionResponse) toActivityRecord(signature string) activity.TransactionRecord {
	accountKeys := make([]activity.AccountKey, len(t.Transaction.Message.AccountKeys))
	for i, key := range t.Transaction.Message.AccountKeys {
		accountKeys[i] = activity.AccountKey{
			Pubkey:   key.Pubkey,
			Signer:   key.Signer,
			Writable: key.Writable,
		}
	}

	preTokenBalances := make([]activity.TokenBalance, len(t.Meta.PreTokenBalances))
	for i, balance := range t.Meta.PreTokenBalances {
		preTokenBalances[i] = balance.toActivityTokenBalance()
	}

	postTokenBalances := make([]activity.TokenBalance, len(t.Meta.PostTokenBalances))
	for i, balance := range t.Meta.PostTokenBalances {
		postTokenBalances[i] = balance.toActivityTokenBalance()
	}

	return activity.TransactionRecord{
		Signature:         signature,
		BlockTime:         t.BlockTime,
		Failed:            t.Meta.Err != nil,
		AccountKeys:       accountKeys,
		PreBalances:       t.Meta.PreBalances,
		PostBalances:      t.Meta.PostBalances,
		PreTokenBalances:  preTokenBalances,
		PostTokenBalances: postTokenBalances,
	}
}

// ListRecentSignatures returns up to limit signatures of the most recent
// transactions involving address, newest first, as reported by
// getSignaturesForAddress.
func (c *client) ListRecentSignatures(ctx context.Context, address string, limit int) ([]string, error) {
	data, err := c.conn.Fetch(ctx, "getSignaturesForAddress", address, map[string]any{
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}

	var infos []signatureInfo
	if err := json.Unmarshal(data, &infos); err != nil {
		return nil, err
	}

	signatures := make([]string, len(infos))
	for i, info := range infos {
		signatures[i] = info.Signature
	}

	return signatures, nil
}

// GetTransaction fetches one finalized transaction by signature using the
// jsonParsed encoding.
func (c *client) GetTransaction(ctx context.Context, signature string) (activity.TransactionRecord, error) {
	data, err := c.conn.Fetch(ctx, "getTransaction", signature, map[string]any{
		"encoding":                       "jsonParsed",
		"maxSupportedTransactionVersion": 0,
	})
	if err != nil {
		return activity.TransactionRecord{}, err
	}

	// The node answers null for signatures it no longer holds.
	if len(data) == 0 || string(data) == "null" {
		return activity.TransactionRecord{}, ErrTransactionNotFound
	}

	var response transactionResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return activity.TransactionRecord{}, err
	}

	return response.toActivityRecord(signature), nil
}
