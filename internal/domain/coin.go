package domain

import (
	"time"

	"github.com/google/uuid"
)

// CoinType identifies one of the two in-game currencies
type CoinType string

const (
	// CoinSC is the primary currency, earned chiefly by validated movement
	CoinSC CoinType = "SC"
	// CoinMC is the secondary currency, earned by side activities and spent
	// on cosmetics and the store
	CoinMC CoinType = "MC"
)

// TransactionSource identifies the higher-level action behind a ledger entry
type TransactionSource string

const (
	SourceMovement    TransactionSource = "movement"
	SourcePurchase    TransactionSource = "store_purchase"
	SourceMint        TransactionSource = "cosmetic_mint"
	SourceEnhance     TransactionSource = "cosmetic_enhance"
	SourceAchievement TransactionSource = "achievement"
	SourceGame        TransactionSource = "game"
	SourceAdmin       TransactionSource = "admin_grant"
)

// CoinBalance is the per-user balance of both currencies. Balances never go
// negative; lifetime counters only ever increase.
type CoinBalance struct {
	UserID     string `json:"user_id"`
	SCBalance  int64  `json:"sc_balance"`
	MCBalance  int64  `json:"mc_balance"`
	SCLifetime int64  `json:"sc_lifetime"`
	MCLifetime int64  `json:"mc_lifetime"`
}

// Balance returns the current balance for the given coin type
func (b *CoinBalance) Balance(coin CoinType) int64 {
	if coin == CoinMC {
		return b.MCBalance
	}
	return b.SCBalance
}

// CoinTransaction is an append-only ledger row, immutable once written.
// BalanceAfter forms a verifiable running total: each transaction's
// BalanceAfter equals the previous one's plus this Amount.
type CoinTransaction struct {
	ID           uuid.UUID         `json:"id"`
	UserID       string            `json:"user_id"`
	CoinType     CoinType          `json:"coin_type"`
	Amount       int64             `json:"amount"`
	BalanceAfter int64             `json:"balance_after"`
	SourceType   TransactionSource `json:"source_type"`
	SourceID     *string           `json:"source_id,omitempty"`
	Description  string            `json:"description"`
	CreatedAt    time.Time         `json:"created_at"`
}
