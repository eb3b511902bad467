package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RebalanceAction is a suggested trade produced by the rebalancer.
type RebalanceAction struct {
	// ID uniquely identifies the suggestion, e.g. for use as a client
	// order id by an executing caller.
	ID string
	// Ticker of the asset to trade.
	Ticker string
	// Action buy or sell.
	Action Action
	// Amount is the number of shares to transact, not a currency value.
	Amount decimal.Decimal
}

// NewRebalanceAction builds an action with a fresh id.
func NewRebalanceAction(ticker string, action Action, amount decimal.Decimal) RebalanceAction {
	return RebalanceAction{
		ID:     uuid.NewString(),
		Ticker: ticker,
		Action: action,
		Amount: amount,
	}
}

// String returns a human-readable string representation.
func (a *RebalanceAction) String() string {
	return fmt.Sprintf("%s action: %s amount: %s", a.Ticker, a.Action.String(), a.Amount.String())
}
