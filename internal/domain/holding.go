package domain

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Pricer supplies the latest price for a ticker. Implementations range from
// static snapshots to live exchange feeds; the rebalancing logic does not
// care which one backs a holding.
type Pricer interface {
	GetPrice(ctx context.Context, ticker string) (decimal.Decimal, error)
}

// Holding is a position in a single asset together with its price source.
// A Holding is a snapshot: it is never mutated during a rebalance run.
type Holding struct {
	// Ticker symbol of the held asset, unique within a portfolio.
	Ticker string
	// Shares held, always non-negative.
	Shares decimal.Decimal

	pricer Pricer
}

// NewHolding builds a holding snapshot for one asset.
func NewHolding(ticker string, shares decimal.Decimal, pricer Pricer) (Holding, error) {
	if ticker == "" {
		return Holding{}, errors.New("ticker must not be empty")
	}
	if shares.IsNegative() {
		return Holding{}, fmt.Errorf("shares for %s must not be negative, got %s", ticker, shares.String())
	}
	if pricer == nil {
		return Holding{}, fmt.Errorf("holding %s requires a price source", ticker)
	}

	return Holding{Ticker: ticker, Shares: shares, pricer: pricer}, nil
}

// CurrentPrice returns the latest available price for the holding's ticker.
func (h Holding) CurrentPrice(ctx context.Context) (decimal.Decimal, error) {
	price, err := h.pricer.GetPrice(ctx, h.Ticker)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "failed to get price for %s", h.Ticker)
	}

	return price, nil
}

// Value returns the current market value of the holding, Shares × CurrentPrice.
func (h Holding) Value(ctx context.Context) (decimal.Decimal, error) {
	price, err := h.CurrentPrice(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return h.Shares.Mul(price), nil
}
