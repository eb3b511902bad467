// Package pricer provides price sources for holdings: a static snapshot
// pricer and live exchange-backed pricers.
package pricer

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// StaticPricer serves prices from a fixed snapshot. It backs portfolios
// whose prices are supplied up front and doubles as the price source in
// tests.
type StaticPricer struct {
	prices map[string]decimal.Decimal
}

// NewStaticPricer creates a pricer over a ticker → price snapshot.
func NewStaticPricer(prices map[string]decimal.Decimal) *StaticPricer {
	snapshot := make(map[string]decimal.Decimal, len(prices))
	for ticker, price := range prices {
		snapshot[ticker] = price
	}

	return &StaticPricer{prices: snapshot}
}

// GetPrice returns the snapshot price for the ticker.
func (p *StaticPricer) GetPrice(_ context.Context, ticker string) (decimal.Decimal, error) {
	price, ok := p.prices[ticker]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("no price known for ticker %s", ticker)
	}

	return price, nil
}
