package pricer

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	hyperliquid "github.com/sonirico/go-hyperliquid"
)

// HyperliquidPricer fetches mid prices from the Hyperliquid public Info API.
// Hyperliquid mids are keyed by base coin, so no quote currency is needed.
type HyperliquidPricer struct {
	info *hyperliquid.Info
}

// NewHyperliquidPricer creates a pricer over a Hyperliquid Info client.
func NewHyperliquidPricer(info *hyperliquid.Info) *HyperliquidPricer {
	return &HyperliquidPricer{info: info}
}

// GetPrice fetches the current mid price for the ticker.
func (p *HyperliquidPricer) GetPrice(ctx context.Context, ticker string) (decimal.Decimal, error) {
	if p.info == nil {
		return decimal.Zero, fmt.Errorf("hyperliquid info client is nil")
	}

	mids, err := p.info.AllMids(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	mid, ok := mids[ticker]
	if !ok || mid == "" {
		return decimal.Zero, fmt.Errorf("hyperliquid API returned empty mid price for %s", ticker)
	}

	return decimal.NewFromString(mid)
}
