package pricer

import (
	"context"
	"fmt"

	"github.com/adshao/go-binance/v2"
	"github.com/shopspring/decimal"
)

// BinancePricer fetches current market prices from the Binance public API.
// Tickers are quoted against a single quote currency (e.g. USDT).
type BinancePricer struct {
	client *binance.Client
	quote  string
}

// NewBinancePricer creates a pricer that resolves tickers against the given
// quote currency.
func NewBinancePricer(client *binance.Client, quote string) *BinancePricer {
	return &BinancePricer{client: client, quote: quote}
}

// GetPrice fetches the latest price for ticker quoted in the pricer's quote
// currency.
func (p *BinancePricer) GetPrice(ctx context.Context, ticker string) (decimal.Decimal, error) {
	symbol := ticker + p.quote

	prices, err := p.client.NewListPricesService().Symbol(symbol).Do(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if len(prices) == 0 {
		return decimal.Decimal{}, fmt.Errorf("binance API returned empty prices for %s", symbol)
	}

	return decimal.NewFromString(prices[0].Price)
}
