package pricer

import (
	"context"
	"fmt"

	"github.com/hirokisan/bybit/v2"
	"github.com/shopspring/decimal"
)

// BybitPricer fetches current spot prices from the Bybit V5 market API.
type BybitPricer struct {
	client *bybit.Client
	quote  string
}

// NewBybitPricer creates a pricer that resolves tickers against the given
// quote currency.
func NewBybitPricer(client *bybit.Client, quote string) *BybitPricer {
	return &BybitPricer{client: client, quote: quote}
}

// GetPrice fetches the latest spot price for ticker quoted in the pricer's
// quote currency.
func (p *BybitPricer) GetPrice(_ context.Context, ticker string) (decimal.Decimal, error) {
	symbol := bybit.SymbolV5(ticker + p.quote)

	result, err := p.client.V5().Market().GetTickers(bybit.V5GetTickersParam{
		Category: "spot",
		Symbol:   &symbol,
	})
	if err != nil {
		return decimal.Decimal{}, err
	}

	if len(result.Result.Spot.List) == 0 {
		return decimal.Decimal{}, fmt.Errorf("bybit API returned empty prices for %s", string(symbol))
	}

	return decimal.NewFromString(result.Result.Spot.List[0].LastPrice)
}
