// Package clients constructs the exchange API clients backing the live
// pricers. Only public market-data endpoints are used, so no API keys are
// required except where the exchange SDK demands a signer.
package clients

import (
	"github.com/adshao/go-binance/v2"
)

// NewBinanceClient creates a keyless Binance client for public price data.
func NewBinanceClient() *binance.Client {
	return binance.NewClient("", "")
}
