// Package config loads portfolio and policy definitions from YAML.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Platform names accepted in the `platform` config field.
const (
	PlatformStatic      = "static"
	PlatformBinance     = "binance"
	PlatformBybit       = "bybit"
	PlatformHyperliquid = "hyperliquid"
)

// Holding describes one position from the config file.
type Holding struct {
	Ticker string
	Shares decimal.Decimal
	// Price is the snapshot price, set only for the static platform.
	Price decimal.Decimal
}

// Target describes one allocation policy entry from the config file.
type Target struct {
	Ticker string
	Target decimal.Decimal
}

// Config is the parsed and validated configuration.
type Config struct {
	// Platform selects the price source: static, binance, bybit or
	// hyperliquid.
	Platform string
	// Quote is the quote currency for live platforms, e.g. USDT.
	Quote    string
	Holdings []Holding
	Targets  []Target
}

type configTmp struct {
	Platform string       `yaml:"platform"`
	Quote    string       `yaml:"quote_currency,omitempty"`
	Holdings []holdingTmp `yaml:"holdings"`
	Policy   []targetTmp  `yaml:"policy"`
}

type holdingTmp struct {
	Ticker string `yaml:"ticker"`
	Shares string `yaml:"shares"`
	Price  string `yaml:"price,omitempty"`
}

type targetTmp struct {
	Ticker string `yaml:"ticker"`
	Target string `yaml:"target"`
}

// Load reads and validates the YAML config at path.
func Load(path string) (*Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tmp configTmp
	if err := yaml.Unmarshal(f, &tmp); err != nil {
		return nil, err
	}

	cfg := &Config{
		Platform: tmp.Platform,
		Quote:    tmp.Quote,
	}

	switch tmp.Platform {
	case PlatformStatic:
	case PlatformBinance, PlatformBybit:
		if tmp.Quote == "" {
			return nil, fmt.Errorf("'quote_currency' is required in yaml config for platform %s", tmp.Platform)
		}
	case PlatformHyperliquid:
		// hyperliquid mids are keyed by base coin, no quote needed
	default:
		return nil, fmt.Errorf("unsupported 'platform' in yaml config: %q", tmp.Platform)
	}

	if len(tmp.Holdings) == 0 {
		return nil, fmt.Errorf("yaml config contains no holdings")
	}

	for _, h := range tmp.Holdings {
		shares, err := decimal.NewFromString(h.Shares)
		if err != nil {
			return nil, fmt.Errorf("incorrect 'shares' param for %s in yaml config, error: %w", h.Ticker, err)
		}

		holding := Holding{Ticker: h.Ticker, Shares: shares}

		if tmp.Platform == PlatformStatic {
			if h.Price == "" {
				return nil, fmt.Errorf("'price' is required for %s in yaml config on the static platform", h.Ticker)
			}
			price, err := decimal.NewFromString(h.Price)
			if err != nil {
				return nil, fmt.Errorf("incorrect 'price' param for %s in yaml config, error: %w", h.Ticker, err)
			}
			holding.Price = price
		}

		cfg.Holdings = append(cfg.Holdings, holding)
	}

	for _, t := range tmp.Policy {
		target, err := decimal.NewFromString(t.Target)
		if err != nil {
			return nil, fmt.Errorf("incorrect 'target' param for %s in yaml config, error: %w", t.Ticker, err)
		}
		cfg.Targets = append(cfg.Targets, Target{Ticker: t.Ticker, Target: target})
	}

	return cfg, nil
}
