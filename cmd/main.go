// Command rebalancer computes the buy/sell actions needed to bring a
// portfolio of holdings back to its target allocation.
//
// Usage:
//
//	rebalancer --config config.yaml
//	rebalancer --init
//
// Prices come either from the config file itself (static platform) or from a
// live exchange (Binance, Bybit, Hyperliquid).
//
// Required environment variables:
//
//	For Hyperliquid: HYPERLIQUID_PRIVATE_KEY (the SDK needs a signer even
//	for read-only Info calls), optionally HYPERLIQUID_API_URL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Mar7155/Fintual-Trial/config"
	"github.com/Mar7155/Fintual-Trial/internal/clients"
	"github.com/Mar7155/Fintual-Trial/internal/domain"
	"github.com/Mar7155/Fintual-Trial/internal/report"
	"github.com/Mar7155/Fintual-Trial/internal/services/pricer"
	"github.com/Mar7155/Fintual-Trial/internal/services/rebalancer"
	"github.com/Mar7155/Fintual-Trial/internal/setup"
	"github.com/Mar7155/Fintual-Trial/pkg/retrier"
)

const defaultHyperliquidAPIURL = "https://api.hyperliquid.xyz"

func main() {
	configPath := flag.String("config", "config.yaml", "path to yaml config")
	runWizard := flag.Bool("init", false, "run the interactive config wizard")
	flag.Parse()

	if *runWizard {
		if err := setup.RunTUI(); err != nil {
			log.Fatal(err)
		}
		return
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	priceSource, err := buildPricer(cfg)
	if err != nil {
		logger.Fatal("failed to build price source", zap.Error(err))
	}

	holdings := make([]domain.Holding, 0, len(cfg.Holdings))
	for _, h := range cfg.Holdings {
		holding, err := domain.NewHolding(h.Ticker, h.Shares, priceSource)
		if err != nil {
			logger.Fatal("invalid holding", zap.Error(err))
		}
		holdings = append(holdings, holding)
	}

	targets := make([]domain.AllocationTarget, 0, len(cfg.Targets))
	for _, t := range cfg.Targets {
		target, err := domain.NewAllocationTarget(t.Ticker, t.Target)
		if err != nil {
			logger.Fatal("invalid allocation target", zap.Error(err))
		}
		targets = append(targets, target)
	}
	policy := domain.NewAllocationPolicy(logger, targets)

	ctx := context.Background()
	reb := rebalancer.New(logger)

	actions, err := reb.Rebalance(ctx, holdings, policy)
	if err != nil {
		logger.Fatal("rebalance failed", zap.Error(err))
	}

	total, err := reb.TotalValue(ctx, holdings)
	if err != nil {
		logger.Fatal("failed to compute total value", zap.Error(err))
	}

	fmt.Println(report.Render(total, actions))
}

// buildPricer selects the price source for the configured platform. Live
// sources are wrapped with retries.
func buildPricer(cfg *config.Config) (domain.Pricer, error) {
	switch cfg.Platform {
	case config.PlatformStatic:
		prices := make(map[string]decimal.Decimal, len(cfg.Holdings))
		for _, h := range cfg.Holdings {
			prices[h.Ticker] = h.Price
		}
		return pricer.NewStaticPricer(prices), nil

	case config.PlatformBinance:
		p := pricer.NewBinancePricer(clients.NewBinanceClient(), cfg.Quote)
		return pricer.NewRetryPricer(p, retrier.New()), nil

	case config.PlatformBybit:
		p := pricer.NewBybitPricer(clients.NewBybitClient(), cfg.Quote)
		return pricer.NewRetryPricer(p, retrier.New()), nil

	case config.PlatformHyperliquid:
		key := os.Getenv("HYPERLIQUID_PRIVATE_KEY")
		if key == "" {
			return nil, fmt.Errorf("HYPERLIQUID_PRIVATE_KEY environment variable must be set")
		}
		apiURL := os.Getenv("HYPERLIQUID_API_URL")
		if apiURL == "" {
			apiURL = defaultHyperliquidAPIURL
		}
		info, err := clients.NewHyperliquidInfo(key, apiURL)
		if err != nil {
			return nil, err
		}
		return pricer.NewRetryPricer(pricer.NewHyperliquidPricer(info), retrier.New()), nil

	default:
		return nil, fmt.Errorf("unsupported platform: %s", cfg.Platform)
	}
}
