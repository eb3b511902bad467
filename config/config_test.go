package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_StaticPlatform(t *testing.T) {
	path := writeConfig(t, `
platform: static
holdings:
  - ticker: META
    shares: "10"
    price: "300"
  - ticker: APPL
    shares: "5"
    price: "200"
policy:
  - ticker: META
    target: "0.4"
  - ticker: APPL
    target: "0.6"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, PlatformStatic, cfg.Platform)
	require.Len(t, cfg.Holdings, 2)
	require.Len(t, cfg.Targets, 2)

	require.Equal(t, "META", cfg.Holdings[0].Ticker)
	require.True(t, cfg.Holdings[0].Shares.Equal(decimal.NewFromInt(10)))
	require.True(t, cfg.Holdings[0].Price.Equal(decimal.NewFromInt(300)))
	require.True(t, cfg.Targets[1].Target.Equal(decimal.RequireFromString("0.6")))
}

func TestLoad_BinancePlatform(t *testing.T) {
	path := writeConfig(t, `
platform: binance
quote_currency: USDT
holdings:
  - ticker: BTC
    shares: "0.5"
policy:
  - ticker: BTC
    target: "1"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, PlatformBinance, cfg.Platform)
	require.Equal(t, "USDT", cfg.Quote)
	require.True(t, cfg.Holdings[0].Price.IsZero())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unsupported platform",
			content: `
platform: kraken
holdings:
  - ticker: BTC
    shares: "1"
`,
		},
		{
			name: "live platform without quote currency",
			content: `
platform: binance
holdings:
  - ticker: BTC
    shares: "1"
`,
		},
		{
			name: "static holding without price",
			content: `
platform: static
holdings:
  - ticker: META
    shares: "10"
`,
		},
		{
			name: "malformed shares",
			content: `
platform: static
holdings:
  - ticker: META
    shares: "ten"
    price: "300"
`,
		},
		{
			name: "malformed target",
			content: `
platform: static
holdings:
  - ticker: META
    shares: "10"
    price: "300"
policy:
  - ticker: META
    target: "forty percent"
`,
		},
		{
			name:    "no holdings",
			content: `platform: static`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
