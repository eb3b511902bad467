package domain

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// stubPricer serves fixed prices for tests.
type stubPricer struct {
	prices map[string]decimal.Decimal
}

func (s *stubPricer) GetPrice(_ context.Context, ticker string) (decimal.Decimal, error) {
	price, ok := s.prices[ticker]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("no price for %s", ticker)
	}
	return price, nil
}

func TestNewHolding_RejectsEmptyTicker(t *testing.T) {
	pricer := &stubPricer{prices: map[string]decimal.Decimal{}}

	_, err := NewHolding("", decimal.NewFromInt(1), pricer)
	require.Error(t, err)
}

func TestNewHolding_RejectsNegativeShares(t *testing.T) {
	pricer := &stubPricer{prices: map[string]decimal.Decimal{}}

	_, err := NewHolding("META", decimal.NewFromInt(-1), pricer)
	require.Error(t, err)
}

func TestNewHolding_RejectsNilPricer(t *testing.T) {
	_, err := NewHolding("META", decimal.NewFromInt(1), nil)
	require.Error(t, err)
}

func TestNewHolding_AllowsZeroShares(t *testing.T) {
	pricer := &stubPricer{prices: map[string]decimal.Decimal{}}

	holding, err := NewHolding("META", decimal.Zero, pricer)
	require.NoError(t, err)
	require.True(t, holding.Shares.IsZero())
}

func TestHolding_Value(t *testing.T) {
	pricer := &stubPricer{prices: map[string]decimal.Decimal{
		"META": decimal.NewFromInt(300),
	}}

	holding, err := NewHolding("META", decimal.NewFromInt(10), pricer)
	require.NoError(t, err)

	price, err := holding.CurrentPrice(context.Background())
	require.NoError(t, err)
	require.True(t, price.Equal(decimal.NewFromInt(300)))

	value, err := holding.Value(context.Background())
	require.NoError(t, err)
	require.True(t, value.Equal(decimal.NewFromInt(3000)))
}

func TestHolding_ValuePropagatesPricerError(t *testing.T) {
	pricer := &stubPricer{prices: map[string]decimal.Decimal{}}

	holding, err := NewHolding("META", decimal.NewFromInt(10), pricer)
	require.NoError(t, err)

	_, err = holding.Value(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "META")
}
