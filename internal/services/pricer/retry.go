package pricer

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Mar7155/Fintual-Trial/internal/domain"
	"github.com/Mar7155/Fintual-Trial/pkg/retrier"
)

// RetryPricer decorates another pricer with exponential backoff, smoothing
// over transient exchange API failures.
type RetryPricer struct {
	inner   domain.Pricer
	retrier *retrier.Retrier
}

// NewRetryPricer wraps inner with the given retrier.
func NewRetryPricer(inner domain.Pricer, r *retrier.Retrier) *RetryPricer {
	return &RetryPricer{inner: inner, retrier: r}
}

// GetPrice delegates to the wrapped pricer, retrying on error.
func (p *RetryPricer) GetPrice(ctx context.Context, ticker string) (decimal.Decimal, error) {
	var price decimal.Decimal

	err := p.retrier.Do(ctx, func(ctx context.Context) error {
		var err error
		price, err = p.inner.GetPrice(ctx, ticker)
		return err
	})
	if err != nil {
		return decimal.Decimal{}, err
	}

	return price, nil
}
