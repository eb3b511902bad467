// Package rebalancer computes the trades needed to return a portfolio of
// holdings to its target allocation.
package rebalancer

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Mar7155/Fintual-Trial/internal/domain"
)

// actionThreshold is the minimum absolute deviation, in currency units,
// between target and current value for a target to produce an action.
// It is a fixed amount, not scaled by portfolio size.
var actionThreshold = decimal.NewFromFloat(0.01)

// Rebalancer is a stateless computation over a holdings snapshot and an
// allocation policy. A single instance is safe for concurrent use as long as
// each call operates on its own snapshot.
type Rebalancer struct {
	l *zap.Logger
}

// New creates a Rebalancer.
func New(l *zap.Logger) *Rebalancer {
	return &Rebalancer{l: l}
}

// TotalValue sums Shares × CurrentPrice over every holding, including ones
// without a target allocation.
func (r *Rebalancer) TotalValue(ctx context.Context, holdings []domain.Holding) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, holding := range holdings {
		value, err := holding.Value(ctx)
		if err != nil {
			return decimal.Decimal{}, err
		}
		total = total.Add(value)
	}

	return total, nil
}

// Rebalance computes the buy/sell actions that bring the holdings back to
// the policy's target weights. Actions come out in policy order; amounts are
// share counts.
//
// Two asymmetries are intentional:
//   - a held ticker absent from the policy counts toward the total but never
//     produces a SELL,
//   - a policy ticker with no matching holding never produces a BUY, however
//     large its target.
func (r *Rebalancer) Rebalance(ctx context.Context, holdings []domain.Holding, policy domain.AllocationPolicy) ([]domain.RebalanceAction, error) {
	total, err := r.TotalValue(ctx, holdings)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute total portfolio value")
	}

	byTicker := make(map[string]domain.Holding, len(holdings))
	for _, holding := range holdings {
		byTicker[holding.Ticker] = holding
	}

	var actions []domain.RebalanceAction
	for _, target := range policy.Targets {
		holding, ok := byTicker[target.Ticker]
		if !ok {
			r.l.Debug("no holding for allocation target, skipping",
				zap.String("ticker", target.Ticker))
			continue
		}

		price, err := holding.CurrentPrice(ctx)
		if err != nil {
			return nil, err
		}
		if price.IsZero() {
			// cannot derive a share amount from a zero price
			r.l.Warn("holding has zero price, skipping",
				zap.String("ticker", holding.Ticker))
			continue
		}

		currentValue := holding.Shares.Mul(price)
		targetValue := total.Mul(target.Target)
		difference := targetValue.Sub(currentValue)

		if difference.Abs().LessThanOrEqual(actionThreshold) {
			continue
		}

		action := domain.ActionSell
		if difference.IsPositive() {
			action = domain.ActionBuy
		}
		amount := difference.Abs().Div(price)

		r.l.Debug("rebalance action",
			zap.String("ticker", holding.Ticker),
			zap.String("action", action.String()),
			zap.String("amount", amount.String()))

		actions = append(actions, domain.NewRebalanceAction(holding.Ticker, action, amount))
	}

	return actions, nil
}
