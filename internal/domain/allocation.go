package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// allocationSumEpsilon is the tolerance around 1.0 for the advisory
// target-sum check.
var allocationSumEpsilon = decimal.NewFromFloat(0.001)

var one = decimal.NewFromInt(1)

// AllocationTarget pairs a ticker with the desired fraction of total
// portfolio value allocated to it.
type AllocationTarget struct {
	Ticker string
	// Target fraction of total portfolio value, in [0,1].
	Target decimal.Decimal
}

// NewAllocationTarget builds a single policy entry.
func NewAllocationTarget(ticker string, target decimal.Decimal) (AllocationTarget, error) {
	if ticker == "" {
		return AllocationTarget{}, fmt.Errorf("allocation target requires a ticker")
	}
	if target.IsNegative() || target.GreaterThan(one) {
		return AllocationTarget{}, fmt.Errorf("target for %s must be between 0 and 1, got %s", ticker, target.String())
	}

	return AllocationTarget{Ticker: ticker, Target: target}, nil
}

// AllocationPolicy is an ordered list of allocation targets. The order drives
// the order of emitted rebalance actions. Duplicate tickers are allowed and
// each entry is evaluated independently.
type AllocationPolicy struct {
	Targets []AllocationTarget
}

// NewAllocationPolicy builds a policy from targets. Targets that do not sum
// to 1.0 within the epsilon produce a warning on the logger, never an error:
// an imperfect policy must not block the rebalance computation.
func NewAllocationPolicy(l *zap.Logger, targets []AllocationTarget) AllocationPolicy {
	policy := AllocationPolicy{Targets: targets}

	if err := policy.CheckTargetSum(); err != nil {
		l.Warn("allocation policy is inconsistent", zap.Error(err))
	}

	return policy
}

// TargetSum returns the sum of all target fractions in the policy.
func (p AllocationPolicy) TargetSum() decimal.Decimal {
	sum := decimal.Zero
	for _, target := range p.Targets {
		sum = sum.Add(target.Target)
	}

	return sum
}

// CheckTargetSum reports whether the targets sum to 1.0 within 0.001.
// The result is advisory: callers log it rather than fail on it.
func (p AllocationPolicy) CheckTargetSum() error {
	sum := p.TargetSum()
	if sum.Sub(one).Abs().GreaterThan(allocationSumEpsilon) {
		return fmt.Errorf("allocation targets sum to %s, expected 1.0 within %s", sum.String(), allocationSumEpsilon.String())
	}

	return nil
}
