package charges

import (
	"context"

	"sl-calculator/internal/interfaces"
	"sl-calculator/internal/types"
)

// Calculator validates a TradeInput and computes it against a fixed rate
// schedule. It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	rates Rates
}

var _ interfaces.Calculator = (*Calculator)(nil)

func New(rates Rates) *Calculator {
	return &Calculator{rates: rates}
}

func (c *Calculator) Rates() Rates {
	return c.rates
}

func (c *Calculator) Calculate(_ context.Context, in types.TradeInput) (*types.ChargeBreakdown, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	b := Compute(in, c.rates)
	return &b, nil
}
