package interfaces

import (
	"context"

	"sl-calculator/internal/types"
)

type Calculator interface {
	Calculate(ctx context.Context, in types.TradeInput) (*types.ChargeBreakdown, error)
}
