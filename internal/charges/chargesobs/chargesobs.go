package chargesobs

import (
	"context"

	"sl-calculator/internal/interfaces"
	"sl-calculator/internal/logger"
	"sl-calculator/internal/types"
)

type observableCalculator struct {
	calc interfaces.Calculator
}

var _ interfaces.Calculator = (*observableCalculator)(nil)

func Wrap(calc interfaces.Calculator) interfaces.Calculator {
	return &observableCalculator{
		calc: calc,
	}
}

func (oc *observableCalculator) Calculate(ctx context.Context, in types.TradeInput) (*types.ChargeBreakdown, error) {
	op := logger.StartOperation(ctx, "charges.Calculate",
		"direction", in.Direction.String(),
		"entry_price", in.EntryPrice,
		"quantity", in.Quantity,
		"max_loss", in.MaxLoss,
	)
	ctx = op.GetContext()

	result, err := oc.calc.Calculate(ctx, in)
	if err != nil {
		op.EndWithError(err)
		return nil, err
	}

	logger.Calculation(ctx, in.Direction.String(), in.Quantity, result.StopLossPrice, result.Total,
		"entry_price", in.EntryPrice,
		"max_loss", in.MaxLoss,
		"turnover", result.Turnover,
	)
	op.End(
		"stop_loss_price", result.StopLossPrice,
		"total_charges", result.Total,
	)

	return result, nil
}
