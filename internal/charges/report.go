package charges

import (
	"github.com/shopspring/decimal"

	"sl-calculator/internal/types"
)

// Places is the number of decimal places amounts are displayed with.
const Places = 2

// Money formats v with two decimal places, rounding half away from zero on
// the shortest decimal form of v (0.585 -> "0.59").
func Money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(Places)
}

// Report rounds b once for display. Total is rounded from the unrounded sum,
// so it can differ by a paisa from the sum of the rounded items.
func Report(d types.Direction, b types.ChargeBreakdown) types.ChargeReport {
	r := types.ChargeReport{
		Direction:                d.String(),
		StopLossPrice:            Money(b.StopLossPrice),
		Turnover:                 Money(b.Turnover),
		Brokerage:                Money(b.Brokerage),
		SecuritiesTransactionTax: Money(b.SecuritiesTransactionTax),
		TransactionCharges:       Money(b.TransactionCharges),
		GoodsAndServicesTax:      Money(b.GoodsAndServicesTax),
		StampDuty:                Money(b.StampDuty),
		RegulatoryFee:            Money(b.RegulatoryFee),
		Total:                    Money(b.Total),
	}
	if b.TickStopPrice != 0 {
		r.TickStopPrice = Money(b.TickStopPrice)
	}
	return r
}
