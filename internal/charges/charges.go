// Package charges computes the stop-loss trigger for a single intraday
// equity trade and the brokerage and statutory charges of the round trip.
package charges

import (
	"math"

	"sl-calculator/internal/types"
)

// Compute returns the stop-loss price and the itemised charges for in.
//
// The stop is placed so that a fill at the trigger loses exactly MaxLoss:
//   - BUY entry:  entry - maxLoss/qty
//   - SELL entry: entry + maxLoss/qty
//
// Turnover is entry value plus exit value. Everything is kept at full
// precision; use Report for the two-place display form.
//
// Compute does not validate. Quantity must be positive, see Validate.
func Compute(in types.TradeInput, r Rates) types.ChargeBreakdown {
	qty := float64(in.Quantity)
	perShare := in.MaxLoss / qty

	stop := in.EntryPrice - perShare
	if in.Direction == types.Sell {
		stop = in.EntryPrice + perShare
	}

	entryValue := in.EntryPrice * qty
	exitValue := stop * qty
	turnover := entryValue + exitValue

	brokerage := math.Min(r.BrokerageCap, r.BrokerageRate*turnover)

	var stt, stamp float64
	if r.LevyMode == LevyBothLegs || in.Direction == types.Sell {
		stt = r.STTRate * exitValue
	}
	if r.LevyMode == LevyBothLegs || in.Direction == types.Buy {
		stamp = r.StampRate * entryValue
	}

	txn := r.TxnRate * turnover
	gst := r.GSTRate * (brokerage + txn)
	sebi := r.SEBIRate * turnover

	return types.ChargeBreakdown{
		StopLossPrice:            stop,
		TickStopPrice:            alignToTick(in.EntryPrice, stop, r.TickSize, in.Direction),
		Turnover:                 turnover,
		Brokerage:                brokerage,
		SecuritiesTransactionTax: stt,
		TransactionCharges:       txn,
		GoodsAndServicesTax:      gst,
		StampDuty:                stamp,
		RegulatoryFee:            sebi,
		Total:                    brokerage + stt + txn + gst + stamp + sebi,
	}
}

// tickEpsilon absorbs float noise such as 95/0.05 == 1899.9999999999998.
const tickEpsilon = 1e-9

// alignToTick moves stop onto the tick grid towards the entry price, so the
// loss at the aligned trigger never exceeds the requested maximum. It returns
// 0 when no grid price lies strictly between entry and stop, which happens
// with an off-grid entry and a stop less than a tick away.
func alignToTick(entry, stop, tick float64, d types.Direction) float64 {
	if tick <= 0 {
		return 0
	}
	n := stop / tick
	if d == types.Sell {
		n = math.Floor(n + tickEpsilon)
	} else {
		n = math.Ceil(n - tickEpsilon)
	}
	aligned := math.Round(n*tick*1e8) / 1e8

	if d == types.Sell && aligned <= entry+tickEpsilon {
		return 0
	}
	if d == types.Buy && aligned >= entry-tickEpsilon {
		return 0
	}
	return aligned
}
