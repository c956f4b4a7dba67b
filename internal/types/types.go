package types

import (
	"fmt"
	"strings"

	kiteconnect "github.com/zerodha/gokiteconnect/v4"
)

// Direction is the side of the entry order. The stop-loss order closes it on
// the opposite side.
type Direction int

const (
	Buy Direction = iota
	Sell
)

// String returns the Kite transaction type of the entry order.
func (d Direction) String() string {
	if d == Sell {
		return kiteconnect.TransactionTypeSell
	}
	return kiteconnect.TransactionTypeBuy
}

// Exit returns the transaction type of the closing stop-loss order.
func (d Direction) Exit() Direction {
	if d == Sell {
		return Buy
	}
	return Sell
}

// ParseDirection accepts BUY/SELL as well as the usual trader shorthands.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case kiteconnect.TransactionTypeBuy, "B", "LONG":
		return Buy, nil
	case kiteconnect.TransactionTypeSell, "S", "SHORT":
		return Sell, nil
	}
	return Buy, fmt.Errorf("unknown direction %q: must be BUY or SELL", s)
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// TradeInput is built fresh from user supplied values on every request.
type TradeInput struct {
	EntryPrice float64   `json:"entry_price"`
	Quantity   int       `json:"quantity"`
	MaxLoss    float64   `json:"max_loss"`
	Direction  Direction `json:"direction"`
}

// ChargeBreakdown holds the full precision result of a calculation.
type ChargeBreakdown struct {
	StopLossPrice            float64
	TickStopPrice            float64 // zero unless a tick size is configured
	Turnover                 float64
	Brokerage                float64
	SecuritiesTransactionTax float64
	TransactionCharges       float64
	GoodsAndServicesTax      float64
	StampDuty                float64
	RegulatoryFee            float64
	Total                    float64
}

// ChargeReport is the display form of a ChargeBreakdown: every amount is a
// decimal string with two places.
type ChargeReport struct {
	Direction                string `json:"direction"`
	StopLossPrice            string `json:"stop_loss_price"`
	TickStopPrice            string `json:"tick_stop_price,omitempty"`
	Turnover                 string `json:"turnover"`
	Brokerage                string `json:"brokerage"`
	SecuritiesTransactionTax string `json:"stt"`
	TransactionCharges       string `json:"transaction_charges"`
	GoodsAndServicesTax      string `json:"gst"`
	StampDuty                string `json:"stamp_duty"`
	RegulatoryFee            string `json:"regulatory_fee"`
	Total                    string `json:"total"`
}
