package charges

import (
	"fmt"
	"math"
)

// LevyMode selects which legs of the round trip attract STT and stamp duty.
type LevyMode string

const (
	// LevyByDirection charges STT only when the entry is a sell and stamp
	// duty only when the entry is a buy.
	LevyByDirection LevyMode = "direction"
	// LevyBothLegs charges STT on the exit value and stamp duty on the entry
	// value whatever the direction.
	LevyBothLegs LevyMode = "both_legs"
)

// Rates is the intraday equity charge schedule. All rates are fractions of
// the value they apply to (0.0003 == 0.03%).
type Rates struct {
	BrokerageCap  float64  `yaml:"brokerage_cap" json:"brokerage_cap"`
	BrokerageRate float64  `yaml:"brokerage_rate" json:"brokerage_rate"`
	STTRate       float64  `yaml:"stt_rate" json:"stt_rate"`
	TxnRate       float64  `yaml:"txn_rate" json:"txn_rate"`
	GSTRate       float64  `yaml:"gst_rate" json:"gst_rate"`
	StampRate     float64  `yaml:"stamp_rate" json:"stamp_rate"`
	SEBIRate      float64  `yaml:"sebi_rate" json:"sebi_rate"`
	LevyMode      LevyMode `yaml:"levy_mode" json:"levy_mode"`
	TickSize      float64  `yaml:"tick_size" json:"tick_size"`
}

// DefaultRates returns the NSE intraday schedule the calculator ships with:
// brokerage is the lower of ₹20 or 0.03% of turnover.
func DefaultRates() Rates {
	return Rates{
		BrokerageCap:  20,
		BrokerageRate: 0.0003,
		STTRate:       0.00025,
		TxnRate:       0.0000325,
		GSTRate:       0.18,
		StampRate:     0.00003,
		SEBIRate:      0.000001,
		LevyMode:      LevyByDirection,
	}
}

func (r Rates) Validate() error {
	named := []struct {
		name string
		v    float64
	}{
		{"brokerage_cap", r.BrokerageCap},
		{"brokerage_rate", r.BrokerageRate},
		{"stt_rate", r.STTRate},
		{"txn_rate", r.TxnRate},
		{"gst_rate", r.GSTRate},
		{"stamp_rate", r.StampRate},
		{"sebi_rate", r.SEBIRate},
		{"tick_size", r.TickSize},
	}
	for _, n := range named {
		if n.v < 0 || math.IsNaN(n.v) || math.IsInf(n.v, 0) {
			return fmt.Errorf("charges.%s must be a non-negative number, got %v", n.name, n.v)
		}
	}
	switch r.LevyMode {
	case "", LevyByDirection, LevyBothLegs:
	default:
		return fmt.Errorf("charges.levy_mode must be '%s' or '%s', got '%s'", LevyByDirection, LevyBothLegs, r.LevyMode)
	}
	return nil
}
