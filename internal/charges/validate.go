package charges

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"sl-calculator/internal/types"
)

var (
	// ErrMissingInput is returned when a numeric field is blank or not a number.
	ErrMissingInput = errors.New("missing input")
	// ErrInvalidQuantity is returned for a zero, negative or fractional quantity.
	ErrInvalidQuantity = errors.New("quantity must be a positive whole number")
	// ErrInvalidInput is returned for values outside their domain.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError names the offending field. It unwraps to one of the
// sentinel errors above.
type ValidationError struct {
	Field string
	Value any
	Err   error
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %v: %s", e.Field, e.Err, e.Msg)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func newValidationError(field string, value any, err error, msg string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Err: err, Msg: msg}
}

// ParseInput builds a TradeInput from raw form values. A blank direction
// means BUY.
func ParseInput(entryPrice, quantity, maxLoss, direction string) (types.TradeInput, error) {
	var in types.TradeInput

	entry, err := parseNumber("entry_price", entryPrice)
	if err != nil {
		return in, err
	}
	qty, err := parseNumber("quantity", quantity)
	if err != nil {
		return in, err
	}
	loss, err := parseNumber("max_loss", maxLoss)
	if err != nil {
		return in, err
	}

	if !qty.IsInteger() || !qty.IsPositive() {
		return in, newValidationError("quantity", quantity, ErrInvalidQuantity, "")
	}
	if !qty.LessThanOrEqual(decimal.NewFromInt(math.MaxInt32)) {
		return in, newValidationError("quantity", quantity, ErrInvalidQuantity, "too large")
	}

	in.EntryPrice = entry.InexactFloat64()
	in.Quantity = int(qty.IntPart())
	in.MaxLoss = loss.InexactFloat64()

	if strings.TrimSpace(direction) != "" {
		d, err := types.ParseDirection(direction)
		if err != nil {
			return in, newValidationError("direction", direction, ErrInvalidInput, err.Error())
		}
		in.Direction = d
	}

	return in, Validate(in)
}

func parseNumber(field, raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, newValidationError(field, raw, ErrMissingInput, "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, newValidationError(field, raw, ErrMissingInput, "not a number")
	}
	return d, nil
}

// Validate checks the invariants Compute relies on.
//
// It also rejects a BUY whose stop would fall below zero (MaxLoss/Quantity
// greater than EntryPrice). Compute would give an answer for such input, but
// the negative exit value can drive turnover, and every charge based on it,
// below zero. The case is refused even though price, quantity and loss are
// each in range on their own.
func Validate(in types.TradeInput) error {
	if math.IsNaN(in.EntryPrice) || math.IsInf(in.EntryPrice, 0) || in.EntryPrice <= 0 {
		return newValidationError("entry_price", in.EntryPrice, ErrInvalidInput, "must be greater than zero")
	}
	if in.Quantity <= 0 {
		return newValidationError("quantity", in.Quantity, ErrInvalidQuantity, "")
	}
	if math.IsNaN(in.MaxLoss) || math.IsInf(in.MaxLoss, 0) || in.MaxLoss < 0 {
		return newValidationError("max_loss", in.MaxLoss, ErrInvalidInput, "must be zero or positive")
	}
	if in.Direction != types.Buy && in.Direction != types.Sell {
		return newValidationError("direction", int(in.Direction), ErrInvalidInput, "must be BUY or SELL")
	}
	if in.Direction == types.Buy && in.MaxLoss/float64(in.Quantity) > in.EntryPrice {
		return newValidationError("max_loss", in.MaxLoss, ErrInvalidInput, "stop-loss would fall below zero")
	}
	return nil
}
