// Package asset defines symbols and exact fixed-point amounts.
//
// Amounts are int64 units scaled by the symbol's decimal precision
// (e.g. 1.50 CUSD at precision 2 is 150 units). All arithmetic is exact;
// conversions between precisions never round.
package asset

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxPrecision bounds symbol precision so 10^p stays comfortably in int64.
const MaxPrecision = 18

// Symbol identifies a fungible currency as a (code, decimal-precision) pair.
// Two symbols are the same currency only if both fields match.
type Symbol struct {
	Code      string
	Precision uint32
}

// NewSymbol validates and builds a Symbol. Codes are 1-7 uppercase letters,
// matching the convention of the chain assets this ledger mirrors.
func NewSymbol(code string, precision uint32) (Symbol, error) {
	if !validCode(code) {
		return Symbol{}, fmt.Errorf("invalid symbol code %q", code)
	}
	if precision > MaxPrecision {
		return Symbol{}, fmt.Errorf("symbol precision %d exceeds max %d", precision, MaxPrecision)
	}
	return Symbol{Code: code, Precision: precision}, nil
}

// MustSymbol is NewSymbol that panics. For constants and tests.
func MustSymbol(code string, precision uint32) Symbol {
	s, err := NewSymbol(code, precision)
	if err != nil {
		panic(err)
	}
	return s
}

func validCode(code string) bool {
	if len(code) == 0 || len(code) > 7 {
		return false
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// Scale returns 10^Precision.
func (s Symbol) Scale() int64 {
	scale := int64(1)
	for i := uint32(0); i < s.Precision; i++ {
		scale *= 10
	}
	return scale
}

func (s Symbol) String() string {
	return fmt.Sprintf("%d,%s", s.Precision, s.Code)
}

// Amount is a signed fixed-point quantity of one symbol.
type Amount struct {
	Units  int64
	Symbol Symbol
}

// NewAmount builds an amount from raw units.
func NewAmount(units int64, sym Symbol) Amount {
	return Amount{Units: units, Symbol: sym}
}

// ParseAmount parses a decimal string like "1.50" into an exact amount.
// Values with more fractional digits than the symbol's precision are
// rejected rather than rounded.
func ParseAmount(value string, sym Symbol) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return Amount{}, fmt.Errorf("parse amount %q: %w", value, err)
	}

	shifted := d.Shift(int32(sym.Precision))
	if !shifted.IsInteger() {
		return Amount{}, fmt.Errorf("amount %q has more than %d decimal places", value, sym.Precision)
	}
	if !shifted.BigInt().IsInt64() {
		return Amount{}, fmt.Errorf("amount %q overflows int64 at precision %d", value, sym.Precision)
	}

	return Amount{Units: shifted.IntPart(), Symbol: sym}, nil
}

// IsPositive reports whether the amount is strictly positive.
func (a Amount) IsPositive() bool {
	return a.Units > 0
}

// SameSymbol reports whether two amounts are denominated in the exact
// same currency, code and precision both.
func (a Amount) SameSymbol(b Amount) bool {
	return a.Symbol == b.Symbol
}

// String renders the amount at its declared precision, e.g. "1.50 CUSD".
func (a Amount) String() string {
	d := decimal.NewFromInt(a.Units).Shift(-int32(a.Symbol.Precision))
	return d.StringFixed(int32(a.Symbol.Precision)) + " " + a.Symbol.Code
}

// ScaleFactor returns 10^(to.Precision - from.Precision), the exact
// multiplier for converting units of `from` into units of `to`. Converting
// to a lower precision is lossy and therefore refused.
func ScaleFactor(from, to Symbol) (int64, error) {
	if to.Precision < from.Precision {
		return 0, fmt.Errorf("cannot rescale %s to lower precision %s without loss", from, to)
	}
	factor := int64(1)
	for i := from.Precision; i < to.Precision; i++ {
		factor *= 10
	}
	return factor, nil
}

// Rescale converts an amount into the target symbol's precision, exactly.
// The intermediate product uses big.Int so overflow is detected, not wrapped.
func Rescale(a Amount, to Symbol) (Amount, error) {
	factor, err := ScaleFactor(a.Symbol, to)
	if err != nil {
		return Amount{}, err
	}

	product := new(big.Int).Mul(big.NewInt(a.Units), big.NewInt(factor))
	if !product.IsInt64() {
		return Amount{}, fmt.Errorf("rescale %s to %s overflows int64", a, to)
	}

	return Amount{Units: product.Int64(), Symbol: to}, nil
}
