package calculator

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// UnitDecimals is the number of decimal places between one SOL and its
// smallest unit (lamport).
const UnitDecimals = 9

// FormatSOL renders an amount of smallest units as a decimal SOL string,
// e.g. 1500000000 -> "1.5".
func FormatSOL(units uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(units), -UnitDecimals).String()
}

// ParseSOL converts a decimal SOL string into smallest units. Amounts with
// more than nine decimal places, negative amounts and amounts that do not
// fit into uint64 are rejected.
func ParseSOL(s string) (uint64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.Sign() < 0 {
		return 0, fmt.Errorf("invalid amount %q: must not be negative", s)
	}
	units := d.Shift(UnitDecimals)
	if !units.Equal(units.Truncate(0)) {
		return 0, fmt.Errorf("invalid amount %q: more than %d decimal places", s, UnitDecimals)
	}
	bi := units.BigInt()
	if !bi.IsUint64() {
		return 0, fmt.Errorf("invalid amount %q: %w", s, ErrOverflow)
	}
	return bi.Uint64(), nil
}
