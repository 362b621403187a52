package ledger

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// plainDecimal is an optionally signed integer or fraction, no exponent.
var plainDecimal = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)$`)

// ParseDecimal converts an optional decimal-valued string into an exact decimal.
//
// Behavior:
//   - nil yields exactly zero.
//   - Integer and fractional forms with an optional sign are accepted;
//     surrounding whitespace is ignored.
//   - Anything else, exponent notation included, fails with an error
//     wrapping ErrParse.
func ParseDecimal(value *string) (decimal.Decimal, error) {
	if value == nil {
		return decimal.Zero, nil
	}
	text := strings.TrimSpace(*value)
	if !plainDecimal.MatchString(text) {
		return decimal.Zero, fmt.Errorf("%w: invalid decimal %q", ErrParse, *value)
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid decimal %q", ErrParse, *value)
	}
	return d, nil
}

// FormatDecimal renders d in plain positional notation (never exponent form).
//
// Trailing fractional zeros are dropped, so "-3.250" is written "-3.25" and
// a whole result is written "-70" rather than the "-70.0" a fixed-point
// formatter that keeps the operand scale would produce.
func FormatDecimal(d decimal.Decimal) string {
	return d.String()
}
