package finpension

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// parseDecimal parses a numeric report field ('.' decimal mark). Anything
// that does not parse, an empty cell, stray text, or a literal NaN left
// behind by a spreadsheet tool, yields zero. Fields that must not fall back
// to zero go through parseStrictDecimal instead.
func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseStrictDecimal parses a numeric report field that must be present and
// valid. The returned error names the field.
func parseStrictDecimal(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("missing %q value", field)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %q value %q: %w", field, s, err)
	}
	return d, nil
}
