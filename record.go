package finpension

import "github.com/shopspring/decimal"

// Column headers of a Finpension transaction report.
const (
	FieldDate       = "Date"
	FieldCategory   = "Category"
	FieldCashFlow   = "Cash Flow"
	FieldAssetPrice = "Asset Price in CHF"
	FieldShares     = "Number of Shares"
	FieldISIN       = "ISIN"
)

// Record is one row of a Finpension transaction report, keyed by column
// header. Values are the raw cell text; a column absent from the report
// reads as the empty string.
type Record map[string]string

// Date returns the raw date cell. Dates are passed through to the output
// unchanged, never parsed or reformatted.
func (r Record) Date() string { return r[FieldDate] }

// Category returns the raw category cell.
func (r Record) Category() string { return r[FieldCategory] }

// ISIN returns the raw ISIN cell.
func (r Record) ISIN() string { return r[FieldISIN] }

// CashFlow returns the row's cash flow, zero when missing or unparseable.
func (r Record) CashFlow() decimal.Decimal { return parseDecimal(r[FieldCashFlow]) }

// AssetPrice returns the asset price of a trade row.
func (r Record) AssetPrice() (decimal.Decimal, error) {
	return parseStrictDecimal(FieldAssetPrice, r[FieldAssetPrice])
}

// Shares returns the number of shares of a trade row.
func (r Record) Shares() (decimal.Decimal, error) {
	return parseStrictDecimal(FieldShares, r[FieldShares])
}
