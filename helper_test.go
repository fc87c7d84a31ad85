package finpension

import "github.com/shopspring/decimal"

// record is a helper for tests to build a report row from raw cells.
func record(date, category, cashFlow, price, shares, isin string) Record {
	return Record{
		FieldDate:       date,
		FieldCategory:   category,
		FieldCashFlow:   cashFlow,
		FieldAssetPrice: price,
		FieldShares:     shares,
		FieldISIN:       isin,
	}
}

// chf is a helper for tests to create francs from a literal
func chf(v string) Money { return CHF(decimal.RequireFromString(v)) }

// d is a helper for tests to parse a decimal literal
func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }
