package finpension

import "github.com/shopspring/decimal"

// OutputCurrency is the currency of every activity. Finpension pillar 3a
// and vested-benefits portfolios are CHF only.
const OutputCurrency = "CHF"

// ActivityHeader is the exact column order of a Parqet activity table.
var ActivityHeader = []string{"date", "amount", "price", "shares", "tax", "fee", "type", "isin", "currency", "holding"}

// Activity is one row of a Parqet activity table.
//
// Amount is a NullDecimal because the asset-trade leg leaves the cell blank
// on purpose: Parqet derives the amount as price times shares. Tax and Fee
// are always zero, Finpension reports no explicit costs per movement.
type Activity struct {
	Date     string
	Amount   decimal.NullDecimal
	Price    decimal.Decimal
	Shares   decimal.Decimal
	Tax      decimal.Decimal
	Fee      decimal.Decimal
	Type     Kind
	ISIN     string
	Currency string
	Holding  string
}

// amountOf wraps a decimal as a non-blank amount cell.
func amountOf(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// Equal reports whether two activities are the same row. Numeric cells
// compare by value, so 1 and 1.00000 are equal.
func (a Activity) Equal(b Activity) bool {
	if a.Amount.Valid != b.Amount.Valid {
		return false
	}
	if a.Amount.Valid && !a.Amount.Decimal.Equal(b.Amount.Decimal) {
		return false
	}
	return a.Date == b.Date &&
		a.Price.Equal(b.Price) &&
		a.Shares.Equal(b.Shares) &&
		a.Tax.Equal(b.Tax) &&
		a.Fee.Equal(b.Fee) &&
		a.Type == b.Type &&
		a.ISIN == b.ISIN &&
		a.Currency == b.Currency &&
		a.Holding == b.Holding
}
