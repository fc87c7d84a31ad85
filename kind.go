package finpension

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Kind is a typed string for Parqet activity types.
type Kind string

// Activity kinds produced by the classifier. Anything else is an unmapped
// category passed through verbatim.
const (
	KindBuy         Kind = "Buy"
	KindSell        Kind = "Sell"
	KindDividend    Kind = "Dividend"
	KindTransferIn  Kind = "TransferIn"
	KindTransferOut Kind = "TransferOut"
)

// categoryTransfer is the one report category that maps to two kinds: the
// cash-flow sign picks the direction.
const categoryTransfer = "Transfer"

// IsTransfer reports whether the kind moves cash in or out of the holding
// account.
func (k Kind) IsTransfer() bool { return k == KindTransferIn || k == KindTransferOut }

// Mapped reports whether the kind is one Parqet understands natively.
func (k Kind) Mapped() bool {
	switch k {
	case KindBuy, KindSell, KindDividend, KindTransferIn, KindTransferOut:
		return true
	}
	return false
}

// Classify maps a Finpension category to the Parqet activity type.
//
// Buy, Sell and Dividend map to themselves, case sensitively. Transfer
// splits on the cash-flow sign: negative means TransferOut, zero or
// positive means TransferIn. A cash flow that failed to parse is zero by
// the time it gets here (see parseDecimal), so a row with a missing or NaN
// cash flow classifies as TransferIn. Every other category passes through
// unchanged so unsupported movements stay visible in Parqet.
func Classify(category string, cashFlow decimal.Decimal) Kind {
	cat := strings.TrimSpace(category)
	switch cat {
	case string(KindBuy), string(KindSell), string(KindDividend):
		return Kind(cat)
	case categoryTransfer:
		if cashFlow.IsNegative() {
			return KindTransferOut
		}
		return KindTransferIn
	}
	return Kind(cat)
}

// PassthroughCategories returns the report's distinct categories that
// Classify does not map, in first-seen order. Unlike a full conversion this
// never fails, so it also works on reports whose trade rows are broken.
func (p *Report) PassthroughCategories() []string {
	var categories []string
	seen := make(map[Kind]bool)
	for _, rec := range p.records {
		if strings.TrimSpace(rec.Category()) == "" {
			continue
		}
		kind := Classify(rec.Category(), rec.CashFlow())
		if !kind.Mapped() && !seen[kind] {
			seen[kind] = true
			categories = append(categories, string(kind))
		}
	}
	return categories
}
