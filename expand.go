package finpension

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Options control how report rows expand into activities.
type Options struct {
	// HoldingAccount is the Parqet cash account funding legs are booked
	// against. Empty means no cash account is configured.
	HoldingAccount string

	// Flat disables funding-leg synthesis: one activity per report row,
	// the way the plain converter this tool grew out of worked.
	Flat bool
}

var one = decimal.NewFromInt(1)

// Expand converts one report row into zero, one or two activities.
//
// Rows without a category are the report's blank and summary lines and
// expand to nothing. Transfers map to a single cash activity. Dividends and
// trades additionally synthesize the funding leg that keeps the Parqet cash
// account balanced; the funding leg always precedes the detail leg.
//
// A trade row (Buy, Sell, and any unmapped category) must carry a parseable
// price and share count; expansion fails rather than zero-fill them.
func Expand(rec Record, opts Options) ([]Activity, error) {
	if strings.TrimSpace(rec.Category()) == "" {
		return nil, nil
	}

	cashFlow := rec.CashFlow()
	kind := Classify(rec.Category(), cashFlow)

	if kind.IsTransfer() {
		return []Activity{transferLeg(rec.Date(), kind, cashFlow, opts.HoldingAccount)}, nil
	}

	if kind == KindDividend {
		legs := make([]Activity, 0, 2)
		if !opts.Flat {
			legs = append(legs, transferLeg(rec.Date(), KindTransferIn, cashFlow, opts.HoldingAccount))
		}
		return append(legs, Activity{
			Date:     rec.Date(),
			Amount:   amountOf(cashFlow),
			Price:    cashFlow,
			Shares:   one,
			Type:     KindDividend,
			ISIN:     rec.ISIN(),
			Currency: OutputCurrency,
		}), nil
	}

	// Everything else, Buy and Sell included, is an asset trade.
	price, err := rec.AssetPrice()
	if err != nil {
		return nil, err
	}
	shares, err := rec.Shares()
	if err != nil {
		return nil, err
	}

	legs := make([]Activity, 0, 2)
	if !opts.Flat {
		legs = append(legs, transferLeg(rec.Date(), KindTransferOut, cashFlow.Abs(), opts.HoldingAccount))
	}
	return append(legs, Activity{
		Date:     rec.Date(),
		Price:    price,
		Shares:   shares,
		Type:     kind,
		ISIN:     rec.ISIN(),
		Currency: OutputCurrency,
	}), nil
}

// transferLeg builds a cash movement: price 1, amount and shares carry the
// cash flow, no ISIN, booked against the holding account.
func transferLeg(date string, kind Kind, amount decimal.Decimal, holding string) Activity {
	return Activity{
		Date:     date,
		Amount:   amountOf(amount),
		Price:    one,
		Shares:   amount,
		Type:     kind,
		Currency: OutputCurrency,
		Holding:  holding,
	}
}

// ExpandAll expands every report row in input order. The first row that
// fails aborts the expansion; the error carries the 1-based row number.
func ExpandAll(report *Report, opts Options) ([]Activity, error) {
	activities := make([]Activity, 0, 2*report.Len())
	warned := make(map[Kind]bool)
	for i, rec := range report.Records() {
		legs, err := Expand(rec, opts)
		if err != nil {
			return nil, fmt.Errorf("row %d (%s %s): %w", i+1, rec.Date(), rec.Category(), err)
		}
		if len(legs) == 0 {
			log.Debug().Int("row", i+1).Msg("skipping row without category")
			continue
		}
		if detail := legs[len(legs)-1].Type; !detail.Mapped() && !warned[detail] {
			warned[detail] = true
			log.Warn().Str("category", string(detail)).Msg("unmapped category passed through to Parqet")
		}
		activities = append(activities, legs...)
	}
	return activities, nil
}
