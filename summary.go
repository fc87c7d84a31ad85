package finpension

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Summary aggregates one conversion for reporting.
type Summary struct {
	SourceRows  int // data rows in the report
	Skipped     int // rows discarded for having no category
	Activities  int // activities emitted over both tables
	Buys        int
	Sells       int
	Dividends   int
	Passthrough []string // distinct unmapped categories, first seen first

	TransferredIn  Money // cash moved into the holding account
	TransferredOut Money // cash moved out, as a positive figure
	DividendIncome Money
}

// summarize derives the summary from the report and its expanded activities.
func summarize(report *Report, activities []Activity) Summary {
	s := Summary{
		SourceRows:     report.Len(),
		Activities:     len(activities),
		Passthrough:    report.PassthroughCategories(),
		TransferredIn:  CHF(decimal.Zero),
		TransferredOut: CHF(decimal.Zero),
		DividendIncome: CHF(decimal.Zero),
	}
	for _, rec := range report.Records() {
		if strings.TrimSpace(rec.Category()) == "" {
			s.Skipped++
		}
	}
	for _, a := range activities {
		switch a.Type {
		case KindBuy:
			s.Buys++
		case KindSell:
			s.Sells++
		case KindDividend:
			s.Dividends++
			s.DividendIncome = s.DividendIncome.Add(CHF(a.Amount.Decimal))
		case KindTransferIn:
			s.TransferredIn = s.TransferredIn.Add(CHF(a.Amount.Decimal))
		case KindTransferOut:
			s.TransferredOut = s.TransferredOut.Add(CHF(a.Amount.Decimal.Abs()))
		}
	}
	return s
}
