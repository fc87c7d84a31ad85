package finpension

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// utf8BOM precedes every output table so spreadsheet tools pick UTF-8.
const utf8BOM = "\ufeff"

const cashSuffix = "_cash_transactions.csv"

// CashFilename derives the cash-table path from the securities-table path:
// "parqet.csv" becomes "parqet_cash_transactions.csv". A name without the
// .csv suffix still gains the full suffix.
func CashFilename(path string) string {
	return strings.TrimSuffix(path, ".csv") + cashSuffix
}

// formatDecimal renders a numeric cell the way Parqet imports it: comma as
// the decimal mark and exactly five fractional digits.
func formatDecimal(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(5), ".", ",", 1)
}

// formatAmount renders the amount cell, blank when the amount is null.
func formatAmount(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return formatDecimal(d.Decimal)
}

// Cells renders the activity as its output cells, in ActivityHeader order.
func (a Activity) Cells() []string {
	return []string{
		a.Date,
		formatAmount(a.Amount),
		formatDecimal(a.Price),
		formatDecimal(a.Shares),
		formatDecimal(a.Tax),
		formatDecimal(a.Fee),
		string(a.Type),
		a.ISIN,
		a.Currency,
		a.Holding,
	}
}

// EncodeActivities writes one Parqet activity table to w: UTF-8 BOM, the
// fixed header, then one ';'-separated record per activity.
func EncodeActivities(w io.Writer, activities []Activity) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("cannot write to output: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(ActivityHeader); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}
	for _, a := range activities {
		if err := cw.Write(a.Cells()); err != nil {
			return fmt.Errorf("cannot write activity row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot write activity table: %w", err)
	}
	return nil
}
