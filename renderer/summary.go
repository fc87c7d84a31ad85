package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	finpension "github.com/Sl1van/parqet-finpension-importer"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the conversion summary as a markdown document.
func SummaryMarkdown(s finpension.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Conversion Summary")
	doc.PlainText(fmt.Sprintf("%d report rows in, %d activities out, %d rows skipped.",
		s.SourceRows, s.Activities, s.Skipped))

	table := md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Buys", strconv.Itoa(s.Buys)},
			{"Sells", strconv.Itoa(s.Sells)},
			{"Dividends", strconv.Itoa(s.Dividends)},
			{"Transferred in", s.TransferredIn.String()},
			{"Transferred out", s.TransferredOut.String()},
			{"Dividend income", s.DividendIncome.String()},
		},
	}
	doc.Table(table)

	if len(s.Passthrough) > 0 {
		doc.H2("Unmapped categories")
		doc.BulletList(s.Passthrough...)
		doc.PlainText("These categories passed through unchanged and Parqet may reject them. `pfi assist` can help picking a mapping.")
	}

	return doc.String()
}
