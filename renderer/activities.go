package renderer

import (
	"fmt"
	"strings"

	finpension "github.com/Sl1van/parqet-finpension-importer"
)

// ActivitiesMarkdown renders one output table as a markdown section. Cells
// show exactly what the CSV encoder would write, blank amount included.
func ActivitiesMarkdown(title string, activities []finpension.Activity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", title)
	if len(activities) == 0 {
		b.WriteString("no activities\n\n")
		return b.String()
	}

	fmt.Fprintf(&b, "| %s |\n", strings.Join(finpension.ActivityHeader, " | "))
	fmt.Fprintf(&b, "|%s\n", strings.Repeat(":---|", len(finpension.ActivityHeader)))
	for _, a := range activities {
		fmt.Fprintf(&b, "| %s |\n", strings.Join(a.Cells(), " | "))
	}
	b.WriteString("\n")
	return b.String()
}

// ConversionMarkdown renders both tables and the summary, the preview shown
// before anything is written to disk.
func ConversionMarkdown(conv *finpension.Conversion, holdingAccount string) string {
	var b strings.Builder
	b.WriteString(ActivitiesMarkdown("Transactions", conv.Transactions))
	if holdingAccount != "" {
		b.WriteString(ActivitiesMarkdown("Cash Transactions", conv.Cash))
	}
	b.WriteString(SummaryMarkdown(conv.Summary))
	return b.String()
}
