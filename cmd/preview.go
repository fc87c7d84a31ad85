package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	finpension "github.com/Sl1van/parqet-finpension-importer"
	"github.com/Sl1van/parqet-finpension-importer/renderer"
	"github.com/google/subcommands"
)

type previewCmd struct {
	input   string
	holding string
	flat    bool
}

func (*previewCmd) Name() string { return "preview" }
func (*previewCmd) Synopsis() string {
	return "show the conversion result without writing any file"
}
func (*previewCmd) Usage() string {
	return `pfi preview -i <transaction_report.csv> [-holding <account>] [-flat]

  Runs the conversion and renders the resulting tables and a summary to the
  terminal. Nothing is written to disk; use it to check the mapping before
  a convert run.
`
}

func (c *previewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Finpension transaction report to preview")
	f.StringVar(&c.holding, "holding", envOr(EnvHoldingAccount, ""), "Parqet cash account the cash legs are booked against")
	f.BoolVar(&c.flat, "flat", false, "one activity per report row, no cash legs")
}

func (c *previewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "missing -i: provide the Finpension transaction report to preview")
		return subcommands.ExitUsageError
	}

	report, err := decodeReportFile(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		return subcommands.ExitFailure
	}

	conv, err := report.Convert(finpension.Options{HoldingAccount: c.holding, Flat: c.flat})
	if err != nil {
		fmt.Fprintf(os.Stderr, "transform error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ConversionMarkdown(conv, c.holding))
	return subcommands.ExitSuccess
}
