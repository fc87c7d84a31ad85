package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	finpension "github.com/Sl1van/parqet-finpension-importer"
	"github.com/google/subcommands"
)

type convertCmd struct {
	input   string
	output  string
	holding string
	flat    bool
}

// outputTable is one file the convert command is about to write.
type outputTable struct {
	path string
	what string
	rows []finpension.Activity
}

func (*convertCmd) Name() string { return "convert" }
func (*convertCmd) Synopsis() string {
	return "convert a Finpension transaction report to Parqet CSV files"
}
func (*convertCmd) Usage() string {
	return `pfi convert -i <transaction_report.csv> [-o <parqet.csv>] [-holding <account>] [-flat]

  Reads the Finpension transaction report, expands every row into Parqet
  activities and writes the transactions table to the -o path. With
  -holding, the cash movements are booked against that account and written
  to a second table next to the first one (parqet.csv becomes
  parqet_cash_transactions.csv).

Usage Examples:
# Convert with a cash account, writing parqet.csv and parqet_cash_transactions.csv.
$ pfi convert -i transaction_report.csv -holding "Pillar 3a"

# Plain one-row-per-movement conversion, no cash legs.
$ pfi convert -i transaction_report.csv -o out.csv -flat
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Finpension transaction report to convert")
	f.StringVar(&c.output, "o", "parqet.csv", "Parqet transactions file to write")
	f.StringVar(&c.holding, "holding", envOr(EnvHoldingAccount, ""), "Parqet cash account the cash legs are booked against")
	f.BoolVar(&c.flat, "flat", false, "one activity per report row, no cash legs")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "missing -i: provide the Finpension transaction report to convert")
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

	tables := []outputTable{{c.output, "activities", conv.Transactions}}
	if c.holding != "" {
		tables = append(tables, outputTable{finpension.CashFilename(c.output), "cash transactions", conv.Cash})
	}

	// Render every table in memory before the first byte hits disk, so a
	// failure never leaves a partially written table behind.
	encoded := make([][]byte, len(tables))
	for i, table := range tables {
		var buf bytes.Buffer
		if err := finpension.EncodeActivities(&buf, table.rows); err != nil {
			fmt.Fprintf(os.Stderr, "write error: %s: %v\n", table.path, err)
			return subcommands.ExitFailure
		}
		encoded[i] = buf.Bytes()
	}

	for i, table := range tables {
		if err := os.WriteFile(table.path, encoded[i], 0644); err != nil {
			fmt.Fprintf(os.Stderr, "write error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("✔ %d %s written to %q\n", len(table.rows), table.what, table.path)
	}
	return subcommands.ExitSuccess
}
