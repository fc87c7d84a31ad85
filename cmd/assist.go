package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Sl1van/parqet-finpension-importer/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	input string
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the mapping assistant"
}
func (*assistCmd) Usage() string {
	return `pfi assist [-i <transaction_report.csv>] [<question>...]

  Starts an interactive session with a Gemini-backed assistant that knows
  the pfi documentation and helps mapping Finpension categories to Parqet
  activity types. With -i, the unmapped categories found in that report are
  put in the assistant's context. Requires GEMINI_API_KEY.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Finpension transaction report whose unmapped categories feed the assistant")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var categories []string
	if c.input != "" {
		report, err := decodeReportFile(c.input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read error: %v\n", err)
			return subcommands.ExitFailure
		}
		categories = report.PassthroughCategories()
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	var prompts []string
	if q := strings.TrimSpace(strings.Join(f.Args(), " ")); q != "" {
		prompts = append(prompts, q)
	}

	a := agent.New(os.Stdout, os.Stdin, agent.NewMapper(categories))
	if err := a.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
