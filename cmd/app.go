// Package cmd implements the pfi command-line application.
package cmd

import (
	"fmt"
	"os"

	finpension "github.com/Sl1van/parqet-finpension-importer"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Environment variables providing flag defaults.
const (
	EnvHoldingAccount = "PFI_HOLDING_ACCOUNT"
	EnvLogLevel       = "PFI_LOG_LEVEL"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	// Flag defaults may come from a local .env file; no file is fine.
	_ = godotenv.Load()

	c.Register(&convertCmd{}, "conversion")
	c.Register(&previewCmd{}, "conversion")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "documentation")

	c.Register(&versionCmd{}, "")
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
}

// envOr returns the environment value for key, or fallback when unset.
func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// decodeReportFile reads one Finpension transaction report from disk.
func decodeReportFile(path string) (*finpension.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	report, err := finpension.DecodeReport(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return report, nil
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err == nil {
		if out, err := r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	// Terminal rendering is cosmetic: fall back to the raw markdown.
	fmt.Print(md)
}
