// Command pfi converts Finpension transaction reports into Parqet CSV files.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/Sl1van/parqet-finpension-importer/cmd"
	"github.com/Sl1van/parqet-finpension-importer/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var verbose = flag.Bool("v", false, "enable debug logging")

func main() {
	installCompletion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	installLogger(*verbose)

	os.Exit(int(commander.Execute(context.Background())))
}

// installCompletion registers the shell completion model and, when the
// shell is asking for completions (COMP_LINE is set), answers and exits.
func installCompletion() {
	csvFiles := predict.Files("*.csv")

	topics := []string{"readme"}
	if names, err := docs.GetAllTopics(); err == nil {
		topics = append(topics, names...)
	}

	pfi := &complete.Command{
		Flags: map[string]complete.Predictor{
			"v": predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"convert": {Flags: map[string]complete.Predictor{
				"i":       csvFiles,
				"o":       csvFiles,
				"holding": predict.Something,
				"flat":    predict.Nothing,
			}},
			"preview": {Flags: map[string]complete.Predictor{
				"i":       csvFiles,
				"holding": predict.Something,
				"flat":    predict.Nothing,
			}},
			"topic":   {Args: predict.Set(topics)},
			"assist":  {Flags: map[string]complete.Predictor{"i": csvFiles}},
			"version": {},
			"help":    {},
		},
	}
	pfi.Complete("pfi")
}

// installLogger wires the global zerolog logger to stderr. Command output
// goes to stdout and stays free of log lines.
func installLogger(verbose bool) {
	level := zerolog.InfoLevel
	if s := os.Getenv(cmd.EnvLogLevel); s != "" {
		if parsed, err := zerolog.ParseLevel(s); err == nil {
			level = parsed
		}
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).With().Timestamp().Logger()
}
