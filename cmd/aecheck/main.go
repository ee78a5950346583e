// Command aecheck validates Accept-Encoding header values, given either as arguments or
// line by line on stdin, and prints a JSON report for each of them. It exits with status 1
// if any of the values is malformed.
package main

import (
	"flag"
	"os"

	"github.com/indigo-web/acceptenc/config"
	"github.com/indigo-web/acceptenc/internal/check"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	verboseFlag   bool
	maxTokensFlag int
	maxLengthFlag int
)

func init() {
	defaults := config.Default()

	flag.BoolVar(&verboseFlag, "verbose", false, "Verbosity: debug logging")
	flag.IntVar(&maxTokensFlag, "max-tokens", defaults.Headers.MaxAcceptEncodingTokens, "Maximal number of codings in a single value")
	flag.IntVar(&maxLengthFlag, "max-length", defaults.Headers.MaxValueLength, "Maximal length of a value read from stdin")
}

func main() {
	flag.Parse()

	logLevel := zerolog.InfoLevel
	if verboseFlag {
		logLevel = zerolog.DebugLevel
	}

	log.Logger = log.Level(logLevel).Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Default()
	cfg.Headers.MaxAcceptEncodingTokens = maxTokensFlag
	cfg.Headers.MaxValueLength = maxLengthFlag

	checker := check.New(os.Stdout, cfg, log.Logger)

	if flag.NArg() > 0 {
		for _, value := range flag.Args() {
			if err := checker.Check(value); err != nil {
				log.Fatal().Err(err).Msg("cannot write the report")
			}
		}
	} else if err := checker.CheckLines(os.Stdin); err != nil {
		log.Fatal().Err(err).Msg("cannot check the input")
	}

	log.Debug().
		Int("checked", checker.Checked()).
		Int("failed", checker.Failed()).
		Msg("done")

	if checker.Failed() > 0 {
		os.Exit(1)
	}
}
