// Package check validates Accept-Encoding values and reports what is usable out of them.
package check

import (
	"bufio"
	"io"
	"slices"

	"github.com/indigo-web/acceptenc/config"
	"github.com/indigo-web/acceptenc/http/headers"
	json "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

type Report struct {
	Value string `json:"value"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
	// Entries are the codings a permissive recipient would make use of, by priority.
	Entries []headers.Coding `json:"entries"`
}

// Value checks a single Accept-Encoding value.
func Value(value string, cfg *config.Config) Report {
	ae, err := headers.ParseAcceptEncoding(value, cfg)
	if err != nil {
		ae = headers.NewAcceptEncoding(value)
	}

	report := Report{
		Value:   value,
		Valid:   err == nil,
		Entries: slices.Collect(ae.Iter()),
	}

	if report.Entries == nil {
		report.Entries = []headers.Coding{}
	}

	if err != nil {
		report.Error = err.Error()
	}

	return report
}

// Checker writes a JSON report per every checked value, one by line.
type Checker struct {
	cfg     *config.Config
	log     zerolog.Logger
	enc     *json.Encoder
	checked int
	failed  int
}

func New(out io.Writer, cfg *config.Config, log zerolog.Logger) *Checker {
	return &Checker{
		cfg: cfg,
		log: log,
		enc: json.NewEncoder(out),
	}
}

func (c *Checker) Check(value string) error {
	report := Value(value, c.cfg)
	c.checked++

	if !report.Valid {
		c.failed++
		c.log.Warn().
			Str("value", value).
			Str("error", report.Error).
			Msg("malformed Accept-Encoding")
	} else {
		c.log.Debug().
			Str("value", value).
			Int("entries", len(report.Entries)).
			Msg("valid Accept-Encoding")
	}

	return c.enc.Encode(report)
}

// CheckLines checks every non-empty line of the reader. A line longer than
// cfg.Headers.MaxValueLength aborts the reading with bufio.ErrTooLong.
func (c *Checker) CheckLines(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	// the initial capacity counts towards the limit as well
	scanner.Buffer(make([]byte, 0, min(4096, c.cfg.Headers.MaxValueLength)), c.cfg.Headers.MaxValueLength)

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}

		if err := c.Check(line); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// Checked returns the number of values checked so far.
func (c *Checker) Checked() int {
	return c.checked
}

// Failed returns the number of values that didn't pass the validation.
func (c *Checker) Failed() int {
	return c.failed
}
