package check

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/indigo-web/acceptenc/config"
	"github.com/indigo-web/acceptenc/http/coding"
	"github.com/indigo-web/acceptenc/http/headers"
	"github.com/indigo-web/acceptenc/http/quality"
	"github.com/indigo-web/acceptenc/http/status"
	json "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	cfg := config.Default()

	t.Run("valid", func(t *testing.T) {
		report := Value("compress;q=0.5, gzip", cfg)
		require.True(t, report.Valid)
		require.Empty(t, report.Error)
		require.Equal(t, []headers.Coding{quality.Item(coding.Gzip), quality.New(coding.Compress, 500)}, report.Entries)
	})

	t.Run("malformed", func(t *testing.T) {
		report := Value("gzip, ;q=bogus, br", cfg)
		require.False(t, report.Valid)
		require.Equal(t, status.ErrEmptyValue.Error(), report.Error)
		require.Equal(t, []headers.Coding{quality.Item(coding.Gzip), quality.Item(coding.Brotli)}, report.Entries)
	})

	t.Run("empty", func(t *testing.T) {
		report := Value("", cfg)
		require.True(t, report.Valid)
		require.NotNil(t, report.Entries)
		require.Empty(t, report.Entries)
	})
}

func TestChecker(t *testing.T) {
	t.Run("lines", func(t *testing.T) {
		var out, logs bytes.Buffer
		checker := New(&out, config.Default(), zerolog.New(&logs))

		input := "gzip;q=1.0, identity; q=0.5, *;q=0\n\na;q=0.0001\n"
		require.NoError(t, checker.CheckLines(strings.NewReader(input)))
		require.Equal(t, 2, checker.Checked())
		require.Equal(t, 1, checker.Failed())
		require.Contains(t, logs.String(), "malformed Accept-Encoding")

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)

		var first struct {
			Value   string `json:"value"`
			Valid   bool   `json:"valid"`
			Entries []struct {
				Value string  `json:"value"`
				Q     float64 `json:"q"`
			} `json:"entries"`
		}
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
		require.True(t, first.Valid)
		require.Len(t, first.Entries, 3)
		require.Equal(t, "gzip", first.Entries[0].Value)
		require.Equal(t, 1.0, first.Entries[0].Q)
		require.Equal(t, "identity", first.Entries[1].Value)
		require.Equal(t, 0.5, first.Entries[1].Q)
		require.Equal(t, "*", first.Entries[2].Value)
		require.Zero(t, first.Entries[2].Q)

		require.JSONEq(t,
			`{"value":"a;q=0.0001","valid":false,"error":"quality value has more than 3 fractional digits","entries":[]}`,
			lines[1],
		)
	})

	t.Run("too long line", func(t *testing.T) {
		cfg := config.Default()
		cfg.Headers.MaxValueLength = 16

		checker := New(new(bytes.Buffer), cfg, zerolog.Nop())
		err := checker.CheckLines(strings.NewReader(strings.Repeat("gzip, ", 10)))
		require.ErrorIs(t, err, bufio.ErrTooLong)
	})
}
