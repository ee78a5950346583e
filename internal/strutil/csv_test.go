package strutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitCSV(t *testing.T) {
	for _, tc := range []struct {
		Name  string
		Value string
		Want  []string
	}{
		{"empty", "", nil},
		{"whitespaces only", " \t ", nil},
		{"single", "gzip", []string{"gzip"}},
		{"two", "compress, gzip", []string{"compress", "gzip"}},
		{"no spaces", "compress,gzip", []string{"compress", "gzip"}},
		{"empty elements", "  ,\t ,, gzip, , ", []string{"gzip"}},
		{"params kept", "gzip;q=1.0, identity; q=0.5, *;q=0", []string{"gzip;q=1.0", "identity; q=0.5", "*;q=0"}},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			require.Equal(t, tc.Want, slices.Collect(SplitCSV(tc.Value)))
			require.Equal(t, len(tc.Want), CountCSV(tc.Value))
		})
	}

	t.Run("early break", func(t *testing.T) {
		var got []string
		for elem := range SplitCSV("a, b, c") {
			got = append(got, elem)
			if len(got) == 2 {
				break
			}
		}

		require.Equal(t, []string{"a", "b"}, got)
	})
}
