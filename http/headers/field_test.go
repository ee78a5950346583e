package headers

import (
	"slices"
	"testing"

	"github.com/indigo-web/acceptenc/http/coding"
	"github.com/indigo-web/acceptenc/http/quality"
	"github.com/indigo-web/acceptenc/kv"
	"github.com/stretchr/testify/require"
)

func TestField(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		ae := GetAcceptEncoding(kv.New().Add("Host", "localhost"))
		require.True(t, ae.IsEmpty())
		require.False(t, ae.Accepts(coding.Gzip))
	})

	t.Run("multiple field lines", func(t *testing.T) {
		headers := kv.New().
			Add("Accept-Encoding", "gzip;q=0.5").
			Add("Host", "localhost").
			Add("accept-encoding", "").
			Add("ACCEPT-ENCODING", "br, *;q=0")

		ae := GetAcceptEncoding(headers)
		require.Equal(t, "gzip;q=0.5, br, *;q=0", ae.String())
		require.Equal(t,
			[]coding.Token{coding.Brotli, coding.Gzip, coding.Wildcard},
			slices.Collect(ae.Encodings()),
		)
	})

	t.Run("set", func(t *testing.T) {
		headers := kv.New().
			Add("Accept-Encoding", "gzip").
			Add("Accept-Encoding", "deflate")

		SetAcceptEncoding(headers, AcceptEncodingOf(quality.Item(coding.Brotli), quality.New(coding.Identity, 100)))
		require.Equal(t, []string{"br, identity; q=0.1"}, slices.Collect(headers.Values(AcceptEncodingHeader)))
		require.True(t, GetAcceptEncoding(headers).Accepts(coding.Identity))
	})
}
