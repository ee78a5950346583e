package headers

import (
	"github.com/indigo-web/acceptenc/internal/strutil"
	"github.com/indigo-web/acceptenc/kv"
)

const AcceptEncodingHeader = "Accept-Encoding"

// GetAcceptEncoding flattens every Accept-Encoding field line of the headers into a single
// value, as a recipient must treat them as one comma-separated list (RFC 9110, 5.3).
func GetAcceptEncoding(headers *kv.Storage) AcceptEncoding {
	return NewAcceptEncoding(strutil.Join(headers.Values(AcceptEncodingHeader), ", "))
}

// SetAcceptEncoding replaces all the Accept-Encoding field lines with the value.
func SetAcceptEncoding(headers *kv.Storage, value AcceptEncoding) *kv.Storage {
	return headers.Set(AcceptEncodingHeader, value.String())
}
