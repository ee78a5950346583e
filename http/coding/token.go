// Package coding implements content-coding tokens as they appear in the Accept-Encoding,
// Content-Encoding and Transfer-Encoding header fields.
package coding

import (
	"github.com/indigo-web/utils/uf"
)

// Kind tells which of the well-known codings a Token is. Everything unknown is an Extension.
type Kind uint8

const (
	Extension Kind = iota
	KindChunked
	KindBrotli
	KindGzip
	KindDeflate
	KindCompress
	KindIdentity
	KindTrailers
	KindWildcard
)

var names = [...]string{
	Extension:    "",
	KindChunked:  "chunked",
	KindBrotli:   "br",
	KindGzip:     "gzip",
	KindDeflate:  "deflate",
	KindCompress: "compress",
	KindIdentity: "identity",
	KindTrailers: "trailers",
	KindWildcard: "*",
}

// Token is a content-coding identifier. Well-known codings are represented by their Kind
// only, so two tokens are equal (==) iff they name the same coding. The zero value is an
// empty extension.
type Token struct {
	ext  string
	kind Kind
}

var (
	Chunked  = Token{kind: KindChunked}
	Brotli   = Token{kind: KindBrotli}
	Gzip     = Token{kind: KindGzip}
	Deflate  = Token{kind: KindDeflate}
	Compress = Token{kind: KindCompress}
	// Identity stands for "no encoding", according to RFC
	Identity = Token{kind: KindIdentity}
	Trailers = Token{kind: KindTrailers}
	// Wildcard matches any coding not explicitly listed.
	Wildcard = Token{kind: KindWildcard}
)

// Parse maps the token to the well-known coding if it is spelled exactly (case-sensitive)
// as one. Otherwise, the token is kept verbatim as an extension. Parse never fails.
func Parse(token string) Token {
	switch token {
	case "chunked":
		return Chunked
	case "br":
		return Brotli
	case "gzip":
		return Gzip
	case "deflate":
		return Deflate
	case "compress":
		return Compress
	case "identity":
		return Identity
	case "trailers":
		return Trailers
	case "*":
		return Wildcard
	default:
		return Token{ext: token}
	}
}

// ParseBytes does the same as Parse. The input isn't retained, so it's safe to reuse
// the buffer afterwards.
func ParseBytes(token []byte) Token {
	if t := Parse(uf.B2S(token)); t.kind != Extension {
		return t
	}

	return Token{ext: string(token)}
}

// Ext is an alias to Parse, making the construction of extension tokens read naturally.
// Well-known names are promoted: Ext("gzip") == Gzip.
func Ext(name string) Token {
	return Parse(name)
}

func (t Token) Kind() Kind {
	return t.kind
}

func (t Token) IsWildcard() bool {
	return t.kind == KindWildcard
}

func (t Token) String() string {
	if t.kind == Extension {
		return t.ext
	}

	return names[t.kind]
}

func (t Token) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Token) UnmarshalText(text []byte) error {
	*t = ParseBytes(text)
	return nil
}
