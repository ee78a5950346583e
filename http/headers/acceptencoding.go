// Package headers implements typed header field values on top of the raw kv.Storage.
package headers

import (
	"iter"
	"slices"

	"github.com/indigo-web/acceptenc/config"
	"github.com/indigo-web/acceptenc/http/coding"
	"github.com/indigo-web/acceptenc/http/quality"
	"github.com/indigo-web/acceptenc/http/status"
	"github.com/indigo-web/acceptenc/internal/strutil"
)

// AcceptEncoding is a value of the Accept-Encoding header field (RFC 9110, 12.5.3):
//
//	Accept-Encoding  = #( codings [ weight ] )
//	codings          = content-coding / "identity" / "*"
//
// The raw value is kept as is and parsed on every query. Malformed items are silently
// skipped, so a single bad coding doesn't invalidate the whole field. Example values:
//
//	compress, gzip
//	*
//	compress;q=0.5, gzip;q=1
//	gzip;q=1.0, identity; q=0.5, *;q=0
type AcceptEncoding struct {
	value string
}

type Coding = quality.Value[coding.Token]

func NewAcceptEncoding(value string) AcceptEncoding {
	return AcceptEncoding{value: value}
}

// AcceptEncodingOf renders the codings into the field value, preserving their order.
func AcceptEncodingOf(codings ...Coding) AcceptEncoding {
	return AcceptEncodingFrom(slices.Values(codings))
}

// AcceptEncodingFrom does the same as AcceptEncodingOf, but consumes an iterator. Passing
// Iter() of another AcceptEncoding results in its canonical form.
func AcceptEncodingFrom(codings iter.Seq[Coding]) AcceptEncoding {
	return NewAcceptEncoding(strutil.Join(func(yield func(string) bool) {
		for c := range codings {
			if !yield(c.String()) {
				return
			}
		}
	}, ", "))
}

// ParseAcceptEncoding validates the whole value strictly: the first malformed item fails
// it, as well as listing more than cfg.Headers.MaxAcceptEncodingTokens codings.
func ParseAcceptEncoding(value string, cfg *config.Config) (AcceptEncoding, error) {
	var n int

	for item := range strutil.SplitCSV(value) {
		if n++; n > cfg.Headers.MaxAcceptEncodingTokens {
			return AcceptEncoding{}, status.ErrTooManyEncodingTokens
		}

		if _, err := quality.Parse(item, coding.Parse); err != nil {
			return AcceptEncoding{}, err
		}
	}

	return NewAcceptEncoding(value), nil
}

// Iter walks over the well-formed codings by their priority, the most preferred first.
// Codings of equal weight appear in the same order as they are listed in the value.
func (a AcceptEncoding) Iter() iter.Seq[Coding] {
	return func(yield func(Coding) bool) {
		for _, c := range a.collect() {
			if !yield(c) {
				return
			}
		}
	}
}

// Encodings does the same as Iter, dropping the weights.
func (a AcceptEncoding) Encodings() iter.Seq[coding.Token] {
	return func(yield func(coding.Token) bool) {
		for _, c := range a.collect() {
			if !yield(c.Value) {
				return
			}
		}
	}
}

// Weight returns the weight the value assigns to the token. An explicit entry takes
// precedence over the wildcard. If neither is listed, false is returned.
func (a AcceptEncoding) Weight(token coding.Token) (quality.Weight, bool) {
	var (
		wildcard      quality.Weight
		foundWildcard bool
	)

	for _, c := range a.collect() {
		switch {
		case c.Value == token:
			return c.Weight, true
		case c.Value.IsWildcard() && !foundWildcard:
			wildcard, foundWildcard = c.Weight, true
		}
	}

	return wildcard, foundWildcard
}

// Accepts tells whether the token is acceptable: either it is listed explicitly or the
// wildcard is, and in both cases with non-zero weight. A zero weight means the token
// (or everything not listed, for the wildcard) is explicitly excluded.
func (a AcceptEncoding) Accepts(token coding.Token) bool {
	weight, found := a.Weight(token)
	return found && weight > quality.Min
}

// Len returns the number of non-empty items, including malformed ones.
func (a AcceptEncoding) Len() int {
	return strutil.CountCSV(a.value)
}

func (a AcceptEncoding) IsEmpty() bool {
	return a.Len() == 0
}

// String returns the raw field value.
func (a AcceptEncoding) String() string {
	return a.value
}

func (a AcceptEncoding) collect() []Coding {
	var codings []Coding

	for item := range strutil.SplitCSV(a.value) {
		c, err := quality.Parse(item, coding.Parse)
		if err != nil {
			continue
		}

		codings = append(codings, c)
	}

	quality.Sort(codings)

	return codings
}
