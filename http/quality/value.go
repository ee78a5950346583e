// Package quality implements quality-weighted list items, as used by the Accept-* family
// of header fields.
package quality

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/indigo-web/acceptenc/http/status"
	"github.com/indigo-web/acceptenc/internal/strutil"
	json "github.com/json-iterator/go"
)

// Value pairs a list item with its weight. Items with higher weight are preferred.
type Value[T fmt.Stringer] struct {
	Value  T
	Weight Weight
}

// New returns a weighted value. Weights above Max are clamped.
func New[T fmt.Stringer](value T, weight Weight) Value[T] {
	return Value[T]{
		Value:  value,
		Weight: min(weight, Max),
	}
}

// Item returns a value with the highest possible weight.
func Item[T fmt.Stringer](value T) Value[T] {
	return New(value, Max)
}

// Parse parses a single list item in form of `value [ OWS ";" OWS "q=" qvalue ]`. The value
// itself is handed over to the passed parser. Omitted weight defaults to Max.
func Parse[T fmt.Stringer](item string, parse func(string) T) (v Value[T], err error) {
	value, params, found := strutil.CutHeader(item)
	if len(value) == 0 {
		return v, status.ErrEmptyValue
	}

	v.Weight = Max
	if found {
		if len(params) < 2 || params[1] != '=' || (params[0] != 'q' && params[0] != 'Q') {
			return v, status.ErrMalformedQuality
		}

		if v.Weight, err = ParseWeight(params[2:]); err != nil {
			return v, err
		}
	}

	v.Value = parse(value)

	return v, nil
}

// Accepted tells whether the value wasn't explicitly excluded by a zero weight.
func (v Value[T]) Accepted() bool {
	return v.Weight > Min
}

func (v Value[T]) String() string {
	if v.Weight >= Max {
		return v.Value.String()
	}

	return v.Value.String() + "; q=" + v.Weight.String()
}

func (v Value[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value  string  `json:"value"`
		Weight float64 `json:"q"`
	}{v.Value.String(), v.Weight.Float()})
}

// Compare orders values by their weight, descending. Equal weights compare as equal, so
// the relative order of such is up to the sorting algorithm.
func Compare[T fmt.Stringer](a, b Value[T]) int {
	return cmp.Compare(b.Weight, a.Weight)
}

// Sort sorts the values by their priority. Values of equal weight retain their original
// order.
func Sort[T fmt.Stringer](values []Value[T]) {
	slices.SortStableFunc(values, Compare[T])
}
