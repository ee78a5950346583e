package strutil

import (
	"iter"
	"strings"
)

// SplitCSV walks over the elements of a comma-separated list. Elements are stripped of
// whitespaces; empty elements are skipped, as the #rule requires recipients to ignore them
// (RFC 9110, 5.6.1.2).
func SplitCSV(value string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for len(value) > 0 {
			var elem string

			comma := strings.IndexByte(value, ',')
			if comma == -1 {
				elem, value = value, ""
			} else {
				elem, value = value[:comma], value[comma+1:]
			}

			if elem = StripWS(elem); len(elem) == 0 {
				continue
			}

			if !yield(elem) {
				return
			}
		}
	}
}

// CountCSV returns the number of non-empty elements in a comma-separated list.
func CountCSV(value string) (n int) {
	for range SplitCSV(value) {
		n++
	}

	return n
}
