package strutil

import (
	"iter"
	"strings"
)

// Join works in the same way as the strings.Join does, except that it operates an iterator
// as opposed to greedy string slice. Empty elements are omitted, so no dangling separators
// are produced.
func Join(elems iter.Seq[string], sep string) string {
	var b strings.Builder

	for elem := range elems {
		if len(elem) == 0 {
			continue
		}

		if b.Len() > 0 {
			b.WriteString(sep)
		}

		b.WriteString(elem)
	}

	return b.String()
}
