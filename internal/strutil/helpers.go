package strutil

import "strings"

// LStripWS strips the leading optional whitespace (OWS = *( SP / HTAB )).
func LStripWS(str string) string {
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case ' ', '\t':
		default:
			return str[i:]
		}
	}

	return ""
}

// RStripWS strips the trailing optional whitespace.
func RStripWS(str string) string {
	for i := len(str); i > 0; i-- {
		switch str[i-1] {
		case ' ', '\t':
		default:
			return str[:i]
		}
	}

	return ""
}

func StripWS(str string) string {
	return RStripWS(LStripWS(str))
}

// CutHeader splits a list item into its value and parameters by the first semicolon.
// Both parts are stripped of whitespaces. found reports whether the semicolon was met
// at all, so an item with a dangling semicolon can be told apart from one without
// parameters.
func CutHeader(header string) (value, params string, found bool) {
	value, params, found = strings.Cut(header, ";")
	return StripWS(value), StripWS(params), found
}
