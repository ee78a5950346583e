package quality

import (
	"strings"

	"github.com/indigo-web/acceptenc/http/status"
)

// Weight is a quality value in permille, so 1.000 is stored as 1000 and 0.5 as 500.
// Keeping it integral makes comparison exact.
type Weight uint16

const (
	Min Weight = 0
	Max Weight = 1000
)

// ParseWeight parses the qvalue grammar (RFC 9110, 12.4.2), being slightly more
// permissive in leading zeroes of the integral part:
//
//	qvalue = ( "0" [ "." 0*3DIGIT ] ) / ( "1" [ "." 0*3("0") ] )
//
// Syntax errors are reported first, then the precision and at last the range.
func ParseWeight(str string) (Weight, error) {
	integral, fraction, _ := strings.Cut(str, ".")
	if len(integral) == 0 {
		return 0, status.ErrMalformedQuality
	}

	var (
		value     uint
		overflown bool
	)

	for i := 0; i < len(integral); i++ {
		c := integral[i]
		if c < '0' || c > '9' {
			return 0, status.ErrMalformedQuality
		}

		value = value*10 + uint(c-'0')
		if value > 1 {
			overflown = true
			value = 1
		}
	}

	for i := 0; i < len(fraction); i++ {
		if c := fraction[i]; c < '0' || c > '9' {
			return 0, status.ErrMalformedQuality
		}
	}

	if len(fraction) > 3 {
		return 0, status.ErrQualityPrecision
	}

	for i := 0; i < 3; i++ {
		value *= 10
		if i < len(fraction) {
			value += uint(fraction[i] - '0')
		}
	}

	if overflown || value > uint(Max) {
		return 0, status.ErrQualityRange
	}

	return Weight(value), nil
}

// String renders the weight with at most 3 decimals, trailing zeroes trimmed.
func (w Weight) String() string {
	switch {
	case w >= Max:
		return "1"
	case w == Min:
		return "0"
	}

	buff := []byte{'0', '.', byte('0' + w/100), byte('0' + w/10%10), byte('0' + w%10)}
	for buff[len(buff)-1] == '0' {
		buff = buff[:len(buff)-1]
	}

	return string(buff)
}

func (w Weight) Float() float64 {
	return float64(min(w, Max)) / float64(Max)
}
