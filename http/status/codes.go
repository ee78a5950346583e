package status

type Code uint16

// Only the codes header parsing errors may be reported with.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	BadRequest                  Code = 400 // RFC 9110, 15.5.1
	RequestHeaderFieldsTooLarge Code = 431 // RFC 6585, 5
)

// Text returns a reason phrase of the code. Unknown codes result in "Unknown Status Code"
func Text(code Code) string {
	switch code {
	case BadRequest:
		return "Bad Request"
	case RequestHeaderFieldsTooLarge:
		return "Request Header Fields Too Large"
	default:
		return "Unknown Status Code"
	}
}
