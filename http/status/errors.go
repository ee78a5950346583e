package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrEmptyValue            = NewError(BadRequest, "list item has no value")
	ErrMalformedQuality      = NewError(BadRequest, "malformed quality parameter")
	ErrQualityRange          = NewError(BadRequest, "quality value is out of range")
	ErrQualityPrecision      = NewError(BadRequest, "quality value has more than 3 fractional digits")
	ErrTooManyEncodingTokens = NewError(RequestHeaderFieldsTooLarge, "too many encoding tokens specified")
)
