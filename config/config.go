package config

type (
	Headers struct {
		// MaxAcceptEncodingTokens is a limit of how many codings a single Accept-Encoding
		// value may list to pass the strict validation.
		MaxAcceptEncodingTokens int
		// MaxValueLength limits the length of a single header value read by the validation
		// tooling. Longer lines are rejected as a whole.
		MaxValueLength int
	}
)

// Config holds settings used across the parsing and validation, mainly restrictions and
// limitations.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Headers Headers
}

// Default returns default config. Those are initially well-balanced, however maximal defaults
// are pretty permitting.
func Default() *Config {
	return &Config{
		Headers: Headers{
			MaxAcceptEncodingTokens: 20, // that must be a way too advanced client
			MaxValueLength:          64 * 1024,
		},
	}
}
