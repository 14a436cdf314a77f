package jwt

import "errors"

var (
	ErrMalformedToken       = errors.New("jwt: malformed token")
	ErrInvalidEncoding      = errors.New("jwt: invalid base64url encoding")
	ErrInvalidHeader        = errors.New("jwt: invalid header")
	ErrInvalidType          = errors.New("jwt: invalid token type")
	ErrUnsupportedAlgorithm = errors.New("jwt: unsupported signing algorithm")
	ErrInvalidSignature     = errors.New("jwt: invalid signature length")
	ErrInvalidClaims        = errors.New("jwt: invalid claims")
)

// IsConfigurationError reports whether err means the token cannot be searched at all.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrMalformedToken) ||
		errors.Is(err, ErrInvalidEncoding) ||
		errors.Is(err, ErrInvalidHeader) ||
		errors.Is(err, ErrInvalidType) ||
		errors.Is(err, ErrUnsupportedAlgorithm) ||
		errors.Is(err, ErrInvalidSignature)
}
