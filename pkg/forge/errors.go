package forge

import "errors"

var (
	ErrMalformedToken       = errors.New("forge: malformed token")
	ErrUnsupportedAlgorithm = errors.New("forge: only HS256 tokens are supported")
	ErrSignatureMismatch    = errors.New("forge: secret does not produce the token signature")
	ErrInvalidClaims        = errors.New("forge: invalid claims")
)
