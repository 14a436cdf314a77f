package jwt

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// JWT header constants required by RFC 7519
const (
	HeaderType      = "JWT"
	HeaderAlgorithm = "HS256"
)

// SignatureSize is the length of an HMAC-SHA256 digest.
const SignatureSize = sha256.Size

// Header represents the JWT header as defined in RFC 7515
type Header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
}

// Token is a parsed HS256 token. The encoded header and payload segments are
// kept exactly as they appeared in the source string because together they are
// the signed message. A Token is immutable and safe to share between goroutines.
type Token struct {
	Header    string // encoded header segment
	Payload   string // encoded payload segment
	Signature []byte // decoded signature bytes

	signingInput string
	raw          string
}

// Parse splits a compact JWT, validates the header and decodes the signature.
// Only "typ":"JWT" with "alg":"HS256" is accepted; anything else is rejected
// before a Token is constructed.
func Parse(tokenString string) (*Token, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, found %d", ErrMalformedToken, len(parts))
	}

	headerEncoded := parts[0]
	payloadEncoded := parts[1]
	signatureEncoded := parts[2]

	headerJSON, err := base64URLDecode(headerEncoded)
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrInvalidEncoding, err)
	}

	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}

	if header.Type != HeaderType {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, header.Type)
	}

	// Only HS256 can be searched; other HMAC sizes would need a different digest
	if header.Algorithm != HeaderAlgorithm {
		return nil, fmt.Errorf("%w: %q, only %s is supported", ErrUnsupportedAlgorithm, header.Algorithm, HeaderAlgorithm)
	}

	signature, err := base64URLDecode(signatureEncoded)
	if err != nil {
		return nil, fmt.Errorf("%w: signature: %w", ErrInvalidEncoding, err)
	}

	// A digest of any other size can never match, searching for it would be futile
	if len(signature) != SignatureSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSignature, len(signature), SignatureSize)
	}

	return &Token{
		Header:       headerEncoded,
		Payload:      payloadEncoded,
		Signature:    signature,
		signingInput: headerEncoded + "." + payloadEncoded,
		raw:          tokenString,
	}, nil
}

// SigningInput returns base64url(header) + "." + base64url(payload),
// the exact byte sequence covered by the signature.
func (t *Token) SigningInput() string {
	return t.signingInput
}

// String returns the token as it was parsed.
func (t *Token) String() string {
	return t.raw
}

// Claims decodes the payload segment into v.
// The payload is opaque to cracking; this is only needed to forge new tokens.
func (t *Token) Claims(v any) error {
	claimsJSON, err := base64URLDecode(t.Payload)
	if err != nil {
		return fmt.Errorf("%w: payload: %w", ErrInvalidEncoding, err)
	}
	if err := json.Unmarshal(claimsJSON, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidClaims, err)
	}
	return nil
}

// base64URLDecode decodes base64url-encoded data, restoring padding as needed.
// JWT tokens omit padding per RFC 7515, but Go's decoder requires it.
func base64URLDecode(s string) ([]byte, error) {
	s = strings.TrimRight(s, "=")
	switch len(s) % 4 {
	case 2:
		s += strings.Repeat("=", 2)
	case 3:
		s += strings.Repeat("=", 1)
	}

	return base64.URLEncoding.DecodeString(s)
}
