// Package jwt parses compact HS256 JSON Web Tokens into the pieces needed to
// test candidate signing secrets against them.
//
// Parsing is deliberately narrow: the token must have exactly three
// dot-separated segments, the header must decode to {"typ":"JWT","alg":"HS256"}
// and the signature must be a 32-byte HMAC-SHA256 digest. The encoded header
// and payload are kept verbatim because the signature covers their encoded
// form, not the decoded JSON.
//
// # Usage
//
//	token, err := jwt.Parse(raw)
//	if err != nil {
//	    // malformed token or unsupported algorithm
//	}
//
//	msg := token.SigningInput() // "<header>.<payload>"
//	sig := token.Signature      // raw digest bytes
//
// # Error Handling
//
// Every error returned by Parse wraps one of the sentinel values in errors.go
// and satisfies IsConfigurationError: the token cannot be searched at all,
// which callers must keep distinct from a search that found nothing.
//
// # Performance Considerations
//
// The signing input is built once during Parse and shared read-only by every
// worker, so nothing is allocated per candidate.
package jwt
