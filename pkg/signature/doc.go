// Package signature checks candidate HS256 secrets against a known signature.
//
// Verify is a pure function: it builds a fresh HMAC-SHA256 keyed by the
// candidate, hashes the signing input and compares the digest with the
// expected bytes using hmac.Equal. HMAC accepts keys of any length, including
// the empty key, so there is no error path per candidate.
//
//	ok := signature.Verify([]byte("secret"), []byte(token.SigningInput()), token.Signature)
package signature
