package signature

import (
	"crypto/hmac"
	"crypto/sha256"
)

// Sign computes HMAC-SHA256 keyed by secret over signingInput.
func Sign(secret, signingInput []byte) []byte {
	h := hmac.New(sha256.New, secret)
	h.Write(signingInput)
	return h.Sum(nil)
}

// Verify reports whether HMAC-SHA256(secret, signingInput) equals expected.
// Length and content must both match; the comparison runs in constant time.
// Verify holds no state and may be called from any number of goroutines.
func Verify(secret, signingInput, expected []byte) bool {
	return hmac.Equal(Sign(secret, signingInput), expected)
}

// VerifyString is Verify for a candidate secret held as a string.
func VerifyString(secret string, signingInput, expected []byte) bool {
	return Verify([]byte(secret), signingInput, expected)
}
