package potfile

import (
	"context"
	"strings"
)

// Store remembers secrets recovered for previously cracked tokens.
type Store interface {
	// Lookup returns the recorded secret for token, if any.
	Lookup(ctx context.Context, token string) (secret string, ok bool, err error)
	// Record stores secret as the key of token.
	Record(ctx context.Context, token, secret string) error
}

// validEntry reports whether a token/secret pair can be written as a single
// "token:secret" line.
func validEntry(token, secret string) bool {
	if token == "" || strings.ContainsAny(token, ":\r\n") {
		return false
	}
	return !strings.ContainsAny(secret, "\r\n")
}
