package signature_test

import (
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jwtcrack/pkg/signature"
)

const scenarioSigningInput = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJzdWIiOiIxMjM0NTY3ODkwIn0"

func TestSignKnownVector(t *testing.T) {
	t.Parallel()

	sig := signature.Sign([]byte("secret"), []byte(scenarioSigningInput))
	assert.Equal(t, "Rq8IxqeX7eA6GgYxlcHdPFVRNFFZc5rEI3MQTZZbK3I", base64.RawURLEncoding.EncodeToString(sig))
}

func TestVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	secrets := []string{"", "a", "secret", "päßwörd", strings.Repeat("k", 200), "with\ttab", "trailing\r"}
	messages := []string{"", scenarioSigningInput, "header.payload"}

	for _, s := range secrets {
		for _, m := range messages {
			sig := signature.Sign([]byte(s), []byte(m))
			assert.True(t, signature.Verify([]byte(s), []byte(m), sig), "secret=%q message=%q", s, m)
			assert.True(t, signature.VerifyString(s, []byte(m), sig), "secret=%q message=%q", s, m)
		}
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	msg := []byte(scenarioSigningInput)
	for i := range 50 {
		s1 := fmt.Sprintf("candidate-%d", i)
		s2 := fmt.Sprintf("candidate-%d", i+1)
		assert.False(t, signature.Verify([]byte(s1), msg, signature.Sign([]byte(s2), msg)))
	}
}

func TestVerifyLengthMismatch(t *testing.T) {
	t.Parallel()

	msg := []byte(scenarioSigningInput)
	sig := signature.Sign([]byte("secret"), msg)

	assert.False(t, signature.Verify([]byte("secret"), msg, sig[:len(sig)-1]))
	assert.False(t, signature.Verify([]byte("secret"), msg, append(sig, 0)))
	assert.False(t, signature.Verify([]byte("secret"), msg, nil))
}

func TestVerifyAgainstGolangJWT(t *testing.T) {
	t.Parallel()

	raw, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{"sub": "42"}).SignedString([]byte("s3cr3t"))
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)
	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)

	msg := []byte(parts[0] + "." + parts[1])
	assert.True(t, signature.VerifyString("s3cr3t", msg, sig))
	assert.False(t, signature.VerifyString("s3cr3T", msg, sig))
}

func TestVerifyConcurrent(t *testing.T) {
	t.Parallel()

	msg := []byte(scenarioSigningInput)
	sig := signature.Sign([]byte("secret"), msg)

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for range 100 {
				if i%2 == 0 {
					assert.True(t, signature.VerifyString("secret", msg, sig))
				} else {
					assert.False(t, signature.VerifyString("nope", msg, sig))
				}
			}
		}(i)
	}
	wg.Wait()
}

func BenchmarkVerify(b *testing.B) {
	msg := []byte(scenarioSigningInput)
	sig := signature.Sign([]byte("secret"), msg)

	for b.Loop() {
		signature.VerifyString("wrongpass", msg, sig)
	}
}
