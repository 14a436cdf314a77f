package forge

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"strings"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/dmitrymomot/jwtcrack/pkg/signature"
)

var parser = gojwt.NewParser(
	gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
	gojwt.WithoutClaimsValidation(),
	gojwt.WithJSONNumber(),
)

// Sign issues an HS256 token carrying claims, keyed by secret.
// Any secret is accepted, including the empty string.
func Sign(secret string, claims map[string]any) (string, error) {
	if claims == nil {
		claims = map[string]any{}
	}

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims(claims))
	signingInput, err := token.SigningString()
	if err != nil {
		return "", errors.Join(ErrInvalidClaims, err)
	}

	sig := signature.Sign([]byte(secret), []byte(signingInput))
	return signingInput + "." + token.EncodeSegment(sig), nil
}

// Confirm checks that secret signs token and returns its claims.
// Expiry and other time based claims are not validated.
func Confirm(token, secret string) (map[string]any, error) {
	claims := gojwt.MapClaims{}
	parsed, parts, err := parser.ParseUnverified(token, claims)
	if err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}
	if parsed.Method == nil || parsed.Method.Alg() != gojwt.SigningMethodHS256.Alg() {
		return nil, ErrUnsupportedAlgorithm
	}
	if len(parts) != 3 {
		return nil, ErrMalformedToken
	}

	sig, err := parser.DecodeSegment(parts[2])
	if err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}

	signingInput := []byte(parts[0] + "." + parts[1])
	if !signature.VerifyString(secret, signingInput, sig) {
		return nil, ErrSignatureMismatch
	}

	return claims, nil
}

// Resign confirms secret against token, applies overrides to its claims and
// signs the result. An override with a nil value removes the claim.
func Resign(token, secret string, overrides map[string]any) (string, error) {
	claims, err := Confirm(token, secret)
	if err != nil {
		return "", err
	}

	maps.Copy(claims, overrides)
	maps.DeleteFunc(claims, func(_ string, v any) bool { return v == nil })

	return Sign(secret, claims)
}

// ParseClaims decodes a JSON object of claims. Numbers keep their literal
// form so large integers survive re-signing.
func ParseClaims(raw string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var claims map[string]any
	if err := dec.Decode(&claims); err != nil {
		return nil, errors.Join(ErrInvalidClaims, err)
	}
	if claims == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidClaims)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data", ErrInvalidClaims)
	}
	return claims, nil
}
