// Package forge demonstrates the impact of a recovered secret by issuing
// tokens with arbitrary claims.
//
// Sign creates an HS256 token, Confirm checks a secret against an existing
// token and returns its claims, and Resign combines both to tamper with a
// captured token:
//
//	forged, err := forge.Resign(captured, secret, map[string]any{
//	    "role": "admin",
//	    "exp":  nil, // drop the expiry
//	})
//
// Token encoding is delegated to github.com/golang-jwt/jwt/v5. Claim time
// validation is disabled because captured tokens are often expired.
package forge
